package adaptor

import (
	"net/http"

	"storage-rental/internal/usecase"
	"storage-rental/pkg/errs"
	"storage-rental/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Storage *StorageHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Storage: NewStorageHandler(service.Storage, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError maps a service error onto the response envelope using
// its kind's status. Client errors log at Warn, everything else at Error.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	status := errs.StatusOf(err)
	message := errs.MessageOf(err)

	if status < http.StatusInternalServerError {
		log.Warn(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("kind", string(errs.KindOf(err))),
			zap.Int("status", status),
		)
	} else {
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation),
			zap.Int("status", status),
		)
	}

	utils.ResponseError(w, status, message)
}
