package usecase

import (
	"storage-rental/internal/data/repository"
	"storage-rental/internal/gateway"
	"storage-rental/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Storage StorageService
	Booking BookingService
}

func NewService(
	repo *repository.Repository,
	gw gateway.PaymentGateway,
	cache FacilityCache,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo.User, log),
		Storage: NewStorageService(repo, cache, log),
		Booking: NewBookingService(repo, gw, config, log),
	}
}
