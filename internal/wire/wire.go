// internal/wire/wire.go
package wire

import (
	"net/http"

	"storage-rental/internal/adaptor"
	"storage-rental/internal/data/repository"
	"storage-rental/internal/gateway"
	"storage-rental/internal/usecase"
	"storage-rental/pkg/middleware"
	"storage-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(
	repo *repository.Repository,
	gw gateway.PaymentGateway,
	cache usecase.FacilityCache,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, gw, cache, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, config, logger)
	wireStorage(r, handler.Storage, config, logger)
	wireBooking(r, handler.Booking, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
