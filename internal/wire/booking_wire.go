package wire

import (
	"storage-rental/internal/adaptor"
	"storage-rental/pkg/middleware"
	"storage-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// POST /api/bookings - Create pending booking + payment order
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// POST /api/bookings/verify - Verify payment signature, flip to paid
		r.Post("/api/bookings/verify", bookingHandler.VerifyBooking)

		// GET /api/bookings/{id} - Booking details (owner or facility provider)
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)

		// GET /api/user/bookings - Own booking history
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})

	// ==================== PROVIDER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Provider(log))

		// GET /api/provider/bookings - Bookings against own facility
		r.Get("/api/provider/bookings", bookingHandler.GetStorageBookings)
	})
}
