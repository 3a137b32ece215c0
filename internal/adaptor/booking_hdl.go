package adaptor

import (
	"encoding/json"
	"net/http"

	"storage-rental/internal/dto/request"
	"storage-rental/internal/usecase"
	"storage-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// VerifyBooking handles POST /api/bookings/verify (protected)
func (h *BookingHandler) VerifyBooking(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.VerifyBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "verify booking")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// GetUserBookings handles GET /api/user/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := paginationFromQuery(r)

	bookings, err := h.service.GetUserBookings(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetStorageBookings handles GET /api/provider/bookings (provider only)
func (h *BookingHandler) GetStorageBookings(w http.ResponseWriter, r *http.Request) {
	providerUID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := paginationFromQuery(r)

	bookings, err := h.service.GetStorageBookings(r.Context(), providerUID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "get storage bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id} (protected)
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	booking, err := h.service.GetBookingByID(r.Context(), userID, role, bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}
