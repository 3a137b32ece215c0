package usecase

import (
	"context"
	"net/http"
	"time"

	"storage-rental/internal/data/entity"
	"storage-rental/internal/data/repository"
	"storage-rental/internal/dto/request"
	"storage-rental/internal/dto/response"
	"storage-rental/internal/gateway"
	"storage-rental/pkg/errs"
	"storage-rental/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// Public endpoints (require auth)
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	VerifyBooking(ctx context.Context, req *request.VerifyBookingRequest) (*response.VerifyBookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, userID, role, bookingID string) (*response.BookingResponse, error)

	// Provider endpoints
	GetStorageBookings(ctx context.Context, providerUID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	repo     *repository.Repository
	gateway  gateway.PaymentGateway
	secret   string // gateway key secret, never leaves the service
	currency string
	log      *zap.Logger
	timeNow  func() time.Time
}

func NewBookingService(
	repo *repository.Repository,
	gw gateway.PaymentGateway,
	config *utils.Config,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:     repo,
		gateway:  gw,
		secret:   config.Razorpay.KeySecret,
		currency: config.App.Currency,
		log:      log.With(zap.String("service", "booking")),
		timeNow:  time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	const op = "create_booking"

	// Validate request
	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errors))
		return nil, errs.New(errs.KindInvalid, op, "validation failed: "+utils.FormatValidationErrors(errors))
	}

	// Facility must exist; its display fields are snapshotted onto the booking
	facility, err := s.repo.Storage.FindByID(ctx, req.StorageID)
	if err != nil {
		return nil, errs.Wrap(errs.KindStore, op, "failed to load storage facility", err)
	}
	if facility == nil {
		return nil, errs.New(errs.KindNotFound, op, "storage facility not found")
	}

	// Request the payment order first; a gateway failure leaves no booking
	// behind. Amount is trusted as sent by the client (see DESIGN.md).
	receipt := utils.GenerateReceiptID()
	orderID, err := s.gateway.CreateOrder(ctx, req.Amount, s.currency, receipt)
	if err != nil {
		s.log.Error("Payment order creation failed",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("storage_id", req.StorageID),
			zap.Int64("amount", req.Amount),
		)
		return nil, errs.Wrap(errs.KindGateway, op, "payment order creation failed", err)
	}

	now := s.timeNow()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        utils.GenerateUUIDString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		StorageID:   req.StorageID,
		UserID:      userID,
		UserName:    req.UserName,
		StorageName: facility.Name,
		Image:       facility.Image,
		Boxes:       req.Boxes,
		Amount:      req.Amount,
		Address:     facility.Address,
		Phone:       facility.Phone,
		StorageType: req.StorageType,
		OrderID:     orderID,
		FromDate:    now,
		ToDate:      now.AddDate(0, 0, req.DurationWeeks*7),
		Paid:        false,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to persist booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("order_id", orderID),
		)
		return nil, errs.Wrap(errs.KindStore, op, "failed to persist booking", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("order_id", orderID),
		zap.String("user_id", userID),
		zap.String("storage_id", req.StorageID),
		zap.Int("boxes", req.Boxes),
		zap.Int64("amount", req.Amount),
		zap.Int("duration_weeks", req.DurationWeeks),
	)

	return &response.CreateBookingResponse{
		OrderID:   orderID,
		BookingID: booking.ID,
	}, nil
}

func (s *bookingService) VerifyBooking(ctx context.Context, req *request.VerifyBookingRequest) (*response.VerifyBookingResponse, error) {
	const op = "verify_booking"

	// Validate request
	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		s.log.Warn("Verify booking validation failed", zap.Any("errors", errors))
		return nil, errs.New(errs.KindInvalid, op, "validation failed: "+utils.FormatValidationErrors(errors))
	}

	booking, err := s.repo.Booking.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, errs.Wrap(errs.KindStore, op, "failed to load booking", err)
	}
	if booking == nil {
		// Gateway contract surfaces the missing booking as 402, not 404
		s.log.Warn("Verification for unknown booking",
			zap.String("booking_id", req.BookingID),
			zap.String("order_id", req.OrderID),
		)
		return nil, errs.New(errs.KindNotFound, op, "booking not found").
			WithStatus(http.StatusPaymentRequired)
	}

	if !gateway.VerifySignature(s.secret, req.OrderID, req.PaymentID, req.Signature) {
		s.log.Warn("Payment signature mismatch",
			zap.String("booking_id", req.BookingID),
			zap.String("order_id", req.OrderID),
			zap.String("payment_id", req.PaymentID),
		)
		return nil, errs.New(errs.KindPaymentVerifFailed, op, "payment verification failed")
	}

	// paid flips false -> true here and nowhere else. A repeated valid
	// verification rewrites the same flag; only paid_at moves.
	if err := s.repo.Booking.MarkPaid(ctx, booking.ID, s.timeNow()); err != nil {
		s.log.Error("Failed to mark booking paid",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
		)
		return nil, errs.Wrap(errs.KindStore, op, "failed to update booking", err)
	}

	s.log.Info("Payment verified",
		zap.String("booking_id", booking.ID),
		zap.String("order_id", req.OrderID),
		zap.String("payment_id", req.PaymentID),
	)

	return &response.VerifyBookingResponse{Message: "Payment verified successfully"}, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	const op = "get_user_bookings"

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		return nil, errs.Wrap(errs.KindStore, op, "failed to load bookings", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(errs.KindStore, op, "failed to count bookings", err)
	}

	return s.buildBookingPage(bookings, req, total), nil
}

func (s *bookingService) GetStorageBookings(ctx context.Context, providerUID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	const op = "get_storage_bookings"

	bookings, err := s.repo.Booking.FindByStorageID(ctx, providerUID, req.Limit(), req.Offset())
	if err != nil {
		return nil, errs.Wrap(errs.KindStore, op, "failed to load bookings", err)
	}

	total, err := s.repo.Booking.CountByStorageID(ctx, providerUID)
	if err != nil {
		return nil, errs.Wrap(errs.KindStore, op, "failed to count bookings", err)
	}

	return s.buildBookingPage(bookings, req, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, userID, role, bookingID string) (*response.BookingResponse, error) {
	const op = "get_booking"

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Wrap(errs.KindStore, op, "failed to load booking", err)
	}
	if booking == nil {
		return nil, errs.New(errs.KindNotFound, op, "booking not found")
	}

	// Owner, or the provider whose facility was booked
	if booking.UserID != userID && !(role == string(entity.RoleProvider) && booking.StorageID == userID) {
		s.log.Warn("Unauthorized booking access",
			zap.String("booking_id", bookingID),
			zap.String("user_id", userID),
		)
		return nil, errs.New(errs.KindForbidden, op, "not allowed to view this booking")
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) buildBookingPage(bookings []*entity.Booking, req *request.PaginatedRequest, total int64) *response.PaginatedResponse[response.BookingResponse] {
	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total)
}
