package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"storage-rental/internal/data/entity"
	"storage-rental/internal/data/repository"
	"storage-rental/internal/dto/request"
	"storage-rental/internal/gateway"
	"storage-rental/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testFacility() *entity.StorageFacility {
	return &entity.StorageFacility{
		ID:           "provider-1",
		Name:         "Central Self Storage",
		Image:        "https://img.example/central.jpg",
		Address:      "12 Dock Road",
		Phone:        "+91-555-0101",
		City:         "Pune",
		StorageType:  "climate_controlled",
		PricePerWeek: 1250,
		TotalBoxes:   200,
	}
}

func newBookingFixture(t *testing.T) (*bookingService, *fakeBookingRepo, *fakeStorageRepo, *fakeGateway) {
	t.Helper()

	bookingRepo := newFakeBookingRepo()
	storageRepo := newFakeStorageRepo()
	storageRepo.storages["provider-1"] = testFacility()

	gw := &fakeGateway{orderID: "order_abc"}

	repo := &repository.Repository{
		Booking: bookingRepo,
		Storage: storageRepo,
	}

	svc := NewBookingService(repo, gw, testConfig(), zap.NewNop()).(*bookingService)
	return svc, bookingRepo, storageRepo, gw
}

func createRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		StorageID:     "provider-1",
		Boxes:         3,
		Amount:        5000,
		StorageType:   "climate_controlled",
		DurationWeeks: 4,
		UserName:      "Asha",
	}
}

func TestCreateBooking(t *testing.T) {
	svc, bookingRepo, _, gw := newBookingFixture(t)

	fixedTime := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.timeNow = func() time.Time { return fixedTime }

	resp, err := svc.CreateBooking(context.Background(), "user-1", createRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "order_abc", resp.OrderID)
	assert.NotEmpty(t, resp.BookingID)

	// Gateway got amount in minor units, platform currency, fresh receipt
	assert.Equal(t, 1, gw.calls)
	assert.Equal(t, int64(5000), gw.lastAmount)
	assert.Equal(t, "INR", gw.lastCurrency)
	assert.NotEmpty(t, gw.lastReceipt)

	booking := bookingRepo.bookings[resp.BookingID]
	require.NotNil(t, booking)

	// Never paid at creation
	assert.False(t, booking.Paid)
	assert.Nil(t, booking.PaidAt)

	// 4 weeks -> exactly 28 days
	assert.Equal(t, fixedTime, booking.FromDate)
	assert.Equal(t, 28*24*time.Hour, booking.ToDate.Sub(booking.FromDate))

	// Facility display fields are snapshotted onto the booking
	assert.Equal(t, "Central Self Storage", booking.StorageName)
	assert.Equal(t, "https://img.example/central.jpg", booking.Image)
	assert.Equal(t, "12 Dock Road", booking.Address)
	assert.Equal(t, "+91-555-0101", booking.Phone)

	assert.Equal(t, "user-1", booking.UserID)
	assert.Equal(t, "Asha", booking.UserName)
	assert.Equal(t, "order_abc", booking.OrderID)
	assert.Equal(t, int64(5000), booking.Amount)
	assert.Equal(t, 3, booking.Boxes)
}

func TestCreateBooking_DateMath(t *testing.T) {
	tests := []struct {
		weeks    int
		wantDays int
	}{
		{1, 7},
		{2, 14},
		{4, 28},
		{12, 84},
		{52, 364},
	}

	for _, tt := range tests {
		svc, bookingRepo, _, _ := newBookingFixture(t)

		fixedTime := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		svc.timeNow = func() time.Time { return fixedTime }

		req := createRequest()
		req.DurationWeeks = tt.weeks

		resp, err := svc.CreateBooking(context.Background(), "user-1", req)
		require.NoError(t, err)

		booking := bookingRepo.bookings[resp.BookingID]
		assert.Equal(t, time.Duration(tt.wantDays)*24*time.Hour, booking.ToDate.Sub(booking.FromDate),
			"duration %d weeks", tt.weeks)
		assert.False(t, booking.Paid)
	}
}

func TestCreateBooking_FacilityNotFound(t *testing.T) {
	svc, bookingRepo, _, gw := newBookingFixture(t)

	req := createRequest()
	req.StorageID = "no-such-provider"

	_, err := svc.CreateBooking(context.Background(), "user-1", req)
	require.Error(t, err)

	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	assert.Equal(t, 0, gw.calls, "no order without a facility")
	assert.Equal(t, 0, bookingRepo.createCalls, "no booking without a facility")
}

func TestCreateBooking_GatewayFailure(t *testing.T) {
	svc, bookingRepo, _, gw := newBookingFixture(t)
	gw.err = errors.New("gateway unreachable")

	_, err := svc.CreateBooking(context.Background(), "user-1", createRequest())
	require.Error(t, err)

	assert.Equal(t, errs.KindGateway, errs.KindOf(err))
	assert.Equal(t, 0, bookingRepo.createCalls, "gateway failure must leave no booking behind")
	assert.Empty(t, bookingRepo.bookings)
}

func TestCreateBooking_StoreFailure(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingFixture(t)
	bookingRepo.createErr = errors.New("write concern failed")

	_, err := svc.CreateBooking(context.Background(), "user-1", createRequest())
	require.Error(t, err)

	assert.Equal(t, errs.KindStore, errs.KindOf(err))
}

func TestCreateBooking_ValidationFailure(t *testing.T) {
	svc, _, _, gw := newBookingFixture(t)

	req := createRequest()
	req.Amount = 0

	_, err := svc.CreateBooking(context.Background(), "user-1", req)
	require.Error(t, err)

	assert.Equal(t, errs.KindInvalid, errs.KindOf(err))
	assert.Equal(t, 0, gw.calls)
}

func TestCreateBooking_FreshReceiptPerAttempt(t *testing.T) {
	svc, _, _, gw := newBookingFixture(t)

	_, err := svc.CreateBooking(context.Background(), "user-1", createRequest())
	require.NoError(t, err)
	_, err = svc.CreateBooking(context.Background(), "user-1", createRequest())
	require.NoError(t, err)

	require.Len(t, gw.receipts, 2)
	assert.NotEqual(t, gw.receipts[0], gw.receipts[1])
}

// ---------------- verification ----------------

func seedUnpaidBooking(bookingRepo *fakeBookingRepo) *entity.Booking {
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        "booking-1",
			CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		StorageID: "provider-1",
		UserID:    "user-1",
		OrderID:   "order_abc",
		Amount:    5000,
		Paid:      false,
	}
	bookingRepo.bookings[booking.ID] = booking
	return booking
}

func verifyRequest(signature string) *request.VerifyBookingRequest {
	return &request.VerifyBookingRequest{
		PaymentID: "pay_123",
		OrderID:   "order_abc",
		Signature: signature,
		BookingID: "booking-1",
	}
}

func TestVerifyBooking_ValidSignature(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingFixture(t)
	seedUnpaidBooking(bookingRepo)

	fixedTime := time.Date(2025, 3, 11, 15, 0, 0, 0, time.UTC)
	svc.timeNow = func() time.Time { return fixedTime }

	valid := gateway.Sign("s3cr3t", "order_abc", "pay_123")

	resp, err := svc.VerifyBooking(context.Background(), verifyRequest(valid))
	require.NoError(t, err)
	assert.Equal(t, "Payment verified successfully", resp.Message)

	booking := bookingRepo.bookings["booking-1"]
	assert.True(t, booking.Paid)
	require.NotNil(t, booking.PaidAt)
	assert.Equal(t, fixedTime, *booking.PaidAt)
}

func TestVerifyBooking_InvalidSignature(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingFixture(t)
	seedUnpaidBooking(bookingRepo)

	invalid := []string{
		"",
		"deadbeef",
		gateway.Sign("wrong-secret", "order_abc", "pay_123"),
		gateway.Sign("s3cr3t", "order_abc", "pay_999"),
		gateway.Sign("s3cr3t", "pay_123", "order_abc"), // swapped fields
	}

	for _, signature := range invalid {
		_, err := svc.VerifyBooking(context.Background(), verifyRequest(signature))
		require.Error(t, err, "signature %q must fail", signature)

		assert.Equal(t, errs.KindPaymentVerifFailed, errs.KindOf(err))
		assert.Equal(t, http.StatusPaymentRequired, errs.StatusOf(err))
	}

	booking := bookingRepo.bookings["booking-1"]
	assert.False(t, booking.Paid, "failed verification must not flip paid")
	assert.Equal(t, 0, bookingRepo.markCalls)
}

func TestVerifyBooking_BookingNotFound(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingFixture(t)

	// Valid signature for the claimed IDs; missing booking still wins
	valid := gateway.Sign("s3cr3t", "order_abc", "pay_123")

	_, err := svc.VerifyBooking(context.Background(), verifyRequest(valid))
	require.Error(t, err)

	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	assert.Equal(t, http.StatusPaymentRequired, errs.StatusOf(err))
	assert.Equal(t, 0, bookingRepo.markCalls)
}

func TestVerifyBooking_Idempotent(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingFixture(t)
	seedUnpaidBooking(bookingRepo)

	valid := gateway.Sign("s3cr3t", "order_abc", "pay_123")

	_, err := svc.VerifyBooking(context.Background(), verifyRequest(valid))
	require.NoError(t, err)

	// Second valid verification succeeds and leaves paid == true
	_, err = svc.VerifyBooking(context.Background(), verifyRequest(valid))
	require.NoError(t, err)

	booking := bookingRepo.bookings["booking-1"]
	assert.True(t, booking.Paid)
	assert.Equal(t, 2, bookingRepo.markCalls)
}

func TestVerifyBooking_StoreFailureOnFlip(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingFixture(t)
	seedUnpaidBooking(bookingRepo)
	bookingRepo.markPaidErr = errors.New("write concern failed")

	valid := gateway.Sign("s3cr3t", "order_abc", "pay_123")

	_, err := svc.VerifyBooking(context.Background(), verifyRequest(valid))
	require.Error(t, err)
	assert.Equal(t, errs.KindStore, errs.KindOf(err))
}

// ---------------- reads ----------------

func TestGetBookingByID_Authorization(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingFixture(t)
	seedUnpaidBooking(bookingRepo)

	// Owner sees it
	resp, err := svc.GetBookingByID(context.Background(), "user-1", "user", "booking-1")
	require.NoError(t, err)
	assert.Equal(t, "booking-1", resp.ID)

	// Provider of the booked facility sees it
	resp, err = svc.GetBookingByID(context.Background(), "provider-1", "provider", "booking-1")
	require.NoError(t, err)
	assert.Equal(t, "booking-1", resp.ID)

	// Anyone else does not
	_, err = svc.GetBookingByID(context.Background(), "user-2", "user", "booking-1")
	require.Error(t, err)
	assert.Equal(t, errs.KindForbidden, errs.KindOf(err))
}

func TestGetUserBookings(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingFixture(t)
	seedUnpaidBooking(bookingRepo)

	page, err := svc.GetUserBookings(context.Background(), "user-1", &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	assert.Equal(t, int64(1), page.Pagination.Total)
	assert.Equal(t, "booking-1", page.Data[0].ID)
}
