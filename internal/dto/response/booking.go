package response

import (
	"time"

	"storage-rental/internal/data/entity"
)

// CreateBookingResponse carries what the client needs to complete payment
// at the gateway.
type CreateBookingResponse struct {
	OrderID   string `json:"order_id"`
	BookingID string `json:"booking_id"`
}

type VerifyBookingResponse struct {
	Message string `json:"message"`
}

type BookingResponse struct {
	ID          string     `json:"id"`
	StorageID   string     `json:"storage_id"`
	UserID      string     `json:"user_id"`
	UserName    string     `json:"user_name"`
	StorageName string     `json:"storage_name"`
	Image       string     `json:"image,omitempty"`
	Boxes       int        `json:"boxes"`
	Amount      int64      `json:"amount"`
	Address     string     `json:"address"`
	Phone       string     `json:"phone"`
	StorageType string     `json:"storage_type"`
	OrderID     string     `json:"order_id"`
	FromDate    time.Time  `json:"from_date"`
	ToDate      time.Time  `json:"to_date"`
	Paid        bool       `json:"paid"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID,
		StorageID:   booking.StorageID,
		UserID:      booking.UserID,
		UserName:    booking.UserName,
		StorageName: booking.StorageName,
		Image:       booking.Image,
		Boxes:       booking.Boxes,
		Amount:      booking.Amount,
		Address:     booking.Address,
		Phone:       booking.Phone,
		StorageType: booking.StorageType,
		OrderID:     booking.OrderID,
		FromDate:    booking.FromDate,
		ToDate:      booking.ToDate,
		Paid:        booking.Paid,
		PaidAt:      booking.PaidAt,
		CreatedAt:   booking.CreatedAt,
	}
}
