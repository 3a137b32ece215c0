package request

type CreateBookingRequest struct {
	StorageID     string `json:"storage_id" validate:"required"`
	Boxes         int    `json:"boxes" validate:"required,min=1"`
	Amount        int64  `json:"amount" validate:"required,gt=0"` // minor currency units
	StorageType   string `json:"storage_type" validate:"required"`
	DurationWeeks int    `json:"duration_weeks" validate:"required,min=1"`
	UserName      string `json:"user_name" validate:"required,min=2,max=100"`
}

type VerifyBookingRequest struct {
	PaymentID string `json:"payment_id" validate:"required"`
	OrderID   string `json:"order_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
	BookingID string `json:"booking_id" validate:"required"`
}
