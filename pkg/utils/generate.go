package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUIDString() string {
	return uuid.New().String()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== RECEIPT ====================

// GenerateReceiptID creates the idempotency token sent to the payment
// gateway with every order. Fresh per booking attempt.
// Format: RCPT-YYYYMMDD-UUID
func GenerateReceiptID() string {
	datePart := time.Now().Format("20060102")
	return fmt.Sprintf("RCPT-%s-%s", datePart, uuid.New().String())
}
