package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign computes the hex HMAC-SHA256 of "orderID|paymentID" with the gateway
// key secret. The delimiter and field order are fixed by the gateway's
// signing scheme; changing either breaks interoperability.
func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether signature matches the expected digest.
// Comparison is constant time; the secret never leaves this package.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	expected := Sign(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
