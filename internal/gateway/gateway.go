package gateway

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

// PaymentGateway issues payment orders at the external gateway. Amount is
// always in minor currency units. The receipt is a fresh idempotency token
// per booking attempt.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error)
}

type razorpayGateway struct {
	client *razorpay.Client
	log    *zap.Logger
}

// NewRazorpayGateway builds the gateway client from the configured key pair.
func NewRazorpayGateway(keyID, keySecret string, log *zap.Logger) PaymentGateway {
	return &razorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		log:    log.With(zap.String("gateway", "razorpay")),
	}
}

// CreateOrder registers an order for amount at the gateway and returns the
// gateway-issued order ID verbatim. The SDK does not take a context; ctx is
// accepted for interface symmetry with the repositories.
func (g *razorpayGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		g.log.Error("Failed to create payment order",
			zap.Error(err),
			zap.Int64("amount", amount),
			zap.String("currency", currency),
			zap.String("receipt", receipt),
		)
		return "", fmt.Errorf("create payment order: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		g.log.Error("Gateway returned order without ID", zap.Any("body", body))
		return "", fmt.Errorf("create payment order: missing order id in gateway response")
	}

	g.log.Info("Payment order created",
		zap.String("order_id", orderID),
		zap.Int64("amount", amount),
		zap.String("currency", currency),
	)

	return orderID, nil
}
