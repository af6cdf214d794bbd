package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/utils"
)

const (
	DefaultPaymentDelay       = 100 * time.Millisecond
	DefaultPaymentSuccessRate = 0.95
)

// PaymentProcessor charges an amount. A declined payment is reported through
// PaymentResult.Success, not through the error.
type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, amount int64, method models.PaymentMethod) (*models.PaymentResult, error)
}

type simulatedPaymentProcessor struct {
	delay       time.Duration
	successRate float64
	roll        func() float64
}

// NewSimulatedPaymentProcessor approves a payment with probability
// successRate after a fixed delay.
func NewSimulatedPaymentProcessor(delay time.Duration, successRate float64) PaymentProcessor {
	return &simulatedPaymentProcessor{
		delay:       delay,
		successRate: successRate,
		roll:        rand.Float64,
	}
}

// ProcessPayment does not observe ctx cancellation: once a charge is started
// it runs to completion.
func (p *simulatedPaymentProcessor) ProcessPayment(ctx context.Context, amount int64, method models.PaymentMethod) (*models.PaymentResult, error) {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}

	logger := middleware.LoggerFromContext(ctx).With(
		slog.Int64("amount", amount),
		slog.String("paymentMethod", string(method.Type)))

	if p.roll() >= p.successRate {
		logger.Warn("Simulated payment declined")
		return &models.PaymentResult{Success: false}, nil
	}

	transactionID := fmt.Sprintf("txn-%d-%s", time.Now().UnixMilli(), utils.RandomString(utils.LowerBase36, 9))
	logger.Debug("Simulated payment approved", slog.String("transactionId", transactionID))

	return &models.PaymentResult{Success: true, TransactionID: transactionID}, nil
}
