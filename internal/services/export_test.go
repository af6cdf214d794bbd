package service

import "time"

// SetCodeGenerator replaces the random code source of a DiscountService.
func SetCodeGenerator(s DiscountService, next func() string) {
	s.(*discountService).newCode = next
}

// NewSimulatedPaymentProcessorWithRoll fixes the random draw of the simulated
// processor.
func NewSimulatedPaymentProcessorWithRoll(delay time.Duration, successRate float64, roll func() float64) PaymentProcessor {
	return &simulatedPaymentProcessor{delay: delay, successRate: successRate, roll: roll}
}

var (
	PercentageOf = percentageOf
	NewOrderID   = newOrderID
)
