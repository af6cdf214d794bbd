package mocks

import (
	context "context"

	models "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// PaymentProcessor is a mock type for the PaymentProcessor type
type PaymentProcessor struct {
	mock.Mock
}

// ProcessPayment provides a mock function with given fields: ctx, amount, method
func (_m *PaymentProcessor) ProcessPayment(ctx context.Context, amount int64, method models.PaymentMethod) (*models.PaymentResult, error) {
	ret := _m.Called(ctx, amount, method)

	var r0 *models.PaymentResult
	if rf, ok := ret.Get(0).(func(context.Context, int64, models.PaymentMethod) *models.PaymentResult); ok {
		r0 = rf(ctx, amount, method)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.PaymentResult)
	}

	return r0, ret.Error(1)
}

// NewPaymentProcessor creates a new instance of PaymentProcessor and registers cleanup assertions.
func NewPaymentProcessor(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentProcessor {
	m := &PaymentProcessor{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
