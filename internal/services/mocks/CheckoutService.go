package mocks

import (
	context "context"

	models "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// CheckoutService is a mock type for the CheckoutService type
type CheckoutService struct {
	mock.Mock
}

// ProcessCheckout provides a mock function with given fields: ctx, req
func (_m *CheckoutService) ProcessCheckout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResult, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.CheckoutResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CheckoutResult)
	}

	return r0, ret.Error(1)
}
