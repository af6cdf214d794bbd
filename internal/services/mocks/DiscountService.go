package mocks

import (
	context "context"

	models "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// DiscountService is a mock type for the DiscountService type
type DiscountService struct {
	mock.Mock
}

func discountResult(ret mock.Arguments) (*models.Discount, error) {
	var r0 *models.Discount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Discount)
	}

	return r0, ret.Error(1)
}

// Eligible provides a mock function with given fields: orderCount
func (_m *DiscountService) Eligible(orderCount int) bool {
	return _m.Called(orderCount).Bool(0)
}

// GenerateIfEligible provides a mock function with given fields: ctx, orderCount
func (_m *DiscountService) GenerateIfEligible(ctx context.Context, orderCount int) (*models.Discount, error) {
	return discountResult(_m.Called(ctx, orderCount))
}

// GenerateManually provides a mock function with given fields: ctx
func (_m *DiscountService) GenerateManually(ctx context.Context) (*models.Discount, error) {
	return discountResult(_m.Called(ctx))
}

// Validate provides a mock function with given fields: ctx, code
func (_m *DiscountService) Validate(ctx context.Context, code string) (*models.Discount, error) {
	return discountResult(_m.Called(ctx, code))
}

// MarkUsed provides a mock function with given fields: ctx
func (_m *DiscountService) MarkUsed(ctx context.Context) {
	_m.Called(ctx)
}

// CurrentDiscount provides a mock function with given fields: ctx
func (_m *DiscountService) CurrentDiscount(ctx context.Context) *models.Discount {
	ret := _m.Called(ctx)

	var r0 *models.Discount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Discount)
	}

	return r0
}

// GetStats provides a mock function with given fields: ctx
func (_m *DiscountService) GetStats(ctx context.Context) (*models.DiscountStats, error) {
	ret := _m.Called(ctx)

	var r0 *models.DiscountStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.DiscountStats)
	}

	return r0, ret.Error(1)
}

// NthOrder provides a mock function with given fields:
func (_m *DiscountService) NthOrder() int {
	return _m.Called().Int(0)
}
