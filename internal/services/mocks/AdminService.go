package mocks

import (
	context "context"

	models "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// AdminService is a mock type for the AdminService type
type AdminService struct {
	mock.Mock
}

// GetStats provides a mock function with given fields: ctx
func (_m *AdminService) GetStats(ctx context.Context) (*models.DiscountStats, error) {
	ret := _m.Called(ctx)

	var r0 *models.DiscountStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.DiscountStats)
	}

	return r0, ret.Error(1)
}

// ListOrders provides a mock function with given fields: ctx
func (_m *AdminService) ListOrders(ctx context.Context) (*models.OrderListResponse, error) {
	ret := _m.Called(ctx)

	var r0 *models.OrderListResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.OrderListResponse)
	}

	return r0, ret.Error(1)
}

// GenerateDiscount provides a mock function with given fields: ctx, force
func (_m *AdminService) GenerateDiscount(ctx context.Context, force bool) (*models.Discount, error) {
	ret := _m.Called(ctx, force)

	var r0 *models.Discount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Discount)
	}

	return r0, ret.Error(1)
}

// Reset provides a mock function with given fields: ctx
func (_m *AdminService) Reset(ctx context.Context) error {
	return _m.Called(ctx).Error(0)
}
