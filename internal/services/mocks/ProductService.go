package mocks

import (
	context "context"

	models "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// ProductService is a mock type for the ProductService type
type ProductService struct {
	mock.Mock
}

// GetProductByID provides a mock function with given fields: ctx, id
func (_m *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Product)
	}

	return r0, ret.Error(1)
}

// ListProducts provides a mock function with given fields: ctx
func (_m *ProductService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	ret := _m.Called(ctx)

	var r0 []*models.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Product)
	}

	return r0, ret.Error(1)
}
