package mocks

import (
	context "context"

	models "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// CartService is a mock type for the CartService type
type CartService struct {
	mock.Mock
}

func cartResult(ret mock.Arguments) (*models.Cart, error) {
	var r0 *models.Cart
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Cart)
	}

	return r0, ret.Error(1)
}

// GetCart provides a mock function with given fields: ctx, userID
func (_m *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	return cartResult(_m.Called(ctx, userID))
}

// GetExistingCart provides a mock function with given fields: ctx, userID
func (_m *CartService) GetExistingCart(ctx context.Context, userID string) (*models.Cart, error) {
	return cartResult(_m.Called(ctx, userID))
}

// AddItem provides a mock function with given fields: ctx, userID, productID, quantity
func (_m *CartService) AddItem(ctx context.Context, userID string, productID string, quantity int) (*models.Cart, error) {
	return cartResult(_m.Called(ctx, userID, productID, quantity))
}

// RemoveItem provides a mock function with given fields: ctx, userID, productID
func (_m *CartService) RemoveItem(ctx context.Context, userID string, productID string) (*models.Cart, error) {
	return cartResult(_m.Called(ctx, userID, productID))
}

// UpdateQuantity provides a mock function with given fields: ctx, userID, productID, quantity
func (_m *CartService) UpdateQuantity(ctx context.Context, userID string, productID string, quantity int) (*models.Cart, error) {
	return cartResult(_m.Called(ctx, userID, productID, quantity))
}

// ClearCart provides a mock function with given fields: ctx, userID
func (_m *CartService) ClearCart(ctx context.Context, userID string) (*models.Cart, error) {
	return cartResult(_m.Called(ctx, userID))
}

// ConsumeItems provides a mock function with given fields: ctx, userID, items
func (_m *CartService) ConsumeItems(ctx context.Context, userID string, items []models.CartItem) (*models.Cart, error) {
	return cartResult(_m.Called(ctx, userID, items))
}
