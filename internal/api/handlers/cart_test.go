package handlers_test

import (
	"net/http"
	"testing"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleCart() *models.Cart {
	return &models.Cart{
		ID:        "cart-u1",
		UserID:    "u1",
		Items:     []models.CartItem{{ProductID: "prod-1", Quantity: 2}},
		Total:     400,
		ItemCount: 2,
	}
}

func TestGetCart(t *testing.T) {
	t.Run("Success - Cart returned", func(t *testing.T) {
		mockCartService := new(mocks.CartService)
		cartHandler := handlers.NewCartHandler(mockCartService)
		mockCartService.On("GetCart", mock.Anything, "u1").Return(sampleCart(), nil).Once()

		rr := serve(cartHandler.GetCart(), newRequest(http.MethodGet, "/api/cart?userId=u1", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		env := decode[models.Cart](t, rr)
		assert.Equal(t, int64(400), env.Data.Total)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Missing userId", func(t *testing.T) {
		mockCartService := new(mocks.CartService)
		cartHandler := handlers.NewCartHandler(mockCartService)

		rr := serve(cartHandler.GetCart(), newRequest(http.MethodGet, "/api/cart", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeInvalidRequest, decode[any](t, rr).Error.Code)
		mockCartService.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
	})
}

func TestAddItem(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setup          func(m *mocks.CartService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success - Default quantity",
			body: `{"userId":"u1","productId":"prod-1"}`,
			setup: func(m *mocks.CartService) {
				m.On("AddItem", mock.Anything, "u1", "prod-1", 1).Return(sampleCart(), nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Success - Markup stripped from ids",
			body: `{"userId":" <b>u1</b> ","productId":"prod-1","quantity":3}`,
			setup: func(m *mocks.CartService) {
				m.On("AddItem", mock.Anything, "u1", "prod-1", 3).Return(sampleCart(), nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Failure - Non-positive quantity from service",
			body: `{"userId":"u1","productId":"prod-1","quantity":0}`,
			setup: func(m *mocks.CartService) {
				m.On("AddItem", mock.Anything, "u1", "prod-1", 0).
					Return(nil, appErrors.InvalidQuantityError("Quantity must be a positive integer")).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   appErrors.ErrCodeInvalidQuantity,
		},
		{
			name:           "Failure - Fractional quantity",
			body:           `{"userId":"u1","productId":"prod-1","quantity":1.5}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   appErrors.ErrCodeInvalidQuantity,
		},
		{
			name:           "Failure - Missing productId",
			body:           `{"userId":"u1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   appErrors.ErrCodeInvalidRequest,
		},
		{
			name:           "Failure - userId is only markup",
			body:           `{"userId":"<b></b>","productId":"prod-1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   appErrors.ErrCodeInvalidRequest,
		},
		{
			name:           "Failure - productId is only markup",
			body:           `{"userId":"u1","productId":"<i> </i>"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   appErrors.ErrCodeInvalidRequest,
		},
		{
			name:           "Failure - Bad JSON",
			body:           `{"userId":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   appErrors.ErrCodeInvalidRequest,
		},
		{
			name: "Failure - Unknown product",
			body: `{"userId":"u1","productId":"nope"}`,
			setup: func(m *mocks.CartService) {
				m.On("AddItem", mock.Anything, "u1", "nope", 1).
					Return(nil, appErrors.ProductNotFoundError("Product with ID nope not found")).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   appErrors.ErrCodeProductNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockCartService := new(mocks.CartService)
			cartHandler := handlers.NewCartHandler(mockCartService)
			if tc.setup != nil {
				tc.setup(mockCartService)
			}

			rr := serve(cartHandler.AddItem(), newRequest(http.MethodPost, "/api/cart", jsonBody(t, tc.body)))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			env := decode[*models.Cart](t, rr)
			if tc.expectedCode != "" {
				assert.False(t, env.Success)
				assert.Equal(t, tc.expectedCode, env.Error.Code)
			} else {
				assert.True(t, env.Success)
				assert.Equal(t, "cart-u1", env.Data.ID)
			}
			mockCartService.AssertExpectations(t)
		})
	}
}

func TestUpdateItem(t *testing.T) {
	t.Run("Success - Quantity set", func(t *testing.T) {
		mockCartService := new(mocks.CartService)
		cartHandler := handlers.NewCartHandler(mockCartService)
		mockCartService.On("UpdateQuantity", mock.Anything, "u1", "prod-1", 5).Return(sampleCart(), nil).Once()

		body := jsonBody(t, `{"userId":"u1","productId":"prod-1","quantity":5}`)
		rr := serve(cartHandler.UpdateItem(), newRequest(http.MethodPatch, "/api/cart/update", body))

		assert.Equal(t, http.StatusOK, rr.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Quantity required", func(t *testing.T) {
		mockCartService := new(mocks.CartService)
		cartHandler := handlers.NewCartHandler(mockCartService)

		body := jsonBody(t, `{"userId":"u1","productId":"prod-1"}`)
		rr := serve(cartHandler.UpdateItem(), newRequest(http.MethodPatch, "/api/cart/update", body))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decode[any](t, rr)
		assert.Equal(t, "Validation failed", env.Error.Message)
		assert.Contains(t, env.Error.Details, "Field Quantity is required")
	})

	t.Run("Failure - Item not in cart", func(t *testing.T) {
		mockCartService := new(mocks.CartService)
		cartHandler := handlers.NewCartHandler(mockCartService)
		mockCartService.On("UpdateQuantity", mock.Anything, "u1", "prod-9", 1).
			Return(nil, appErrors.CartItemNotFoundError("Item with product ID prod-9 not found in cart")).Once()

		body := jsonBody(t, `{"userId":"u1","productId":"prod-9","quantity":1}`)
		rr := serve(cartHandler.UpdateItem(), newRequest(http.MethodPatch, "/api/cart/update", body))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, appErrors.ErrCodeCartItemNotFound, decode[any](t, rr).Error.Code)
	})

	t.Run("Failure - userId is only markup", func(t *testing.T) {
		mockCartService := new(mocks.CartService)
		cartHandler := handlers.NewCartHandler(mockCartService)

		body := jsonBody(t, `{"userId":"<b></b>","productId":"prod-1","quantity":1}`)
		rr := serve(cartHandler.UpdateItem(), newRequest(http.MethodPatch, "/api/cart/update", body))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid field 'userId': is required", decode[any](t, rr).Error.Message)
		mockCartService.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("Success - Item removed", func(t *testing.T) {
		mockCartService := new(mocks.CartService)
		cartHandler := handlers.NewCartHandler(mockCartService)
		empty := &models.Cart{ID: "cart-u1", UserID: "u1", Items: []models.CartItem{}}
		mockCartService.On("RemoveItem", mock.Anything, "u1", "prod-1").Return(empty, nil).Once()

		body := jsonBody(t, models.RemoveItemRequest{UserID: "u1", ProductID: "prod-1"})
		rr := serve(cartHandler.RemoveItem(), newRequest(http.MethodDelete, "/api/cart/remove", body))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, decode[models.Cart](t, rr).Data.Items)
	})

	t.Run("Failure - No cart", func(t *testing.T) {
		mockCartService := new(mocks.CartService)
		cartHandler := handlers.NewCartHandler(mockCartService)
		mockCartService.On("RemoveItem", mock.Anything, "ghost", "prod-1").
			Return(nil, appErrors.CartNotFoundError("Cart not found")).Once()

		body := jsonBody(t, models.RemoveItemRequest{UserID: "ghost", ProductID: "prod-1"})
		rr := serve(cartHandler.RemoveItem(), newRequest(http.MethodDelete, "/api/cart/remove", body))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, appErrors.ErrCodeCartNotFound, decode[any](t, rr).Error.Code)
	})

	t.Run("Failure - productId is only markup", func(t *testing.T) {
		mockCartService := new(mocks.CartService)
		cartHandler := handlers.NewCartHandler(mockCartService)

		body := jsonBody(t, models.RemoveItemRequest{UserID: "u1", ProductID: "<script></script>"})
		rr := serve(cartHandler.RemoveItem(), newRequest(http.MethodDelete, "/api/cart/remove", body))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeInvalidRequest, decode[any](t, rr).Error.Code)
		mockCartService.AssertNotCalled(t, "RemoveItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestClearCart(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)
	mockCartService.On("ClearCart", mock.Anything, "u1").
		Return(&models.Cart{ID: "cart-u1", UserID: "u1", Items: []models.CartItem{}}, nil).Once()

	rr := serve(cartHandler.ClearCart(), newRequest(http.MethodDelete, "/api/cart?userId=u1", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	env := decode[models.Cart](t, rr)
	assert.Zero(t, env.Data.Total)
	mockCartService.AssertExpectations(t)
}
