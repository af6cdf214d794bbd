package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	service "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/services"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/utils"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GET /api/cart?userId=
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		userID, ok := utils.RequiredQuery(w, r, "userId")
		if !ok {
			return
		}

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("userId", userID))

		cart, err := h.cartService.GetCart(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// POST /api/cart
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		userID, ok := utils.RequiredIdentifier(w, "userId", req.UserID)
		if !ok {
			return
		}
		productID, ok := utils.RequiredIdentifier(w, "productId", req.ProductID)
		if !ok {
			return
		}
		logger = logger.With(slog.String("userId", userID), slog.String("productId", productID))

		quantity, err := utils.QuantityFromJSON(req.Quantity, 1)
		if err != nil {
			logger.Warn("Invalid quantity")
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), userID, productID, quantity)
		if err != nil {
			logger.Warn("Failed to add item", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.Int("quantity", quantity))
		response.Success(w, http.StatusOK, cart)
	}
}

// PATCH /api/cart/update
func (h *CartHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")
			return
		}

		userID, ok := utils.RequiredIdentifier(w, "userId", req.UserID)
		if !ok {
			return
		}
		productID, ok := utils.RequiredIdentifier(w, "productId", req.ProductID)
		if !ok {
			return
		}
		logger = logger.With(slog.String("userId", userID), slog.String("productId", productID))

		quantity, err := utils.QuantityFromJSON(req.Quantity, 0)
		if err != nil {
			logger.Warn("Invalid quantity")
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), userID, productID, quantity)
		if err != nil {
			logger.Warn("Failed to update quantity", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// DELETE /api/cart/remove
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RemoveItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid remove item input")
			return
		}

		userID, ok := utils.RequiredIdentifier(w, "userId", req.UserID)
		if !ok {
			return
		}
		productID, ok := utils.RequiredIdentifier(w, "productId", req.ProductID)
		if !ok {
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), userID, productID)
		if err != nil {
			logger.Warn("Failed to remove item",
				slog.String("userId", userID),
				slog.String("productId", productID),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// DELETE /api/cart?userId=
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		userID, ok := utils.RequiredQuery(w, r, "userId")
		if !ok {
			return
		}

		cart, err := h.cartService.ClearCart(r.Context(), userID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to clear cart", slog.String("userId", userID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}
