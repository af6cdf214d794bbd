package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	service "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/services"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/utils"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// POST /api/checkout
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		userID, ok := utils.RequiredIdentifier(w, "userId", req.UserID)
		if !ok {
			return
		}
		req.UserID = userID

		code := utils.SanitizeIdentifier(req.DiscountCode)
		if code == "" && req.DiscountCode != "" {
			logger.Warn("Discount code empty after sanitizing")
			response.Error(w, appErrors.InvalidDiscountCodeError("Invalid discount code"))
			return
		}
		req.DiscountCode = code
		logger = logger.With(slog.String("userId", req.UserID))

		result, err := h.checkoutService.ProcessCheckout(r.Context(), &req)
		if err != nil {
			logger.Warn("Checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed", slog.String("orderId", result.OrderID))
		response.Success(w, http.StatusCreated, result)
	}
}
