package handlers

import (
	"net/http"

	service "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/services"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/utils/response"
)

type DiscountHandler struct {
	discountService service.DiscountService
}

func NewDiscountHandler(discountService service.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountService: discountService}
}

// GET /api/discount. Data is null when there is no redeemable code.
func (h *DiscountHandler) GetCurrentDiscount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.discountService.CurrentDiscount(r.Context()))
	}
}
