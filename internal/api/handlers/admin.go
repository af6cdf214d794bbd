package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	service "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/services"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/utils/response"
)

const (
	resetMessage       = "Store reset successfully. All orders, carts, and discount codes have been cleared."
	notEligibleMessage = "Discount code generation condition not satisfied. Next discount will be available on the next Nth order."
)

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// GET /api/admin/stats
func (h *AdminHandler) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		stats, err := h.adminService.GetStats(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to get stats", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, stats)
	}
}

// GET /api/admin/orders
func (h *AdminHandler) Orders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		orders, err := h.adminService.ListOrders(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

// POST /api/admin/reset
func (h *AdminHandler) Reset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.adminService.Reset(r.Context()); err != nil {
			logger.Error("Failed to reset store", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Store reset by operator")
		response.Success(w, http.StatusOK, models.ResetResponse{Message: resetMessage})
	}
}

// POST /api/admin/discount/generate[?force=true]
func (h *AdminHandler) GenerateDiscount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		force := false
		if raw := r.URL.Query().Get("force"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				response.Error(w, errors.AddValidationError("force", "must be a boolean"))
				return
			}
			force = parsed
		}

		discount, err := h.adminService.GenerateDiscount(r.Context(), force)
		if err != nil {
			logger.Error("Failed to generate discount", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if discount == nil {
			response.SuccessWithMessage(w, http.StatusOK, discount, notEligibleMessage)
			return
		}

		logger.Info("Discount generated by operator", slog.Bool("force", force))
		response.Success(w, http.StatusCreated, discount)
	}
}
