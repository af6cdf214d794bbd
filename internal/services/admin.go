package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/repositories"
)

type AdminService interface {
	GetStats(ctx context.Context) (*models.DiscountStats, error)
	ListOrders(ctx context.Context) (*models.OrderListResponse, error)
	// GenerateDiscount creates a code when the current order count is
	// eligible, or unconditionally when force is set. A nil discount means
	// nothing was generated.
	GenerateDiscount(ctx context.Context, force bool) (*models.Discount, error)
	// Reset clears orders, carts and the discount slot but keeps the catalog.
	Reset(ctx context.Context) error
}

type adminService struct {
	store     *repository.Store
	discounts DiscountService
}

func NewAdminService(store *repository.Store, discounts DiscountService) AdminService {
	return &adminService{store: store, discounts: discounts}
}

// GetStats reads the ledger and the slot under the commit lock so the order
// count and the current code come from the same moment.
func (s *adminService) GetStats(ctx context.Context) (stats *models.DiscountStats, err error) {
	defer recoverInternal("Failed to get discount stats", &stats, &err)

	err = s.store.Atomically(func() error {
		stats, err = s.discounts.GetStats(ctx)
		return err
	})
	if err != nil {
		return nil, asAppError(err, "Failed to get discount stats")
	}

	return stats, nil
}

func (s *adminService) ListOrders(ctx context.Context) (resp *models.OrderListResponse, err error) {
	defer recoverInternal("Failed to get orders", &resp, &err)

	orders, err := s.store.Orders.ListOrders(ctx)
	if err != nil {
		return nil, errors.InternalError("Failed to get orders").WithError(err)
	}

	resp = &models.OrderListResponse{
		Orders: make([]models.Order, 0, len(orders)),
		Statistics: models.OrderStatistics{
			TotalOrders:       len(orders),
			DiscountCodesUsed: []string{},
		},
	}

	seen := make(map[string]struct{})
	for _, order := range orders {
		resp.Orders = append(resp.Orders, *order)

		for _, item := range order.Items {
			resp.Statistics.TotalItemsPurchased += item.Quantity
		}
		resp.Statistics.TotalPurchaseAmount += order.Total

		if order.DiscountCode == "" {
			continue
		}
		if _, ok := seen[order.DiscountCode]; !ok {
			seen[order.DiscountCode] = struct{}{}
			resp.Statistics.DiscountCodesUsed = append(resp.Statistics.DiscountCodesUsed, order.DiscountCode)
		}
		resp.Statistics.TotalDiscountAmount += order.DiscountAmount
	}

	return resp, nil
}

func (s *adminService) GenerateDiscount(ctx context.Context, force bool) (discount *models.Discount, err error) {
	defer recoverInternal("Failed to generate discount code", &discount, &err)

	err = s.store.Atomically(func() error {
		if force {
			discount, err = s.discounts.GenerateManually(ctx)
			return err
		}

		count := s.store.Orders.Size(ctx)
		if !s.discounts.Eligible(count) {
			return nil
		}

		discount, err = s.discounts.GenerateIfEligible(ctx, count)
		return err
	})
	if err != nil {
		return nil, asAppError(err, "Failed to generate discount code")
	}

	return discount, nil
}

func (s *adminService) Reset(ctx context.Context) (err error) {
	var done bool
	defer recoverInternal("Failed to reset store", &done, &err)

	s.store.Reset(ctx)
	middleware.LoggerFromContext(ctx).Info("Store reset", slog.Int("products", s.store.Products.Count(ctx)))

	return nil
}
