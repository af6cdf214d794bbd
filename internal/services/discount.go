package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/metrics"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/repositories"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/utils"
)

const DefaultNthOrder = 3

type DiscountService interface {
	// Eligible reports whether orderCount is a positive multiple of N.
	Eligible(orderCount int) bool
	// GenerateIfEligible replaces the slot with a fresh code when orderCount is
	// eligible and otherwise returns the current slot untouched.
	GenerateIfEligible(ctx context.Context, orderCount int) (*models.Discount, error)
	// GenerateManually replaces the slot regardless of the order count.
	GenerateManually(ctx context.Context) (*models.Discount, error)
	Validate(ctx context.Context, code string) (*models.Discount, error)
	MarkUsed(ctx context.Context)
	// CurrentDiscount returns the slot only while it can still be redeemed.
	CurrentDiscount(ctx context.Context) *models.Discount
	// GetStats reads the ledger and the slot separately; hold the commit lock
	// for a consistent snapshot.
	GetStats(ctx context.Context) (*models.DiscountStats, error)
	NthOrder() int
}

type discountService struct {
	repo   repository.DiscountRepository
	orders repository.OrderRepository
	n      int
	// newCode is swappable in tests.
	newCode func() string
}

func NewDiscountService(repo repository.DiscountRepository, orders repository.OrderRepository, nthOrder int) DiscountService {
	if nthOrder < 1 {
		nthOrder = DefaultNthOrder
	}

	return &discountService{
		repo:   repo,
		orders: orders,
		n:      nthOrder,
		newCode: func() string {
			return utils.RandomString(utils.UpperAlphanumeric, models.DiscountCodeLength)
		},
	}
}

func (s *discountService) NthOrder() int {
	return s.n
}

func (s *discountService) Eligible(orderCount int) bool {
	return orderCount > 0 && orderCount%s.n == 0
}

func (s *discountService) GenerateIfEligible(ctx context.Context, orderCount int) (discount *models.Discount, err error) {
	defer recoverInternal("Failed to generate discount code", &discount, &err)

	if !s.Eligible(orderCount) {
		return s.repo.Current(ctx), nil
	}

	discount = s.generate(ctx, metrics.DiscountSourceThreshold)

	middleware.LoggerFromContext(ctx).Info("Discount code generated",
		slog.String("source", metrics.DiscountSourceThreshold),
		slog.Int("orderCount", orderCount))

	return discount, nil
}

func (s *discountService) GenerateManually(ctx context.Context) (discount *models.Discount, err error) {
	defer recoverInternal("Failed to generate discount code", &discount, &err)

	discount = s.generate(ctx, metrics.DiscountSourceManual)

	middleware.LoggerFromContext(ctx).Info("Discount code generated",
		slog.String("source", metrics.DiscountSourceManual))

	return discount, nil
}

func (s *discountService) generate(ctx context.Context, source string) *models.Discount {
	code := s.newCode()

	// A fresh code must never equal the one it replaces.
	if current := s.repo.Current(ctx); current != nil {
		for code == current.Code {
			code = s.newCode()
		}
	}

	discount := &models.Discount{
		Code:       code,
		Percentage: models.DiscountPercentage,
		IsUsed:     false,
		CreatedAt:  time.Now(),
	}

	s.repo.Replace(ctx, discount)
	metrics.RecordDiscountGenerated(source)

	return discount
}

// Validate is a pure read; the slot is only changed by MarkUsed.
func (s *discountService) Validate(ctx context.Context, code string) (discount *models.Discount, err error) {
	defer recoverInternal("Failed to validate discount code", &discount, &err)

	current := s.repo.Current(ctx)
	if current == nil {
		return nil, errors.DiscountNotFoundError("No discount code available")
	}

	if current.Code != code {
		return nil, errors.InvalidDiscountCodeError("Invalid discount code")
	}

	if current.IsUsed {
		return nil, errors.DiscountAlreadyUsedError("Discount code has already been used")
	}

	return current, nil
}

func (s *discountService) MarkUsed(ctx context.Context) {
	if s.repo.MarkUsed(ctx, time.Now()) {
		metrics.RecordDiscountRedeemed()
		middleware.LoggerFromContext(ctx).Info("Discount code redeemed")
	}
}

func (s *discountService) CurrentDiscount(ctx context.Context) *models.Discount {
	current := s.repo.Current(ctx)
	if current == nil || current.IsUsed {
		return nil
	}

	return current
}

func (s *discountService) GetStats(ctx context.Context) (stats *models.DiscountStats, err error) {
	defer recoverInternal("Failed to get discount stats", &stats, &err)

	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, errors.InternalError("Failed to get discount stats").WithError(err)
	}

	orderCount := len(orders)

	withDiscount := 0
	for _, order := range orders {
		if order.DiscountCode != "" {
			withDiscount++
		}
	}

	stats = &models.DiscountStats{
		CurrentDiscount:    s.repo.Current(ctx),
		OrderCount:         orderCount,
		N:                  s.n,
		TotalDiscountsUsed: withDiscount,
		TotalOrders:        orderCount,
		OrdersWithDiscount: withDiscount,
	}

	if remainder := orderCount % s.n; remainder != 0 {
		next := s.n - remainder
		stats.NextDiscountAt = &next
	}

	return stats, nil
}
