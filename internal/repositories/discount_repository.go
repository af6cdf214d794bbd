package repository

import (
	"context"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
)

// DiscountRepository holds the single process-wide discount slot.
type DiscountRepository interface {
	// Current returns a copy of the slot, or nil when it is empty.
	Current(ctx context.Context) *models.Discount
	Replace(ctx context.Context, discount *models.Discount)
	// MarkUsed flags the slot as used and reports whether it changed.
	MarkUsed(ctx context.Context, usedAt time.Time) bool
	Clear(ctx context.Context)
}

type discountRepository struct {
	mu   sync.RWMutex
	slot *models.Discount
}

func NewDiscountRepo() DiscountRepository {
	return &discountRepository{}
}

func (r *discountRepository) Current(_ context.Context) *models.Discount {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.slot.Clone()
}

func (r *discountRepository) Replace(_ context.Context, discount *models.Discount) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slot = discount.Clone()
}

func (r *discountRepository) MarkUsed(_ context.Context, usedAt time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.slot == nil || r.slot.IsUsed {
		return false
	}

	r.slot.IsUsed = true
	r.slot.UsedAt = &usedAt

	return true
}

func (r *discountRepository) Clear(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slot = nil
}
