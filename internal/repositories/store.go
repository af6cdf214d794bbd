package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// Store owns all in-memory state of the process. Each repository serializes
// access to its own data; the commit lock additionally orders the multi-step
// sections that span the ledger and the discount slot.
type Store struct {
	Products  ProductRepository
	Carts     CartRepository
	Orders    OrderRepository
	Discounts DiscountRepository

	commitMu sync.Mutex
}

func NewStore(products []models.Product) *Store {
	return &Store{
		Products:  NewProductRepo(products),
		Carts:     NewCartRepo(),
		Orders:    NewOrderRepo(),
		Discounts: NewDiscountRepo(),
	}
}

// Atomically runs fn while holding the commit lock. fn must not call
// Atomically again.
func (s *Store) Atomically(fn func() error) error {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	return fn()
}

// Reset drops orders, carts and the discount slot in one step. The catalog is
// left untouched.
func (s *Store) Reset(ctx context.Context) {
	_ = s.Atomically(func() error {
		s.Orders.Clear(ctx)
		s.Carts.Clear(ctx)
		s.Discounts.Clear(ctx)

		return nil
	})
}
