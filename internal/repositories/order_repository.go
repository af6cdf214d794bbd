package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
)

// OrderRepository is the append-only order ledger.
type OrderRepository interface {
	StoreOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	// ListOrders returns orders in the sequence they were stored.
	ListOrders(ctx context.Context) ([]*models.Order, error)
	Size(ctx context.Context) int
	Clear(ctx context.Context)
}

type orderRepository struct {
	mu     sync.RWMutex
	orders map[string]*models.Order
	ids    []string
}

func NewOrderRepo() OrderRepository {
	return &orderRepository{orders: make(map[string]*models.Order)}
}

func (r *orderRepository) StoreOrder(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.ID]; exists {
		return fmt.Errorf("order %s: %w", order.ID, ErrAlreadyExists)
	}

	r.orders[order.ID] = order.Clone()
	r.ids = append(r.ids, order.ID)

	return nil
}

func (r *orderRepository) GetOrderByID(_ context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}

	return order.Clone(), nil
}

func (r *orderRepository) ListOrders(_ context.Context) ([]*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*models.Order, 0, len(r.ids))
	for _, id := range r.ids {
		orders = append(orders, r.orders[id].Clone())
	}

	return orders, nil
}

func (r *orderRepository) Size(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.ids)
}

func (r *orderRepository) Clear(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.orders)
	r.ids = nil
}
