package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
)

// CartMutation edits a private copy of a cart. Returning an error discards the
// copy and leaves the stored cart as it was.
type CartMutation func(cart *models.Cart) error

type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	// UpsertCart creates the cart with newCart when userID has none, then
	// applies mutate.
	UpsertCart(ctx context.Context, userID string, newCart func() *models.Cart, mutate CartMutation) (*models.Cart, error)
	// UpdateCart applies mutate to an existing cart, failing with ErrNotFound
	// when userID has none.
	UpdateCart(ctx context.Context, userID string, mutate CartMutation) (*models.Cart, error)
	Clear(ctx context.Context)
}

type cartRepository struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

func NewCartRepo() CartRepository {
	return &cartRepository{carts: make(map[string]*models.Cart)}
}

func (r *cartRepository) GetCart(_ context.Context, userID string) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
	}

	return cart.Clone(), nil
}

func (r *cartRepository) UpsertCart(_ context.Context, userID string, newCart func() *models.Cart, mutate CartMutation) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[userID]
	if !ok {
		cart = newCart()
	}

	return r.apply(userID, cart, mutate)
}

func (r *cartRepository) UpdateCart(_ context.Context, userID string, mutate CartMutation) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
	}

	return r.apply(userID, cart, mutate)
}

// apply must be called with r.mu held.
func (r *cartRepository) apply(userID string, cart *models.Cart, mutate CartMutation) (*models.Cart, error) {
	working := cart.Clone()

	if mutate != nil {
		if err := mutate(working); err != nil {
			return nil, err
		}
	}

	r.carts[userID] = working

	return working.Clone(), nil
}

func (r *cartRepository) Clear(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.carts)
}
