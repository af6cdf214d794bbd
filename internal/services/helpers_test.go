package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/repositories"
	service "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/services"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/services/mocks"
	"github.com/stretchr/testify/require"
)

// mutableCatalog lets tests delete products after they were added to a cart.
type mutableCatalog struct {
	mu       sync.RWMutex
	products map[string]models.Product
	ids      []string
}

func newMutableCatalog(products ...models.Product) *mutableCatalog {
	c := &mutableCatalog{products: make(map[string]models.Product)}
	for _, p := range products {
		c.products[p.ID] = p
		c.ids = append(c.ids, p.ID)
	}

	return c
}

func (c *mutableCatalog) GetProductByID(_ context.Context, id string) (*models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
	}

	return &p, nil
}

func (c *mutableCatalog) ListProducts(_ context.Context) ([]*models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*models.Product, 0, len(c.ids))
	for _, id := range c.ids {
		if p, ok := c.products[id]; ok {
			out = append(out, &p)
		}
	}

	return out, nil
}

func (c *mutableCatalog) Count(_ context.Context) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.products)
}

func (c *mutableCatalog) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.products, id)
}

// approvingProcessor accepts every payment without delay.
type approvingProcessor struct{}

func (approvingProcessor) ProcessPayment(_ context.Context, _ int64, _ models.PaymentMethod) (*models.PaymentResult, error) {
	return &models.PaymentResult{Success: true, TransactionID: "txn-test"}, nil
}

type fixture struct {
	store     *repository.Store
	catalog   *mutableCatalog
	carts     service.CartService
	discounts service.DiscountService
	checkout  service.CheckoutService
	admin     service.AdminService
	payments  *mocks.PaymentProcessor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	return newFixtureWithProcessor(t, nil)
}

// newFixtureWithProcessor wires real services over a fresh store. With a nil
// processor a testify mock is installed and exposed as f.payments.
func newFixtureWithProcessor(t *testing.T, processor service.PaymentProcessor) *fixture {
	t.Helper()

	catalog := newMutableCatalog(repository.SeedProducts()...)
	store := repository.NewStore(nil)
	store.Products = catalog

	f := &fixture{store: store, catalog: catalog}
	if processor == nil {
		f.payments = mocks.NewPaymentProcessor(t)
		processor = f.payments
	}

	f.carts = service.NewCartService(store.Carts, store.Products)
	f.discounts = service.NewDiscountService(store.Discounts, store.Orders, 3)
	f.checkout = service.NewCheckoutService(store, f.carts, f.discounts, processor)
	f.admin = service.NewAdminService(store, f.discounts)

	return f
}

func (f *fixture) addToCart(t *testing.T, userID, productID string, quantity int) *models.Cart {
	t.Helper()

	cart, err := f.carts.AddItem(t.Context(), userID, productID, quantity)
	require.NoError(t, err)

	return cart
}

func cardCheckout(userID, code string) *models.CheckoutRequest {
	return &models.CheckoutRequest{
		UserID:        userID,
		PaymentMethod: &models.PaymentMethod{Type: models.PaymentMethodCard},
		DiscountCode:  code,
	}
}
