package service

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/repositories"
	"github.com/shopspring/decimal"
)

type CartService interface {
	// GetCart returns the user's cart, creating an empty one on first access.
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	// GetExistingCart is GetCart without the lazy creation.
	GetExistingCart(ctx context.Context, userID string) (*models.Cart, error)
	AddItem(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error)
	ClearCart(ctx context.Context, userID string) (*models.Cart, error)
	// ConsumeItems subtracts checked-out lines from the cart, dropping lines
	// that reach zero and keeping anything added since. It fails without
	// touching the cart when a line is missing or holds less than required.
	ConsumeItems(ctx context.Context, userID string, items []models.CartItem) (*models.Cart, error)
}

type cartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) CartService {
	return &cartService{carts: carts, products: products}
}

func CartID(userID string) string {
	return "cart-" + userID
}

func newCart(userID string, now time.Time) func() *models.Cart {
	return func() *models.Cart {
		return &models.Cart{
			ID:        CartID(userID),
			UserID:    userID,
			Items:     []models.CartItem{},
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
}

// recalculate derives Total and ItemCount from the lines whose product still
// exists. Lines for vanished products stay in the cart but do not count.
func (s *cartService) recalculate(ctx context.Context, cart *models.Cart) {
	sum := decimal.Zero
	count := 0

	for _, item := range cart.Items {
		product, err := s.products.GetProductByID(ctx, item.ProductID)
		if err != nil {
			continue
		}

		sum = sum.Add(lineTotal(product.Price, item.Quantity))
		count += item.Quantity
	}

	cart.Total = roundToUnit(sum)
	cart.ItemCount = count
}

func validQuantity(quantity int) error {
	if quantity <= 0 {
		return errors.InvalidQuantityError("Quantity must be a positive integer")
	}

	return nil
}

// cartRepoError maps a missing cart to CART_NOT_FOUND. AppErrors raised inside
// a mutation are checked first since they may wrap ErrNotFound themselves.
func cartRepoError(err error, message string) error {
	if appErr, ok := errors.IsAppError(err); ok {
		return appErr
	}

	if stdErrors.Is(err, repository.ErrNotFound) {
		return errors.CartNotFoundError("Cart not found").WithError(err)
	}

	return asAppError(err, message)
}

func validUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errors.InvalidRequestError("Invalid userId")
	}

	return nil
}

func itemNotFound(productID string) *errors.AppError {
	return errors.CartItemNotFoundError(fmt.Sprintf("Item with product ID %s not found in cart", productID))
}

func (s *cartService) GetCart(ctx context.Context, userID string) (cart *models.Cart, err error) {
	defer recoverInternal("Failed to fetch cart", &cart, &err)

	if err := validUserID(userID); err != nil {
		return nil, err
	}

	cart, err = s.carts.UpsertCart(ctx, userID, newCart(userID, time.Now()), func(c *models.Cart) error {
		s.recalculate(ctx, c)
		return nil
	})
	if err != nil {
		return nil, asAppError(err, "Failed to fetch cart")
	}

	return cart, nil
}

func (s *cartService) GetExistingCart(ctx context.Context, userID string) (cart *models.Cart, err error) {
	defer recoverInternal("Failed to fetch cart", &cart, &err)

	cart, err = s.carts.UpdateCart(ctx, userID, func(c *models.Cart) error {
		s.recalculate(ctx, c)
		return nil
	})
	if err != nil {
		return nil, cartRepoError(err, "Failed to fetch cart")
	}

	return cart, nil
}

func (s *cartService) AddItem(ctx context.Context, userID, productID string, quantity int) (cart *models.Cart, err error) {
	defer recoverInternal("Failed to add item to cart", &cart, &err)

	if err := validUserID(userID); err != nil {
		return nil, err
	}

	if err := validQuantity(quantity); err != nil {
		return nil, err
	}

	if _, err := s.products.GetProductByID(ctx, productID); err != nil {
		return nil, errors.ProductNotFoundError(fmt.Sprintf("Product with ID %s not found", productID)).WithError(err)
	}

	now := time.Now()

	cart, err = s.carts.UpsertCart(ctx, userID, newCart(userID, now), func(c *models.Cart) error {
		if idx := c.ItemIndex(productID); idx >= 0 {
			c.Items[idx].Quantity += quantity
			c.Items[idx].AddedAt = now
		} else {
			c.Items = append(c.Items, models.CartItem{
				ProductID: productID,
				Quantity:  quantity,
				AddedAt:   now,
			})
		}

		s.recalculate(ctx, c)
		c.UpdatedAt = now

		return nil
	})
	if err != nil {
		return nil, asAppError(err, "Failed to add item to cart")
	}

	middleware.LoggerFromContext(ctx).Debug("Item added to cart",
		slog.String("userId", userID),
		slog.String("productId", productID),
		slog.Int("quantity", quantity))

	return cart, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, productID string) (cart *models.Cart, err error) {
	defer recoverInternal("Failed to remove item from cart", &cart, &err)

	cart, err = s.carts.UpdateCart(ctx, userID, func(c *models.Cart) error {
		idx := c.ItemIndex(productID)
		if idx < 0 {
			return itemNotFound(productID)
		}

		c.Items = slices.Delete(c.Items, idx, idx+1)
		s.recalculate(ctx, c)
		c.UpdatedAt = time.Now()

		return nil
	})
	if err != nil {
		return nil, cartRepoError(err, "Failed to remove item from cart")
	}

	return cart, nil
}

// UpdateQuantity sets an absolute quantity. Zero is rejected rather than
// treated as removal.
func (s *cartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (cart *models.Cart, err error) {
	defer recoverInternal("Failed to update cart item", &cart, &err)

	if err := validQuantity(quantity); err != nil {
		return nil, err
	}

	cart, err = s.carts.UpdateCart(ctx, userID, func(c *models.Cart) error {
		idx := c.ItemIndex(productID)
		if idx < 0 {
			return itemNotFound(productID)
		}

		if _, err := s.products.GetProductByID(ctx, productID); err != nil {
			return errors.ProductNotFoundError(fmt.Sprintf("Product with ID %s not found", productID)).WithError(err)
		}

		c.Items[idx].Quantity = quantity
		s.recalculate(ctx, c)
		c.UpdatedAt = time.Now()

		return nil
	})
	if err != nil {
		return nil, cartRepoError(err, "Failed to update cart item")
	}

	return cart, nil
}

func (s *cartService) ClearCart(ctx context.Context, userID string) (cart *models.Cart, err error) {
	defer recoverInternal("Failed to clear cart", &cart, &err)

	cart, err = s.carts.UpdateCart(ctx, userID, func(c *models.Cart) error {
		c.Items = []models.CartItem{}
		s.recalculate(ctx, c)
		c.UpdatedAt = time.Now()

		return nil
	})
	if err != nil {
		return nil, cartRepoError(err, "Failed to clear cart")
	}

	return cart, nil
}

func (s *cartService) ConsumeItems(ctx context.Context, userID string, items []models.CartItem) (cart *models.Cart, err error) {
	defer recoverInternal("Failed to update cart after checkout", &cart, &err)

	cart, err = s.carts.UpdateCart(ctx, userID, func(c *models.Cart) error {
		for _, item := range items {
			idx := c.ItemIndex(item.ProductID)
			if idx < 0 || c.Items[idx].Quantity < item.Quantity {
				return errors.InvalidRequestError("Cart changed during checkout").
					WithDetail(fmt.Sprintf("Product %s no longer holds quantity %d", item.ProductID, item.Quantity))
			}

			c.Items[idx].Quantity -= item.Quantity
		}

		c.Items = slices.DeleteFunc(c.Items, func(line models.CartItem) bool {
			return line.Quantity == 0
		})
		s.recalculate(ctx, c)
		c.UpdatedAt = time.Now()

		return nil
	})
	if err != nil {
		return nil, cartRepoError(err, "Failed to update cart after checkout")
	}

	return cart, nil
}
