package models

import (
	"slices"
	"time"
)

type CartItem struct {
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// Cart totals are derived from Items and current catalog prices; they are
// recomputed by the cart service on every mutation and never set directly.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Items     []CartItem `json:"items"`
	Total     int64      `json:"total"`
	ItemCount int        `json:"itemCount"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Items = slices.Clone(c.Items)
	if clone.Items == nil {
		clone.Items = []CartItem{}
	}

	return &clone
}

// ItemIndex returns the position of productID in Items, or -1.
func (c *Cart) ItemIndex(productID string) int {
	return slices.IndexFunc(c.Items, func(item CartItem) bool {
		return item.ProductID == productID
	})
}

// Quantity is a pointer so a missing field can be told apart from zero, and a
// float so fractional input reaches the service as INVALID_QUANTITY rather than
// a decode failure.
type AddItemRequest struct {
	UserID    string   `json:"userId"    validate:"required"`
	ProductID string   `json:"productId" validate:"required"`
	Quantity  *float64 `json:"quantity,omitempty"`
}

type UpdateQuantityRequest struct {
	UserID    string   `json:"userId"    validate:"required"`
	ProductID string   `json:"productId" validate:"required"`
	Quantity  *float64 `json:"quantity"  validate:"required"`
}

type RemoveItemRequest struct {
	UserID    string `json:"userId"    validate:"required"`
	ProductID string `json:"productId" validate:"required"`
}
