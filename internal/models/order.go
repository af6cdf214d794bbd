package models

import (
	"slices"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusFailed     OrderStatus = "failed"
)

type PaymentMethodType string

const (
	PaymentMethodCard     PaymentMethodType = "card"
	PaymentMethodPaypal   PaymentMethodType = "paypal"
	PaymentMethodApplePay PaymentMethodType = "apple_pay"
)

func (t PaymentMethodType) Valid() bool {
	switch t {
	case PaymentMethodCard, PaymentMethodPaypal, PaymentMethodApplePay:
		return true
	}

	return false
}

type PaymentMethod struct {
	Type PaymentMethodType `json:"type" validate:"required"`
}

// Order is written once at checkout and never mutated afterwards.
type Order struct {
	ID             string        `json:"id"`
	UserID         string        `json:"userId"`
	Items          []CartItem    `json:"items"`
	Total          int64         `json:"total"`
	DiscountCode   string        `json:"discountCode,omitempty"`
	DiscountAmount int64         `json:"discountAmount,omitempty"`
	Status         OrderStatus   `json:"status"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	TransactionID  string        `json:"transactionId,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}

	clone := *o
	clone.Items = slices.Clone(o.Items)

	return &clone
}

type OrderStatistics struct {
	TotalOrders         int      `json:"totalOrders"`
	TotalItemsPurchased int      `json:"totalItemsPurchased"`
	TotalPurchaseAmount int64    `json:"totalPurchaseAmount"`
	DiscountCodesUsed   []string `json:"discountCodesUsed"`
	TotalDiscountAmount int64    `json:"totalDiscountAmount"`
}

type OrderListResponse struct {
	Orders     []Order         `json:"orders"`
	Statistics OrderStatistics `json:"statistics"`
}
