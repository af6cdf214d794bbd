package models

import "time"

const (
	DiscountPercentage = 10
	DiscountCodeLength = 8
)

type Discount struct {
	Code       string     `json:"code"`
	Percentage int        `json:"percentage"`
	IsUsed     bool       `json:"isUsed"`
	CreatedAt  time.Time  `json:"createdAt"`
	UsedAt     *time.Time `json:"usedAt,omitempty"`
}

func (d *Discount) Clone() *Discount {
	if d == nil {
		return nil
	}

	clone := *d
	if d.UsedAt != nil {
		usedAt := *d.UsedAt
		clone.UsedAt = &usedAt
	}

	return &clone
}

// NextDiscountAt is nil when the order count sits on a multiple of N.
type DiscountStats struct {
	CurrentDiscount    *Discount `json:"currentDiscount"`
	OrderCount         int       `json:"orderCount"`
	N                  int       `json:"n"`
	NextDiscountAt     *int      `json:"nextDiscountAt"`
	TotalDiscountsUsed int       `json:"totalDiscountsUsed"`
	TotalOrders        int       `json:"totalOrders"`
	OrdersWithDiscount int       `json:"ordersWithDiscount"`
}

type GenerateDiscountResponse struct {
	Discount *Discount `json:"discount"`
	Message  string    `json:"message,omitempty"`
}
