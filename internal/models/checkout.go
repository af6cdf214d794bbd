package models

import "time"

type CheckoutRequest struct {
	UserID        string         `json:"userId"        validate:"required"`
	PaymentMethod *PaymentMethod `json:"paymentMethod" validate:"required"`
	DiscountCode  string         `json:"discountCode,omitempty"`
}

type CheckoutResult struct {
	OrderID               string      `json:"orderId"`
	Total                 int64       `json:"total"`
	DiscountAmount        int64       `json:"discountAmount,omitempty"`
	Status                OrderStatus `json:"status"`
	CreatedAt             time.Time   `json:"createdAt"`
	GeneratedDiscountCode string      `json:"generatedDiscountCode,omitempty"`
}

type PaymentResult struct {
	Success       bool
	TransactionID string
}

type ResetResponse struct {
	Message string `json:"message"`
}
