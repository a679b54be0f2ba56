// Package entity defines the domain entities for the orders feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus は注文全体の状態です。
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Closed reports whether the order is no longer active.
func (s OrderStatus) Closed() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// PaymentStatus は支払いの状態です。
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentFailed  PaymentStatus = "Failed"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

// ClientSnapshot is the buyer as they were when the order was placed.
// It is a copy, not a reference to the user record.
type ClientSnapshot struct {
	ID    string `gorm:"type:varchar(36);index;not null"`
	Name  string `gorm:"size:255"`
	Tel   string `gorm:"size:64"`
	Email string `gorm:"size:255"`
}

// OrderLine は購入時点の商品名と価格を保持します。
type OrderLine struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns Price × Quantity.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Address is a shipping address. Every field is required.
type Address struct {
	Street     string `gorm:"size:255;not null"`
	City       string `gorm:"size:128;not null"`
	PostalCode string `gorm:"size:32;not null"`
	State      string `gorm:"size:128;not null"`
	Country    string `gorm:"size:128;not null"`
}

// Payment describes how the order is paid.
type Payment struct {
	Method string        `gorm:"size:64;not null"`
	Status PaymentStatus `gorm:"size:16;not null"`
}

// Order is written once as a complete document. Only status, payment and
// shipping address change afterwards.
type Order struct {
	ID              string          `gorm:"primaryKey;type:varchar(36)"`
	Client          ClientSnapshot  `gorm:"embedded;embeddedPrefix:client_"`
	Lines           []OrderLine     `gorm:"serializer:json;not null"`
	ShippingAddress Address         `gorm:"embedded;embeddedPrefix:shipping_"`
	Payment         Payment         `gorm:"embedded;embeddedPrefix:payment_"`
	Status          OrderStatus     `gorm:"size:16;index;not null"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ComputeTotal sums the line subtotals rounded to 2 decimal places.
func ComputeTotal(lines []OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total.Round(2)
}
