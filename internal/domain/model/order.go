package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod describes how the customer intends to pay.
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash-on-delivery"
	PaymentOnline         PaymentMethod = "pay-online"
)

// Customer holds delivery contact details as submitted on the order form.
type Customer struct {
	Name    string
	Phone   string
	Address string
}

// OrderItem is a single line of the order.
type OrderItem struct {
	Name     string
	Quantity int
}

// Order describes one inbound order. Orders live for the duration of a
// request plus any in-flight notification work; nothing is persisted.
type Order struct {
	ID               string
	Customer         Customer
	Items            []OrderItem
	Total            decimal.Decimal
	Date             string
	PaymentMethod    PaymentMethod
	PaymentReference string
	PlacedAt         time.Time
}
