package dto

import "github.com/shopspring/decimal"

// CustomerPayload describes the customer block of an order submission.
type CustomerPayload struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// ItemPayload describes a single order line.
type ItemPayload struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// PlaceOrderRequest is the payload for POST /api/place-order.
type PlaceOrderRequest struct {
	Customer         CustomerPayload `json:"customer" validate:"required"`
	Items            []ItemPayload   `json:"items" validate:"required,min=1,dive"`
	Total            decimal.Decimal `json:"total"`
	Date             string          `json:"date,omitempty"`
	PaymentMethod    string          `json:"paymentMethod" validate:"required,oneof=cash-on-delivery pay-online"`
	PaymentReference string          `json:"paymentReference,omitempty"`
}

// PlaceOrderResponse is returned on successful order placement.
type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

// ErrorResponse carries a human-readable failure message.
type ErrorResponse struct {
	Message string `json:"message"`
}
