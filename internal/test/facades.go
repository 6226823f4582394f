package test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bestcobb/orderapi/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for the order endpoint.
type OrderFacadeStub struct {
	PlaceFn func(context.Context, model.Order) (*model.Order, error)
}

// PlaceOrder delegates to the provided function or returns the draft with a
// fixed identifier assigned.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, draft model.Order) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, draft)
	}
	order := draft
	order.ID = "BCB-1756700000000"
	return &order, nil
}

// SampleOrder returns a populated cash order for tests.
func SampleOrder() model.Order {
	return model.Order{
		ID: "BCB-1756700000000",
		Customer: model.Customer{
			Name:    "Ama Mensah",
			Phone:   "0241234567",
			Address: "12 Oxford St, Osu",
		},
		Items: []model.OrderItem{
			{Name: "Jollof Rice", Quantity: 2},
			{Name: "Grilled Tilapia", Quantity: 1},
		},
		Total:         decimal.RequireFromString("50.00"),
		PaymentMethod: model.PaymentCashOnDelivery,
	}
}
