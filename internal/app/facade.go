package app

import (
	"context"
	"log/slog"

	"github.com/bestcobb/orderapi/internal/domain/model"
	"github.com/bestcobb/orderapi/internal/usecase"
)

// NotificationDispatcher hands accepted orders to background delivery.
type NotificationDispatcher interface {
	Enqueue(order model.Order) bool
}

// OrderFacade ties order intake to notification dispatch: verification stays
// on the request path, delivery does not.
type OrderFacade struct {
	orders     *usecase.OrderUseCase
	dispatcher NotificationDispatcher
	logger     *slog.Logger
}

// NewOrderFacade constructs OrderFacade.
func NewOrderFacade(orders *usecase.OrderUseCase, dispatcher NotificationDispatcher, logger *slog.Logger) *OrderFacade {
	return &OrderFacade{orders: orders, dispatcher: dispatcher, logger: logger}
}

// PlaceOrder accepts an order and schedules its notifications. The response
// never waits on notification delivery.
func (f *OrderFacade) PlaceOrder(ctx context.Context, draft model.Order) (*model.Order, error) {
	f.logger.Info("new order received",
		slog.String("customer", draft.Customer.Name),
		slog.String("phone", draft.Customer.Phone),
		slog.String("address", draft.Customer.Address),
		slog.String("payment_method", string(draft.PaymentMethod)),
		slog.String("total", draft.Total.StringFixed(2)),
	)

	order, err := f.orders.Place(ctx, draft)
	if err != nil {
		return nil, err
	}

	f.dispatcher.Enqueue(*order)
	return order, nil
}
