package handlers

import (
	"context"

	"github.com/bestcobb/orderapi/internal/domain/model"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, draft model.Order) (*model.Order, error)
}
