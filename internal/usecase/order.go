package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/bestcobb/orderapi/internal/domain/errors"
	"github.com/bestcobb/orderapi/internal/domain/model"
)

// OrderUseCase owns order intake: id assignment and, for online payments,
// synchronous verification before the order is accepted.
type OrderUseCase struct {
	payments *PaymentUseCase
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(payments *PaymentUseCase) *OrderUseCase {
	return &OrderUseCase{payments: payments, now: time.Now}
}

// Place accepts an order draft and returns the confirmed order. Online
// payments are verified on the request path; an order paid online is never
// confirmed unless the gateway accepted the payment.
func (u *OrderUseCase) Place(ctx context.Context, draft model.Order) (*model.Order, error) {
	order := draft
	placedAt := u.now()
	order.ID = fmt.Sprintf("BCB-%d", placedAt.UnixMilli())
	order.PlacedAt = placedAt

	if order.PaymentMethod == model.PaymentOnline {
		if strings.TrimSpace(order.PaymentReference) == "" {
			return nil, domainErrors.ErrPaymentReferenceMissing
		}
		result, err := u.payments.Verify(ctx, order.PaymentReference, order.Total)
		if err != nil {
			return nil, err
		}
		if !result.Accepted {
			return nil, fmt.Errorf("%w: %s", domainErrors.ErrPaymentRejected, result.Reason)
		}
	}

	return &order, nil
}
