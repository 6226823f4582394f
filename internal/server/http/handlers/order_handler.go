package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	domainErrors "github.com/bestcobb/orderapi/internal/domain/errors"
	"github.com/bestcobb/orderapi/internal/domain/model"
	"github.com/bestcobb/orderapi/internal/server/http/dto"
	"github.com/bestcobb/orderapi/internal/server/http/validation"
)

// OrderHandler manages the order intake endpoint.
type OrderHandler struct {
	facade   OrderFacade
	validate *validatorv10.Validate
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, validate *validatorv10.Validate) *OrderHandler {
	return &OrderHandler{facade: facade, validate: validate}
}

// PlaceOrder handles POST /api/place-order.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid order payload"})
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), toOrder(req))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrPaymentReferenceMissing):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "payment reference is required for online payment"})
		case errors.Is(err, domainErrors.ErrPaymentRejected):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, domainErrors.ErrGatewayNotConfigured):
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "online payment is not available"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.PlaceOrderResponse{
		Message: "Order received successfully!",
		OrderID: order.ID,
	})
}

func toOrder(req dto.PlaceOrderRequest) model.Order {
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.OrderItem{Name: item.Name, Quantity: item.Quantity})
	}
	return model.Order{
		Customer: model.Customer{
			Name:    req.Customer.Name,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
		},
		Items:            items,
		Total:            req.Total,
		Date:             req.Date,
		PaymentMethod:    model.PaymentMethod(req.PaymentMethod),
		PaymentReference: req.PaymentReference,
	}
}
