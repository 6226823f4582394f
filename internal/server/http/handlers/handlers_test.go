package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/bestcobb/orderapi/internal/domain/errors"
	"github.com/bestcobb/orderapi/internal/domain/model"
	"github.com/bestcobb/orderapi/internal/server/http/dto"
	"github.com/bestcobb/orderapi/internal/server/http/validation"
	testhelpers "github.com/bestcobb/orderapi/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, handler gin.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.POST("/api/place-order", handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/place-order", reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func orderPayload() dto.PlaceOrderRequest {
	return dto.PlaceOrderRequest{
		Customer: dto.CustomerPayload{
			Name:    "Ama Mensah",
			Phone:   "0241234567",
			Address: "12 Oxford St, Osu",
		},
		Items: []dto.ItemPayload{
			{Name: "Jollof Rice", Quantity: 2},
			{Name: "Grilled Tilapia", Quantity: 1},
		},
		Total:         decimal.RequireFromString("50.00"),
		PaymentMethod: "cash-on-delivery",
	}
}

func newHandler(facade OrderFacade) *OrderHandler {
	return NewOrderHandler(facade, validation.New())
}

func TestPlaceOrderSuccess(t *testing.T) {
	var received model.Order
	facade := testhelpers.OrderFacadeStub{PlaceFn: func(ctx context.Context, draft model.Order) (*model.Order, error) {
		received = draft
		order := draft
		order.ID = "BCB-1756700000000"
		return &order, nil
	}}

	body, _ := json.Marshal(orderPayload())
	resp := performRequest(t, newHandler(facade).PlaceOrder, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out dto.PlaceOrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.OrderID != "BCB-1756700000000" {
		t.Errorf("unexpected order id %q", out.OrderID)
	}
	if out.Message == "" {
		t.Error("expected a confirmation message")
	}

	if received.Customer.Name != "Ama Mensah" {
		t.Errorf("customer not passed through, got %+v", received.Customer)
	}
	if len(received.Items) != 2 || received.Items[0].Quantity != 2 {
		t.Errorf("items not passed through, got %+v", received.Items)
	}
	if !received.Total.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("total not passed through, got %s", received.Total)
	}
}

func TestPlaceOrderMalformedBody(t *testing.T) {
	called := false
	facade := testhelpers.OrderFacadeStub{PlaceFn: func(ctx context.Context, draft model.Order) (*model.Order, error) {
		called = true
		return nil, nil
	}}

	resp := performRequest(t, newHandler(facade).PlaceOrder, []byte("{not json"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if called {
		t.Fatal("facade must not be called for malformed bodies")
	}
}

func TestPlaceOrderValidationFailure(t *testing.T) {
	payload := orderPayload()
	payload.Items = nil
	body, _ := json.Marshal(payload)

	called := false
	facade := testhelpers.OrderFacadeStub{PlaceFn: func(ctx context.Context, draft model.Order) (*model.Order, error) {
		called = true
		return nil, nil
	}}

	resp := performRequest(t, newHandler(facade).PlaceOrder, body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if called {
		t.Fatal("facade must not be called for invalid payloads")
	}
}

func TestPlaceOrderErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "missing reference", err: domainErrors.ErrPaymentReferenceMissing, status: http.StatusBadRequest},
		{name: "payment rejected", err: fmt.Errorf("%w: currency mismatch", domainErrors.ErrPaymentRejected), status: http.StatusBadRequest},
		{name: "gateway not configured", err: domainErrors.ErrGatewayNotConfigured, status: http.StatusInternalServerError},
		{name: "unexpected failure", err: fmt.Errorf("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.OrderFacadeStub{PlaceFn: func(ctx context.Context, draft model.Order) (*model.Order, error) {
				return nil, tt.err
			}}
			body, _ := json.Marshal(orderPayload())
			resp := performRequest(t, newHandler(facade).PlaceOrder, body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d: %s", tt.status, resp.Code, resp.Body.String())
			}
			var out dto.ErrorResponse
			if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if out.Message == "" {
				t.Error("error responses must carry a message")
			}
		})
	}
}

func TestPlaceOrderAcceptsStringTotal(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{}
	body := []byte(`{
		"customer": {"name": "Kofi", "phone": "0551112222", "address": "Accra"},
		"items": [{"name": "Waakye", "quantity": 1}],
		"total": "23.50",
		"paymentMethod": "cash-on-delivery"
	}`)
	resp := performRequest(t, newHandler(facade).PlaceOrder, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestHealth(t *testing.T) {
	router := gin.New()
	router.GET("/healthz", Health)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}
