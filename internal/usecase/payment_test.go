package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/bestcobb/orderapi/internal/domain/errors"
	"github.com/bestcobb/orderapi/internal/domain/model"
)

type gatewayStub struct {
	tx    *model.GatewayTransaction
	err   error
	calls int
}

func (s *gatewayStub) Transaction(ctx context.Context, reference string) (*model.GatewayTransaction, error) {
	s.calls++
	return s.tx, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newPayments(gateway GatewayClient, configured bool) *PaymentUseCase {
	return NewPaymentUseCase(gateway, PaymentConfig{Configured: configured, Currency: "GHS"}, discardLogger())
}

func TestVerifyNotConfigured(t *testing.T) {
	stub := &gatewayStub{}
	_, err := newPayments(stub, false).Verify(context.Background(), "ref", decimal.NewFromInt(50))
	if !errors.Is(err, domainErrors.ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatal("gateway must not be called without a credential")
	}
}

func TestVerifyEmptyReference(t *testing.T) {
	stub := &gatewayStub{}
	_, err := newPayments(stub, true).Verify(context.Background(), "  ", decimal.NewFromInt(50))
	if !errors.Is(err, domainErrors.ErrPaymentReferenceMissing) {
		t.Fatalf("expected ErrPaymentReferenceMissing, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatal("gateway must not be called with an empty reference")
	}
}

func TestVerifyGatewayUnreachable(t *testing.T) {
	stub := &gatewayStub{err: errors.New("connection refused")}
	result, err := newPayments(stub, true).Verify(context.Background(), "ref", decimal.NewFromInt(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Accepted {
		t.Fatal("unverifiable payment must not be accepted")
	}
	if result.Reason == "" {
		t.Fatal("expected a human-readable reason")
	}
}

func TestVerifyAcceptancePolicy(t *testing.T) {
	total := decimal.RequireFromString("50.00")

	tests := []struct {
		name     string
		tx       model.GatewayTransaction
		accepted bool
	}{
		{
			name:     "exact amount accepted",
			tx:       model.GatewayTransaction{OK: true, Status: "success", AmountMinor: 5000, Currency: "GHS"},
			accepted: true,
		},
		{
			name:     "overpayment accepted",
			tx:       model.GatewayTransaction{OK: true, Status: "success", AmountMinor: 5001, Currency: "GHS"},
			accepted: true,
		},
		{
			name:     "one pesewa short rejected",
			tx:       model.GatewayTransaction{OK: true, Status: "success", AmountMinor: 4999, Currency: "GHS"},
			accepted: false,
		},
		{
			name:     "currency mismatch rejected regardless of amount",
			tx:       model.GatewayTransaction{OK: true, Status: "success", AmountMinor: 999999, Currency: "NGN"},
			accepted: false,
		},
		{
			name:     "failed transaction status rejected",
			tx:       model.GatewayTransaction{OK: true, Status: "failed", AmountMinor: 5000, Currency: "GHS"},
			accepted: false,
		},
		{
			name:     "abandoned transaction status rejected",
			tx:       model.GatewayTransaction{OK: true, Status: "abandoned", AmountMinor: 5000, Currency: "GHS"},
			accepted: false,
		},
		{
			name:     "gateway status false rejected",
			tx:       model.GatewayTransaction{OK: false, Message: "reference not found"},
			accepted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &gatewayStub{tx: &tt.tx}
			result, err := newPayments(stub, true).Verify(context.Background(), "ref", total)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Accepted != tt.accepted {
				t.Errorf("expected accepted=%v, got %v (reason %q)", tt.accepted, result.Accepted, result.Reason)
			}
			if !tt.accepted && result.Reason == "" {
				t.Error("rejections must carry a reason")
			}
			if stub.calls != 1 {
				t.Errorf("expected exactly one gateway call, got %d", stub.calls)
			}
		})
	}
}

func TestVerifyExactDecimalComparison(t *testing.T) {
	// 0.1+0.2 style totals must not be rejected by float rounding.
	total := decimal.RequireFromString("0.30")
	stub := &gatewayStub{tx: &model.GatewayTransaction{OK: true, Status: "success", AmountMinor: 30, Currency: "GHS"}}
	result, err := newPayments(stub, true).Verify(context.Background(), "ref", total)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Accepted {
		t.Fatalf("expected acceptance, got rejection: %s", result.Reason)
	}
}
