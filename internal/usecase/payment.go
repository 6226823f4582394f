package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/bestcobb/orderapi/internal/domain/errors"
	"github.com/bestcobb/orderapi/internal/domain/model"
)

// GatewayClient is the subset of the payment adapter used for verification.
type GatewayClient interface {
	Transaction(ctx context.Context, reference string) (*model.GatewayTransaction, error)
}

// PaymentConfig carries the verification policy parameters.
type PaymentConfig struct {
	Configured bool
	Currency   string
}

// PaymentUseCase decides whether a claimed payment is acceptable for an order.
type PaymentUseCase struct {
	gateway GatewayClient
	cfg     PaymentConfig
	logger  *slog.Logger
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(gateway GatewayClient, cfg PaymentConfig, logger *slog.Logger) *PaymentUseCase {
	return &PaymentUseCase{gateway: gateway, cfg: cfg, logger: logger}
}

// Verify checks a transaction reference against the gateway and applies the
// acceptance policy: gateway status true, transaction succeeded, currency
// matches exactly, and the settled amount covers the expected total.
//
// Missing credential and empty reference short-circuit before any network
// call. Gateway unreachability or a malformed response rejects the payment
// rather than erroring: an unverifiable payment is never treated as paid.
func (u *PaymentUseCase) Verify(ctx context.Context, reference string, expectedTotal decimal.Decimal) (*model.VerificationResult, error) {
	if !u.cfg.Configured {
		return nil, domainErrors.ErrGatewayNotConfigured
	}
	if strings.TrimSpace(reference) == "" {
		return nil, domainErrors.ErrPaymentReferenceMissing
	}

	tx, err := u.gateway.Transaction(ctx, reference)
	if err != nil {
		u.logger.Error("payment verification call failed",
			slog.String("reference", reference),
			slog.String("error", err.Error()),
		)
		return &model.VerificationResult{Accepted: false, Reason: "payment gateway is unreachable"}, nil
	}

	if result := u.apply(tx, expectedTotal); !result.Accepted {
		u.logger.Warn("payment rejected",
			slog.String("reference", reference),
			slog.String("reason", result.Reason),
		)
		return result, nil
	}

	u.logger.Info("payment verified",
		slog.String("reference", reference),
		slog.String("amount", minorToMajor(tx.AmountMinor).String()),
		slog.String("currency", tx.Currency),
	)
	return &model.VerificationResult{Accepted: true}, nil
}

func (u *PaymentUseCase) apply(tx *model.GatewayTransaction, expectedTotal decimal.Decimal) *model.VerificationResult {
	if !tx.OK {
		reason := tx.Message
		if reason == "" {
			reason = "gateway reported failure"
		}
		return &model.VerificationResult{Accepted: false, Reason: reason}
	}
	if tx.Status != "success" {
		return &model.VerificationResult{Accepted: false, Reason: fmt.Sprintf("transaction status is %q", tx.Status)}
	}
	if tx.Currency != u.cfg.Currency {
		return &model.VerificationResult{Accepted: false, Reason: fmt.Sprintf("currency %q does not match expected %q", tx.Currency, u.cfg.Currency)}
	}
	if paid := minorToMajor(tx.AmountMinor); paid.LessThan(expectedTotal) {
		return &model.VerificationResult{Accepted: false, Reason: fmt.Sprintf("paid %s is less than order total %s", paid, expectedTotal)}
	}
	return &model.VerificationResult{Accepted: true}
}

// minorToMajor converts gateway minor units to a major-unit decimal exactly.
func minorToMajor(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}
