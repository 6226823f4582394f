package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/bestcobb/orderapi/internal/adapter/paystack"
	"github.com/bestcobb/orderapi/internal/adapter/twilio"
	"github.com/bestcobb/orderapi/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newPaymentUseCase,
	newNotifyUseCase,
	NewOrderUseCase,
)

type paymentParams struct {
	fx.In

	Gateway paystack.Client
	Config  *config.Config
	Logger  *slog.Logger
}

func newPaymentUseCase(p paymentParams) *PaymentUseCase {
	return NewPaymentUseCase(p.Gateway, PaymentConfig{
		Configured: p.Config.PaymentConfigured(),
		Currency:   p.Config.ExpectedCurrency,
	}, p.Logger)
}

type notifyParams struct {
	fx.In

	Sender twilio.Client
	Config *config.Config
	Logger *slog.Logger
}

func newNotifyUseCase(p notifyParams) *NotifyUseCase {
	return NewNotifyUseCase(p.Sender, NotifyConfig{
		Configured:  p.Config.MessagingConfigured(),
		AdminNumber: p.Config.AdminPhoneNumber,
		CountryCode: p.Config.CountryCallingCode,
	}, p.Logger)
}
