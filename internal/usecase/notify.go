package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bestcobb/orderapi/internal/domain/model"
)

const restaurantName = "Bestcobb Sports Bar Restaurant & Grill"

const currencyLabel = "GH₵"

// MessageSender is the subset of the messaging adapter used by the notifier.
type MessageSender interface {
	SendWhatsApp(ctx context.Context, to, body string) (string, error)
	SendSMS(ctx context.Context, to, body string) (string, error)
}

// NotifyConfig carries notifier-side configuration.
type NotifyConfig struct {
	Configured  bool
	AdminNumber string
	CountryCode string
}

// NotifyUseCase composes and delivers order notifications: a rich-channel
// alert to the operator and a receipt to the customer with a rich-to-plain
// fallback. Delivery is best-effort; outcomes are surfaced for logging only.
type NotifyUseCase struct {
	sender MessageSender
	cfg    NotifyConfig
	logger *slog.Logger
}

// NewNotifyUseCase constructs NotifyUseCase.
func NewNotifyUseCase(sender MessageSender, cfg NotifyConfig, logger *slog.Logger) *NotifyUseCase {
	return &NotifyUseCase{sender: sender, cfg: cfg, logger: logger}
}

// Notify delivers both notifications for an order. Administrator and customer
// deliveries are independent: neither outcome affects the other.
func (u *NotifyUseCase) Notify(ctx context.Context, order model.Order) (admin, customer model.NotificationOutcome) {
	if !u.cfg.Configured {
		u.logger.Info("messaging credentials not fully configured, skipping notifications",
			slog.String("order", order.ID),
		)
		none := model.NotificationOutcome{Channel: model.ChannelNone}
		return none, none
	}

	admin = u.notifyAdmin(ctx, order)
	customer = u.notifyCustomer(ctx, order)
	return admin, customer
}

// notifyAdmin sends the operator alert over the rich channel. No fallback:
// a failure is logged and that is the end of it.
func (u *NotifyUseCase) notifyAdmin(ctx context.Context, order model.Order) model.NotificationOutcome {
	if u.cfg.AdminNumber == "" {
		return model.NotificationOutcome{Channel: model.ChannelNone}
	}

	sid, err := u.sender.SendWhatsApp(ctx, u.cfg.AdminNumber, adminAlert(order))
	if err != nil {
		u.logger.Error("admin notification failed",
			slog.String("order", order.ID),
			slog.String("channel", string(model.ChannelRich)),
			slog.String("error", err.Error()),
		)
		return model.NotificationOutcome{Channel: model.ChannelRich, Delivered: false}
	}

	u.logger.Info("admin notification sent",
		slog.String("order", order.ID),
		slog.String("channel", string(model.ChannelRich)),
		slog.String("sid", sid),
	)
	return model.NotificationOutcome{Channel: model.ChannelRich, Delivered: true}
}

// notifyCustomer runs the two-stage fallback: rich channel to the
// international number first, plain text to the local number if that fails.
// At most one fallback; a plain-channel failure is terminal.
func (u *NotifyUseCase) notifyCustomer(ctx context.Context, order model.Order) model.NotificationOutcome {
	international, err := NormalizePhone(order.Customer.Phone, u.cfg.CountryCode)
	if err != nil {
		u.logger.Error("customer phone rejected",
			slog.String("order", order.ID),
			slog.String("phone", order.Customer.Phone),
			slog.String("error", err.Error()),
		)
		return model.NotificationOutcome{Channel: model.ChannelNone, Delivered: false}
	}

	sid, err := u.sender.SendWhatsApp(ctx, international, customerReceipt(order))
	if err == nil {
		u.logger.Info("customer notification sent",
			slog.String("order", order.ID),
			slog.String("channel", string(model.ChannelRich)),
			slog.String("sid", sid),
		)
		return model.NotificationOutcome{Channel: model.ChannelRich, Delivered: true}
	}

	u.logger.Warn("customer rich-channel delivery failed, falling back to text",
		slog.String("order", order.ID),
		slog.String("error", err.Error()),
	)

	sid, err = u.sender.SendSMS(ctx, order.Customer.Phone, customerReceiptPlain(order))
	if err != nil {
		u.logger.Error("customer notification failed on both channels",
			slog.String("order", order.ID),
			slog.String("channel", string(model.ChannelPlain)),
			slog.String("error", err.Error()),
		)
		return model.NotificationOutcome{Channel: model.ChannelPlain, Delivered: false}
	}

	u.logger.Info("customer notification sent",
		slog.String("order", order.ID),
		slog.String("channel", string(model.ChannelPlain)),
		slog.String("sid", sid),
	)
	return model.NotificationOutcome{Channel: model.ChannelPlain, Delivered: true}
}

// adminAlert composes the operator message: full customer block, itemized
// list and total.
func adminAlert(order model.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*New Order Alert!* (ID: %s)\n\n", order.ID)
	if order.Date != "" {
		fmt.Fprintf(&b, "*Date:* %s\n", order.Date)
	}
	fmt.Fprintf(&b, "*Payment:* %s\n", order.PaymentMethod)
	fmt.Fprintf(&b, "*Customer:* %s\n*Phone:* %s\n*Address:* %s\n\n", order.Customer.Name, order.Customer.Phone, order.Customer.Address)
	b.WriteString("*--- Items ---*\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %dx %s\n", item.Quantity, item.Name)
	}
	fmt.Fprintf(&b, "\n*Total: %s%s*", currencyLabel, order.Total.StringFixed(2))
	return b.String()
}

// customerReceipt composes the rich-channel receipt with the itemized list.
func customerReceipt(order model.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: Hi %s, we have received your order!\n\n", restaurantName, order.Customer.Name)
	fmt.Fprintf(&b, "*Order ID:* %s\n\n*--- Items ---*\n", order.ID)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %dx %s\n", item.Quantity, item.Name)
	}
	fmt.Fprintf(&b, "\n*Total: %s%s*\n\nWe will contact you shortly to confirm.", currencyLabel, order.Total.StringFixed(2))
	return b.String()
}

// customerReceiptPlain composes the simplified text fallback. Same order id
// and total as the rich body, no itemized list.
func customerReceiptPlain(order model.Order) string {
	return fmt.Sprintf("%s: Hi %s, we have received your order! (ID: %s) Total: %s%s. We will contact you shortly to confirm.",
		restaurantName, order.Customer.Name, order.ID, currencyLabel, order.Total.StringFixed(2))
}
