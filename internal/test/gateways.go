package test

import (
	"context"
	"sync"

	"github.com/bestcobb/orderapi/internal/domain/model"
)

// GatewayClientStub simulates the payment gateway adapter.
type GatewayClientStub struct {
	TransactionFn func(context.Context, string) (*model.GatewayTransaction, error)

	mu    sync.Mutex
	calls int
}

// Transaction delegates to the provided function or reports a successful
// GHS 50.00 transaction.
func (s *GatewayClientStub) Transaction(ctx context.Context, reference string) (*model.GatewayTransaction, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.TransactionFn != nil {
		return s.TransactionFn(ctx, reference)
	}
	return &model.GatewayTransaction{OK: true, Status: "success", AmountMinor: 5000, Currency: "GHS"}, nil
}

// Calls reports how many lookups were made.
func (s *GatewayClientStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// SentMessage records one message handed to the messaging stub.
type SentMessage struct {
	Channel model.Channel
	To      string
	Body    string
}

// MessageSenderStub simulates the messaging gateway adapter.
type MessageSenderStub struct {
	WhatsAppErr error
	SMSErr      error

	mu   sync.Mutex
	sent []SentMessage
}

// SendWhatsApp records a rich-channel send.
func (s *MessageSenderStub) SendWhatsApp(ctx context.Context, to, body string) (string, error) {
	s.record(model.ChannelRich, to, body)
	if s.WhatsAppErr != nil {
		return "", s.WhatsAppErr
	}
	return "SMwa", nil
}

// SendSMS records a plain-channel send.
func (s *MessageSenderStub) SendSMS(ctx context.Context, to, body string) (string, error) {
	s.record(model.ChannelPlain, to, body)
	if s.SMSErr != nil {
		return "", s.SMSErr
	}
	return "SMtext", nil
}

// Sent returns a copy of all recorded messages.
func (s *MessageSenderStub) Sent() []SentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SentMessage(nil), s.sent...)
}

func (s *MessageSenderStub) record(channel model.Channel, to, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, SentMessage{Channel: channel, To: to, Body: body})
}
