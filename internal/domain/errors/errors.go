package errors

import "errors"

var (
	ErrPaymentReferenceMissing = errors.New("payment reference missing")
	ErrGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentRejected         = errors.New("payment rejected")
	ErrInvalidPhoneNumber      = errors.New("invalid phone number")
)
