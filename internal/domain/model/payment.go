package model

// GatewayTransaction mirrors the payment gateway's view of a transaction.
// Amount is reported by the gateway in minor units (pesewas).
type GatewayTransaction struct {
	OK          bool
	Status      string
	AmountMinor int64
	Currency    string
	Message     string
}

// VerificationResult is the outcome of checking a payment reference
// against the gateway. Produced once per online order, never stored.
type VerificationResult struct {
	Accepted bool
	Reason   string
}
