package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// CreatePayment charges a single order; implementations tag the provider
// payment with the order id so every approval is traceable back to the order
// that produced it, and the provider response payload is persisted for audit.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, orderID string, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
