package entities

import (
	"encoding/json"
	"time"
)

// OrderPaymentStatus is the outcome of a single payment attempt against an
// order. Distinct from the order-level PaymentStatus axis, which summarizes
// where the order stands overall.
type OrderPaymentStatus string

const (
	OrderPaymentStatusPending  OrderPaymentStatus = "pending"
	OrderPaymentStatusApproved OrderPaymentStatus = "approved"
	OrderPaymentStatusDenied   OrderPaymentStatus = "denied"
)

// OrderPayment is a payment processed for an order through the payment
// gateway.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the provider response (JSON) for audit.
type OrderPayment struct {
	ID                 string             `json:"id"`
	OrderID            string             `json:"order_id"`
	ProviderPaymentID  string             `json:"provider_payment_id,omitempty"`
	Amount             float64            `json:"amount"`
	Date               time.Time          `json:"date"`
	Status             OrderPaymentStatus `json:"status"`
	ProviderPayloadRaw json.RawMessage    `json:"provider_payload_raw,omitempty"`
}
