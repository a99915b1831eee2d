package response

import (
	"encoding/json"
	"time"

	"horecamart/internal/domain/entities"
)

type OrderPaymentResponse struct {
	PaymentID         string    `json:"payment_id"`
	ID                string    `json:"id"`
	OrderID           string    `json:"order_id"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	Amount            float64   `json:"amount"`
	PaymentDate       time.Time `json:"payment_date"`
	Date              time.Time `json:"date"`
	Status            string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromOrderPayment(p entities.OrderPayment) OrderPaymentResponse {
	var payload map[string]interface{}
	if len(p.ProviderPayloadRaw) > 0 {
		_ = json.Unmarshal(p.ProviderPayloadRaw, &payload)
	}
	return OrderPaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		OrderID:            p.OrderID,
		ProviderPaymentID:  p.ProviderPaymentID,
		Amount:             p.Amount,
		PaymentDate:        p.Date,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    payload,
	}
}
