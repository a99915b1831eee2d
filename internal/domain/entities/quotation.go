package entities

import "time"

// QuotationStatus represents the lifecycle of a sales quotation.
//
// Domain notes:
//   - Quotations are soft-lifecycle only: they are never deleted, only advanced.
//   - converted_to_order is set exactly once, by the conversion transaction,
//     together with OrderID.

type QuotationStatus string

const (
	QuotationStatusDraft     QuotationStatus = "draft"
	QuotationStatusSent      QuotationStatus = "sent"
	QuotationStatusAccepted  QuotationStatus = "accepted"
	QuotationStatusRejected  QuotationStatus = "rejected"
	QuotationStatusExpired   QuotationStatus = "expired"
	QuotationStatusConverted QuotationStatus = "converted_to_order"
)

// IsValid reports whether s is one of the known quotation statuses.
func (s QuotationStatus) IsValid() bool {
	switch s {
	case QuotationStatusDraft, QuotationStatusSent, QuotationStatusAccepted,
		QuotationStatusRejected, QuotationStatusExpired, QuotationStatusConverted:
		return true
	}
	return false
}

// Quotation is a priced proposal sent to a prospective client.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - TotalAmount is the sum of line totals; FinalAmount applies the
//     quotation-level discount percentage.
type Quotation struct {
	ID                 string          `json:"id"`
	ClientID           string          `json:"client_id"`
	Title              string          `json:"title,omitempty"`
	TotalAmount        float64         `json:"total_amount"`
	DiscountPercentage float64         `json:"discount_percentage,omitempty"`
	FinalAmount        float64         `json:"final_amount"`
	Status             QuotationStatus `json:"status"`
	ValidUntil         string          `json:"valid_until,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	OrderID            string          `json:"order_id,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// QuotationItem is a product/quantity/price line attached to a quotation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quotation_id-index): quotation_id
//
// Items become immutable once the parent quotation is converted; the order keeps
// its own frozen copies.
type QuotationItem struct {
	ID                 string    `json:"id"`
	QuotationID        string    `json:"quotation_id"`
	ProductID          string    `json:"product_id"`
	Quantity           int       `json:"quantity"`
	UnitPrice          float64   `json:"unit_price"`
	TotalPrice         float64   `json:"total_price"`
	DiscountPercentage float64   `json:"discount_percentage,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
