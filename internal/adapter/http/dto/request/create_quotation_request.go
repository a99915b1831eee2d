package request

import (
	"horecamart/internal/usecase"
)

type QuotationItemRequest struct {
	ProductID          string  `json:"product_id" binding:"required"`
	Quantity           int     `json:"quantity" binding:"required"`
	UnitPrice          float64 `json:"unit_price" binding:"required"`
	DiscountPercentage float64 `json:"discount_percentage"`
}

// CreateQuotationRequest is the quotation-builder payload. Item line totals
// and the quotation totals are computed server side; clients only send the
// raw lines.
type CreateQuotationRequest struct {
	ClientID           string                 `json:"client_id" binding:"required"`
	Title              string                 `json:"title"`
	DiscountPercentage float64                `json:"discount_percentage"`
	ValidUntil         string                 `json:"valid_until"`
	Notes              string                 `json:"notes"`
	Items              []QuotationItemRequest `json:"items" binding:"required"`
}

func (r CreateQuotationRequest) ToInput() usecase.CreateQuotationInput {
	items := make([]usecase.QuotationItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, usecase.QuotationItemInput{
			ProductID:          item.ProductID,
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
			DiscountPercentage: item.DiscountPercentage,
		})
	}
	return usecase.CreateQuotationInput{
		ClientID:           r.ClientID,
		Title:              r.Title,
		DiscountPercentage: r.DiscountPercentage,
		ValidUntil:         r.ValidUntil,
		Notes:              r.Notes,
		Items:              items,
	}
}
