package response

import (
	"time"

	"horecamart/internal/domain/entities"
)

type QuotationResponse struct {
	ID                 string    `json:"id"`
	ClientID           string    `json:"client_id"`
	Title              string    `json:"title,omitempty"`
	TotalAmount        float64   `json:"total_amount"`
	DiscountPercentage float64   `json:"discount_percentage,omitempty"`
	FinalAmount        float64   `json:"final_amount"`
	Status             string    `json:"status"`
	ValidUntil         string    `json:"valid_until,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	OrderID            string    `json:"order_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type QuotationItemResponse struct {
	ID                 string    `json:"id"`
	QuotationID        string    `json:"quotation_id"`
	ProductID          string    `json:"product_id"`
	Quantity           int       `json:"quantity"`
	UnitPrice          float64   `json:"unit_price"`
	TotalPrice         float64   `json:"total_price"`
	DiscountPercentage float64   `json:"discount_percentage,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type QuotationDetailResponse struct {
	QuotationResponse
	Items []QuotationItemResponse `json:"items"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:                 q.ID,
		ClientID:           q.ClientID,
		Title:              q.Title,
		TotalAmount:        q.TotalAmount,
		DiscountPercentage: q.DiscountPercentage,
		FinalAmount:        q.FinalAmount,
		Status:             string(q.Status),
		ValidUntil:         q.ValidUntil,
		Notes:              q.Notes,
		OrderID:            q.OrderID,
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
	}
}

func FromQuotationItem(item entities.QuotationItem) QuotationItemResponse {
	return QuotationItemResponse{
		ID:                 item.ID,
		QuotationID:        item.QuotationID,
		ProductID:          item.ProductID,
		Quantity:           item.Quantity,
		UnitPrice:          item.UnitPrice,
		TotalPrice:         item.TotalPrice,
		DiscountPercentage: item.DiscountPercentage,
		CreatedAt:          item.CreatedAt,
	}
}

func FromQuotationWithItems(q entities.Quotation, items []entities.QuotationItem) QuotationDetailResponse {
	res := QuotationDetailResponse{
		QuotationResponse: FromQuotation(q),
		Items:             make([]QuotationItemResponse, 0, len(items)),
	}
	for _, item := range items {
		res.Items = append(res.Items, FromQuotationItem(item))
	}
	return res
}
