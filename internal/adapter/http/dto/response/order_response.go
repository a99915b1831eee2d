package response

import (
	"time"

	"horecamart/internal/domain/entities"
)

type OrderResponse struct {
	ID               string    `json:"id"`
	QuotationID      string    `json:"quotation_id"`
	OrderNumber      string    `json:"order_number"`
	ClientID         string    `json:"client_id"`
	Title            string    `json:"title,omitempty"`
	TotalAmount      float64   `json:"total_amount"`
	FinalAmount      float64   `json:"final_amount"`
	OrderStatus      string    `json:"order_status"`
	PaymentStatus    string    `json:"payment_status"`
	SupplierStatus   string    `json:"supplier_status"`
	ShipmentStatus   string    `json:"shipment_status"`
	OrderDate        time.Time `json:"order_date"`
	ExpectedDelivery string    `json:"expected_delivery,omitempty"`
	ActualDelivery   string    `json:"actual_delivery,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type OrderItemResponse struct {
	ID                 string    `json:"id"`
	OrderID            string    `json:"order_id"`
	ProductID          string    `json:"product_id"`
	Quantity           int       `json:"quantity"`
	UnitPrice          float64   `json:"unit_price"`
	TotalPrice         float64   `json:"total_price"`
	DiscountPercentage float64   `json:"discount_percentage,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type OrderDetailResponse struct {
	OrderResponse
	Items []OrderItemResponse `json:"items"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		QuotationID:      o.QuotationID,
		OrderNumber:      o.OrderNumber,
		ClientID:         o.ClientID,
		Title:            o.Title,
		TotalAmount:      o.TotalAmount,
		FinalAmount:      o.FinalAmount,
		OrderStatus:      string(o.OrderStatus),
		PaymentStatus:    string(o.PaymentStatus),
		SupplierStatus:   string(o.SupplierStatus),
		ShipmentStatus:   string(o.ShipmentStatus),
		OrderDate:        o.OrderDate,
		ExpectedDelivery: o.ExpectedDelivery,
		ActualDelivery:   o.ActualDelivery,
		Notes:            o.Notes,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	res := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, FromOrder(o))
	}
	return res
}

func FromOrderItem(item entities.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:                 item.ID,
		OrderID:            item.OrderID,
		ProductID:          item.ProductID,
		Quantity:           item.Quantity,
		UnitPrice:          item.UnitPrice,
		TotalPrice:         item.TotalPrice,
		DiscountPercentage: item.DiscountPercentage,
		CreatedAt:          item.CreatedAt,
	}
}

func FromOrderWithItems(o entities.Order, items []entities.OrderItem) OrderDetailResponse {
	res := OrderDetailResponse{
		OrderResponse: FromOrder(o),
		Items:         make([]OrderItemResponse, 0, len(items)),
	}
	for _, item := range items {
		res.Items = append(res.Items, FromOrderItem(item))
	}
	return res
}
