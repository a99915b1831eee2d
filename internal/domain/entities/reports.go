package entities

import "time"

// Report types are pure read-time projections over the entity collections;
// none of them are persisted.

// VirtualClientIDPrefix marks ClientStats entries synthesized for contact
// requests that matched no real client.
const VirtualClientIDPrefix = "virtual_"

// ClientStats is the per-client activity rollup shown on the client dashboard.
// Virtual entries represent unattributed inquiries: ID is
// "virtual_<contact request id>" and Virtual is true.
type ClientStats struct {
	ID              string         `json:"id"`
	CompanyName     string         `json:"company_name"`
	ContactPerson   string         `json:"contact_person,omitempty"`
	Email           string         `json:"email,omitempty"`
	Phone           string         `json:"phone,omitempty"`
	Country         string         `json:"country,omitempty"`
	City            string         `json:"city,omitempty"`
	Address         string         `json:"address,omitempty"`
	UsualDiscount   float64        `json:"usual_discount,omitempty"`
	Priority        ClientPriority `json:"priority,omitempty"`
	Virtual         bool           `json:"virtual"`
	TotalMessages   int            `json:"total_messages"`
	TotalQuotations int            `json:"total_quotations"`
	TotalOrders     int            `json:"total_orders"`
	TotalValue      float64        `json:"total_value"`
	CreatedAt       time.Time      `json:"created_at"`
	LastActivity    time.Time      `json:"last_activity"`
}

// ClientActivityReport is the full dashboard payload. TotalQuotationValue is
// returned here explicitly instead of being stashed on shared state for a
// sibling view to pick up.
type ClientActivityReport struct {
	Clients             []ClientStats `json:"clients"`
	TotalQuotationValue float64       `json:"total_quotation_value"`
}

// ProductRanking aggregates line items per product for the top-products
// report.
type ProductRanking struct {
	ProductID     string  `json:"product_id"`
	TotalQuantity int     `json:"total_quantity"`
	TotalAmount   float64 `json:"total_amount"`
}

// ClientReport is the per-client quotation/order conversion summary.
type ClientReport struct {
	ClientID             string  `json:"client_id"`
	CompanyName          string  `json:"company_name"`
	TotalQuotations      int     `json:"total_quotations"`
	TotalOrders          int     `json:"total_orders"`
	TotalQuotationAmount float64 `json:"total_quotation_amount"`
	TotalOrderAmount     float64 `json:"total_order_amount"`
	ConversionRate       float64 `json:"conversion_rate"`
}

// OrderStats is the dashboard bucket summary over all orders.
type OrderStats struct {
	Total              int     `json:"total"`
	WaitingPayment     int     `json:"waiting_payment"`
	ConfirmingSupplier int     `json:"confirming_supplier"`
	ShipmentReady      int     `json:"shipment_ready"`
	Delivered          int     `json:"delivered"`
	TotalValue         float64 `json:"total_value"`
}
