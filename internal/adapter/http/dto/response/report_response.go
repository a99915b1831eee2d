package response

import (
	"time"

	"horecamart/internal/domain/entities"
)

type ClientStatsResponse struct {
	ID              string    `json:"id"`
	CompanyName     string    `json:"company_name"`
	ContactPerson   string    `json:"contact_person,omitempty"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Country         string    `json:"country,omitempty"`
	City            string    `json:"city,omitempty"`
	Address         string    `json:"address,omitempty"`
	UsualDiscount   float64   `json:"usual_discount,omitempty"`
	Priority        string    `json:"priority,omitempty"`
	Virtual         bool      `json:"virtual"`
	TotalMessages   int       `json:"total_messages"`
	TotalQuotations int       `json:"total_quotations"`
	TotalOrders     int       `json:"total_orders"`
	TotalValue      float64   `json:"total_value"`
	CreatedAt       time.Time `json:"created_at"`
	LastActivity    time.Time `json:"last_activity"`
}

type ClientActivityResponse struct {
	Clients             []ClientStatsResponse `json:"clients"`
	TotalQuotationValue float64               `json:"total_quotation_value"`
}

type ProductRankingResponse struct {
	ProductID     string  `json:"product_id"`
	TotalQuantity int     `json:"total_quantity"`
	TotalAmount   float64 `json:"total_amount"`
}

type ClientReportResponse struct {
	ClientID             string  `json:"client_id"`
	CompanyName          string  `json:"company_name"`
	TotalQuotations      int     `json:"total_quotations"`
	TotalOrders          int     `json:"total_orders"`
	TotalQuotationAmount float64 `json:"total_quotation_amount"`
	TotalOrderAmount     float64 `json:"total_order_amount"`
	ConversionRate       float64 `json:"conversion_rate"`
}

type OrderStatsResponse struct {
	Total              int     `json:"total"`
	WaitingPayment     int     `json:"waiting_payment"`
	ConfirmingSupplier int     `json:"confirming_supplier"`
	ShipmentReady      int     `json:"shipment_ready"`
	Delivered          int     `json:"delivered"`
	TotalValue         float64 `json:"total_value"`
}

func FromClientStats(s entities.ClientStats) ClientStatsResponse {
	return ClientStatsResponse{
		ID:              s.ID,
		CompanyName:     s.CompanyName,
		ContactPerson:   s.ContactPerson,
		Email:           s.Email,
		Phone:           s.Phone,
		Country:         s.Country,
		City:            s.City,
		Address:         s.Address,
		UsualDiscount:   s.UsualDiscount,
		Priority:        string(s.Priority),
		Virtual:         s.Virtual,
		TotalMessages:   s.TotalMessages,
		TotalQuotations: s.TotalQuotations,
		TotalOrders:     s.TotalOrders,
		TotalValue:      s.TotalValue,
		CreatedAt:       s.CreatedAt,
		LastActivity:    s.LastActivity,
	}
}

func FromClientActivityReport(report entities.ClientActivityReport) ClientActivityResponse {
	res := ClientActivityResponse{
		Clients:             make([]ClientStatsResponse, 0, len(report.Clients)),
		TotalQuotationValue: report.TotalQuotationValue,
	}
	for _, s := range report.Clients {
		res.Clients = append(res.Clients, FromClientStats(s))
	}
	return res
}

func FromProductRankings(rankings []entities.ProductRanking) []ProductRankingResponse {
	res := make([]ProductRankingResponse, 0, len(rankings))
	for _, r := range rankings {
		res = append(res, ProductRankingResponse(r))
	}
	return res
}

func FromClientReports(reports []entities.ClientReport) []ClientReportResponse {
	res := make([]ClientReportResponse, 0, len(reports))
	for _, r := range reports {
		res = append(res, ClientReportResponse(r))
	}
	return res
}

func FromOrderStats(stats entities.OrderStats) OrderStatsResponse {
	return OrderStatsResponse(stats)
}
