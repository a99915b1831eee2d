package response

import (
	"time"

	"horecamart/internal/domain/entities"
)

type ClientResponse struct {
	ID            string    `json:"id"`
	CompanyName   string    `json:"company_name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Country       string    `json:"country,omitempty"`
	City          string    `json:"city,omitempty"`
	Address       string    `json:"address,omitempty"`
	UsualDiscount float64   `json:"usual_discount,omitempty"`
	Priority      string    `json:"priority,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:            c.ID,
		CompanyName:   c.CompanyName,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Country:       c.Country,
		City:          c.City,
		Address:       c.Address,
		UsualDiscount: c.UsualDiscount,
		Priority:      string(c.Priority),
		CreatedAt:     c.CreatedAt,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	res := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		res = append(res, FromClient(c))
	}
	return res
}
