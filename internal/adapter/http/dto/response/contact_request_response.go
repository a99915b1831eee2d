package response

import (
	"time"

	"horecamart/internal/domain/entities"
)

type ContactRequestResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromContactRequest(req entities.ContactRequest) ContactRequestResponse {
	return ContactRequestResponse{
		ID:        req.ID,
		Name:      req.Name,
		Company:   req.Company,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: req.CreatedAt,
	}
}

func FromContactRequests(requests []entities.ContactRequest) []ContactRequestResponse {
	res := make([]ContactRequestResponse, 0, len(requests))
	for _, req := range requests {
		res = append(res, FromContactRequest(req))
	}
	return res
}
