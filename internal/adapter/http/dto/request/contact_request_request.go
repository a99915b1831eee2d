package request

import (
	"horecamart/internal/usecase"
)

// ContactRequestRequest is the public inquiry form payload.
type ContactRequestRequest struct {
	Name    string `json:"name" binding:"required"`
	Company string `json:"company"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

func (r ContactRequestRequest) ToInput() usecase.SubmitContactRequestInput {
	return usecase.SubmitContactRequestInput{
		Name:    r.Name,
		Company: r.Company,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}
