package request

import (
	"strings"

	"horecamart/internal/domain/entities"
)

type QuotationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r QuotationStatusRequest) ResolveStatus() entities.QuotationStatus {
	return entities.QuotationStatus(strings.TrimSpace(r.Status))
}
