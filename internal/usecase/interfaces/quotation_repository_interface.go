package interfaces

import (
	"context"
	"horecamart/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation and its
// line items.
//
// The back-office must be able to:
//   - create a quotation together with its items
//   - load one quotation (and its items) for editing/conversion
//   - update quotation status from the builder screens
//   - list everything for the aggregation/report views

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation, items []entities.QuotationItem) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListAll(ctx context.Context) ([]entities.Quotation, error)
	ListItemsByQuotationID(ctx context.Context, quotationID string) ([]entities.QuotationItem, error)
	ListAllItems(ctx context.Context) ([]entities.QuotationItem, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error)
}
