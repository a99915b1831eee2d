package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidClientID         = errors.New("invalid client id")
	ErrNoQuotationItems        = errors.New("quotation has no items")
	ErrInvalidQuotationItem    = errors.New("invalid quotation item")
	ErrInvalidQuotationStatus  = errors.New("invalid quotation status")
	ErrQuotationStatusReserved = errors.New("converted_to_order is set by conversion only")
)

// QuotationItemInput is one line of a new quotation.
type QuotationItemInput struct {
	ProductID          string
	Quantity           int
	UnitPrice          float64
	DiscountPercentage float64
}

// CreateQuotationInput is the builder payload for a new quotation.
type CreateQuotationInput struct {
	ClientID           string
	Title              string
	DiscountPercentage float64
	ValidUntil         string
	Notes              string
	Items              []QuotationItemInput
}

// IQuotationUseCase exposes quotation building and lifecycle operations.
//
// Conversion to an order is deliberately not here; see
// IOrderConversionUseCase.

type IQuotationUseCase interface {
	Create(ctx context.Context, input CreateQuotationInput) (entities.Quotation, []entities.QuotationItem, error)
	GetWithItems(ctx context.Context, quotationID string) (entities.Quotation, []entities.QuotationItem, error)
	UpdateStatus(ctx context.Context, quotationID string, status entities.QuotationStatus) (entities.Quotation, error)
}

type QuotationUseCase struct {
	quotations interfaces.IQuotationRepository
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(quotations interfaces.IQuotationRepository) *QuotationUseCase {
	return &QuotationUseCase{quotations: quotations}
}

func (u *QuotationUseCase) Create(ctx context.Context, input CreateQuotationInput) (entities.Quotation, []entities.QuotationItem, error) {
	clientID := strings.TrimSpace(input.ClientID)
	if clientID == "" {
		return entities.Quotation{}, nil, ErrInvalidClientID
	}
	if len(input.Items) == 0 {
		return entities.Quotation{}, nil, ErrNoQuotationItems
	}

	now := time.Now().UTC()
	q := entities.Quotation{
		ID:                 uuid.NewString(),
		ClientID:           clientID,
		Title:              strings.TrimSpace(input.Title),
		DiscountPercentage: input.DiscountPercentage,
		Status:             entities.QuotationStatusDraft,
		ValidUntil:         strings.TrimSpace(input.ValidUntil),
		Notes:              input.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	items := make([]entities.QuotationItem, 0, len(input.Items))
	for _, in := range input.Items {
		productID := strings.TrimSpace(in.ProductID)
		if productID == "" || in.Quantity <= 0 || in.UnitPrice < 0 ||
			in.DiscountPercentage < 0 || in.DiscountPercentage > 100 {
			return entities.Quotation{}, nil, ErrInvalidQuotationItem
		}
		total := LineTotal(in.Quantity, in.UnitPrice, in.DiscountPercentage)
		items = append(items, entities.QuotationItem{
			ID:                 uuid.NewString(),
			QuotationID:        q.ID,
			ProductID:          productID,
			Quantity:           in.Quantity,
			UnitPrice:          in.UnitPrice,
			TotalPrice:         total,
			DiscountPercentage: in.DiscountPercentage,
			CreatedAt:          now,
		})
		q.TotalAmount += total
	}

	if input.DiscountPercentage < 0 || input.DiscountPercentage > 100 {
		return entities.Quotation{}, nil, ErrInvalidQuotationItem
	}
	q.FinalAmount = q.TotalAmount * (1 - input.DiscountPercentage/100)

	created, err := u.quotations.Create(ctx, q, items)
	if err != nil {
		log.Printf("[quotation][usecase] create failed client_id=%s err=%v", clientID, err)
		return entities.Quotation{}, nil, err
	}
	log.Printf("[quotation][usecase] created quotation_id=%s client_id=%s items=%d final_amount=%.2f",
		created.ID, clientID, len(items), created.FinalAmount)
	return created, items, nil
}

func (u *QuotationUseCase) GetWithItems(ctx context.Context, quotationID string) (entities.Quotation, []entities.QuotationItem, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.Quotation{}, nil, ErrInvalidQuotationID
	}

	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, nil, err
	}
	if q.ID == "" {
		return entities.Quotation{}, nil, ErrQuotationNotFound
	}

	items, err := u.quotations.ListItemsByQuotationID(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, nil, err
	}
	return q, items, nil
}

func (u *QuotationUseCase) UpdateStatus(ctx context.Context, quotationID string, status entities.QuotationStatus) (entities.Quotation, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	if !status.IsValid() {
		return entities.Quotation{}, ErrInvalidQuotationStatus
	}
	if status == entities.QuotationStatusConverted {
		return entities.Quotation{}, ErrQuotationStatusReserved
	}

	current, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if current.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	if current.Status == entities.QuotationStatusConverted {
		return entities.Quotation{}, ErrQuotationAlreadyConverted
	}

	updated, err := u.quotations.UpdateStatus(ctx, quotationID, status)
	if err != nil {
		log.Printf("[quotation][usecase] status update failed quotation_id=%s err=%v", quotationID, err)
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return updated, nil
}

// LineTotal computes a quotation/order line amount: quantity times unit price
// with the optional item-level discount applied.
func LineTotal(quantity int, unitPrice, discountPercentage float64) float64 {
	total := float64(quantity) * unitPrice
	if discountPercentage > 0 && discountPercentage <= 100 {
		total *= 1 - discountPercentage/100
	}
	return total
}
