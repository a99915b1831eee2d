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
	ErrInvalidQuotationID        = errors.New("invalid quotation id")
	ErrQuotationNotFound         = errors.New("quotation not found")
	ErrQuotationAlreadyConverted = errors.New("quotation already converted to order")
)

// IOrderConversionUseCase exposes the one-time quotation→order conversion.
//
// Converting an accepted quotation:
//   - allocates the next order number from the atomic sequence
//   - materializes the order and frozen copies of the quotation lines
//   - flips the quotation to converted_to_order with the order id set
//
// The last three effects commit as a single store transaction, so a quotation
// can never end up converted twice and a half-created order is never visible.

type IOrderConversionUseCase interface {
	Convert(ctx context.Context, quotationID string) (entities.Order, error)
}

type OrderConversionUseCase struct {
	quotations interfaces.IQuotationRepository
	sequence   interfaces.IOrderSequenceRepository
	conversion interfaces.IConversionRepository
}

var _ IOrderConversionUseCase = (*OrderConversionUseCase)(nil)

func NewOrderConversionUseCase(
	quotations interfaces.IQuotationRepository,
	sequence interfaces.IOrderSequenceRepository,
	conversion interfaces.IConversionRepository,
) *OrderConversionUseCase {
	return &OrderConversionUseCase{quotations: quotations, sequence: sequence, conversion: conversion}
}

func (u *OrderConversionUseCase) Convert(ctx context.Context, quotationID string) (entities.Order, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.Order{}, ErrInvalidQuotationID
	}

	q, err := u.quotations.GetByID(ctx, quotationID)
	if err != nil {
		log.Printf("[conversion][usecase] failed loading quotation quotation_id=%s err=%v", quotationID, err)
		return entities.Order{}, err
	}
	if q.ID == "" {
		return entities.Order{}, ErrQuotationNotFound
	}
	if q.Status == entities.QuotationStatusConverted {
		return entities.Order{}, ErrQuotationAlreadyConverted
	}

	quotationItems, err := u.quotations.ListItemsByQuotationID(ctx, quotationID)
	if err != nil {
		log.Printf("[conversion][usecase] failed loading quotation items quotation_id=%s err=%v", quotationID, err)
		return entities.Order{}, err
	}

	seq, err := u.sequence.NextOrderNumber(ctx)
	if err != nil {
		log.Printf("[conversion][usecase] failed allocating order number quotation_id=%s err=%v", quotationID, err)
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:             uuid.NewString(),
		QuotationID:    q.ID,
		OrderNumber:    entities.FormatOrderNumber(seq),
		ClientID:       q.ClientID,
		Title:          q.Title,
		TotalAmount:    q.TotalAmount,
		FinalAmount:    q.FinalAmount,
		OrderStatus:    entities.OrderStatusWaitingPayment,
		PaymentStatus:  entities.PaymentStatusPending,
		SupplierStatus: entities.SupplierStatusPending,
		ShipmentStatus: entities.ShipmentStatusPending,
		OrderDate:      now,
		Notes:          q.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	orderItems := make([]entities.OrderItem, 0, len(quotationItems))
	for _, it := range quotationItems {
		orderItems = append(orderItems, entities.OrderItem{
			ID:                 uuid.NewString(),
			OrderID:            order.ID,
			ProductID:          it.ProductID,
			Quantity:           it.Quantity,
			UnitPrice:          it.UnitPrice,
			TotalPrice:         it.TotalPrice,
			DiscountPercentage: it.DiscountPercentage,
			CreatedAt:          now,
		})
	}

	if err := u.conversion.CommitConversion(ctx, order, orderItems); err != nil {
		if errors.Is(err, interfaces.ErrConversionConflict) {
			// Another operator converted this quotation between our read and
			// the transaction; the allocated number stays a gap.
			log.Printf("[conversion][usecase] conversion conflict quotation_id=%s order_number=%s", quotationID, order.OrderNumber)
			return entities.Order{}, ErrQuotationAlreadyConverted
		}
		log.Printf("[conversion][usecase] commit failed quotation_id=%s order_number=%s err=%v", quotationID, order.OrderNumber, err)
		return entities.Order{}, err
	}

	log.Printf("[conversion][usecase] converted quotation_id=%s order_id=%s order_number=%s items=%d",
		quotationID, order.ID, order.OrderNumber, len(orderItems))
	return order, nil
}
