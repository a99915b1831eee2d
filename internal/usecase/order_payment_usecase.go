package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderPaymentNotFound     = errors.New("order payment not found")
	ErrInvalidPaymentPayload    = errors.New("invalid payment payload")
	ErrPaymentGatewayConfigured = errors.New("payment gateway not configured")
)

// IOrderPaymentUseCase encapsulates "create and process a payment for an
// order": call the provider, persist the attempt, and on approval flip the
// order's payment_status axis to paid.

type IOrderPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, orderID string, providerPayload json.RawMessage) (entities.OrderPayment, error)
	LatestByOrderID(ctx context.Context, orderID string) (entities.OrderPayment, error)
}

type OrderPaymentUseCase struct {
	payments interfaces.IOrderPaymentRepository
	orders   interfaces.IOrderRepository
	gateway  interfaces.IPaymentGateway
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

func NewOrderPaymentUseCase(
	payments interfaces.IOrderPaymentRepository,
	orders interfaces.IOrderRepository,
	gateway interfaces.IPaymentGateway,
) *OrderPaymentUseCase {
	return &OrderPaymentUseCase{payments: payments, orders: orders, gateway: gateway}
}

func (u *OrderPaymentUseCase) CreateAndApprove(ctx context.Context, orderID string, providerPayload json.RawMessage) (entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.OrderPayment{}, ErrInvalidOrderID
	}
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	if !json.Valid(providerPayload) {
		return entities.OrderPayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.OrderPayment{}, ErrPaymentGatewayConfigured
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return entities.OrderPayment{}, err
	}
	if order.ID == "" {
		return entities.OrderPayment{}, ErrOrderNotFound
	}

	// Tie the provider payment back to the order and default the amount to
	// what the order is actually worth.
	var payload map[string]any
	if err := json.Unmarshal(providerPayload, &payload); err == nil {
		if _, ok := payload["external_reference"]; !ok {
			payload["external_reference"] = order.ID
		}
		if _, ok := payload["transaction_amount"]; !ok {
			payload["transaction_amount"] = order.FinalAmount
		}
		if enriched, err := json.Marshal(payload); err == nil {
			providerPayload = enriched
		}
	}

	providerPaymentID, providerStatus, providerResponse, err := u.gateway.CreatePayment(ctx, order.ID, providerPayload)
	if err != nil {
		log.Printf("[payment][usecase] gateway create failed order_id=%s err=%v", orderID, err)
		return entities.OrderPayment{}, err
	}

	status := entities.OrderPaymentStatusDenied
	if providerStatus == "approved" {
		status = entities.OrderPaymentStatusApproved
	}

	payment := entities.OrderPayment{
		ID:                 uuid.NewString(),
		OrderID:            order.ID,
		ProviderPaymentID:  providerPaymentID,
		Amount:             order.FinalAmount,
		Date:               time.Now().UTC(),
		Status:             status,
		ProviderPayloadRaw: providerResponse,
	}

	created, err := u.payments.Create(ctx, payment)
	if err != nil {
		log.Printf("[payment][usecase] persist failed order_id=%s provider_payment_id=%s err=%v", orderID, providerPaymentID, err)
		return entities.OrderPayment{}, err
	}

	if status == entities.OrderPaymentStatusApproved {
		paid := entities.PaymentStatusPaid
		if _, err := u.orders.ApplyStatusPatch(ctx, order.ID, entities.OrderStatusPatch{PaymentStatus: &paid}); err != nil {
			// The payment is recorded; the axis flip failing is surfaced so
			// the operator can retry from the tracking screen.
			log.Printf("[payment][usecase] payment recorded but status flip failed order_id=%s err=%v", orderID, err)
			return created, err
		}
	}

	log.Printf("[payment][usecase] payment %s order_id=%s provider_payment_id=%s", status, orderID, providerPaymentID)
	return created, nil
}

func (u *OrderPaymentUseCase) LatestByOrderID(ctx context.Context, orderID string) (entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.OrderPayment{}, ErrInvalidOrderID
	}

	payments, err := u.payments.ListByOrderID(ctx, orderID)
	if err != nil {
		return entities.OrderPayment{}, err
	}
	if len(payments) == 0 {
		return entities.OrderPayment{}, ErrOrderPaymentNotFound
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}
