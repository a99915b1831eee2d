package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidStatusValue   = errors.New("invalid status value")
	ErrEmptyStatusPatch     = errors.New("empty status patch")
	ErrTransitionNotAllowed = errors.New("order status transition not allowed")
)

// IOrderStatusUseCase exposes order tracking: listing, detail, and updates to
// the four independent status axes plus delivery metadata.
//
// Each axis only validates membership in its own value set; any combination of
// axes may coexist. WithStrictTransitions opts into validating order_status
// against the conventional pipeline instead.

type IOrderStatusUseCase interface {
	List(ctx context.Context) ([]entities.Order, error)
	GetWithItems(ctx context.Context, orderID string) (entities.Order, []entities.OrderItem, error)
	UpdateStatus(ctx context.Context, orderID string, patch entities.OrderStatusPatch) (entities.Order, error)
}

type OrderStatusUseCase struct {
	orders interfaces.IOrderRepository
	strict bool
}

var _ IOrderStatusUseCase = (*OrderStatusUseCase)(nil)

type OrderStatusOption func(*OrderStatusUseCase)

// WithStrictTransitions validates order_status changes against the
// conventional pipeline (forward-only, cancelled from any non-terminal
// state). Off by default to preserve the permissive behavior operators rely
// on today.
func WithStrictTransitions() OrderStatusOption {
	return func(u *OrderStatusUseCase) { u.strict = true }
}

func NewOrderStatusUseCase(orders interfaces.IOrderRepository, opts ...OrderStatusOption) *OrderStatusUseCase {
	u := &OrderStatusUseCase{orders: orders}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *OrderStatusUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.orders.ListAll(ctx)
}

func (u *OrderStatusUseCase) GetWithItems(ctx context.Context, orderID string) (entities.Order, []entities.OrderItem, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, nil, ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, nil, err
	}
	if order.ID == "" {
		return entities.Order{}, nil, ErrOrderNotFound
	}

	items, err := u.orders.ListItemsByOrderID(ctx, orderID)
	if err != nil {
		return entities.Order{}, nil, err
	}
	return order, items, nil
}

func (u *OrderStatusUseCase) UpdateStatus(ctx context.Context, orderID string, patch entities.OrderStatusPatch) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if patch.IsEmpty() {
		return entities.Order{}, ErrEmptyStatusPatch
	}
	if err := validateStatusPatch(patch); err != nil {
		return entities.Order{}, err
	}

	// An empty expected-delivery value means "clear the date", never "write
	// an empty date string".
	if patch.ExpectedDelivery != nil {
		trimmed := strings.TrimSpace(*patch.ExpectedDelivery)
		patch.ExpectedDelivery = &trimmed
	}
	if patch.ActualDelivery != nil {
		trimmed := strings.TrimSpace(*patch.ActualDelivery)
		patch.ActualDelivery = &trimmed
	}

	if u.strict && patch.OrderStatus != nil {
		current, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return entities.Order{}, err
		}
		if current.ID == "" {
			return entities.Order{}, ErrOrderNotFound
		}
		if !current.OrderStatus.CanTransitionTo(*patch.OrderStatus) {
			log.Printf("[tracking][usecase] transition rejected order_id=%s from=%s to=%s",
				orderID, current.OrderStatus, *patch.OrderStatus)
			return entities.Order{}, ErrTransitionNotAllowed
		}
	}

	updated, err := u.orders.ApplyStatusPatch(ctx, orderID, patch)
	if err != nil {
		log.Printf("[tracking][usecase] status update failed order_id=%s err=%v", orderID, err)
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[tracking][usecase] status updated order_id=%s order_status=%s payment_status=%s supplier_status=%s shipment_status=%s",
		updated.ID, updated.OrderStatus, updated.PaymentStatus, updated.SupplierStatus, updated.ShipmentStatus)
	return updated, nil
}

func validateStatusPatch(patch entities.OrderStatusPatch) error {
	if patch.OrderStatus != nil && !patch.OrderStatus.IsValid() {
		return ErrInvalidStatusValue
	}
	if patch.PaymentStatus != nil && !patch.PaymentStatus.IsValid() {
		return ErrInvalidStatusValue
	}
	if patch.SupplierStatus != nil && !patch.SupplierStatus.IsValid() {
		return ErrInvalidStatusValue
	}
	if patch.ShipmentStatus != nil && !patch.ShipmentStatus.IsValid() {
		return ErrInvalidStatusValue
	}
	return nil
}
