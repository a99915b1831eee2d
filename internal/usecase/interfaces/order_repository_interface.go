package interfaces

import (
	"context"
	"horecamart/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order and OrderItem.
//
// Orders are created only through IConversionRepository; this interface covers
// the read paths and the status-tracking updates that happen afterwards.

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
	ListItemsByOrderID(ctx context.Context, orderID string) ([]entities.OrderItem, error)
	ListAllItems(ctx context.Context) ([]entities.OrderItem, error)
	ApplyStatusPatch(ctx context.Context, id string, patch entities.OrderStatusPatch) (entities.Order, error)
}
