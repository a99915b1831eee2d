package interfaces

import (
	"context"
	"horecamart/internal/domain/entities"
)

// IOrderPaymentRepository abstracts DynamoDB persistence for OrderPayment.

type IOrderPaymentRepository interface {
	Create(ctx context.Context, p entities.OrderPayment) (entities.OrderPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
}
