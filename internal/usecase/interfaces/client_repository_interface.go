package interfaces

import (
	"context"
	"horecamart/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.

type IClientRepository interface {
	GetByID(ctx context.Context, id string) (entities.Client, error)
	ListAll(ctx context.Context) ([]entities.Client, error)
}
