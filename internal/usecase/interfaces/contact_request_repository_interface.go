package interfaces

import (
	"context"
	"horecamart/internal/domain/entities"
)

// IContactRequestRepository abstracts DynamoDB persistence for ContactRequest.

type IContactRequestRepository interface {
	Create(ctx context.Context, r entities.ContactRequest) (entities.ContactRequest, error)
	ListAll(ctx context.Context) ([]entities.ContactRequest, error)
}
