package usecase

import (
	"context"
	"errors"
	"strings"

	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase/interfaces"
)

var ErrClientNotFound = errors.New("client not found")

// IClientDirectoryUseCase exposes the admin client list/detail reads.

type IClientDirectoryUseCase interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, clientID string) (entities.Client, error)
}

type ClientDirectoryUseCase struct {
	clients interfaces.IClientRepository
}

var _ IClientDirectoryUseCase = (*ClientDirectoryUseCase)(nil)

func NewClientDirectoryUseCase(clients interfaces.IClientRepository) *ClientDirectoryUseCase {
	return &ClientDirectoryUseCase{clients: clients}
}

func (u *ClientDirectoryUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.clients.ListAll(ctx)
}

func (u *ClientDirectoryUseCase) GetByID(ctx context.Context, clientID string) (entities.Client, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}
