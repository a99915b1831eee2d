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

var ErrInvalidContactRequest = errors.New("invalid contact request")

// SubmitContactRequestInput is the storefront inquiry form payload.
type SubmitContactRequestInput struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Message string
}

// IContactRequestUseCase exposes the public inquiry intake and the admin
// listing the activity aggregator also reads from.

type IContactRequestUseCase interface {
	Submit(ctx context.Context, input SubmitContactRequestInput) (entities.ContactRequest, error)
	List(ctx context.Context) ([]entities.ContactRequest, error)
}

type ContactRequestUseCase struct {
	contactRequests interfaces.IContactRequestRepository
}

var _ IContactRequestUseCase = (*ContactRequestUseCase)(nil)

func NewContactRequestUseCase(contactRequests interfaces.IContactRequestRepository) *ContactRequestUseCase {
	return &ContactRequestUseCase{contactRequests: contactRequests}
}

func (u *ContactRequestUseCase) Submit(ctx context.Context, input SubmitContactRequestInput) (entities.ContactRequest, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)
	if name == "" || email == "" || message == "" {
		return entities.ContactRequest{}, ErrInvalidContactRequest
	}

	r := entities.ContactRequest{
		ID:        uuid.NewString(),
		Name:      name,
		Company:   strings.TrimSpace(input.Company),
		Email:     email,
		Phone:     strings.TrimSpace(input.Phone),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	created, err := u.contactRequests.Create(ctx, r)
	if err != nil {
		log.Printf("[contact][usecase] create failed email=%s err=%v", email, err)
		return entities.ContactRequest{}, err
	}
	log.Printf("[contact][usecase] inquiry received request_id=%s company=%q", created.ID, created.Company)
	return created, nil
}

func (u *ContactRequestUseCase) List(ctx context.Context) ([]entities.ContactRequest, error) {
	return u.contactRequests.ListAll(ctx)
}
