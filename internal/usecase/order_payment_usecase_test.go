package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderPaymentUseCase_CreateAndApprove(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewOrderPaymentUseCase(mocks.NewMockIOrderPaymentRepository(ctrl), mocks.NewMockIOrderRepository(ctrl), mocks.NewMockIPaymentGateway(ctrl))

		if _, err := uc.CreateAndApprove(context.Background(), "o-1", json.RawMessage("{broken")); !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewOrderPaymentUseCase(mocks.NewMockIOrderPaymentRepository(ctrl), mocks.NewMockIOrderRepository(ctrl), nil)

		if _, err := uc.CreateAndApprove(context.Background(), "o-1", nil); !errors.Is(err, ErrPaymentGatewayConfigured) {
			t.Fatalf("expected ErrPaymentGatewayConfigured, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderRepository(ctrl)
		uc := NewOrderPaymentUseCase(mocks.NewMockIOrderPaymentRepository(ctrl), orders, mocks.NewMockIPaymentGateway(ctrl))

		orders.EXPECT().GetByID(gomock.Any(), "o-missing").Return(entities.Order{}, nil)

		if _, err := uc.CreateAndApprove(context.Background(), "o-missing", nil); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("approved payment flips the order payment axis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIOrderPaymentRepository(ctrl)
		orders := mocks.NewMockIOrderRepository(ctrl)
		gateway := mocks.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(payments, orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", FinalAmount: 250}, nil)

		var sent map[string]any
		gateway.EXPECT().CreatePayment(gomock.Any(), "o-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, payload json.RawMessage) (string, string, json.RawMessage, error) {
				if err := json.Unmarshal(payload, &sent); err != nil {
					t.Fatalf("gateway received invalid json: %v", err)
				}
				return "mp-123", "approved", json.RawMessage(`{"id":"mp-123","status":"approved"}`), nil
			})
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
				return p, nil
			})
		orders.EXPECT().ApplyStatusPatch(gomock.Any(), "o-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, patch entities.OrderStatusPatch) (entities.Order, error) {
				if patch.PaymentStatus == nil || *patch.PaymentStatus != entities.PaymentStatusPaid {
					t.Fatalf("expected payment_status=paid patch, got %+v", patch)
				}
				return entities.Order{ID: id, PaymentStatus: entities.PaymentStatusPaid}, nil
			})

		created, err := uc.CreateAndApprove(context.Background(), "o-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.OrderPaymentStatusApproved || created.ProviderPaymentID != "mp-123" {
			t.Fatalf("unexpected payment: %+v", created)
		}
		if created.Amount != 250 {
			t.Fatalf("expected payment amount from order, got %.2f", created.Amount)
		}

		// The outgoing payload is enriched with the order reference and amount.
		if sent["external_reference"] != "o-1" {
			t.Fatalf("expected external_reference o-1, got %v", sent["external_reference"])
		}
		if sent["transaction_amount"] != float64(250) {
			t.Fatalf("expected transaction_amount 250, got %v", sent["transaction_amount"])
		}
	})

	t.Run("denied payment leaves the order untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIOrderPaymentRepository(ctrl)
		orders := mocks.NewMockIOrderRepository(ctrl)
		gateway := mocks.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(payments, orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", FinalAmount: 250}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), "o-1", gomock.Any()).
			Return("mp-124", "rejected", json.RawMessage(`{"id":"mp-124","status":"rejected"}`), nil)
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
				return p, nil
			})

		created, err := uc.CreateAndApprove(context.Background(), "o-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.OrderPaymentStatusDenied {
			t.Fatalf("expected denied payment, got %s", created.Status)
		}
	})
}

func TestOrderPaymentUseCase_LatestByOrderID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIOrderPaymentRepository(ctrl)
		uc := NewOrderPaymentUseCase(payments, mocks.NewMockIOrderRepository(ctrl), mocks.NewMockIPaymentGateway(ctrl))

		payments.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return(nil, nil)

		if _, err := uc.LatestByOrderID(context.Background(), "o-1"); !errors.Is(err, ErrOrderPaymentNotFound) {
			t.Fatalf("expected ErrOrderPaymentNotFound, got %v", err)
		}
	})

	t.Run("picks the most recent payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIOrderPaymentRepository(ctrl)
		uc := NewOrderPaymentUseCase(payments, mocks.NewMockIOrderRepository(ctrl), mocks.NewMockIPaymentGateway(ctrl))

		now := time.Now().UTC()
		payments.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return([]entities.OrderPayment{
			{ID: "pay-1", Date: now.Add(-2 * time.Hour)},
			{ID: "pay-3", Date: now},
			{ID: "pay-2", Date: now.Add(-time.Hour)},
		}, nil)

		latest, err := uc.LatestByOrderID(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if latest.ID != "pay-3" {
			t.Fatalf("expected pay-3, got %s", latest.ID)
		}
	})
}
