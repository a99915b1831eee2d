package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase/interfaces"
	"horecamart/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderConversionUseCase_Convert(t *testing.T) {
	t.Run("invalid quotation id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewOrderConversionUseCase(mocks.NewMockIQuotationRepository(ctrl), mocks.NewMockIOrderSequenceRepository(ctrl), mocks.NewMockIConversionRepository(ctrl))

		if _, err := uc.Convert(context.Background(), "   "); !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("quotation not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotations := mocks.NewMockIQuotationRepository(ctrl)
		uc := NewOrderConversionUseCase(quotations, mocks.NewMockIOrderSequenceRepository(ctrl), mocks.NewMockIConversionRepository(ctrl))

		quotations.EXPECT().GetByID(gomock.Any(), "q-missing").Return(entities.Quotation{}, nil)

		if _, err := uc.Convert(context.Background(), "q-missing"); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("already converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotations := mocks.NewMockIQuotationRepository(ctrl)
		uc := NewOrderConversionUseCase(quotations, mocks.NewMockIOrderSequenceRepository(ctrl), mocks.NewMockIConversionRepository(ctrl))

		quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{
			ID:     "q-1",
			Status: entities.QuotationStatusConverted,
		}, nil)

		if _, err := uc.Convert(context.Background(), "q-1"); !errors.Is(err, ErrQuotationAlreadyConverted) {
			t.Fatalf("expected ErrQuotationAlreadyConverted, got %v", err)
		}
	})

	t.Run("success copies the quotation and freezes items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotations := mocks.NewMockIQuotationRepository(ctrl)
		sequence := mocks.NewMockIOrderSequenceRepository(ctrl)
		conversion := mocks.NewMockIConversionRepository(ctrl)
		uc := NewOrderConversionUseCase(quotations, sequence, conversion)

		created := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
		quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{
			ID:          "q-1",
			ClientID:    "c-1",
			Title:       "Kitchen line refresh",
			TotalAmount: 55,
			FinalAmount: 55,
			Status:      entities.QuotationStatusAccepted,
			Notes:       "deliver to loading dock",
			CreatedAt:   created,
		}, nil)
		quotations.EXPECT().ListItemsByQuotationID(gomock.Any(), "q-1").Return([]entities.QuotationItem{
			{ID: "qi-1", QuotationID: "q-1", ProductID: "p-oven", Quantity: 3, UnitPrice: 10, TotalPrice: 30},
			{ID: "qi-2", QuotationID: "q-1", ProductID: "p-fridge", Quantity: 1, UnitPrice: 25, TotalPrice: 25},
		}, nil)
		sequence.EXPECT().NextOrderNumber(gomock.Any()).Return(4, nil)

		var committed entities.Order
		var committedItems []entities.OrderItem
		conversion.EXPECT().CommitConversion(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order entities.Order, items []entities.OrderItem) error {
				committed = order
				committedItems = items
				return nil
			})

		order, err := uc.Convert(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if order.OrderNumber != "ORD-004" {
			t.Fatalf("expected ORD-004, got %s", order.OrderNumber)
		}
		if order.QuotationID != "q-1" || order.ClientID != "c-1" {
			t.Fatalf("unexpected references: %+v", order)
		}
		if order.TotalAmount != 55 || order.FinalAmount != 55 {
			t.Fatalf("unexpected amounts: %+v", order)
		}
		if order.OrderStatus != entities.OrderStatusWaitingPayment ||
			order.PaymentStatus != entities.PaymentStatusPending ||
			order.SupplierStatus != entities.SupplierStatusPending ||
			order.ShipmentStatus != entities.ShipmentStatusPending {
			t.Fatalf("unexpected status defaults: %+v", order)
		}
		if order.Notes != "deliver to loading dock" {
			t.Fatalf("expected notes to be carried over")
		}
		if order.ID == "" || order.ID == "q-1" {
			t.Fatalf("expected a fresh order id, got %q", order.ID)
		}

		if committed.ID != order.ID {
			t.Fatalf("committed order differs from returned order")
		}
		if len(committedItems) != 2 {
			t.Fatalf("expected 2 frozen items, got %d", len(committedItems))
		}
		for i, item := range committedItems {
			if item.OrderID != order.ID {
				t.Fatalf("item %d not linked to order: %+v", i, item)
			}
			if item.ID == "" || item.ID == "qi-1" || item.ID == "qi-2" {
				t.Fatalf("item %d should get a fresh id, got %q", i, item.ID)
			}
		}
		if committedItems[0].ProductID != "p-oven" || committedItems[0].Quantity != 3 || committedItems[0].TotalPrice != 30 {
			t.Fatalf("unexpected first item: %+v", committedItems[0])
		}
		if committedItems[1].ProductID != "p-fridge" || committedItems[1].Quantity != 1 || committedItems[1].TotalPrice != 25 {
			t.Fatalf("unexpected second item: %+v", committedItems[1])
		}
	})

	t.Run("commit conflict maps to already converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotations := mocks.NewMockIQuotationRepository(ctrl)
		sequence := mocks.NewMockIOrderSequenceRepository(ctrl)
		conversion := mocks.NewMockIConversionRepository(ctrl)
		uc := NewOrderConversionUseCase(quotations, sequence, conversion)

		quotations.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusSent}, nil)
		quotations.EXPECT().ListItemsByQuotationID(gomock.Any(), "q-1").Return(nil, nil)
		sequence.EXPECT().NextOrderNumber(gomock.Any()).Return(7, nil)
		conversion.EXPECT().CommitConversion(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("%w: quotation q-1", interfaces.ErrConversionConflict))

		if _, err := uc.Convert(context.Background(), "q-1"); !errors.Is(err, ErrQuotationAlreadyConverted) {
			t.Fatalf("expected ErrQuotationAlreadyConverted, got %v", err)
		}
	})

	t.Run("concurrent conversions never share an order number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotations := mocks.NewMockIQuotationRepository(ctrl)
		sequence := mocks.NewMockIOrderSequenceRepository(ctrl)
		conversion := mocks.NewMockIConversionRepository(ctrl)
		uc := NewOrderConversionUseCase(quotations, sequence, conversion)

		quotations.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id string) (entities.Quotation, error) {
				return entities.Quotation{ID: id, ClientID: "c-1", Status: entities.QuotationStatusAccepted}, nil
			}).AnyTimes()
		quotations.EXPECT().ListItemsByQuotationID(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		var counter atomic.Int64
		sequence.EXPECT().NextOrderNumber(gomock.Any()).
			DoAndReturn(func(_ context.Context) (int, error) {
				return int(counter.Add(1)), nil
			}).AnyTimes()
		conversion.EXPECT().CommitConversion(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		const n = 16
		var mu sync.Mutex
		seen := make(map[string]string, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				order, err := uc.Convert(context.Background(), fmt.Sprintf("q-%d", i))
				if err != nil {
					t.Errorf("convert q-%d: %v", i, err)
					return
				}
				mu.Lock()
				defer mu.Unlock()
				if prev, dup := seen[order.OrderNumber]; dup {
					t.Errorf("order number %s allocated to both %s and %s", order.OrderNumber, prev, order.QuotationID)
				}
				seen[order.OrderNumber] = order.QuotationID
			}(i)
		}
		wg.Wait()

		if len(seen) != n {
			t.Fatalf("expected %d distinct order numbers, got %d", n, len(seen))
		}
	})
}
