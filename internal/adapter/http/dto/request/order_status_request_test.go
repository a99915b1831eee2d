package request

import (
	"testing"

	"horecamart/internal/domain/entities"
)

func TestOrderStatusRequest_ToPatch(t *testing.T) {
	t.Run("empty request produces empty patch", func(t *testing.T) {
		patch := OrderStatusRequest{}.ToPatch()
		if !patch.IsEmpty() {
			t.Fatalf("expected empty patch, got %+v", patch)
		}
	})

	t.Run("status strings become typed pointers", func(t *testing.T) {
		orderStatus := "payment_received"
		paymentStatus := "paid"
		patch := OrderStatusRequest{
			OrderStatus:   &orderStatus,
			PaymentStatus: &paymentStatus,
		}.ToPatch()

		if patch.OrderStatus == nil || *patch.OrderStatus != entities.OrderStatusPaymentReceived {
			t.Fatalf("expected order_status payment_received, got %+v", patch.OrderStatus)
		}
		if patch.PaymentStatus == nil || *patch.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("expected payment_status paid, got %+v", patch.PaymentStatus)
		}
		if patch.SupplierStatus != nil || patch.ShipmentStatus != nil {
			t.Fatalf("expected untouched axes to stay nil, got %+v", patch)
		}
	})

	t.Run("free text fields pass through unchanged", func(t *testing.T) {
		delivery := "2026-09-15"
		notes := "call before delivery"
		patch := OrderStatusRequest{
			ExpectedDelivery: &delivery,
			Notes:            &notes,
		}.ToPatch()

		if patch.ExpectedDelivery == nil || *patch.ExpectedDelivery != "2026-09-15" {
			t.Fatalf("expected delivery date, got %+v", patch.ExpectedDelivery)
		}
		if patch.Notes == nil || *patch.Notes != "call before delivery" {
			t.Fatalf("expected notes, got %+v", patch.Notes)
		}
	})
}

func TestCreateQuotationRequest_ToInput(t *testing.T) {
	input := CreateQuotationRequest{
		ClientID:           "c-1",
		Title:              "Kitchen refit",
		DiscountPercentage: 10,
		Items: []QuotationItemRequest{
			{ProductID: "p-1", Quantity: 3, UnitPrice: 10},
			{ProductID: "p-2", Quantity: 1, UnitPrice: 200, DiscountPercentage: 50},
		},
	}.ToInput()

	if input.ClientID != "c-1" || input.DiscountPercentage != 10 {
		t.Fatalf("unexpected input: %+v", input)
	}
	if len(input.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(input.Items))
	}
	if input.Items[1].DiscountPercentage != 50 {
		t.Fatalf("expected item discount carried over, got %+v", input.Items[1])
	}
}
