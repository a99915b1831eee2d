package entities

import "testing"

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusWaitingPayment, OrderStatusPaymentReceived, OrderStatusConfirmingSupplier,
		OrderStatusSupplierConfirmed, OrderStatusSendingMoney, OrderStatusMoneySent,
		OrderStatusProductionStarted, OrderStatusShipmentReady, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled,
	} {
		if !s.IsValid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if OrderStatus("shipped_back").IsValid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}

func TestOrderStatusCanTransitionTo(t *testing.T) {
	t.Run("forward moves allowed", func(t *testing.T) {
		if !OrderStatusWaitingPayment.CanTransitionTo(OrderStatusPaymentReceived) {
			t.Fatalf("expected waiting_payment -> payment_received")
		}
		if !OrderStatusWaitingPayment.CanTransitionTo(OrderStatusDelivered) {
			t.Fatalf("expected skipping forward to be allowed")
		}
	})

	t.Run("backward moves rejected", func(t *testing.T) {
		if OrderStatusDelivered.CanTransitionTo(OrderStatusWaitingPayment) {
			t.Fatalf("expected backward move to be rejected")
		}
	})

	t.Run("cancelled from any non-terminal state", func(t *testing.T) {
		if !OrderStatusShipped.CanTransitionTo(OrderStatusCancelled) {
			t.Fatalf("expected shipped -> cancelled")
		}
		if OrderStatusCompleted.CanTransitionTo(OrderStatusCancelled) {
			t.Fatalf("expected completed to be terminal")
		}
		if OrderStatusCancelled.CanTransitionTo(OrderStatusWaitingPayment) {
			t.Fatalf("expected cancelled to be terminal")
		}
	})

	t.Run("self transition is a no-op", func(t *testing.T) {
		if !OrderStatusShipped.CanTransitionTo(OrderStatusShipped) {
			t.Fatalf("expected same-status update to pass")
		}
	})
}

func TestStatusAxesIsValid(t *testing.T) {
	if !PaymentStatusPartial.IsValid() || PaymentStatus("overpaid").IsValid() {
		t.Fatalf("unexpected payment status validity")
	}
	if !SupplierStatusInProduction.IsValid() || SupplierStatus("lost").IsValid() {
		t.Fatalf("unexpected supplier status validity")
	}
	if !ShipmentStatusReady.IsValid() || ShipmentStatus("returned").IsValid() {
		t.Fatalf("unexpected shipment status validity")
	}
}

func TestOrderStatusPatchIsEmpty(t *testing.T) {
	if !(OrderStatusPatch{}).IsEmpty() {
		t.Fatalf("zero patch should be empty")
	}
	notes := "rush delivery"
	if (OrderStatusPatch{Notes: &notes}).IsEmpty() {
		t.Fatalf("patch with notes should not be empty")
	}
}
