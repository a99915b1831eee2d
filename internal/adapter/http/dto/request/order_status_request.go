package request

import (
	"horecamart/internal/domain/entities"
)

// OrderStatusRequest is a partial update to an order's tracking fields.
// Omitted fields stay untouched; present fields are applied independently.
type OrderStatusRequest struct {
	OrderStatus      *string `json:"order_status"`
	PaymentStatus    *string `json:"payment_status"`
	SupplierStatus   *string `json:"supplier_status"`
	ShipmentStatus   *string `json:"shipment_status"`
	ExpectedDelivery *string `json:"expected_delivery"`
	ActualDelivery   *string `json:"actual_delivery"`
	Notes            *string `json:"notes"`
}

func (r OrderStatusRequest) ToPatch() entities.OrderStatusPatch {
	patch := entities.OrderStatusPatch{
		ExpectedDelivery: r.ExpectedDelivery,
		ActualDelivery:   r.ActualDelivery,
		Notes:            r.Notes,
	}
	if r.OrderStatus != nil {
		v := entities.OrderStatus(*r.OrderStatus)
		patch.OrderStatus = &v
	}
	if r.PaymentStatus != nil {
		v := entities.PaymentStatus(*r.PaymentStatus)
		patch.PaymentStatus = &v
	}
	if r.SupplierStatus != nil {
		v := entities.SupplierStatus(*r.SupplierStatus)
		patch.SupplierStatus = &v
	}
	if r.ShipmentStatus != nil {
		v := entities.ShipmentStatus(*r.ShipmentStatus)
		patch.ShipmentStatus = &v
	}
	return patch
}
