package entities

// OrderStatusPatch is a partial update to an order's tracking fields. Nil
// means "leave unchanged". The four axes are patched independently; no
// cross-axis validation is applied unless strict mode is enabled.
type OrderStatusPatch struct {
	OrderStatus      *OrderStatus
	PaymentStatus    *PaymentStatus
	SupplierStatus   *SupplierStatus
	ShipmentStatus   *ShipmentStatus
	ExpectedDelivery *string
	ActualDelivery   *string
	Notes            *string
}

// IsEmpty reports whether the patch would change nothing.
func (p OrderStatusPatch) IsEmpty() bool {
	return p.OrderStatus == nil && p.PaymentStatus == nil && p.SupplierStatus == nil &&
		p.ShipmentStatus == nil && p.ExpectedDelivery == nil && p.ActualDelivery == nil &&
		p.Notes == nil
}
