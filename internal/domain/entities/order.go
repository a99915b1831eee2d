package entities

import "time"

// OrderStatus is the overall progress axis of an order.
//
// The listed progression is the conventional operator pipeline; the four status
// axes are independent and no cross-axis ordering is enforced by default.

type OrderStatus string

const (
	OrderStatusWaitingPayment     OrderStatus = "waiting_payment"
	OrderStatusPaymentReceived    OrderStatus = "payment_received"
	OrderStatusConfirmingSupplier OrderStatus = "confirming_supplier"
	OrderStatusSupplierConfirmed  OrderStatus = "supplier_confirmed"
	OrderStatusSendingMoney       OrderStatus = "sending_money"
	OrderStatusMoneySent          OrderStatus = "money_sent"
	OrderStatusProductionStarted  OrderStatus = "production_started"
	OrderStatusShipmentReady      OrderStatus = "shipment_ready"
	OrderStatusShipped            OrderStatus = "shipped"
	OrderStatusDelivered          OrderStatus = "delivered"
	OrderStatusCompleted          OrderStatus = "completed"
	OrderStatusCancelled          OrderStatus = "cancelled"
)

// orderStatusPipeline is the conventional progression, in order. Used only by
// the opt-in strict transition mode.
var orderStatusPipeline = []OrderStatus{
	OrderStatusWaitingPayment,
	OrderStatusPaymentReceived,
	OrderStatusConfirmingSupplier,
	OrderStatusSupplierConfirmed,
	OrderStatusSendingMoney,
	OrderStatusMoneySent,
	OrderStatusProductionStarted,
	OrderStatusShipmentReady,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCompleted,
}

func (s OrderStatus) IsValid() bool {
	if s == OrderStatusCancelled {
		return true
	}
	return s.pipelineIndex() >= 0
}

// IsTerminal reports whether no further order_status change is expected.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

func (s OrderStatus) pipelineIndex() int {
	for i, v := range orderStatusPipeline {
		if v == s {
			return i
		}
	}
	return -1
}

// CanTransitionTo implements the conventional pipeline check used by strict
// mode: forward moves only, with cancelled reachable from any non-terminal
// state. Permissive mode never calls this.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	from, to := s.pipelineIndex(), next.pipelineIndex()
	return from >= 0 && to >= 0 && to > from
}

// PaymentStatus is the payment axis of an order.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// SupplierStatus is the supplier axis of an order.
type SupplierStatus string

const (
	SupplierStatusPending      SupplierStatus = "pending"
	SupplierStatusConfirmed    SupplierStatus = "confirmed"
	SupplierStatusRejected     SupplierStatus = "rejected"
	SupplierStatusInProduction SupplierStatus = "in_production"
)

func (s SupplierStatus) IsValid() bool {
	switch s {
	case SupplierStatusPending, SupplierStatusConfirmed, SupplierStatusRejected, SupplierStatusInProduction:
		return true
	}
	return false
}

// ShipmentStatus is the shipment axis of an order.
type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "pending"
	ShipmentStatusReady     ShipmentStatus = "ready"
	ShipmentStatusShipped   ShipmentStatus = "shipped"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
)

func (s ShipmentStatus) IsValid() bool {
	switch s {
	case ShipmentStatusPending, ShipmentStatusReady, ShipmentStatusShipped, ShipmentStatusDelivered:
		return true
	}
	return false
}

// Order is the fulfillment record created once per converted quotation.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants:
//   - QuotationID refers to exactly one quotation, whose status was flipped to
//     converted_to_order in the same transaction that created this order.
//   - OrderNumber is unique with a strictly increasing numeric suffix.
type Order struct {
	ID               string         `json:"id"`
	QuotationID      string         `json:"quotation_id"`
	OrderNumber      string         `json:"order_number"`
	ClientID         string         `json:"client_id"`
	Title            string         `json:"title,omitempty"`
	TotalAmount      float64        `json:"total_amount"`
	FinalAmount      float64        `json:"final_amount"`
	OrderStatus      OrderStatus    `json:"order_status"`
	PaymentStatus    PaymentStatus  `json:"payment_status"`
	SupplierStatus   SupplierStatus `json:"supplier_status"`
	ShipmentStatus   ShipmentStatus `json:"shipment_status"`
	OrderDate        time.Time      `json:"order_date"`
	ExpectedDelivery string         `json:"expected_delivery,omitempty"`
	ActualDelivery   string         `json:"actual_delivery,omitempty"`
	Notes            string         `json:"notes,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// OrderItem is a frozen copy of a quotation line taken at conversion time.
// It deliberately does not reference the QuotationItem it was copied from, so
// later product or quotation edits cannot change a committed order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
type OrderItem struct {
	ID                 string    `json:"id"`
	OrderID            string    `json:"order_id"`
	ProductID          string    `json:"product_id"`
	Quantity           int       `json:"quantity"`
	UnitPrice          float64   `json:"unit_price"`
	TotalPrice         float64   `json:"total_price"`
	DiscountPercentage float64   `json:"discount_percentage,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
