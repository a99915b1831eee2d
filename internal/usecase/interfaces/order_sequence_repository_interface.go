package interfaces

import "context"

// IOrderSequenceRepository allocates order-number sequence values.
//
// NextOrderNumber must be safe under concurrent callers: two in-flight
// conversions may never observe the same value. The DynamoDB implementation
// uses an atomic ADD on a counter item; a naive scan-max-increment over the
// orders table is not an acceptable implementation of this contract.
type IOrderSequenceRepository interface {
	NextOrderNumber(ctx context.Context) (int, error)
}
