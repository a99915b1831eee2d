package interfaces

import (
	"context"
	"errors"

	"horecamart/internal/domain/entities"
)

// ErrConversionConflict is returned by CommitConversion when the quotation was
// already converted (or the order id collided) by the time the transaction
// ran. The usecase maps it onto its already-converted error.
var ErrConversionConflict = errors.New("conversion conflict")

// IConversionRepository commits a quotation→order conversion as one atomic
// write: the new order, its frozen items, and the quotation flip to
// converted_to_order with the order id set. Either everything lands or
// nothing does; a half-created order must not be observable.
type IConversionRepository interface {
	CommitConversion(ctx context.Context, order entities.Order, items []entities.OrderItem) error
}
