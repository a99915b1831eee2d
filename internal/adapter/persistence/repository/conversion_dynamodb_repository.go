package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConversionDynamoRepository commits a quotation→order conversion as one
// TransactWriteItems call:
//
//   - Put the order, conditioned on its id not existing
//   - Put every frozen order item
//   - Update the quotation to converted_to_order with the order id set,
//     conditioned on the quotation existing and not already being converted
//
// The quotation condition is what makes double conversion impossible: if two
// operators race, exactly one transaction commits and the loser surfaces
// interfaces.ErrConversionConflict.

type ConversionDynamoRepository struct {
	ddb                 *dynamodb.Client
	ordersTableName     string
	orderItemsTableName string
	quotationsTableName string
}

var _ interfaces.IConversionRepository = (*ConversionDynamoRepository)(nil)

func NewConversionDynamoRepository(ddb *dynamodb.Client) *ConversionDynamoRepository {
	return &ConversionDynamoRepository{
		ddb:                 ddb,
		ordersTableName:     getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		orderItemsTableName: getenvDefault("ORDER_ITEMS_TABLE", defaultOrderItemsTableName),
		quotationsTableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *ConversionDynamoRepository) CommitConversion(ctx context.Context, order entities.Order, items []entities.OrderItem) error {
	orderAV, err := attributevalue.MarshalMap(toOrderRecord(order))
	if err != nil {
		return err
	}

	writes := make([]types.TransactWriteItem, 0, len(items)+2)
	writes = append(writes, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.ordersTableName),
			Item:                orderAV,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})

	for _, it := range items {
		itemAV, err := attributevalue.MarshalMap(toOrderItemRecord(it))
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.orderItemsTableName),
				Item:      itemAV,
			},
		})
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	writes = append(writes, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.quotationsTableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: order.QuotationID},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :converted"),
			UpdateExpression:    aws.String("SET #status = :converted, #order_id = :order_id, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#status":     "status",
				"#order_id":   "order_id",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":converted":  &types.AttributeValueMemberS{Value: string(entities.QuotationStatusConverted)},
				":order_id":   &types.AttributeValueMemberS{Value: order.ID},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
		},
	})

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: writes,
	})
	if err != nil {
		if quotationAlreadyConverted(err) {
			return fmt.Errorf("%w: quotation %s", interfaces.ErrConversionConflict, order.QuotationID)
		}
		return err
	}
	return nil
}

// quotationAlreadyConverted reports whether a TransactWriteItems error was
// caused by the quotation condition. Cancellation reasons mirror the transact
// item order and the quotation update is always the last item, so only a
// ConditionalCheckFailed in the last slot means "already converted". A
// condition failure elsewhere (an order id collision on the put) stays a
// plain store error.
func quotationAlreadyConverted(err error) bool {
	var canceled *types.TransactionCanceledException
	if !errors.As(err, &canceled) || len(canceled.CancellationReasons) == 0 {
		return false
	}
	last := canceled.CancellationReasons[len(canceled.CancellationReasons)-1]
	return last.Code != nil && *last.Code == "ConditionalCheckFailed"
}
