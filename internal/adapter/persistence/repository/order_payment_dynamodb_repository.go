package repository

import (
	"context"
	"time"

	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrderPaymentsTableName = "order_payments"
	orderPaymentsOrderIDIndex     = "order_id-index"
)

type orderPaymentRecord struct {
	ID                 string  `dynamodbav:"id"`
	OrderID            string  `dynamodbav:"order_id"`
	ProviderPaymentID  string  `dynamodbav:"provider_payment_id,omitempty"`
	Amount             float64 `dynamodbav:"amount"`
	Date               string  `dynamodbav:"date"`
	Status             string  `dynamodbav:"status"`
	ProviderPayloadRaw string  `dynamodbav:"provider_payload_raw,omitempty"`
}

// OrderPaymentDynamoRepository persists OrderPayment entities in DynamoDB.
//
// Table requirements:
//   - order_payments: PK id (string), GSI order_id-index (PK: order_id)

type OrderPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderPaymentRepository = (*OrderPaymentDynamoRepository)(nil)

func NewOrderPaymentDynamoRepository(ddb *dynamodb.Client) *OrderPaymentDynamoRepository {
	return &OrderPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDER_PAYMENTS_TABLE", defaultOrderPaymentsTableName),
	}
}

func (r *OrderPaymentDynamoRepository) Create(ctx context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
	av, err := attributevalue.MarshalMap(toOrderPaymentRecord(p))
	if err != nil {
		return entities.OrderPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.OrderPayment{}, err
	}
	return p, nil
}

func (r *OrderPaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(orderPaymentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.OrderPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec orderPaymentRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		payments = append(payments, fromOrderPaymentRecord(rec))
	}
	return payments, nil
}

func toOrderPaymentRecord(p entities.OrderPayment) orderPaymentRecord {
	return orderPaymentRecord{
		ID:                 p.ID,
		OrderID:            p.OrderID,
		ProviderPaymentID:  p.ProviderPaymentID,
		Amount:             p.Amount,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromOrderPaymentRecord(rec orderPaymentRecord) entities.OrderPayment {
	date, _ := time.Parse(time.RFC3339Nano, rec.Date)
	return entities.OrderPayment{
		ID:                 rec.ID,
		OrderID:            rec.OrderID,
		ProviderPaymentID:  rec.ProviderPaymentID,
		Amount:             rec.Amount,
		Date:               date,
		Status:             entities.OrderPaymentStatus(rec.Status),
		ProviderPayloadRaw: []byte(rec.ProviderPayloadRaw),
	}
}
