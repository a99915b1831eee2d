package repository

import (
	"context"
	"errors"
	"time"

	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotationsTableName     = "quotations"
	defaultQuotationItemsTableName = "quotation_items"
	quotationItemsQuotationIDIndex = "quotation_id-index"
)

type quotationRecord struct {
	ID                 string  `dynamodbav:"id"`
	ClientID           string  `dynamodbav:"client_id"`
	Title              string  `dynamodbav:"title,omitempty"`
	TotalAmount        float64 `dynamodbav:"total_amount"`
	DiscountPercentage float64 `dynamodbav:"discount_percentage,omitempty"`
	FinalAmount        float64 `dynamodbav:"final_amount"`
	Status             string  `dynamodbav:"status"`
	ValidUntil         string  `dynamodbav:"valid_until,omitempty"`
	Notes              string  `dynamodbav:"notes,omitempty"`
	OrderID            string  `dynamodbav:"order_id,omitempty"`
	CreatedAt          string  `dynamodbav:"created_at"`
	UpdatedAt          string  `dynamodbav:"updated_at"`
}

type quotationItemRecord struct {
	ID                 string  `dynamodbav:"id"`
	QuotationID        string  `dynamodbav:"quotation_id"`
	ProductID          string  `dynamodbav:"product_id"`
	Quantity           int     `dynamodbav:"quantity"`
	UnitPrice          float64 `dynamodbav:"unit_price"`
	TotalPrice         float64 `dynamodbav:"total_price"`
	DiscountPercentage float64 `dynamodbav:"discount_percentage,omitempty"`
	CreatedAt          string  `dynamodbav:"created_at"`
}

// QuotationDynamoRepository persists Quotation and QuotationItem entities in
// DynamoDB.
//
// Table requirements:
//   - quotations: PK id (string)
//   - quotation_items: PK id (string), GSI quotation_id-index (PK: quotation_id)

type QuotationDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	itemsTableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
		itemsTableName: getenvDefault("QUOTATION_ITEMS_TABLE", defaultQuotationItemsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation, items []entities.QuotationItem) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationRecord(q))
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}

	for _, it := range items {
		itemAV, err := attributevalue.MarshalMap(toQuotationItemRecord(it))
		if err != nil {
			return entities.Quotation{}, err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.itemsTableName),
			Item:      itemAV,
		})
		if err != nil {
			return entities.Quotation{}, err
		}
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var rec quotationRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationRecord(rec), nil
}

func (r *QuotationDynamoRepository) ListAll(ctx context.Context) ([]entities.Quotation, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	quotations := make([]entities.Quotation, 0, len(raws))
	for _, raw := range raws {
		var rec quotationRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		quotations = append(quotations, fromQuotationRecord(rec))
	}
	return quotations, nil
}

func (r *QuotationDynamoRepository) ListItemsByQuotationID(ctx context.Context, quotationID string) ([]entities.QuotationItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTableName),
		IndexName:              aws.String(quotationItemsQuotationIDIndex),
		KeyConditionExpression: aws.String("quotation_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quotationID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.QuotationItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec quotationItemRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		items = append(items, fromQuotationItemRecord(rec))
	}
	return items, nil
}

func (r *QuotationDynamoRepository) ListAllItems(ctx context.Context) ([]entities.QuotationItem, error) {
	raws, err := scanAll(ctx, r.ddb, r.itemsTableName)
	if err != nil {
		return nil, err
	}

	items := make([]entities.QuotationItem, 0, len(raws))
	for _, raw := range raws {
		var rec quotationItemRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		items = append(items, fromQuotationItemRecord(rec))
	}
	return items, nil
}

func (r *QuotationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, nil
	}

	var rec quotationRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationRecord(rec), nil
}

func toQuotationRecord(q entities.Quotation) quotationRecord {
	return quotationRecord{
		ID:                 q.ID,
		ClientID:           q.ClientID,
		Title:              q.Title,
		TotalAmount:        q.TotalAmount,
		DiscountPercentage: q.DiscountPercentage,
		FinalAmount:        q.FinalAmount,
		Status:             string(q.Status),
		ValidUntil:         q.ValidUntil,
		Notes:              q.Notes,
		OrderID:            q.OrderID,
		CreatedAt:          q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuotationRecord(rec quotationRecord) entities.Quotation {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	return entities.Quotation{
		ID:                 rec.ID,
		ClientID:           rec.ClientID,
		Title:              rec.Title,
		TotalAmount:        rec.TotalAmount,
		DiscountPercentage: rec.DiscountPercentage,
		FinalAmount:        rec.FinalAmount,
		Status:             entities.QuotationStatus(rec.Status),
		ValidUntil:         rec.ValidUntil,
		Notes:              rec.Notes,
		OrderID:            rec.OrderID,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}

func toQuotationItemRecord(it entities.QuotationItem) quotationItemRecord {
	return quotationItemRecord{
		ID:                 it.ID,
		QuotationID:        it.QuotationID,
		ProductID:          it.ProductID,
		Quantity:           it.Quantity,
		UnitPrice:          it.UnitPrice,
		TotalPrice:         it.TotalPrice,
		DiscountPercentage: it.DiscountPercentage,
		CreatedAt:          it.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuotationItemRecord(rec quotationItemRecord) entities.QuotationItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	return entities.QuotationItem{
		ID:                 rec.ID,
		QuotationID:        rec.QuotationID,
		ProductID:          rec.ProductID,
		Quantity:           rec.Quantity,
		UnitPrice:          rec.UnitPrice,
		TotalPrice:         rec.TotalPrice,
		DiscountPercentage: rec.DiscountPercentage,
		CreatedAt:          createdAt,
	}
}
