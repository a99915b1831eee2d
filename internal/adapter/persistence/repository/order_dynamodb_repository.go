package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName     = "orders"
	defaultOrderItemsTableName = "order_items"
	orderItemsOrderIDIndex     = "order_id-index"
)

type orderRecord struct {
	ID               string  `dynamodbav:"id"`
	QuotationID      string  `dynamodbav:"quotation_id"`
	OrderNumber      string  `dynamodbav:"order_number"`
	ClientID         string  `dynamodbav:"client_id"`
	Title            string  `dynamodbav:"title,omitempty"`
	TotalAmount      float64 `dynamodbav:"total_amount"`
	FinalAmount      float64 `dynamodbav:"final_amount"`
	OrderStatus      string  `dynamodbav:"order_status"`
	PaymentStatus    string  `dynamodbav:"payment_status"`
	SupplierStatus   string  `dynamodbav:"supplier_status"`
	ShipmentStatus   string  `dynamodbav:"shipment_status"`
	OrderDate        string  `dynamodbav:"order_date"`
	ExpectedDelivery string  `dynamodbav:"expected_delivery,omitempty"`
	ActualDelivery   string  `dynamodbav:"actual_delivery,omitempty"`
	Notes            string  `dynamodbav:"notes,omitempty"`
	CreatedAt        string  `dynamodbav:"created_at"`
	UpdatedAt        string  `dynamodbav:"updated_at"`
}

type orderItemRecord struct {
	ID                 string  `dynamodbav:"id"`
	OrderID            string  `dynamodbav:"order_id"`
	ProductID          string  `dynamodbav:"product_id"`
	Quantity           int     `dynamodbav:"quantity"`
	UnitPrice          float64 `dynamodbav:"unit_price"`
	TotalPrice         float64 `dynamodbav:"total_price"`
	DiscountPercentage float64 `dynamodbav:"discount_percentage,omitempty"`
	CreatedAt          string  `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order and OrderItem entities in DynamoDB.
//
// Table requirements:
//   - orders: PK id (string)
//   - order_items: PK id (string), GSI order_id-index (PK: order_id)
//
// Orders are only ever inserted by ConversionDynamoRepository; this repository
// covers reads and the tracking-screen updates.

type OrderDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	itemsTableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		itemsTableName: getenvDefault("ORDER_ITEMS_TABLE", defaultOrderItemsTableName),
	}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func (r *OrderDynamoRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(raws))
	for _, raw := range raws {
		var rec orderRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderRecord(rec))
	}
	return orders, nil
}

func (r *OrderDynamoRepository) ListItemsByOrderID(ctx context.Context, orderID string) ([]entities.OrderItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTableName),
		IndexName:              aws.String(orderItemsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.OrderItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec orderItemRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		items = append(items, fromOrderItemRecord(rec))
	}
	return items, nil
}

func (r *OrderDynamoRepository) ListAllItems(ctx context.Context) ([]entities.OrderItem, error) {
	raws, err := scanAll(ctx, r.ddb, r.itemsTableName)
	if err != nil {
		return nil, err
	}

	items := make([]entities.OrderItem, 0, len(raws))
	for _, raw := range raws {
		var rec orderItemRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		items = append(items, fromOrderItemRecord(rec))
	}
	return items, nil
}

// ApplyStatusPatch updates only the provided tracking fields. An empty
// expected/actual delivery value removes the attribute instead of writing an
// empty date string.
func (r *OrderDynamoRepository) ApplyStatusPatch(ctx context.Context, id string, patch entities.OrderStatusPatch) (entities.Order, error) {
	sets := []string{"#updated_at = :updated_at"}
	removes := []string{}
	names := map[string]string{
		"#id":         "id",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}

	setString := func(attr, value string) {
		placeholder := "#" + attr
		names[placeholder] = attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: value}
		sets = append(sets, fmt.Sprintf("%s = :%s", placeholder, attr))
	}
	setOrRemoveDate := func(attr, value string) {
		placeholder := "#" + attr
		names[placeholder] = attr
		if value == "" {
			removes = append(removes, placeholder)
			return
		}
		values[":"+attr] = &types.AttributeValueMemberS{Value: value}
		sets = append(sets, fmt.Sprintf("%s = :%s", placeholder, attr))
	}

	if patch.OrderStatus != nil {
		setString("order_status", string(*patch.OrderStatus))
	}
	if patch.PaymentStatus != nil {
		setString("payment_status", string(*patch.PaymentStatus))
	}
	if patch.SupplierStatus != nil {
		setString("supplier_status", string(*patch.SupplierStatus))
	}
	if patch.ShipmentStatus != nil {
		setString("shipment_status", string(*patch.ShipmentStatus))
	}
	if patch.ExpectedDelivery != nil {
		setOrRemoveDate("expected_delivery", *patch.ExpectedDelivery)
	}
	if patch.ActualDelivery != nil {
		setOrRemoveDate("actual_delivery", *patch.ActualDelivery)
	}
	if patch.Notes != nil {
		setString("notes", *patch.Notes)
	}

	updateExpr := "SET " + strings.Join(sets, ", ")
	if len(removes) > 0 {
		updateExpr += " REMOVE " + strings.Join(removes, ", ")
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func toOrderRecord(o entities.Order) orderRecord {
	return orderRecord{
		ID:               o.ID,
		QuotationID:      o.QuotationID,
		OrderNumber:      o.OrderNumber,
		ClientID:         o.ClientID,
		Title:            o.Title,
		TotalAmount:      o.TotalAmount,
		FinalAmount:      o.FinalAmount,
		OrderStatus:      string(o.OrderStatus),
		PaymentStatus:    string(o.PaymentStatus),
		SupplierStatus:   string(o.SupplierStatus),
		ShipmentStatus:   string(o.ShipmentStatus),
		OrderDate:        o.OrderDate.UTC().Format(time.RFC3339Nano),
		ExpectedDelivery: o.ExpectedDelivery,
		ActualDelivery:   o.ActualDelivery,
		Notes:            o.Notes,
		CreatedAt:        o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderRecord(rec orderRecord) entities.Order {
	orderDate, _ := time.Parse(time.RFC3339Nano, rec.OrderDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	return entities.Order{
		ID:               rec.ID,
		QuotationID:      rec.QuotationID,
		OrderNumber:      rec.OrderNumber,
		ClientID:         rec.ClientID,
		Title:            rec.Title,
		TotalAmount:      rec.TotalAmount,
		FinalAmount:      rec.FinalAmount,
		OrderStatus:      entities.OrderStatus(rec.OrderStatus),
		PaymentStatus:    entities.PaymentStatus(rec.PaymentStatus),
		SupplierStatus:   entities.SupplierStatus(rec.SupplierStatus),
		ShipmentStatus:   entities.ShipmentStatus(rec.ShipmentStatus),
		OrderDate:        orderDate,
		ExpectedDelivery: rec.ExpectedDelivery,
		ActualDelivery:   rec.ActualDelivery,
		Notes:            rec.Notes,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}

func toOrderItemRecord(it entities.OrderItem) orderItemRecord {
	return orderItemRecord{
		ID:                 it.ID,
		OrderID:            it.OrderID,
		ProductID:          it.ProductID,
		Quantity:           it.Quantity,
		UnitPrice:          it.UnitPrice,
		TotalPrice:         it.TotalPrice,
		DiscountPercentage: it.DiscountPercentage,
		CreatedAt:          it.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItemRecord(rec orderItemRecord) entities.OrderItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	return entities.OrderItem{
		ID:                 rec.ID,
		OrderID:            rec.OrderID,
		ProductID:          rec.ProductID,
		Quantity:           rec.Quantity,
		UnitPrice:          rec.UnitPrice,
		TotalPrice:         rec.TotalPrice,
		DiscountPercentage: rec.DiscountPercentage,
		CreatedAt:          createdAt,
	}
}
