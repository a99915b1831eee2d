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

const defaultClientsTableName = "clients"

type clientRecord struct {
	ID            string  `dynamodbav:"id"`
	CompanyName   string  `dynamodbav:"company_name"`
	ContactPerson string  `dynamodbav:"contact_person,omitempty"`
	Email         string  `dynamodbav:"email,omitempty"`
	Phone         string  `dynamodbav:"phone,omitempty"`
	Country       string  `dynamodbav:"country,omitempty"`
	City          string  `dynamodbav:"city,omitempty"`
	Address       string  `dynamodbav:"address,omitempty"`
	UsualDiscount float64 `dynamodbav:"usual_discount,omitempty"`
	Priority      string  `dynamodbav:"priority,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - clients: PK id (string)

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var rec clientRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Client{}, err
	}
	return fromClientRecord(rec), nil
}

func (r *ClientDynamoRepository) ListAll(ctx context.Context) ([]entities.Client, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	clients := make([]entities.Client, 0, len(raws))
	for _, raw := range raws {
		var rec clientRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		clients = append(clients, fromClientRecord(rec))
	}
	return clients, nil
}

func fromClientRecord(rec clientRecord) entities.Client {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	return entities.Client{
		ID:            rec.ID,
		CompanyName:   rec.CompanyName,
		ContactPerson: rec.ContactPerson,
		Email:         rec.Email,
		Phone:         rec.Phone,
		Country:       rec.Country,
		City:          rec.City,
		Address:       rec.Address,
		UsualDiscount: rec.UsualDiscount,
		Priority:      entities.ClientPriority(rec.Priority),
		CreatedAt:     createdAt,
	}
}
