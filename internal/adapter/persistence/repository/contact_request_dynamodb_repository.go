package repository

import (
	"context"
	"time"

	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultContactRequestsTableName = "contact_requests"

type contactRequestRecord struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Company   string `dynamodbav:"company,omitempty"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Message   string `dynamodbav:"message"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ContactRequestDynamoRepository persists ContactRequest entities in
// DynamoDB.
//
// Table requirements:
//   - contact_requests: PK id (string)

type ContactRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContactRequestRepository = (*ContactRequestDynamoRepository)(nil)

func NewContactRequestDynamoRepository(ddb *dynamodb.Client) *ContactRequestDynamoRepository {
	return &ContactRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTACT_REQUESTS_TABLE", defaultContactRequestsTableName),
	}
}

func (r *ContactRequestDynamoRepository) Create(ctx context.Context, req entities.ContactRequest) (entities.ContactRequest, error) {
	av, err := attributevalue.MarshalMap(toContactRequestRecord(req))
	if err != nil {
		return entities.ContactRequest{}, err
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
		return entities.ContactRequest{}, err
	}
	return req, nil
}

func (r *ContactRequestDynamoRepository) ListAll(ctx context.Context) ([]entities.ContactRequest, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	requests := make([]entities.ContactRequest, 0, len(raws))
	for _, raw := range raws {
		var rec contactRequestRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		requests = append(requests, fromContactRequestRecord(rec))
	}
	return requests, nil
}

func toContactRequestRecord(req entities.ContactRequest) contactRequestRecord {
	return contactRequestRecord{
		ID:        req.ID,
		Name:      req.Name,
		Company:   req.Company,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: req.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromContactRequestRecord(rec contactRequestRecord) entities.ContactRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	return entities.ContactRequest{
		ID:        rec.ID,
		Name:      rec.Name,
		Company:   rec.Company,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Message:   rec.Message,
		CreatedAt: createdAt,
	}
}
