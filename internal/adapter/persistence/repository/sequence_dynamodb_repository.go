package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"horecamart/internal/domain/entities"
	"horecamart/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCountersTableName = "counters"
	orderNumberCounterName   = "order_number"
)

// SequenceDynamoRepository allocates order numbers from an atomic counter
// item. Scanning the orders table for the max suffix and incrementing is not
// safe under concurrent conversions (two callers would compute the same
// number), so all allocation goes through a single ADD update, which DynamoDB
// applies atomically.
//
// Table requirements:
//   - counters: PK name (string); item attributes: name, current (number)
//
// The counter is seeded lazily from the highest legacy ORD-NNN suffix in the
// orders table, so numbering continues where scan-era orders left off.

type SequenceDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	ordersTableName string

	mu     sync.Mutex
	seeded bool
}

var _ interfaces.IOrderSequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
		ordersTableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *SequenceDynamoRepository) NextOrderNumber(ctx context.Context) (int, error) {
	if err := r.ensureSeeded(ctx); err != nil {
		return 0, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: orderNumberCounterName},
		},
		UpdateExpression: aws.String("ADD #current :one"),
		ExpressionAttributeNames: map[string]string{
			"#current": "current",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	current, ok := out.Attributes["current"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("counter attribute missing after increment")
	}
	return strconv.Atoi(current.Value)
}

// ensureSeeded runs the counter seed at most once per process, but only
// latches after a successful seed. A transient store failure surfaces to the
// caller and the next allocation attempts the seed again.
func (r *SequenceDynamoRepository) ensureSeeded(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seeded {
		return nil
	}
	if err := r.seedCounter(ctx); err != nil {
		return err
	}
	r.seeded = true
	return nil
}

// seedCounter initializes the counter from the max numeric suffix among
// existing order numbers. The conditioned put makes the seed race-free: when
// several instances start at once, exactly one write lands and the rest fall
// through to the ADD path.
func (r *SequenceDynamoRepository) seedCounter(ctx context.Context) error {
	orderNumbers, err := r.scanOrderNumbers(ctx)
	if err != nil {
		return err
	}
	seed := entities.MaxOrderNumberSuffix(orderNumbers)

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"name":    &types.AttributeValueMemberS{Value: orderNumberCounterName},
			"current": &types.AttributeValueMemberN{Value: strconv.Itoa(seed)},
		},
		ConditionExpression: aws.String("attribute_not_exists(#name)"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func (r *SequenceDynamoRepository) scanOrderNumbers(ctx context.Context) ([]string, error) {
	var numbers []string
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.ordersTableName),
			ProjectionExpression: aws.String("order_number"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			if v, ok := item["order_number"].(*types.AttributeValueMemberS); ok {
				numbers = append(numbers, v.Value)
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return numbers, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
