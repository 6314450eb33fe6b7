package repository

import (
	"context"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"gestao_os/internal/domain/entities"
	"gestao_os/internal/usecase/interfaces"
)

const defaultWorkOrdersTableName = "work_orders"

type workOrderItem struct {
	ID           string `dynamodbav:"id"`
	Title        string `dynamodbav:"title"`
	Description  string `dynamodbav:"description"`
	TechnicianID string `dynamodbav:"technician_id"`
	Status       string `dynamodbav:"status"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"` // empty until the first mutation
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status is stored as its canonical literal and decoded back on rehydration;
// the entity never sees the wire form.

type WorkOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, order *entities.WorkOrder) (*entities.WorkOrder, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(order))
	if err != nil {
		return nil, err
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
		return nil, err
	}
	return order, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (*entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) Update(ctx context.Context, order *entities.WorkOrder) error {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(order))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *WorkOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// GetPaged orders by creation time descending and applies the free-text
// filter over title and description.
func (r *WorkOrderDynamoRepository) GetPaged(ctx context.Context, page, pageSize int, filter string) ([]*entities.WorkOrder, int, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, 0, err
	}

	orders := make([]*entities.WorkOrder, 0, len(raw))
	for _, item := range raw {
		var it workOrderItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, 0, err
		}
		if !matchFilter(filter, it.Title, it.Description) {
			continue
		}
		orders = append(orders, fromWorkOrderItem(it))
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt().After(orders[j].CreatedAt())
	})

	total := len(orders)
	start, end := pageBounds(page, pageSize, total)
	return orders[start:end], total, nil
}

func (r *WorkOrderDynamoRepository) ExistsByTechnicianID(ctx context.Context, technicianID string) (bool, error) {
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("technician_id = :tid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":tid": &types.AttributeValueMemberS{Value: technicianID},
			},
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return false, err
		}
		if out.Count > 0 {
			return true, nil
		}
		if len(out.LastEvaluatedKey) == 0 {
			return false, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toWorkOrderItem(o *entities.WorkOrder) workOrderItem {
	updatedAt := ""
	if o.UpdatedAt() != nil {
		updatedAt = o.UpdatedAt().UTC().Format(time.RFC3339Nano)
	}
	return workOrderItem{
		ID:           o.ID(),
		Title:        o.Title(),
		Description:  o.Description(),
		TechnicianID: o.TechnicianID(),
		Status:       string(o.Status()),
		CreatedAt:    o.CreatedAt().UTC().Format(time.RFC3339Nano),
		UpdatedAt:    updatedAt,
	}
}

func fromWorkOrderItem(it workOrderItem) *entities.WorkOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	var updatedAt *time.Time
	if it.UpdatedAt != "" {
		t, err := time.Parse(time.RFC3339Nano, it.UpdatedAt)
		if err == nil {
			updatedAt = &t
		}
	}
	return entities.RehydrateWorkOrder(
		it.ID,
		it.Title,
		it.Description,
		it.TechnicianID,
		entities.WorkOrderStatus(it.Status),
		createdAt,
		updatedAt,
	)
}
