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

const defaultTechniciansTableName = "technicians"

type technicianItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Email        string `dynamodbav:"email"`
	Phone        string `dynamodbav:"phone"`
	Specialty    string `dynamodbav:"specialty"`
	Status       string `dynamodbav:"status"`
	RegisteredAt string `dynamodbav:"registered_at"`
}

// TechnicianDynamoRepository persists Technician entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type TechnicianDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITechnicianRepository = (*TechnicianDynamoRepository)(nil)

func NewTechnicianDynamoRepository(ddb *dynamodb.Client) *TechnicianDynamoRepository {
	return &TechnicianDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TECHNICIANS_TABLE", defaultTechniciansTableName),
	}
}

func (r *TechnicianDynamoRepository) Create(ctx context.Context, technician *entities.Technician) (*entities.Technician, error) {
	av, err := attributevalue.MarshalMap(toTechnicianItem(technician))
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
	return technician, nil
}

func (r *TechnicianDynamoRepository) GetByID(ctx context.Context, id string) (*entities.Technician, error) {
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

	var it technicianItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromTechnicianItem(it), nil
}

func (r *TechnicianDynamoRepository) Update(ctx context.Context, technician *entities.Technician) error {
	av, err := attributevalue.MarshalMap(toTechnicianItem(technician))
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

func (r *TechnicianDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// GetPaged orders by name ascending and applies the free-text filter over
// name, e-mail and specialty.
func (r *TechnicianDynamoRepository) GetPaged(ctx context.Context, page, pageSize int, filter string) ([]*entities.Technician, int, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, 0, err
	}

	technicians := make([]*entities.Technician, 0, len(raw))
	for _, item := range raw {
		var it technicianItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, 0, err
		}
		if !matchFilter(filter, it.Name, it.Email, it.Specialty) {
			continue
		}
		technicians = append(technicians, fromTechnicianItem(it))
	}

	sort.Slice(technicians, func(i, j int) bool {
		return technicians[i].Name() < technicians[j].Name()
	})

	total := len(technicians)
	start, end := pageBounds(page, pageSize, total)
	return technicians[start:end], total, nil
}

func toTechnicianItem(t *entities.Technician) technicianItem {
	return technicianItem{
		ID:           t.ID(),
		Name:         t.Name(),
		Email:        t.Email(),
		Phone:        t.Phone(),
		Specialty:    t.Specialty(),
		Status:       string(t.Status()),
		RegisteredAt: t.RegisteredAt().UTC().Format(time.RFC3339Nano),
	}
}

func fromTechnicianItem(it technicianItem) *entities.Technician {
	registeredAt, _ := time.Parse(time.RFC3339Nano, it.RegisteredAt)
	return entities.RehydrateTechnician(
		it.ID,
		it.Name,
		it.Email,
		it.Phone,
		it.Specialty,
		entities.TechnicianStatus(it.Status),
		registeredAt,
	)
}
