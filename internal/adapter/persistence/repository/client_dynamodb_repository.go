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

const defaultClientsTableName = "clients"

type clientItem struct {
	ID           string `dynamodbav:"id"`
	LegalName    string `dynamodbav:"legal_name"`
	TradeName    string `dynamodbav:"trade_name"`
	CNPJ         string `dynamodbav:"cnpj"` // stored digits-only
	Email        string `dynamodbav:"email"`
	Phone        string `dynamodbav:"phone"`
	Address      string `dynamodbav:"address"`
	City         string `dynamodbav:"city"`
	State        string `dynamodbav:"state"`
	PostalCode   string `dynamodbav:"postal_code"` // stored digits-only
	RegisteredAt string `dynamodbav:"registered_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

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

func (r *ClientDynamoRepository) Create(ctx context.Context, client *entities.Client) (*entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(client))
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
	return client, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (*entities.Client, error) {
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

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, client *entities.Client) error {
	av, err := attributevalue.MarshalMap(toClientItem(client))
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

func (r *ClientDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// GetPaged orders by legal name ascending and applies the free-text filter
// over legal name, trade name, CNPJ, e-mail and city.
func (r *ClientDynamoRepository) GetPaged(ctx context.Context, page, pageSize int, filter string) ([]*entities.Client, int, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, 0, err
	}

	clients := make([]*entities.Client, 0, len(raw))
	for _, item := range raw {
		var it clientItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, 0, err
		}
		if !matchFilter(filter, it.LegalName, it.TradeName, it.CNPJ, it.Email, it.City) {
			continue
		}
		clients = append(clients, fromClientItem(it))
	}

	sort.Slice(clients, func(i, j int) bool {
		return clients[i].LegalName() < clients[j].LegalName()
	})

	total := len(clients)
	start, end := pageBounds(page, pageSize, total)
	return clients[start:end], total, nil
}

func toClientItem(c *entities.Client) clientItem {
	return clientItem{
		ID:           c.ID(),
		LegalName:    c.LegalName(),
		TradeName:    c.TradeName(),
		CNPJ:         c.CNPJ(),
		Email:        c.Email(),
		Phone:        c.Phone(),
		Address:      c.Address(),
		City:         c.City(),
		State:        c.State(),
		PostalCode:   c.PostalCode(),
		RegisteredAt: c.RegisteredAt().UTC().Format(time.RFC3339Nano),
	}
}

func fromClientItem(it clientItem) *entities.Client {
	registeredAt, _ := time.Parse(time.RFC3339Nano, it.RegisteredAt)
	return entities.RehydrateClient(
		it.ID,
		it.LegalName,
		it.TradeName,
		it.CNPJ,
		it.Email,
		it.Phone,
		it.Address,
		it.City,
		it.State,
		it.PostalCode,
		registeredAt,
	)
}
