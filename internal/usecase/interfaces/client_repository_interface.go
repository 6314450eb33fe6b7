package interfaces

import (
	"context"

	"gestao_os/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
// GetPaged orders by legal name ascending.

type IClientRepository interface {
	Create(ctx context.Context, client *entities.Client) (*entities.Client, error)
	GetByID(ctx context.Context, id string) (*entities.Client, error)
	Update(ctx context.Context, client *entities.Client) error
	Delete(ctx context.Context, id string) error
	GetPaged(ctx context.Context, page, pageSize int, filter string) ([]*entities.Client, int, error)
}
