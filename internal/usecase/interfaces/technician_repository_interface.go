package interfaces

import (
	"context"

	"gestao_os/internal/domain/entities"
)

// ITechnicianRepository abstracts DynamoDB persistence for Technician.
// GetPaged orders by name ascending.

type ITechnicianRepository interface {
	Create(ctx context.Context, technician *entities.Technician) (*entities.Technician, error)
	GetByID(ctx context.Context, id string) (*entities.Technician, error)
	Update(ctx context.Context, technician *entities.Technician) error
	Delete(ctx context.Context, id string) error
	GetPaged(ctx context.Context, page, pageSize int, filter string) ([]*entities.Technician, int, error)
}
