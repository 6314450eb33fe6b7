package interfaces

import (
	"context"

	"gestao_os/internal/domain/entities"
)

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
// GetByID returns (nil, nil) when the id does not exist; the use case owns
// the not-found decision. GetPaged applies the free-text filter, the default
// ordering (creation time descending) and the page slice, returning the
// total match count alongside the page items.

type IWorkOrderRepository interface {
	Create(ctx context.Context, order *entities.WorkOrder) (*entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (*entities.WorkOrder, error)
	Update(ctx context.Context, order *entities.WorkOrder) error
	Delete(ctx context.Context, id string) error
	GetPaged(ctx context.Context, page, pageSize int, filter string) ([]*entities.WorkOrder, int, error)
	ExistsByTechnicianID(ctx context.Context, technicianID string) (bool, error)
}
