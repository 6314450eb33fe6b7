package usecase

import (
	"context"
	"strings"

	"gestao_os/internal/domain/entities"
	"gestao_os/internal/domain/faults"
	"gestao_os/internal/usecase/interfaces"
	"gestao_os/internal/usecase/pipeline"
)

// WorkOrderDetails is the get-by-id projection with the technician display
// name joined in.
type WorkOrderDetails struct {
	Order          *entities.WorkOrder
	TechnicianName string
}

// IWorkOrderUseCase exposes the work order operations.
//
// Update and ChangeStatus are intentionally asymmetric: the full update skips
// the transition table when the requested status equals the current one (a
// silent no-op), while the dedicated status change always consults the table
// and therefore rejects a same-state move.

type IWorkOrderUseCase interface {
	Create(ctx context.Context, cmd CreateWorkOrderCommand) (*entities.WorkOrder, error)
	Update(ctx context.Context, cmd UpdateWorkOrderCommand) (*entities.WorkOrder, error)
	ChangeStatus(ctx context.Context, cmd ChangeWorkOrderStatusCommand) (*entities.WorkOrder, error)
	Delete(ctx context.Context, cmd DeleteWorkOrderCommand) error
	GetByID(ctx context.Context, query GetWorkOrderQuery) (WorkOrderDetails, error)
	List(ctx context.Context, query ListWorkOrdersQuery) (Page[*entities.WorkOrder], error)
}

type WorkOrderUseCase struct {
	repo           interfaces.IWorkOrderRepository
	technicianRepo interfaces.ITechnicianRepository
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, technicianRepo interfaces.ITechnicianRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo, technicianRepo: technicianRepo}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, cmd CreateWorkOrderCommand) (*entities.WorkOrder, error) {
	return pipeline.Run(ctx, cmd, u.create)
}

func (u *WorkOrderUseCase) Update(ctx context.Context, cmd UpdateWorkOrderCommand) (*entities.WorkOrder, error) {
	return pipeline.Run(ctx, cmd, u.update)
}

func (u *WorkOrderUseCase) ChangeStatus(ctx context.Context, cmd ChangeWorkOrderStatusCommand) (*entities.WorkOrder, error) {
	return pipeline.Run(ctx, cmd, u.changeStatus)
}

func (u *WorkOrderUseCase) Delete(ctx context.Context, cmd DeleteWorkOrderCommand) error {
	_, err := pipeline.Run(ctx, cmd, u.delete)
	return err
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, query GetWorkOrderQuery) (WorkOrderDetails, error) {
	return pipeline.Run(ctx, query, u.getByID)
}

func (u *WorkOrderUseCase) List(ctx context.Context, query ListWorkOrdersQuery) (Page[*entities.WorkOrder], error) {
	return pipeline.Run(ctx, query, u.list)
}

func (u *WorkOrderUseCase) create(ctx context.Context, cmd CreateWorkOrderCommand) (*entities.WorkOrder, error) {
	if err := u.ensureTechnicianExists(ctx, cmd.TechnicianID); err != nil {
		return nil, err
	}
	order, err := entities.NewWorkOrder(cmd.Title, cmd.Description, cmd.TechnicianID)
	if err != nil {
		return nil, err
	}
	return u.repo.Create(ctx, order)
}

func (u *WorkOrderUseCase) update(ctx context.Context, cmd UpdateWorkOrderCommand) (*entities.WorkOrder, error) {
	order, err := u.loadOrder(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	// The entity stores the trimmed reference; compare against the same form
	// so a padded but unchanged id skips the existence lookup.
	technicianID := strings.TrimSpace(cmd.TechnicianID)
	if technicianID != order.TechnicianID() {
		if err := u.ensureTechnicianExists(ctx, technicianID); err != nil {
			return nil, err
		}
	}
	next, err := entities.ParseWorkOrderStatus(cmd.Status)
	if err != nil {
		return nil, err
	}
	if err := order.UpdateDetails(cmd.Title, cmd.Description, cmd.TechnicianID); err != nil {
		return nil, err
	}
	// Keeping the current status is a no-op here; only the dedicated status
	// change runs a same-state request through the transition table.
	if next != order.Status() {
		if err := order.ChangeStatus(next); err != nil {
			return nil, err
		}
	}
	if err := u.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (u *WorkOrderUseCase) changeStatus(ctx context.Context, cmd ChangeWorkOrderStatusCommand) (*entities.WorkOrder, error) {
	next, err := entities.ParseWorkOrderStatus(cmd.Status)
	if err != nil {
		return nil, err
	}
	order, err := u.loadOrder(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if err := order.ChangeStatus(next); err != nil {
		return nil, err
	}
	if err := u.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (u *WorkOrderUseCase) delete(ctx context.Context, cmd DeleteWorkOrderCommand) (struct{}, error) {
	order, err := u.loadOrder(ctx, cmd.ID)
	if err != nil {
		return struct{}{}, err
	}
	if err := order.EnsureDeletable(); err != nil {
		return struct{}{}, err
	}
	return struct{}{}, u.repo.Delete(ctx, order.ID())
}

func (u *WorkOrderUseCase) getByID(ctx context.Context, query GetWorkOrderQuery) (WorkOrderDetails, error) {
	order, err := u.loadOrder(ctx, query.ID)
	if err != nil {
		return WorkOrderDetails{}, err
	}
	details := WorkOrderDetails{Order: order}
	technician, err := u.technicianRepo.GetByID(ctx, order.TechnicianID())
	if err != nil {
		return WorkOrderDetails{}, err
	}
	if technician != nil {
		details.TechnicianName = technician.Name()
	}
	return details, nil
}

func (u *WorkOrderUseCase) list(ctx context.Context, query ListWorkOrdersQuery) (Page[*entities.WorkOrder], error) {
	items, total, err := u.repo.GetPaged(ctx, query.Page, query.PageSize, query.Filter)
	if err != nil {
		return Page[*entities.WorkOrder]{}, err
	}
	return newPage(items, total, query.Page, query.PageSize), nil
}

func (u *WorkOrderUseCase) loadOrder(ctx context.Context, id string) (*entities.WorkOrder, error) {
	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, faults.NewNotFound("work order", id)
	}
	return order, nil
}

func (u *WorkOrderUseCase) ensureTechnicianExists(ctx context.Context, technicianID string) error {
	technician, err := u.technicianRepo.GetByID(ctx, technicianID)
	if err != nil {
		return err
	}
	if technician == nil {
		return faults.NewNotFound("technician", technicianID)
	}
	return nil
}
