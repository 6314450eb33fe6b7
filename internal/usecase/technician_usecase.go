package usecase

import (
	"context"

	"gestao_os/internal/domain/entities"
	"gestao_os/internal/domain/faults"
	"gestao_os/internal/usecase/interfaces"
	"gestao_os/internal/usecase/pipeline"
)

// ITechnicianUseCase exposes the technician operations. ChangeStatus applies
// the strict same-status rule: requesting the current status always fails.

type ITechnicianUseCase interface {
	Create(ctx context.Context, cmd CreateTechnicianCommand) (*entities.Technician, error)
	Update(ctx context.Context, cmd UpdateTechnicianCommand) (*entities.Technician, error)
	ChangeStatus(ctx context.Context, cmd ChangeTechnicianStatusCommand) (*entities.Technician, error)
	Delete(ctx context.Context, cmd DeleteTechnicianCommand) error
	GetByID(ctx context.Context, query GetTechnicianQuery) (*entities.Technician, error)
	List(ctx context.Context, query ListTechniciansQuery) (Page[*entities.Technician], error)
}

type TechnicianUseCase struct {
	repo          interfaces.ITechnicianRepository
	workOrderRepo interfaces.IWorkOrderRepository
}

var _ ITechnicianUseCase = (*TechnicianUseCase)(nil)

func NewTechnicianUseCase(repo interfaces.ITechnicianRepository, workOrderRepo interfaces.IWorkOrderRepository) *TechnicianUseCase {
	return &TechnicianUseCase{repo: repo, workOrderRepo: workOrderRepo}
}

func (u *TechnicianUseCase) Create(ctx context.Context, cmd CreateTechnicianCommand) (*entities.Technician, error) {
	return pipeline.Run(ctx, cmd, u.create)
}

func (u *TechnicianUseCase) Update(ctx context.Context, cmd UpdateTechnicianCommand) (*entities.Technician, error) {
	return pipeline.Run(ctx, cmd, u.update)
}

func (u *TechnicianUseCase) ChangeStatus(ctx context.Context, cmd ChangeTechnicianStatusCommand) (*entities.Technician, error) {
	return pipeline.Run(ctx, cmd, u.changeStatus)
}

func (u *TechnicianUseCase) Delete(ctx context.Context, cmd DeleteTechnicianCommand) error {
	_, err := pipeline.Run(ctx, cmd, u.delete)
	return err
}

func (u *TechnicianUseCase) GetByID(ctx context.Context, query GetTechnicianQuery) (*entities.Technician, error) {
	return pipeline.Run(ctx, query, u.getByID)
}

func (u *TechnicianUseCase) List(ctx context.Context, query ListTechniciansQuery) (Page[*entities.Technician], error) {
	return pipeline.Run(ctx, query, u.list)
}

func (u *TechnicianUseCase) create(ctx context.Context, cmd CreateTechnicianCommand) (*entities.Technician, error) {
	technician, err := entities.NewTechnician(cmd.Name, cmd.Email, cmd.Phone, cmd.Specialty)
	if err != nil {
		return nil, err
	}
	return u.repo.Create(ctx, technician)
}

func (u *TechnicianUseCase) update(ctx context.Context, cmd UpdateTechnicianCommand) (*entities.Technician, error) {
	technician, err := u.loadTechnician(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if err := technician.UpdateProfile(cmd.Name, cmd.Email, cmd.Phone, cmd.Specialty); err != nil {
		return nil, err
	}
	if err := u.repo.Update(ctx, technician); err != nil {
		return nil, err
	}
	return technician, nil
}

func (u *TechnicianUseCase) changeStatus(ctx context.Context, cmd ChangeTechnicianStatusCommand) (*entities.Technician, error) {
	next, err := entities.ParseTechnicianStatus(cmd.Status)
	if err != nil {
		return nil, err
	}
	technician, err := u.loadTechnician(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if err := technician.ChangeStatus(next); err != nil {
		return nil, err
	}
	if err := u.repo.Update(ctx, technician); err != nil {
		return nil, err
	}
	return technician, nil
}

func (u *TechnicianUseCase) delete(ctx context.Context, cmd DeleteTechnicianCommand) (struct{}, error) {
	technician, err := u.loadTechnician(ctx, cmd.ID)
	if err != nil {
		return struct{}{}, err
	}
	// DynamoDB has no foreign keys; the restrict-on-delete semantics of the
	// work order -> technician reference are enforced here.
	assigned, err := u.workOrderRepo.ExistsByTechnicianID(ctx, technician.ID())
	if err != nil {
		return struct{}{}, err
	}
	if assigned {
		return struct{}{}, faults.NewRuleViolation(
			"technician_delete_requires_no_work_orders",
			"technician still has work orders assigned",
		)
	}
	return struct{}{}, u.repo.Delete(ctx, technician.ID())
}

func (u *TechnicianUseCase) getByID(ctx context.Context, query GetTechnicianQuery) (*entities.Technician, error) {
	return u.loadTechnician(ctx, query.ID)
}

func (u *TechnicianUseCase) list(ctx context.Context, query ListTechniciansQuery) (Page[*entities.Technician], error) {
	items, total, err := u.repo.GetPaged(ctx, query.Page, query.PageSize, query.Filter)
	if err != nil {
		return Page[*entities.Technician]{}, err
	}
	return newPage(items, total, query.Page, query.PageSize), nil
}

func (u *TechnicianUseCase) loadTechnician(ctx context.Context, id string) (*entities.Technician, error) {
	technician, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if technician == nil {
		return nil, faults.NewNotFound("technician", id)
	}
	return technician, nil
}
