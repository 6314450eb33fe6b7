package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"gestao_os/internal/domain/entities"
	"gestao_os/internal/domain/faults"
	mock_interfaces "gestao_os/internal/usecase/interfaces/mocks"
)

func rehydratedOrder(status entities.WorkOrderStatus) *entities.WorkOrder {
	return entities.RehydrateWorkOrder("os-1", "Troca de óleo", "Óleo 5W30", "tech-1", status, time.Now().UTC(), nil)
}

func rehydratedTechnician() *entities.Technician {
	return entities.RehydrateTechnician("tech-1", "Carlos Silva", "carlos@oficina.com.br", "11912345678", "Motor", entities.TechnicianStatusAtivo, time.Now().UTC())
}

func TestWorkOrderUseCase_Create(t *testing.T) {
	t.Run("validation short-circuits before any repo call", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil)

		_, err := uc.Create(context.Background(), CreateWorkOrderCommand{Title: "", TechnicianID: "tech-1"})
		var valErr *faults.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(valErr.Fields) != 1 || valErr.Fields[0].Field != "Title" {
			t.Fatalf("unexpected fields: %+v", valErr.Fields)
		}
	})

	t.Run("technician not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		techRepo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, techRepo)

		techRepo.EXPECT().GetByID(gomock.Any(), "tech-9").Return(nil, nil)

		_, err := uc.Create(context.Background(), CreateWorkOrderCommand{Title: "Troca de óleo", TechnicianID: "tech-9"})
		var nfErr *faults.NotFoundError
		if !errors.As(err, &nfErr) || nfErr.Entity != "technician" {
			t.Fatalf("expected technician not found, got %v", err)
		}
	})

	t.Run("success starts pendente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		techRepo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, techRepo)

		techRepo.EXPECT().GetByID(gomock.Any(), "tech-1").Return(rehydratedTechnician(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o *entities.WorkOrder) (*entities.WorkOrder, error) {
				if o.ID() == "" || o.Title() != "Troca de óleo" || o.TechnicianID() != "tech-1" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Status() != entities.WorkOrderStatusPendente {
					t.Fatalf("expected pendente, got %s", o.Status())
				}
				if o.UpdatedAt() != nil {
					t.Fatalf("expected nil updated at on creation")
				}
				return o, nil
			},
		)

		order, err := uc.Create(context.Background(), CreateWorkOrderCommand{Title: " Troca de óleo ", TechnicianID: "tech-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID() == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestWorkOrderUseCase_Update(t *testing.T) {
	baseCmd := func() UpdateWorkOrderCommand {
		return UpdateWorkOrderCommand{
			ID:           "os-1",
			Title:        "Troca de óleo",
			Description:  "Óleo 5W30",
			TechnicianID: "tech-1",
			Status:       "pendente",
		}
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(nil, nil)

		_, err := uc.Update(context.Background(), baseCmd())
		var nfErr *faults.NotFoundError
		if !errors.As(err, &nfErr) || nfErr.Entity != "work order" {
			t.Fatalf("expected work order not found, got %v", err)
		}
	})

	t.Run("same status is a silent no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(rehydratedOrder(entities.WorkOrderStatusPendente), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		order, err := uc.Update(context.Background(), baseCmd())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status() != entities.WorkOrderStatusPendente {
			t.Fatalf("expected status unchanged, got %s", order.Status())
		}
	})

	t.Run("different status runs the transition table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(rehydratedOrder(entities.WorkOrderStatusPendente), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		cmd := baseCmd()
		cmd.Status = "em_andamento"
		order, err := uc.Update(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status() != entities.WorkOrderStatusEmAndamento {
			t.Fatalf("expected em_andamento, got %s", order.Status())
		}
	})

	t.Run("rejected transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(rehydratedOrder(entities.WorkOrderStatusConcluida), nil)

		cmd := baseCmd()
		cmd.Status = "pendente"
		_, err := uc.Update(context.Background(), cmd)
		var trErr *faults.InvalidTransitionError
		if !errors.As(err, &trErr) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("padded unchanged technician id skips the lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		techRepo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, techRepo)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(rehydratedOrder(entities.WorkOrderStatusPendente), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		cmd := baseCmd()
		cmd.TechnicianID = " tech-1 "
		order, err := uc.Update(context.Background(), cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.TechnicianID() != "tech-1" {
			t.Fatalf("expected trimmed reference, got %q", order.TechnicianID())
		}
	})

	t.Run("technician change re-checks existence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		techRepo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, techRepo)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(rehydratedOrder(entities.WorkOrderStatusPendente), nil)
		techRepo.EXPECT().GetByID(gomock.Any(), "tech-2").Return(nil, nil)

		cmd := baseCmd()
		cmd.TechnicianID = "tech-2"
		_, err := uc.Update(context.Background(), cmd)
		var nfErr *faults.NotFoundError
		if !errors.As(err, &nfErr) || nfErr.Entity != "technician" {
			t.Fatalf("expected technician not found, got %v", err)
		}
	})

	t.Run("unknown status literal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(rehydratedOrder(entities.WorkOrderStatusPendente), nil)

		cmd := baseCmd()
		cmd.Status = "cancelada"
		_, err := uc.Update(context.Background(), cmd)
		var litErr *faults.InvalidStatusLiteralError
		if !errors.As(err, &litErr) {
			t.Fatalf("expected invalid status literal, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_ChangeStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(rehydratedOrder(entities.WorkOrderStatusPendente), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		order, err := uc.ChangeStatus(context.Background(), ChangeWorkOrderStatusCommand{ID: "os-1", Status: "Em Andamento"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status() != entities.WorkOrderStatusEmAndamento {
			t.Fatalf("expected em_andamento, got %s", order.Status())
		}
	})

	t.Run("same state always fails here", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(rehydratedOrder(entities.WorkOrderStatusPendente), nil)

		_, err := uc.ChangeStatus(context.Background(), ChangeWorkOrderStatusCommand{ID: "os-1", Status: "pendente"})
		var trErr *faults.InvalidTransitionError
		if !errors.As(err, &trErr) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("unknown literal skips the load", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil)
		_, err := uc.ChangeStatus(context.Background(), ChangeWorkOrderStatusCommand{ID: "os-1", Status: "cancelada"})
		var litErr *faults.InvalidStatusLiteralError
		if !errors.As(err, &litErr) {
			t.Fatalf("expected invalid status literal, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_Delete(t *testing.T) {
	t.Run("pendente deletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(rehydratedOrder(entities.WorkOrderStatusPendente), nil)
		repo.EXPECT().Delete(gomock.Any(), "os-1").Return(nil)

		if err := uc.Delete(context.Background(), DeleteWorkOrderCommand{ID: "os-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-pendente is blocked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(rehydratedOrder(entities.WorkOrderStatusEmAndamento), nil)

		err := uc.Delete(context.Background(), DeleteWorkOrderCommand{ID: "os-1"})
		var ruleErr *faults.RuleViolationError
		if !errors.As(err, &ruleErr) {
			t.Fatalf("expected rule violation, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-9").Return(nil, nil)

		err := uc.Delete(context.Background(), DeleteWorkOrderCommand{ID: "os-9"})
		var nfErr *faults.NotFoundError
		if !errors.As(err, &nfErr) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_GetByID(t *testing.T) {
	t.Run("joins technician name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		techRepo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, techRepo)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(rehydratedOrder(entities.WorkOrderStatusPendente), nil)
		techRepo.EXPECT().GetByID(gomock.Any(), "tech-1").Return(rehydratedTechnician(), nil)

		details, err := uc.GetByID(context.Background(), GetWorkOrderQuery{ID: "os-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if details.TechnicianName != "Carlos Silva" {
			t.Fatalf("expected joined name, got %q", details.TechnicianName)
		}
	})

	t.Run("missing technician leaves the name empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		techRepo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, techRepo)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(rehydratedOrder(entities.WorkOrderStatusPendente), nil)
		techRepo.EXPECT().GetByID(gomock.Any(), "tech-1").Return(nil, nil)

		details, err := uc.GetByID(context.Background(), GetWorkOrderQuery{ID: "os-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if details.TechnicianName != "" {
			t.Fatalf("expected empty name, got %q", details.TechnicianName)
		}
	})
}

func TestWorkOrderUseCase_List(t *testing.T) {
	t.Run("page shape", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		items := []*entities.WorkOrder{rehydratedOrder(entities.WorkOrderStatusPendente)}
		repo.EXPECT().GetPaged(gomock.Any(), 3, 10, "óleo").Return(items, 25, nil)

		page, err := uc.List(context.Background(), ListWorkOrdersQuery{Filter: "óleo", Page: 3, PageSize: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalCount != 25 || page.TotalPages != 3 || page.Page != 3 {
			t.Fatalf("unexpected page: %+v", page)
		}
	})

	t.Run("page below 1 is rejected", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil)
		_, err := uc.List(context.Background(), ListWorkOrdersQuery{Page: 0, PageSize: 10})
		var valErr *faults.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().GetPaged(gomock.Any(), 1, 10, "").Return(nil, 0, errors.New("db"))

		_, err := uc.List(context.Background(), ListWorkOrdersQuery{Page: 1, PageSize: 10})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
