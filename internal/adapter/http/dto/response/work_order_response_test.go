package response

import (
	"testing"
	"time"

	"gestao_os/internal/domain/entities"
	"gestao_os/internal/usecase"
)

func TestFromWorkOrderDetails(t *testing.T) {
	createdAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	updatedAt := createdAt.Add(time.Hour)
	order := entities.RehydrateWorkOrder("os-1", "Troca de óleo", "Óleo 5W30", "tech-1", entities.WorkOrderStatusEmAndamento, createdAt, &updatedAt)

	resp := FromWorkOrderDetails(usecase.WorkOrderDetails{Order: order, TechnicianName: "Carlos Silva"})

	if resp.ID != "os-1" || resp.TechnicianName != "Carlos Silva" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Status != "em_andamento" || resp.StatusLabel != "Em Andamento" {
		t.Fatalf("expected status plus label, got %q %q", resp.Status, resp.StatusLabel)
	}
	if resp.UpdatedAt == nil || !resp.UpdatedAt.Equal(updatedAt) {
		t.Fatalf("unexpected updated at: %v", resp.UpdatedAt)
	}
}

func TestFromWorkOrder_NilUpdatedAt(t *testing.T) {
	order := entities.RehydrateWorkOrder("os-1", "Troca de óleo", "", "tech-1", entities.WorkOrderStatusPendente, time.Now().UTC(), nil)
	resp := FromWorkOrder(order)
	if resp.UpdatedAt != nil {
		t.Fatalf("expected nil updated at, got %v", resp.UpdatedAt)
	}
	if resp.TechnicianName != "" {
		t.Fatalf("expected empty technician name on plain mapping")
	}
}

func TestFromPage(t *testing.T) {
	order := entities.RehydrateWorkOrder("os-1", "Troca de óleo", "", "tech-1", entities.WorkOrderStatusPendente, time.Now().UTC(), nil)
	page := usecase.Page[*entities.WorkOrder]{
		Items:      []*entities.WorkOrder{order},
		TotalCount: 25,
		TotalPages: 3,
		Page:       1,
		PageSize:   10,
	}

	resp := FromPage(page, FromWorkOrder)
	if resp.TotalCount != 25 || resp.TotalPages != 3 || resp.Page != 1 || resp.PageSize != 10 {
		t.Fatalf("unexpected totals: %+v", resp)
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != "os-1" {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}

	empty := FromPage(usecase.Page[*entities.WorkOrder]{}, FromWorkOrder)
	if empty.Items == nil {
		t.Fatalf("expected empty slice, not nil")
	}
	if empty.TotalPages != 0 {
		t.Fatalf("expected zero pages, got %d", empty.TotalPages)
	}
}
