package response

import (
	"time"

	"gestao_os/internal/domain/entities"
	"gestao_os/internal/usecase"
)

type WorkOrderResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	TechnicianID   string     `json:"technician_id"`
	TechnicianName string     `json:"technician_name,omitempty"`
	Status         string     `json:"status"`
	StatusLabel    string     `json:"status_label"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func FromWorkOrder(o *entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:           o.ID(),
		Title:        o.Title(),
		Description:  o.Description(),
		TechnicianID: o.TechnicianID(),
		Status:       string(o.Status()),
		StatusLabel:  o.Status().DisplayName(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}

func FromWorkOrderDetails(d usecase.WorkOrderDetails) WorkOrderResponse {
	resp := FromWorkOrder(d.Order)
	resp.TechnicianName = d.TechnicianName
	return resp
}
