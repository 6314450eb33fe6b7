package request

import "gestao_os/internal/usecase"

type WorkOrderCreateRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	TechnicianID string `json:"technician_id"`
}

func (r WorkOrderCreateRequest) ToCommand() usecase.CreateWorkOrderCommand {
	return usecase.CreateWorkOrderCommand{
		Title:        r.Title,
		Description:  r.Description,
		TechnicianID: r.TechnicianID,
	}
}

type WorkOrderUpdateRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	TechnicianID string `json:"technician_id"`
	Status       string `json:"status"`
}

func (r WorkOrderUpdateRequest) ToCommand(id string) usecase.UpdateWorkOrderCommand {
	return usecase.UpdateWorkOrderCommand{
		ID:           id,
		Title:        r.Title,
		Description:  r.Description,
		TechnicianID: r.TechnicianID,
		Status:       r.Status,
	}
}

// StatusChangeRequest carries the status literal for the PATCH /:id/status
// endpoints (work orders and technicians share the shape).
type StatusChangeRequest struct {
	Status string `json:"status"`
}
