package response

import (
	"time"

	"gestao_os/internal/domain/entities"
)

type TechnicianResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Specialty    string    `json:"specialty"`
	Status       string    `json:"status"`
	StatusLabel  string    `json:"status_label"`
	RegisteredAt time.Time `json:"registered_at"`
}

func FromTechnician(t *entities.Technician) TechnicianResponse {
	return TechnicianResponse{
		ID:           t.ID(),
		Name:         t.Name(),
		Email:        t.Email(),
		Phone:        t.Phone(),
		Specialty:    t.Specialty(),
		Status:       string(t.Status()),
		StatusLabel:  t.Status().DisplayName(),
		RegisteredAt: t.RegisteredAt(),
	}
}
