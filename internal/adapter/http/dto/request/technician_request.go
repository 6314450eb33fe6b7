package request

import "gestao_os/internal/usecase"

type TechnicianRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
}

func (r TechnicianRequest) ToCreateCommand() usecase.CreateTechnicianCommand {
	return usecase.CreateTechnicianCommand{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Specialty: r.Specialty,
	}
}

func (r TechnicianRequest) ToUpdateCommand(id string) usecase.UpdateTechnicianCommand {
	return usecase.UpdateTechnicianCommand{
		ID:        id,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Specialty: r.Specialty,
	}
}
