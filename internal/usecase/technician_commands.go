package usecase

type CreateTechnicianCommand struct {
	Name      string `validate:"required,max=100"`
	Email     string `validate:"required,max=100"`
	Phone     string
	Specialty string `validate:"required,max=100"`
}

func (CreateTechnicianCommand) UseCaseName() string { return "technician_create" }

func (c CreateTechnicianCommand) LogFields() map[string]interface{} {
	return map[string]interface{}{"name": c.Name, "specialty": c.Specialty}
}

type UpdateTechnicianCommand struct {
	ID        string `validate:"required"`
	Name      string `validate:"required,max=100"`
	Email     string `validate:"required,max=100"`
	Phone     string
	Specialty string `validate:"required,max=100"`
}

func (UpdateTechnicianCommand) UseCaseName() string { return "technician_update" }

func (c UpdateTechnicianCommand) LogFields() map[string]interface{} {
	return map[string]interface{}{"id": c.ID, "name": c.Name}
}

type ChangeTechnicianStatusCommand struct {
	ID     string `validate:"required"`
	Status string `validate:"required"`
}

func (ChangeTechnicianStatusCommand) UseCaseName() string { return "technician_change_status" }

func (c ChangeTechnicianStatusCommand) LogFields() map[string]interface{} {
	return map[string]interface{}{"id": c.ID, "status": c.Status}
}

type DeleteTechnicianCommand struct {
	ID string `validate:"required"`
}

func (DeleteTechnicianCommand) UseCaseName() string { return "technician_delete" }

func (c DeleteTechnicianCommand) LogFields() map[string]interface{} {
	return map[string]interface{}{"id": c.ID}
}

type GetTechnicianQuery struct {
	ID string `validate:"required"`
}

func (GetTechnicianQuery) UseCaseName() string { return "technician_get" }

func (q GetTechnicianQuery) LogFields() map[string]interface{} {
	return map[string]interface{}{"id": q.ID}
}

type ListTechniciansQuery struct {
	Filter   string
	Page     int `validate:"gte=1"`
	PageSize int `validate:"gte=1,lte=100"`
}

func (ListTechniciansQuery) UseCaseName() string { return "technician_list" }

func (q ListTechniciansQuery) LogFields() map[string]interface{} {
	return map[string]interface{}{"page": q.Page, "page_size": q.PageSize, "filter": q.Filter}
}
