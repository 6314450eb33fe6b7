package usecase

// Commands and queries for the work order use cases. The validate tags cover
// request shape only; format rules and normalization stay with the entity
// guards.

type CreateWorkOrderCommand struct {
	Title        string `validate:"required,max=200"`
	Description  string `validate:"max=1000"`
	TechnicianID string `validate:"required"`
}

func (CreateWorkOrderCommand) UseCaseName() string { return "work_order_create" }

func (c CreateWorkOrderCommand) LogFields() map[string]interface{} {
	return map[string]interface{}{"title": c.Title, "technician_id": c.TechnicianID}
}

type UpdateWorkOrderCommand struct {
	ID           string `validate:"required"`
	Title        string `validate:"required,max=200"`
	Description  string `validate:"max=1000"`
	TechnicianID string `validate:"required"`
	Status       string `validate:"required"`
}

func (UpdateWorkOrderCommand) UseCaseName() string { return "work_order_update" }

func (c UpdateWorkOrderCommand) LogFields() map[string]interface{} {
	return map[string]interface{}{"id": c.ID, "status": c.Status}
}

type ChangeWorkOrderStatusCommand struct {
	ID     string `validate:"required"`
	Status string `validate:"required"`
}

func (ChangeWorkOrderStatusCommand) UseCaseName() string { return "work_order_change_status" }

func (c ChangeWorkOrderStatusCommand) LogFields() map[string]interface{} {
	return map[string]interface{}{"id": c.ID, "status": c.Status}
}

type DeleteWorkOrderCommand struct {
	ID string `validate:"required"`
}

func (DeleteWorkOrderCommand) UseCaseName() string { return "work_order_delete" }

func (c DeleteWorkOrderCommand) LogFields() map[string]interface{} {
	return map[string]interface{}{"id": c.ID}
}

type GetWorkOrderQuery struct {
	ID string `validate:"required"`
}

func (GetWorkOrderQuery) UseCaseName() string { return "work_order_get" }

func (q GetWorkOrderQuery) LogFields() map[string]interface{} {
	return map[string]interface{}{"id": q.ID}
}

type ListWorkOrdersQuery struct {
	Filter   string
	Page     int `validate:"gte=1"`
	PageSize int `validate:"gte=1,lte=100"`
}

func (ListWorkOrdersQuery) UseCaseName() string { return "work_order_list" }

func (q ListWorkOrdersQuery) LogFields() map[string]interface{} {
	return map[string]interface{}{"page": q.Page, "page_size": q.PageSize, "filter": q.Filter}
}
