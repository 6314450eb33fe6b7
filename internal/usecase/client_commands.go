package usecase

type CreateClientCommand struct {
	LegalName  string `validate:"required,max=200"`
	TradeName  string `validate:"max=200"`
	CNPJ       string `validate:"required"`
	Email      string `validate:"required,max=100"`
	Phone      string
	Address    string `validate:"required,max=300"`
	City       string `validate:"required,max=100"`
	State      string `validate:"required"`
	PostalCode string `validate:"required"`
}

func (CreateClientCommand) UseCaseName() string { return "client_create" }

func (c CreateClientCommand) LogFields() map[string]interface{} {
	return map[string]interface{}{"legal_name": c.LegalName, "cnpj": c.CNPJ}
}

type UpdateClientCommand struct {
	ID         string `validate:"required"`
	LegalName  string `validate:"required,max=200"`
	TradeName  string `validate:"max=200"`
	CNPJ       string `validate:"required"`
	Email      string `validate:"required,max=100"`
	Phone      string
	Address    string `validate:"required,max=300"`
	City       string `validate:"required,max=100"`
	State      string `validate:"required"`
	PostalCode string `validate:"required"`
}

func (UpdateClientCommand) UseCaseName() string { return "client_update" }

func (c UpdateClientCommand) LogFields() map[string]interface{} {
	return map[string]interface{}{"id": c.ID, "legal_name": c.LegalName}
}

type DeleteClientCommand struct {
	ID string `validate:"required"`
}

func (DeleteClientCommand) UseCaseName() string { return "client_delete" }

func (c DeleteClientCommand) LogFields() map[string]interface{} {
	return map[string]interface{}{"id": c.ID}
}

type GetClientQuery struct {
	ID string `validate:"required"`
}

func (GetClientQuery) UseCaseName() string { return "client_get" }

func (q GetClientQuery) LogFields() map[string]interface{} {
	return map[string]interface{}{"id": q.ID}
}

type ListClientsQuery struct {
	Filter   string
	Page     int `validate:"gte=1"`
	PageSize int `validate:"gte=1,lte=100"`
}

func (ListClientsQuery) UseCaseName() string { return "client_list" }

func (q ListClientsQuery) LogFields() map[string]interface{} {
	return map[string]interface{}{"page": q.Page, "page_size": q.PageSize, "filter": q.Filter}
}
