package request

import "gestao_os/internal/usecase"

type ClientRequest struct {
	LegalName  string `json:"legal_name"`
	TradeName  string `json:"trade_name"`
	CNPJ       string `json:"cnpj"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

func (r ClientRequest) ToCreateCommand() usecase.CreateClientCommand {
	return usecase.CreateClientCommand{
		LegalName:  r.LegalName,
		TradeName:  r.TradeName,
		CNPJ:       r.CNPJ,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
	}
}

func (r ClientRequest) ToUpdateCommand(id string) usecase.UpdateClientCommand {
	return usecase.UpdateClientCommand{
		ID:         id,
		LegalName:  r.LegalName,
		TradeName:  r.TradeName,
		CNPJ:       r.CNPJ,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
	}
}
