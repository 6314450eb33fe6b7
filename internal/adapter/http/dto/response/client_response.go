package response

import (
	"time"

	"gestao_os/internal/domain/entities"
)

// ClientResponse exposes both the normalized values and the formatted
// display forms (CNPJ with punctuation, CEP with the dash).
type ClientResponse struct {
	ID                  string    `json:"id"`
	LegalName           string    `json:"legal_name"`
	TradeName           string    `json:"trade_name,omitempty"`
	CNPJ                string    `json:"cnpj"`
	CNPJFormatted       string    `json:"cnpj_formatted"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone,omitempty"`
	Address             string    `json:"address"`
	City                string    `json:"city"`
	State               string    `json:"state"`
	PostalCode          string    `json:"postal_code"`
	PostalCodeFormatted string    `json:"postal_code_formatted"`
	RegisteredAt        time.Time `json:"registered_at"`
}

func FromClient(c *entities.Client) ClientResponse {
	return ClientResponse{
		ID:                  c.ID(),
		LegalName:           c.LegalName(),
		TradeName:           c.TradeName(),
		CNPJ:                c.CNPJ(),
		CNPJFormatted:       c.FormattedCNPJ(),
		Email:               c.Email(),
		Phone:               c.Phone(),
		Address:             c.Address(),
		City:                c.City(),
		State:               c.State(),
		PostalCode:          c.PostalCode(),
		PostalCodeFormatted: c.FormattedPostalCode(),
		RegisteredAt:        c.RegisteredAt(),
	}
}
