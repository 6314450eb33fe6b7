package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"gestao_os/internal/domain/faults"
)

const (
	clientLegalNameMaxLen = 200
	clientTradeNameMaxLen = 200
	clientAddressMaxLen   = 300
	clientCityMaxLen      = 100
)

// Client is the company a work order is billed to.
//
// Normalized storage: CNPJ and postal code keep digits only, e-mail is
// lower-cased, the state code is upper-cased. Display formatting lives in
// FormattedCNPJ/FormattedPostalCode.
type Client struct {
	id           string
	legalName    string
	tradeName    string
	cnpj         string
	email        string
	phone        string
	address      string
	city         string
	state        string
	postalCode   string
	registeredAt time.Time
}

func NewClient(legalName, tradeName, cnpj, email, phone, address, city, state, postalCode string) (*Client, error) {
	fields, err := normalizeClientFields(legalName, tradeName, cnpj, email, phone, address, city, state, postalCode)
	if err != nil {
		return nil, err
	}
	c := fields.toClient()
	c.id = uuid.NewString()
	c.registeredAt = time.Now().UTC()
	return c, nil
}

// RehydrateClient rebuilds a persisted client. Reserved for the persistence
// adapter.
func RehydrateClient(id, legalName, tradeName, cnpj, email, phone, address, city, state, postalCode string, registeredAt time.Time) *Client {
	return &Client{
		id:           id,
		legalName:    legalName,
		tradeName:    tradeName,
		cnpj:         cnpj,
		email:        email,
		phone:        phone,
		address:      address,
		city:         city,
		state:        state,
		postalCode:   postalCode,
		registeredAt: registeredAt,
	}
}

func (c *Client) ID() string              { return c.id }
func (c *Client) LegalName() string       { return c.legalName }
func (c *Client) TradeName() string       { return c.tradeName }
func (c *Client) CNPJ() string            { return c.cnpj }
func (c *Client) Email() string           { return c.email }
func (c *Client) Phone() string           { return c.phone }
func (c *Client) Address() string         { return c.address }
func (c *Client) City() string            { return c.city }
func (c *Client) State() string           { return c.state }
func (c *Client) PostalCode() string      { return c.postalCode }
func (c *Client) RegisteredAt() time.Time { return c.registeredAt }

// FormattedCNPJ renders the stored digits as 12.345.678/0001-90.
func (c *Client) FormattedCNPJ() string { return FormatCNPJ(c.cnpj) }

// FormattedPostalCode renders the stored digits as 12345-678.
func (c *Client) FormattedPostalCode() string { return FormatPostalCode(c.postalCode) }

// UpdateRegistration replaces every registration field after validating all
// of them. Nothing is assigned when any field is rejected.
func (c *Client) UpdateRegistration(legalName, tradeName, cnpj, email, phone, address, city, state, postalCode string) error {
	fields, err := normalizeClientFields(legalName, tradeName, cnpj, email, phone, address, city, state, postalCode)
	if err != nil {
		return err
	}
	c.legalName = fields.legalName
	c.tradeName = fields.tradeName
	c.cnpj = fields.cnpj
	c.email = fields.email
	c.phone = fields.phone
	c.address = fields.address
	c.city = fields.city
	c.state = fields.state
	c.postalCode = fields.postalCode
	return nil
}

type clientFields struct {
	legalName  string
	tradeName  string
	cnpj       string
	email      string
	phone      string
	address    string
	city       string
	state      string
	postalCode string
}

func (f clientFields) toClient() *Client {
	return &Client{
		legalName:  f.legalName,
		tradeName:  f.tradeName,
		cnpj:       f.cnpj,
		email:      f.email,
		phone:      f.phone,
		address:    f.address,
		city:       f.city,
		state:      f.state,
		postalCode: f.postalCode,
	}
}

func normalizeClientFields(legalName, tradeName, cnpj, email, phone, address, city, state, postalCode string) (clientFields, error) {
	legalName = strings.TrimSpace(legalName)
	if legalName == "" {
		return clientFields{}, faults.NewArgument("LegalName", "legal name is required")
	}
	if len([]rune(legalName)) > clientLegalNameMaxLen {
		return clientFields{}, faults.NewArgument("LegalName", "legal name must have at most 200 characters")
	}
	tradeName = strings.TrimSpace(tradeName)
	if len([]rune(tradeName)) > clientTradeNameMaxLen {
		return clientFields{}, faults.NewArgument("TradeName", "trade name must have at most 200 characters")
	}
	normalizedCNPJ, err := NormalizeCNPJ(cnpj)
	if err != nil {
		return clientFields{}, err
	}
	normalizedEmail, err := normalizeEmail(email)
	if err != nil {
		return clientFields{}, err
	}
	normalizedPhone, err := normalizePhone(phone)
	if err != nil {
		return clientFields{}, err
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return clientFields{}, faults.NewArgument("Address", "address is required")
	}
	if len([]rune(address)) > clientAddressMaxLen {
		return clientFields{}, faults.NewArgument("Address", "address must have at most 300 characters")
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return clientFields{}, faults.NewArgument("City", "city is required")
	}
	if len([]rune(city)) > clientCityMaxLen {
		return clientFields{}, faults.NewArgument("City", "city must have at most 100 characters")
	}
	normalizedState, err := normalizeState(state)
	if err != nil {
		return clientFields{}, err
	}
	normalizedPostalCode, err := NormalizePostalCode(postalCode)
	if err != nil {
		return clientFields{}, err
	}
	return clientFields{
		legalName:  legalName,
		tradeName:  tradeName,
		cnpj:       normalizedCNPJ,
		email:      normalizedEmail,
		phone:      normalizedPhone,
		address:    address,
		city:       city,
		state:      normalizedState,
		postalCode: normalizedPostalCode,
	}, nil
}
