package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"gestao_os/internal/domain/faults"
)

// TechnicianStatus has no transition table: any status can be reached from any
// other. The single rule is that changing to the current status is rejected.

type TechnicianStatus string

const (
	TechnicianStatusAtivo   TechnicianStatus = "ativo"
	TechnicianStatusInativo TechnicianStatus = "inativo"
	TechnicianStatusFerias  TechnicianStatus = "ferias"
)

func (s TechnicianStatus) DisplayName() string {
	switch s {
	case TechnicianStatusAtivo:
		return "Ativo"
	case TechnicianStatusInativo:
		return "Inativo"
	case TechnicianStatusFerias:
		return "Férias"
	default:
		return string(s)
	}
}

func (s TechnicianStatus) IsValid() bool {
	switch s {
	case TechnicianStatusAtivo, TechnicianStatusInativo, TechnicianStatusFerias:
		return true
	default:
		return false
	}
}

// ParseTechnicianStatus resolves a status literal case- and
// accent-insensitively ("Férias", "ferias" and "FERIAS" all parse).
func ParseTechnicianStatus(literal string) (TechnicianStatus, error) {
	switch normalizeLiteral(literal) {
	case "ativo":
		return TechnicianStatusAtivo, nil
	case "inativo":
		return TechnicianStatusInativo, nil
	case "ferias":
		return TechnicianStatusFerias, nil
	default:
		return "", faults.NewInvalidStatusLiteral(literal)
	}
}

const (
	technicianNameMaxLen      = 100
	technicianSpecialtyMaxLen = 100
)

// Technician is the professional a work order is assigned to.
type Technician struct {
	id           string
	name         string
	email        string
	phone        string
	specialty    string
	status       TechnicianStatus
	registeredAt time.Time
}

// NewTechnician registers an ativo technician.
func NewTechnician(name, email, phone, specialty string) (*Technician, error) {
	fields, err := normalizeTechnicianFields(name, email, phone, specialty)
	if err != nil {
		return nil, err
	}
	return &Technician{
		id:           uuid.NewString(),
		name:         fields.name,
		email:        fields.email,
		phone:        fields.phone,
		specialty:    fields.specialty,
		status:       TechnicianStatusAtivo,
		registeredAt: time.Now().UTC(),
	}, nil
}

// RehydrateTechnician rebuilds a persisted technician. Reserved for the
// persistence adapter.
func RehydrateTechnician(id, name, email, phone, specialty string, status TechnicianStatus, registeredAt time.Time) *Technician {
	return &Technician{
		id:           id,
		name:         name,
		email:        email,
		phone:        phone,
		specialty:    specialty,
		status:       status,
		registeredAt: registeredAt,
	}
}

func (t *Technician) ID() string               { return t.id }
func (t *Technician) Name() string             { return t.name }
func (t *Technician) Email() string            { return t.email }
func (t *Technician) Phone() string            { return t.phone }
func (t *Technician) Specialty() string        { return t.specialty }
func (t *Technician) Status() TechnicianStatus { return t.status }
func (t *Technician) RegisteredAt() time.Time  { return t.registeredAt }

// UpdateProfile replaces the registration fields after validating all of them.
func (t *Technician) UpdateProfile(name, email, phone, specialty string) error {
	fields, err := normalizeTechnicianFields(name, email, phone, specialty)
	if err != nil {
		return err
	}
	t.name = fields.name
	t.email = fields.email
	t.phone = fields.phone
	t.specialty = fields.specialty
	return nil
}

// ChangeStatus rejects a change to the current status; every other move is
// allowed unconditionally.
func (t *Technician) ChangeStatus(next TechnicianStatus) error {
	if !next.IsValid() {
		return faults.NewInvalidStatusLiteral(string(next))
	}
	if next == t.status {
		return faults.NewAlreadyInStatus(t.status.DisplayName())
	}
	t.status = next
	return nil
}

type technicianFields struct {
	name      string
	email     string
	phone     string
	specialty string
}

func normalizeTechnicianFields(name, email, phone, specialty string) (technicianFields, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return technicianFields{}, faults.NewArgument("Name", "name is required")
	}
	if len([]rune(name)) > technicianNameMaxLen {
		return technicianFields{}, faults.NewArgument("Name", "name must have at most 100 characters")
	}
	normalizedEmail, err := normalizeEmail(email)
	if err != nil {
		return technicianFields{}, err
	}
	normalizedPhone, err := normalizePhone(phone)
	if err != nil {
		return technicianFields{}, err
	}
	specialty = strings.TrimSpace(specialty)
	if specialty == "" {
		return technicianFields{}, faults.NewArgument("Specialty", "specialty is required")
	}
	if len([]rune(specialty)) > technicianSpecialtyMaxLen {
		return technicianFields{}, faults.NewArgument("Specialty", "specialty must have at most 100 characters")
	}
	return technicianFields{name: name, email: normalizedEmail, phone: normalizedPhone, specialty: specialty}, nil
}
