package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"gestao_os/internal/domain/faults"
)

// WorkOrderStatus represents the lifecycle of a work order (ordem de serviço).
//
// Transition table:
//   - pendente     -> em_andamento, concluida
//   - em_andamento -> concluida, pendente
//   - concluida    -> (terminal)
//
// Same-state moves are not in the table; concluida has no outgoing moves.

type WorkOrderStatus string

const (
	WorkOrderStatusPendente    WorkOrderStatus = "pendente"
	WorkOrderStatusEmAndamento WorkOrderStatus = "em_andamento"
	WorkOrderStatusConcluida   WorkOrderStatus = "concluida"
)

// DisplayName returns the label used in error messages and API responses.
func (s WorkOrderStatus) DisplayName() string {
	switch s {
	case WorkOrderStatusPendente:
		return "Pendente"
	case WorkOrderStatusEmAndamento:
		return "Em Andamento"
	case WorkOrderStatusConcluida:
		return "Concluída"
	default:
		return string(s)
	}
}

func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case WorkOrderStatusPendente, WorkOrderStatusEmAndamento, WorkOrderStatusConcluida:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving to next is in the transition table.
func (s WorkOrderStatus) CanTransitionTo(next WorkOrderStatus) bool {
	switch s {
	case WorkOrderStatusPendente:
		return next == WorkOrderStatusEmAndamento || next == WorkOrderStatusConcluida
	case WorkOrderStatusEmAndamento:
		return next == WorkOrderStatusConcluida || next == WorkOrderStatusPendente
	default:
		return false
	}
}

// ParseWorkOrderStatus resolves a status literal case- and accent-insensitively
// ("Concluída", "concluida", "EM ANDAMENTO", "em_andamento" all parse).
func ParseWorkOrderStatus(literal string) (WorkOrderStatus, error) {
	switch normalizeLiteral(literal) {
	case "pendente":
		return WorkOrderStatusPendente, nil
	case "em andamento":
		return WorkOrderStatusEmAndamento, nil
	case "concluida":
		return WorkOrderStatusConcluida, nil
	default:
		return "", faults.NewInvalidStatusLiteral(literal)
	}
}

const (
	workOrderTitleMaxLen       = 200
	workOrderDescriptionMaxLen = 1000
)

// WorkOrder is the schedulable unit of work assigned to one technician.
//
// Instances are built through NewWorkOrder (business creation, runs all
// guards) or RehydrateWorkOrder (persistence adapter only). Fields change
// exclusively through the guarded mutators, which validate everything they
// touch before assigning anything.
type WorkOrder struct {
	id           string
	title        string
	description  string
	technicianID string
	status       WorkOrderStatus
	createdAt    time.Time
	updatedAt    *time.Time
}

// NewWorkOrder creates a pendente work order. UpdatedAt stays nil until the
// first mutation.
func NewWorkOrder(title, description, technicianID string) (*WorkOrder, error) {
	title, description, technicianID, err := validateWorkOrderFields(title, description, technicianID)
	if err != nil {
		return nil, err
	}
	return &WorkOrder{
		id:           uuid.NewString(),
		title:        title,
		description:  description,
		technicianID: technicianID,
		status:       WorkOrderStatusPendente,
		createdAt:    time.Now().UTC(),
	}, nil
}

// RehydrateWorkOrder rebuilds a persisted work order without re-running the
// creation guards. Reserved for the persistence adapter.
func RehydrateWorkOrder(id, title, description, technicianID string, status WorkOrderStatus, createdAt time.Time, updatedAt *time.Time) *WorkOrder {
	return &WorkOrder{
		id:           id,
		title:        title,
		description:  description,
		technicianID: technicianID,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (o *WorkOrder) ID() string              { return o.id }
func (o *WorkOrder) Title() string           { return o.title }
func (o *WorkOrder) Description() string     { return o.description }
func (o *WorkOrder) TechnicianID() string    { return o.technicianID }
func (o *WorkOrder) Status() WorkOrderStatus { return o.status }
func (o *WorkOrder) CreatedAt() time.Time    { return o.createdAt }
func (o *WorkOrder) UpdatedAt() *time.Time   { return o.updatedAt }

// UpdateDetails replaces title, description and technician reference after
// validating all three. Nothing is assigned when any field is rejected.
func (o *WorkOrder) UpdateDetails(title, description, technicianID string) error {
	title, description, technicianID, err := validateWorkOrderFields(title, description, technicianID)
	if err != nil {
		return err
	}
	o.title = title
	o.description = description
	o.technicianID = technicianID
	o.touch()
	return nil
}

// ChangeStatus applies the transition table.
func (o *WorkOrder) ChangeStatus(next WorkOrderStatus) error {
	if !next.IsValid() {
		return faults.NewInvalidStatusLiteral(string(next))
	}
	if !o.status.CanTransitionTo(next) {
		return faults.NewInvalidTransition(o.status.DisplayName(), next.DisplayName())
	}
	o.status = next
	o.touch()
	return nil
}

// EnsureDeletable gates deletion: only pendente work orders can be removed.
func (o *WorkOrder) EnsureDeletable() error {
	if o.status != WorkOrderStatusPendente {
		return faults.NewRuleViolation(
			"work_order_delete_requires_pendente",
			"work order can only be deleted while Pendente; current status is "+o.status.DisplayName(),
		)
	}
	return nil
}

func (o *WorkOrder) touch() {
	now := time.Now().UTC()
	o.updatedAt = &now
}

func validateWorkOrderFields(title, description, technicianID string) (string, string, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", "", faults.NewArgument("Title", "title is required")
	}
	if len([]rune(title)) > workOrderTitleMaxLen {
		return "", "", "", faults.NewArgument("Title", "title must have at most 200 characters")
	}
	description = strings.TrimSpace(description)
	if len([]rune(description)) > workOrderDescriptionMaxLen {
		return "", "", "", faults.NewArgument("Description", "description must have at most 1000 characters")
	}
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return "", "", "", faults.NewArgument("TechnicianID", "technician reference is required")
	}
	return title, description, technicianID, nil
}
