package faults

import (
	"errors"
	"fmt"
	"strings"
)

// Closed vocabulary of domain failures. Entities and use cases raise these;
// the HTTP adapter is the only layer that translates them into transport
// responses.

// ErrUnauthorized is surfaced by the auth layer and passed through unchanged.
var ErrUnauthorized = errors.New("unauthorized")

// FieldError is a single failing request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates request-shape failures detected before a use
// case runs. One entry per failing field.
type ValidationError struct {
	Fields []FieldError
}

func NewValidation(fields []FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ArgumentError is raised by entity construction and mutation guards when a
// field value breaks an invariant.
type ArgumentError struct {
	Field   string
	Message string
}

func NewArgument(field, message string) *ArgumentError {
	return &ArgumentError{Field: field, Message: message}
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NotFoundError is raised when a referenced entity id does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// InvalidTransitionError is raised when a work order status move is not in
// the transition table. From/To carry display labels.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransition(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

// AlreadyInStatusError is raised when a technician status change requests the
// status the technician already has.
type AlreadyInStatusError struct {
	Status string
}

func NewAlreadyInStatus(status string) *AlreadyInStatusError {
	return &AlreadyInStatusError{Status: status}
}

func (e *AlreadyInStatusError) Error() string {
	return fmt.Sprintf("technician is already %q", e.Status)
}

// InvalidStatusLiteralError is raised when a status string cannot be parsed.
type InvalidStatusLiteralError struct {
	Literal string
}

func NewInvalidStatusLiteral(literal string) *InvalidStatusLiteralError {
	return &InvalidStatusLiteralError{Literal: literal}
}

func (e *InvalidStatusLiteralError) Error() string {
	return fmt.Sprintf("unrecognized status %q", e.Literal)
}

// RuleViolationError is raised when a named business rule blocks an operation.
type RuleViolationError struct {
	Rule    string
	Message string
}

func NewRuleViolation(rule, message string) *RuleViolationError {
	return &RuleViolationError{Rule: rule, Message: message}
}

func (e *RuleViolationError) Error() string {
	return e.Rule + ": " + e.Message
}
