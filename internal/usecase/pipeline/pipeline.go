package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"gestao_os/internal/domain/faults"
)

// Every use case runs through the same fixed composition of behaviors:
// logging wraps validation wraps the handler. Validation short-circuits with
// an aggregated faults.ValidationError before the handler is reached; the
// log entries are emitted either way.

// Request is the contract a command or query opts into to flow through the
// pipeline.
type Request interface {
	// UseCaseName identifies the use case in log entries.
	UseCaseName() string
	// LogFields lists the key request fields recorded before execution.
	LogFields() map[string]interface{}
}

// HandlerFunc executes a single use case.
type HandlerFunc[Req Request, Res any] func(ctx context.Context, req Req) (Res, error)

// Behavior wraps a handler with a cross-cutting concern.
type Behavior[Req Request, Res any] func(next HandlerFunc[Req, Res]) HandlerFunc[Req, Res]

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validation runs the request's field rules and short-circuits with a single
// aggregated failure, one entry per failing field. The handler is never
// reached for an invalid request.
func Validation[Req Request, Res any](next HandlerFunc[Req, Res]) HandlerFunc[Req, Res] {
	return func(ctx context.Context, req Req) (Res, error) {
		if err := validateRequest(req); err != nil {
			var zero Res
			return zero, err
		}
		return next(ctx, req)
	}
}

// Logging records a structured entry before and after execution, including
// validation short-circuits.
func Logging[Req Request, Res any](next HandlerFunc[Req, Res]) HandlerFunc[Req, Res] {
	return func(ctx context.Context, req Req) (Res, error) {
		start := time.Now()
		log.Info().
			Str("use_case", req.UseCaseName()).
			Fields(req.LogFields()).
			Msg("use_case_start")

		res, err := next(ctx, req)

		event := log.Info()
		if err != nil {
			event = log.Warn().Err(err)
		}
		event.
			Str("use_case", req.UseCaseName()).
			Dur("duration", time.Since(start)).
			Bool("success", err == nil).
			Msg("use_case_done")
		return res, err
	}
}

// Run dispatches a request through the behavior chain. The order is fixed;
// no use case bypasses validation or logging.
func Run[Req Request, Res any](ctx context.Context, req Req, handler HandlerFunc[Req, Res]) (Res, error) {
	wrapped := Logging[Req, Res](Validation[Req, Res](handler))
	return wrapped(ctx, req)
}

func validateRequest(req Request) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]faults.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, faults.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return faults.NewValidation(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must have at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "is not valid (" + fe.Tag() + ")"
	}
}
