package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"gestao_os/internal/domain/faults"
	"gestao_os/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

// mapDomainError is the single place where the domain failure vocabulary
// becomes wire vocabulary. Handlers and entities never build transport
// responses themselves.
func mapDomainError(err error) *pkg.AppError {
	var (
		validation *faults.ValidationError
		argument   *faults.ArgumentError
		notFound   *faults.NotFoundError
		transition *faults.InvalidTransitionError
		already    *faults.AlreadyInStatusError
		literal    *faults.InvalidStatusLiteralError
		rule       *faults.RuleViolationError
	)

	switch {
	case errors.As(err, &validation):
		details := make([]pkg.ErrorDetail, 0, len(validation.Fields))
		for _, f := range validation.Fields {
			details = append(details, pkg.ErrorDetail{Field: f.Field, Message: f.Message})
		}
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "One or more fields are invalid", http.StatusBadRequest).
			WithDetails(details)
	case errors.As(err, &argument):
		return pkg.NewDomainErrorSimple("INVALID_ARGUMENT", argument.Error(), http.StatusBadRequest)
	case errors.As(err, &notFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", notFound.Error(), http.StatusNotFound)
	case errors.As(err, &transition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", transition.Error(), http.StatusBadRequest)
	case errors.As(err, &already):
		return pkg.NewDomainErrorSimple("ALREADY_IN_STATUS", already.Error(), http.StatusBadRequest)
	case errors.As(err, &literal):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", literal.Error(), http.StatusBadRequest)
	case errors.As(err, &rule):
		return pkg.NewDomainErrorSimple("BUSINESS_RULE_VIOLATION", rule.Error(), http.StatusBadRequest)
	case errors.Is(err, faults.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapDomainError(err)
	if appErr.HTTPStatus == http.StatusInternalServerError {
		// Full error stays server-side; the payload carries the generic message.
		log.Error().Err(err).Str("path", c.FullPath()).Msg("internal_error")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
