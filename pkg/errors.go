package pkg

// AppError is the transport-facing error built at the HTTP boundary. Domain
// code never constructs one; the handlers package owns the translation from
// domain failures to codes and statuses.

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    []ErrorDetail
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetails attaches per-field information, used for validation responses.
func (e *AppError) WithDetails(details []ErrorDetail) *AppError {
	e.Details = details
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPError is the uniform wire payload for failures.
type HTTPError struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ToHTTPError strips internal detail (wrapped errors are logged server-side,
// never serialized).
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}
