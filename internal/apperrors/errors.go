package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate is returned by repositories when a unique constraint rejects a write.
// Services translate it into ErrConflict.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates a duplicate email or an auth provider mismatch.
var ErrConflict = errors.New("conflict")

// ErrUnauthenticated indicates missing or invalid credentials or token.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrWrongProvider indicates a password login against an externally provisioned account.
var ErrWrongProvider = errors.New("wrong auth provider")

// ErrForbidden indicates the caller is authenticated but does not own the resource.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidToken is returned by the token service for bad signature, malformed or expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// ErrInvalidAssertion indicates an external identity assertion failed verification.
var ErrInvalidAssertion = errors.New("invalid identity assertion")

// ErrUnavailable indicates an external dependency did not answer in time.
var ErrUnavailable = errors.New("service unavailable")

// ErrInternal marks unexpected failures. Their detail is logged, never returned to clients.
var ErrInternal = errors.New("internal error")

// statusByKind maps error kinds to HTTP status codes.
// Conflict keeps 400 because that is what clients of the API already rely on.
var statusByKind = map[error]int{
	ErrValidation:       http.StatusBadRequest,
	ErrConflict:         http.StatusBadRequest,
	ErrWrongProvider:    http.StatusBadRequest,
	ErrUnauthenticated:  http.StatusUnauthorized,
	ErrForbidden:        http.StatusForbidden,
	ErrNotFound:         http.StatusNotFound,
	ErrInvalidAssertion: http.StatusInternalServerError,
	ErrUnavailable:      http.StatusServiceUnavailable,
	ErrInternal:         http.StatusInternalServerError,
}

// AppError is the error type returned by services. Kind is one of the sentinel errors above,
// Message is safe to show to the caller and Err is the underlying cause, if any.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
	Kind    error  `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewAppError builds an AppError of the given kind.
func NewAppError(kind error, message string, err error) *AppError {
	code, ok := statusByKind[kind]
	if !ok {
		code = http.StatusInternalServerError
	}
	return &AppError{Code: code, Message: message, Kind: kind, Err: err}
}

func NewValidationError(message string) *AppError {
	return NewAppError(ErrValidation, message, nil)
}

func NewConflictError(message string) *AppError {
	return NewAppError(ErrConflict, message, nil)
}

func NewUnauthenticatedError(message string, err error) *AppError {
	return NewAppError(ErrUnauthenticated, message, err)
}

func NewWrongProviderError(message string) *AppError {
	return NewAppError(ErrWrongProvider, message, nil)
}

func NewForbiddenError(message string) *AppError {
	return NewAppError(ErrForbidden, message, nil)
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(ErrNotFound, message, nil)
}

func NewInvalidAssertionError(message string, err error) *AppError {
	return NewAppError(ErrInvalidAssertion, message, err)
}

func NewUnavailableError(message string, err error) *AppError {
	return NewAppError(ErrUnavailable, message, err)
}

func NewInternalError(message string, err error) *AppError {
	return NewAppError(ErrInternal, message, err)
}

// StatusCode returns the HTTP status for err, defaulting to 500 for anything
// that is not an AppError.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
