package apperrors

import "net/http"

// Kind enumerates every outcome a pipeline stage can fail (or no-op) with.
type Kind string

const (
	Unauthenticated  Kind = "unauthenticated"
	InvalidState     Kind = "invalid_state"
	Throttled        Kind = "throttled"
	PermissionDenied Kind = "permission_denied"
	InvalidArgument  Kind = "invalid_argument"
	NotFound         Kind = "not_found"
	Conflict         Kind = "conflict"
	Unavailable      Kind = "unavailable"
	Unchanged        Kind = "unchanged"
)

// AppError is the typed result every stage of the request pipeline returns on
// failure. Field names the offending input for InvalidArgument/PermissionDenied
// so the caller can reconstruct what was wrong without seeing storage errors.
type AppError struct {
	Kind    Kind
	Message string
	Field   string
}

func (e *AppError) Error() string {
	if e.Field != "" {
		return string(e.Kind) + ": " + e.Message + " (" + e.Field + ")"
	}
	return string(e.Kind) + ": " + e.Message
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func NewField(kind Kind, message string, field string) *AppError {
	return &AppError{Kind: kind, Message: message, Field: field}
}

// KindOf returns the kind of err, or "" for nil / untyped errors.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr.Kind
	}
	return ""
}

// HTTPStatus maps an error kind to the response status used by controllers.
func HTTPStatus(kind Kind) int {
	switch kind {
	case Unauthenticated:
		return http.StatusUnauthorized
	case InvalidState, PermissionDenied:
		return http.StatusForbidden
	case Throttled:
		return http.StatusTooManyRequests
	case InvalidArgument:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Unavailable:
		return http.StatusServiceUnavailable
	case Unchanged:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}
