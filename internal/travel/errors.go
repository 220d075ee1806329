package travel

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies planner failures for transport-layer mapping.
type ErrorKind string

const (
	KindValidation   ErrorKind = "VALIDATION_ERROR"
	KindBadCityID    ErrorKind = "BAD_CITY_ID"
	KindCityNotFound ErrorKind = "CITY_NOT_FOUND"
	KindUpstream     ErrorKind = "UPSTREAM_ERROR"
)

// Error is the planner's error type. It carries a stable machine
// readable kind and keeps the underlying cause unwrappable.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps the error kind to its HTTP status class.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindBadCityID:
		return http.StatusBadRequest
	case KindCityNotFound:
		return http.StatusNotFound
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError reports malformed caller input.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewBadCityIDError reports a city id that does not parse into valid
// coordinates.
func NewBadCityIDError(id string) *Error {
	return &Error{Kind: KindBadCityID, Message: fmt.Sprintf("bad city id %q, expected \"<latitude>_<longitude>\"", id)}
}

// NewCityNotFoundError reports a search that returned zero matches.
func NewCityNotFoundError(query string) *Error {
	return &Error{Kind: KindCityNotFound, Message: fmt.Sprintf("no cities found matching %q", query)}
}

// NewUpstreamError wraps a transport or protocol failure from a
// collaborator, preserving the cause.
func NewUpstreamError(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// AsError extracts a *Error from err, or wraps err as an upstream
// failure when it carries no kind.
func AsError(err error) *Error {
	var te *Error
	if errors.As(err, &te) {
		return te
	}
	return NewUpstreamError("unexpected failure", err)
}
