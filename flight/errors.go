package flight

import (
	"errors"
	"fmt"
)

// Validation failure kinds. Every ValidationError unwraps to exactly one of
// these so callers and tests can branch with errors.Is while the message
// stays caller-facing.
var (
	ErrInvalidAirportCode      = errors.New("invalid airport code")
	ErrInvalidDateFormat       = errors.New("invalid date format")
	ErrInvalidDateValue        = errors.New("invalid date value")
	ErrDateInPast              = errors.New("date in the past")
	ErrInvalidPassengerCount   = errors.New("invalid passenger count")
	ErrPassengerCountRange     = errors.New("passenger count out of range")
	ErrInvalidTravelClass      = errors.New("invalid travel class")
	ErrInvalidFlightNumber     = errors.New("invalid flight number")
	ErrInvalidAirlineCode      = errors.New("invalid airline code")
	ErrSameAirports            = errors.New("origin and destination identical")
	ErrReturnNotAfterDeparture = errors.New("return date not after departure")
)

// ValidationError reports a caller-supplied argument that failed a contract.
// The message is surfaced to the caller verbatim.
type ValidationError struct {
	kind error
	msg  string
}

func validationErr(kind error, format string, args ...any) *ValidationError {
	return &ValidationError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.msg }

// Unwrap exposes the failure kind for errors.Is.
func (e *ValidationError) Unwrap() error { return e.kind }

// NotFoundError reports a well-formed query for which no data exists:
// an unknown airport or airline code, or a search with no matching offers.
// The message is surfaced to the caller verbatim.
type NotFoundError struct {
	msg string
}

// NotFoundf builds a NotFoundError from a format string.
func NotFoundf(format string, args ...any) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf(format, args...)}
}

func (e *NotFoundError) Error() string { return e.msg }

// UpstreamError wraps a failure from the live flight-data provider. Op names
// the operation for logging; the wrapped detail never reaches the caller.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }
