package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a pipeline failure so handlers can map it to an HTTP
// status without inspecting stage internals.
type Kind int

const (
	KindUnknown Kind = iota
	KindInput
	KindConfiguration
	KindUpstream
	KindMalformedResponse
	KindPersistence
)

type Error struct {
	Kind    Kind
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

func newError(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

func Input(format string, args ...interface{}) *Error {
	return newError(KindInput, nil, format, args...)
}

func Configuration(format string, args ...interface{}) *Error {
	return newError(KindConfiguration, nil, format, args...)
}

func Upstream(err error, format string, args ...interface{}) *Error {
	return newError(KindUpstream, err, format, args...)
}

func MalformedResponse(err error, format string, args ...interface{}) *Error {
	return newError(KindMalformedResponse, err, format, args...)
}

func Persistence(err error, format string, args ...interface{}) *Error {
	return newError(KindPersistence, err, format, args...)
}

// KindOf returns the classification of err, or KindUnknown for errors that
// did not originate in the pipeline.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Status maps an error to the HTTP status the orchestrator contract
// requires: 400 for input/validation failures, 500 for everything else.
func Status(err error) int {
	if KindOf(err) == KindInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// PublicMessage is the only error detail allowed across the HTTP boundary.
// Wrapped causes stay server-side.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Unknown error occurred."
}
