// Package apperr defines the error taxonomy shared by services and handlers.
// Every user-facing failure is an *Error with a Kind; handlers translate the
// kind into an HTTP status and surface Message verbatim. Errors are never
// retried.
package apperr

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type Kind string

const (
	KindValidation    Kind = "validation"
	KindCapExceeded   Kind = "cap_exceeded"
	KindNotFound      Kind = "not_found"
	KindAlreadyMember Kind = "already_member"
	KindParse         Kind = "parse"
	KindUpstream      Kind = "upstream"
	KindNetwork       Kind = "network"
	KindTimeout       Kind = "timeout"
)

type Error struct {
	Kind    Kind
	Message string
	// Fields holds one message per missing/invalid field for validation
	// errors; empty otherwise.
	Fields []string
	Err    error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) > 0 {
		return strings.Join(e.Fields, "; ")
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation builds a validation error carrying one message per bad field.
func Validation(fields ...string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: strings.Join(fields, " "),
		Fields:  fields,
	}
}

// NotFound, CapExceeded and AlreadyMember keep the construction sites short.
func NotFound(message string) *Error      { return New(KindNotFound, message) }
func CapExceeded(message string) *Error   { return New(KindCapExceeded, message) }
func AlreadyMember(message string) *Error { return New(KindAlreadyMember, message) }

// KindOf reports the taxonomy kind of err, recognising context deadline
// expiry as a timeout even when a driver wrapped it. Returns "" for errors
// outside the taxonomy.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return ""
}

// HTTPStatus maps err to the response status its kind warrants.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindCapExceeded, KindAlreadyMember:
		return http.StatusConflict
	case KindParse, KindUpstream, KindNetwork:
		return http.StatusBadGateway
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
