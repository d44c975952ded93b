package repository

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorCode is a machine readable classification of a repository error.
type ErrorCode string

const (
	CodeInvalidInput              ErrorCode = "invalid-input"
	CodeInvalidID                 ErrorCode = "invalid-id"
	CodeInvalidOperation          ErrorCode = "invalid-operation"
	CodeDuplicatedRecord          ErrorCode = "duplicated-record"
	CodeIDNotProvided             ErrorCode = "id-not-provided"
	CodeNotFound                  ErrorCode = "not-found"
	CodeUnauthorized              ErrorCode = "unauthorized"
	CodeForbidden                 ErrorCode = "forbidden"
	CodeApplicationIntegrityError ErrorCode = "application-integrity-error"
)

// Sentinel errors for use with errors.Is. They match every *Error with
// the same code.
var (
	ErrInvalidInput              = &Error{Code: CodeInvalidInput}
	ErrInvalidID                 = &Error{Code: CodeInvalidID}
	ErrInvalidOperation          = &Error{Code: CodeInvalidOperation}
	ErrDuplicatedRecord          = &Error{Code: CodeDuplicatedRecord}
	ErrIDNotProvided             = &Error{Code: CodeIDNotProvided}
	ErrNotFound                  = &Error{Code: CodeNotFound}
	ErrUnauthorized              = &Error{Code: CodeUnauthorized}
	ErrForbidden                 = &Error{Code: CodeForbidden}
	ErrApplicationIntegrityError = &Error{Code: CodeApplicationIntegrityError}
)

// Params holds structured diagnostic parameters of an error, e.g. the
// offending ID.
type Params map[string]any

// Error is the error returned by all repositories.
type Error struct {
	Code    ErrorCode
	Message string
	Params  Params
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if b.Len() == 0 {
		b.WriteString(string(e.Code))
	}

	if len(e.Params) > 0 {
		keys := make([]string, 0, len(e.Params))
		for k := range e.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, e.Params[k]))
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
	}

	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Code == e.Code
}

func newError(code ErrorCode, message string, params Params, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Params:  params,
		Err:     err,
	}
}

func notFound(resource string, params Params) *Error {
	return newError(CodeNotFound, fmt.Sprintf("there is no %s matching your query", resource), params, nil)
}

func invalidInput(err error) *Error {
	return newError(CodeInvalidInput, "the input is invalid", nil, err)
}

func integrityError(key string, err error) *Error {
	return newError(CodeApplicationIntegrityError, "stored data could not be read", Params{"key": key}, err)
}
