package utils

import (
	"errors"
	"net/http"
	"strings"
)

type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeDBUnavailable   Code = "DB_UNAVAILABLE"
	CodeInternal        Code = "INTERNAL"
)

// A dead store answers 500 like a broken one; the page has no retry path to offer.
var statusByCode = map[Code]int{
	CodeInvalidArgument: http.StatusBadRequest,
	CodeNotFound:        http.StatusNotFound,
	CodeDBUnavailable:   http.StatusInternalServerError,
	CodeInternal:        http.StatusInternalServerError,
}

var ErrNotFound = errors.New("not found")

// AppError is the error contract shared by repositories, services and handlers.
type AppError struct {
	Code    Code
	Op      string // operation name, ex: "ProjectService.Create"
	Message string // safe message, returned to clients
	Err     error  // wrapped error
}

// Error joins the non-empty parts as "op: message: cause".
func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	parts := make([]string, 0, 3)
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return "error"
	}
	return strings.Join(parts, ": ")
}

func (e *AppError) Unwrap() error { return e.Err }

func E(code Code, op, msg string, err error) error {
	return &AppError{Code: code, Op: op, Message: msg, Err: err}
}

func IsCode(err error, code Code) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Code == code
}

// HTTPStatus maps an error to the status code the API answers with.
// Uncoded errors are 500, except a wrapped ErrNotFound.
func HTTPStatus(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		if st, ok := statusByCode[ae.Code]; ok {
			return st
		}
		return http.StatusInternalServerError
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Public returns the code and message safe to show a client. Uncoded errors
// never leak their text: they become INTERNAL (or NOT_FOUND) with the status text.
func Public(err error) (Code, string) {
	var ae *AppError
	if errors.As(err, &ae) && ae.Code != "" {
		msg := ae.Message
		if msg == "" {
			msg = http.StatusText(HTTPStatus(err))
		}
		return ae.Code, msg
	}
	if errors.Is(err, ErrNotFound) {
		return CodeNotFound, http.StatusText(http.StatusNotFound)
	}
	return CodeInternal, http.StatusText(http.StatusInternalServerError)
}
