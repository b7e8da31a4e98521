package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", E(CodeInvalidArgument, "op", "title is required", nil), http.StatusBadRequest},
		{"not-found", E(CodeNotFound, "op", "Project not found", nil), http.StatusNotFound},
		{"db-unavailable", E(CodeDBUnavailable, "op", "Database not connected", nil), http.StatusInternalServerError},
		{"internal", E(CodeInternal, "op", "boom", errors.New("x")), http.StatusInternalServerError},
		{"sentinel", fmt.Errorf("wrap: %w", ErrNotFound), http.StatusNotFound},
		{"plain", errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("socket closed")
	err := E(CodeInternal, "ProjectService.Create", "Error adding project", cause)

	assert.Equal(t, "ProjectService.Create: Error adding project: socket closed", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsCode(err, CodeInternal))
	assert.False(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(cause, CodeInternal))
}

func TestAppError_ErrorParts(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{"op-and-cause", &AppError{Op: "Repo.Find", Err: errors.New("eof")}, "Repo.Find: eof"},
		{"message-only", &AppError{Message: "Project not found"}, "Project not found"},
		{"empty", &AppError{}, "error"},
		{"nil", nil, "<nil>"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestPublic(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode Code
		wantMsg  string
	}{
		{"coded", E(CodeInvalidArgument, "op", "title is required", nil), CodeInvalidArgument, "title is required"},
		{"coded-without-message", E(CodeNotFound, "op", "", ErrNotFound), CodeNotFound, "Not Found"},
		{"wrapped-sentinel", fmt.Errorf("find: %w", ErrNotFound), CodeNotFound, "Not Found"},
		{"plain-hidden", errors.New("dial tcp 10.0.0.1: refused"), CodeInternal, "Internal Server Error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := Public(tc.err)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantMsg, msg)
		})
	}
}
