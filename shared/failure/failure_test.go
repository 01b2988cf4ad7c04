package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"krown/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusConflict,
		Message: "booking already notified",
	}

	if f.Error() != "booking already notified" {
		t.Errorf("expected error message to be 'booking already notified', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest},
		{name: "Unauthorized", err: failure.Unauthorized("no credential"), code: http.StatusUnauthorized},
		{name: "Forbidden", err: failure.Forbidden("role not allowed"), code: http.StatusForbidden},
		{name: "NotFound", err: failure.NotFound("booking not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("invalid transition"), code: http.StatusConflict},
		{name: "UnprocessableEntity", err: failure.UnprocessableEntity("invalid mobile"), code: http.StatusUnprocessableEntity},
		{name: "BadGateway", err: failure.BadGateway("upstream unreachable"), code: http.StatusBadGateway},
		{name: "InternalError", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestGetCode_Wrapped(t *testing.T) {
	err := fmt.Errorf("calling upstream: %w", failure.Conflict("code mismatch"))

	if got := failure.GetCode(err); got != http.StatusConflict {
		t.Errorf("expected wrapped failure code to survive, got %d", got)
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected plain errors to map to 500, got %d", got)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "bad gateway is retryable", err: failure.BadGateway("down"), want: true},
		{name: "internal error is retryable", err: failure.InternalError(errors.New("boom")), want: true},
		{name: "conflict is not retryable", err: failure.Conflict("already confirmed"), want: false},
		{name: "unauthorized is not retryable", err: failure.Unauthorized("expired"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable = %v, want %v", got, tt.want)
			}
		})
	}
}
