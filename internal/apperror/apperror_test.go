package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFound_MatchesSentinel(t *testing.T) {
	err := NotFound("user", "abc123")

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFound() should match ErrNotFound via errors.Is")
	}
	if errors.Is(err, ErrConflict) {
		t.Error("NotFound() should not match ErrConflict")
	}
}

func TestConflict_MatchesSentinel(t *testing.T) {
	err := Conflict("Email already registered")

	if !errors.Is(err, ErrConflict) {
		t.Error("Conflict() should match ErrConflict via errors.Is")
	}
	if err.Message != "Email already registered" {
		t.Errorf("Conflict() message = %q", err.Message)
	}
}

func TestUnauthorized_MatchesSentinel(t *testing.T) {
	err := Unauthorized("Invalid credentials")

	if !errors.Is(err, ErrUnauthorized) {
		t.Error("Unauthorized() should match ErrUnauthorized via errors.Is")
	}
}

func TestValidationFailed_CarriesField(t *testing.T) {
	err := ValidationFailed("email", "email must be a valid address")

	if err.Field != "email" {
		t.Errorf("Field = %q, want %q", err.Field, "email")
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationFailed() should match ErrValidation")
	}
}

func TestAppError_SurvivesWrapping(t *testing.T) {
	// Services wrap repository errors with fmt.Errorf("...: %w", err).
	// The sentinel and the *AppError must both survive the chain.
	inner := Conflict("Email already registered")
	wrapped := fmt.Errorf("registering user: %w", inner)

	if !errors.Is(wrapped, ErrConflict) {
		t.Error("wrapped error should still match ErrConflict")
	}

	var appErr *AppError
	if !errors.As(wrapped, &appErr) {
		t.Fatal("wrapped error should unwrap to *AppError")
	}
	if appErr.Message != "Email already registered" {
		t.Errorf("unwrapped message = %q", appErr.Message)
	}
}
