package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"not authenticated", ErrNotAuthenticated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestValidationErrorJoinsProblems(t *testing.T) {
	err := NewValidation("description is required", "invalid phone number format")
	if got := err.Error(); got != "description is required; invalid phone number format" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestIsValidation(t *testing.T) {
	err := NewValidation("category is required")
	if !IsValidation(err) {
		t.Fatal("expected validation error to be recognized")
	}
	if !IsValidation(fmt.Errorf("submit: %w", err)) {
		t.Fatal("expected wrapped validation error to be recognized")
	}
	if IsValidation(ErrNotFound) {
		t.Fatal("sentinel must not be treated as validation error")
	}
	if IsValidation(nil) {
		t.Fatal("nil must not be treated as validation error")
	}
}
