package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	if !IsNotFound(NotFound("ticket", "9")) {
		t.Fatal("NotFound not classified")
	}
	if !IsValidation(Invalid("page", "must be a positive integer")) {
		t.Fatal("Invalid not classified")
	}
	if !IsConflict(Conflict("refund", "refund already exists for this cancellation")) {
		t.Fatal("Conflict not classified")
	}
	if !IsInternal(Internal("boom", nil)) {
		t.Fatal("Internal not classified")
	}

	if IsNotFound(Conflict("x", "y")) {
		t.Fatal("conflict misclassified as not found")
	}
}

func TestErrorClassificationThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("listing tickets: %w", NotFound("ticket", "3"))
	if !IsNotFound(wrapped) {
		t.Fatal("wrapped NotFound not classified")
	}
	if Code(wrapped) != CodeNotFound {
		t.Fatalf("code = %s, want %s", Code(wrapped), CodeNotFound)
	}
}

func TestCodeMapping(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{Invalid("seatNumber", "is required"), CodeValidation},
		{NotFound("trip", "1"), CodeNotFound},
		{Conflict("ticket", "ticket is already cancelled"), CodeConflict},
		{Internal("store failed", nil), CodeInternal},
		{errors.New("plain"), CodeInternal},
	}
	for _, tc := range cases {
		if got := Code(tc.err); got != tc.code {
			t.Fatalf("Code(%v) = %s, want %s", tc.err, got, tc.code)
		}
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("cancellation", "42")
	want := `cancellation with ID "42" not found`
	if err.Error() != want {
		t.Fatalf("message = %q, want %q", err.Error(), want)
	}
}
