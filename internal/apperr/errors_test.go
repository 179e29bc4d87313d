package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationMessage(t *testing.T) {
	err := Validation("title", "must not be empty")
	if err.Error() != "validation: title: must not be empty" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "title" {
		t.Fatalf("errors.As failed: %v", err)
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("task", 7)
	if err.Error() != "task 7 not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestStoreUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Store("insert task", cause)
	if !errors.Is(err, cause) {
		t.Fatal("StoreError should unwrap to its cause")
	}

	wrapped := fmt.Errorf("import: %w", err)
	var se *StoreError
	if !errors.As(wrapped, &se) || se.Op != "insert task" {
		t.Fatalf("errors.As through wrapping failed: %v", wrapped)
	}
}

func TestExternalUnwrap(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := External("upload backup", cause)
	if !errors.Is(err, cause) {
		t.Fatal("ExternalServiceError should unwrap to its cause")
	}
}
