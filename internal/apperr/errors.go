// Package apperr defines the error taxonomy shared by the engines:
// validation failures, missing records, store failures and external
// service failures. Callers branch on category with errors.As.
package apperr

import "fmt"

// ValidationError reports rejected user input. Field names the offending
// field so import failures can point at the record that broke.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation: %s", e.Reason)
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports an operation against a nonexistent record.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func NotFound(kind string, id int64) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// StoreError wraps a failure of the underlying database.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store: %s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

func Store(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// ExternalServiceError wraps a failure of the cloud file store.
type ExternalServiceError struct {
	Op  string
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("external service: %s: %v", e.Op, e.Err)
}
func (e *ExternalServiceError) Unwrap() error { return e.Err }

func External(op string, err error) error {
	return &ExternalServiceError{Op: op, Err: err}
}
