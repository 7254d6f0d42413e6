package types

import "fmt"

// ValidationError reports a missing or malformed input field.
// Handlers surface it as a 400.
type ValidationError struct {
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a record id that does not exist.
// Handlers surface it as a 404.
type NotFoundError struct {
	Entity string `json:"entity"`
	ID     uint64 `json:"id"`
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConflictError reports a write blocked by referential integrity,
// e.g. deleting a profile that filaments still reference.
// Handlers surface it as a 409.
type ConflictError struct {
	Message string `json:"message"`
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StorageError wraps an underlying persistence failure. The cause is kept
// for operator diagnosis and never swallowed on writes.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
