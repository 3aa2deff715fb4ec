package service

import "fmt"

// ErrorKind classifies a business error for the response boundary
type ErrorKind string

// Business error kinds
const (
	KindValidation        ErrorKind = "validation"
	KindNotFound          ErrorKind = "not_found"
	KindConflict          ErrorKind = "conflict"
	KindState             ErrorKind = "state"
	KindInsufficientFunds ErrorKind = "insufficient_funds"
	KindInternal          ErrorKind = "internal"
)

// ServiceError represents a business logic error with a kind
type ServiceError struct {
	Err     error
	Message string
	Kind    ErrorKind
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}
