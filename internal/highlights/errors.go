package highlights

import "fmt"

// StoreError represents a failure saving or loading highlights
type StoreError struct {
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("highlight store error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("highlight store error: %s", e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
