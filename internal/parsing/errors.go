// Package parsing normalizes raw success-criteria records into the shape the annotation engine consumes.
package parsing

import "fmt"

// ParseError represents an error decoding a criteria payload
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// MarkupError represents an error reading legacy criteria markup
type MarkupError struct {
	Message string
	Cause   error
}

func (e *MarkupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("markup error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("markup error: %s", e.Message)
}

func (e *MarkupError) Unwrap() error {
	return e.Cause
}
