package detection

import "fmt"

// LexiconError represents an error loading detector word lists
type LexiconError struct {
	Message string
	Cause   error
}

func (e *LexiconError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lexicon error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("lexicon error: %s", e.Message)
}

func (e *LexiconError) Unwrap() error {
	return e.Cause
}
