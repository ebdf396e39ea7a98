package rendering

import "fmt"

// SpanError reports a span that cannot be rendered against the given text
type SpanError struct {
	Index   int
	Message string
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("span error: span %d: %s", e.Index, e.Message)
}
