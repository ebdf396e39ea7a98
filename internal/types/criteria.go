// Package types provides type definitions for structured data used throughout the writing-highlighter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DefaultCriterionName is used when a record carries no usable name.
const DefaultCriterionName = "Success Criteria"

// Achievement scores assigned by the teacher.
const (
	ScoreNotMet   = 0
	ScorePartial  = 1
	ScoreAchieved = 2
	DefaultScore  = ScorePartial
)

// Criterion is a normalized success criterion. Values are never mutated after normalization.
type Criterion struct {
	Name          string `json:"name"`
	Score         int    `json:"score"`
	Justification string `json:"justification,omitempty"`
}

// CriterionRecord is a criterion as it arrives from upstream. The name may live under
// any of several keys and the score may be a number, a numeric string or missing.
type CriterionRecord struct {
	Name          string `json:"name,omitempty"`
	Text          string `json:"text,omitempty"`
	Criteria      string `json:"criteria,omitempty"`
	Criterion     string `json:"criterion,omitempty"`
	Score         any    `json:"score,omitempty"`
	Justification string `json:"justification,omitempty" validate:"max=4000"`
	Reason        string `json:"reason,omitempty" validate:"max=4000"`
}

// DisplayName returns the first non-empty name field, checked in name, text, criteria, criterion order.
func (r CriterionRecord) DisplayName() string {
	for _, s := range []string{r.Name, r.Text, r.Criteria, r.Criterion} {
		if s != "" {
			return s
		}
	}
	return ""
}

// Evidence returns the justification, falling back to the reason field.
func (r CriterionRecord) Evidence() string {
	if r.Justification != "" {
		return r.Justification
	}
	return r.Reason
}
