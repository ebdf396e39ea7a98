package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AnnotateRequest is the payload for annotating a writing sample.
type AnnotateRequest struct {
	WritingID string            `json:"writing_id,omitempty" validate:"omitempty,max=128"`
	Text      string            `json:"text" validate:"max=200000"`
	Criteria  []CriterionRecord `json:"criteria" validate:"max=100,dive"`
	// Categories opts extra fallback categories into auto-detection.
	Categories []string `json:"categories,omitempty" validate:"max=32,dive,min=1,max=64"`
	AllowAll   bool     `json:"allow_all,omitempty"`
}

// Validate validates the AnnotateRequest using the validator.
func (r *AnnotateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CriterionReport summarises what the engine found for one criterion.
type CriterionReport struct {
	Criterion  string `json:"criterion"`
	Category   string `json:"category,omitempty"`
	Score      int    `json:"score"`
	Candidates int    `json:"candidates"`
	Matches    int    `json:"matches"`
	// Withheld is set when fallback findings existed but the category is not allowed to render.
	Withheld bool `json:"withheld,omitempty"`
}

// AnnotateResponse is the result returned to API and CLI callers.
type AnnotateResponse struct {
	ID        uuid.UUID         `json:"id"`
	WritingID string            `json:"writing_id,omitempty"`
	HTML      string            `json:"html"`
	Spans     []MergedSpan      `json:"spans"`
	Criteria  []CriterionReport `json:"criteria"`
	CreatedAt time.Time         `json:"created_at"`
}
