package types

import "github.com/go-playground/validator/v10"

// Highlight is a manual highlight a teacher attached to a writing sample.
type Highlight struct {
	Text    string `json:"text" validate:"required,max=2000"`
	Color   string `json:"color" validate:"required,max=32"`
	Tooltip string `json:"tooltip,omitempty" validate:"max=500"`
}

// HighlightsPayload is the body of a highlights update.
type HighlightsPayload struct {
	Highlights []Highlight `json:"highlights" validate:"max=500,dive"`
}

// Validate validates the HighlightsPayload using the validator.
func (p *HighlightsPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
