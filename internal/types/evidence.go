package types

// EvidenceSource records how an evidence candidate was obtained.
type EvidenceSource string

// Evidence sources, from justification text first and heuristics last.
const (
	SourceQuoted         EvidenceSource = "quoted"
	SourceListed         EvidenceSource = "listed"
	SourceVerbIndicated  EvidenceSource = "verb-indicated"
	SourceTermIndicated  EvidenceSource = "term-indicated"
	SourceBracketed      EvidenceSource = "bracketed"
	SourceColonIndicated EvidenceSource = "colon-indicated"
	SourcePhraseMatch    EvidenceSource = "phrase-match"
	SourceDictionary     EvidenceSource = "dictionary"
	SourceAutoDetected   EvidenceSource = "auto-detected"
)

// Explicit reports whether the source is the teacher's own justification rather than a heuristic.
func (s EvidenceSource) Explicit() bool {
	switch s {
	case SourceDictionary, SourceAutoDetected, "":
		return false
	default:
		return true
	}
}

// Priorities per source. Higher wins.
const (
	PriorityQuoted         = 90
	PriorityListed         = 80
	PriorityTermIndicated  = 80
	PriorityVerbIndicated  = 70
	PriorityBracketed      = 70
	PriorityColonIndicated = 60
	PriorityPhraseMatch    = 50
	PriorityDictionary     = 20
	PriorityAutoDetected   = 10
)

// EvidenceCandidate is a piece of text believed to demonstrate a criterion.
type EvidenceCandidate struct {
	Text       string         `json:"text"`
	Confidence float64        `json:"confidence"`
	Priority   int            `json:"priority"`
	Source     EvidenceSource `json:"source"`
	// ExactMatch is false only for heuristic candidates that may be located by whole-word search.
	ExactMatch bool   `json:"exact_match"`
	Criterion  string `json:"criterion,omitempty"`
	Score      int    `json:"score"`
	// CriterionIndex is the position of the owning criterion, which keeps same-named criteria apart.
	CriterionIndex int `json:"-"`
}

// Match is one located occurrence of a candidate in the sample. Offsets are rune
// indexes into the original text, half-open.
type Match struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Score     int    `json:"score"`
	Criterion string `json:"criterion"`
	Text      string `json:"text"`
	Explicit  bool   `json:"explicit"`

	CriterionIndex int `json:"-"`
}

// MergedSpan is a non-overlapping annotated region ready for rendering.
type MergedSpan struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Score     int    `json:"score"`
	Criterion string `json:"criterion"`
	Explicit  bool   `json:"explicit"`
}
