package detection

import (
	"strings"

	"github.com/jonathan/writing-highlighter/internal/types"
)

// defaultAutoCategories may render auto-detected evidence without opting in.
var defaultAutoCategories = []Category{CategorySpelling, CategoryCapitalization, CategoryPunctuation}

// Policy decides which categories may render auto-detected evidence. Headline and
// direct speech dictionary lookups are always allowed.
type Policy struct {
	allowed  map[Category]bool
	allowAll bool
}

// DefaultPolicy allows spelling, capitalization and punctuation.
func DefaultPolicy() Policy {
	return Policy{}.Allow(defaultAutoCategories...)
}

// Allow returns a copy of the policy that also allows cats.
func (p Policy) Allow(cats ...Category) Policy {
	allowed := make(map[Category]bool, len(p.allowed)+len(cats))
	for c := range p.allowed {
		allowed[c] = true
	}
	for _, c := range cats {
		if c != CategoryNone {
			allowed[c] = true
		}
	}
	return Policy{allowed: allowed, allowAll: p.allowAll}
}

// AllowAll returns a copy of the policy that allows every category.
func (p Policy) AllowAll() Policy {
	cp := p.Allow()
	cp.allowAll = true
	return cp
}

// Allows reports whether auto-detected evidence for c may be rendered.
func (p Policy) Allows(c Category) bool {
	if c == CategoryNone {
		return false
	}
	return p.allowAll || p.allowed[c]
}

// Allowed lists the explicitly allowed categories in classification order.
func (p Policy) Allowed() []Category {
	var out []Category
	for _, c := range Categories() {
		if p.Allows(c) {
			out = append(out, c)
		}
	}
	return out
}

// Fallback is the heuristic evidence for a criterion whose justification gave none.
type Fallback struct {
	Category Category
	Source   types.EvidenceSource
	Findings []Finding
	// Withheld is set when findings exist but the policy does not allow rendering them.
	Withheld bool
}

// Fallback runs the dictionary tier, then auto-detection. Findings from a category the
// policy does not allow are returned with Withheld set and must not be rendered.
func (d *Detector) Fallback(text, name string, policy Policy) Fallback {
	cat := Classify(name)
	fb := Fallback{Category: cat}
	if cat == CategoryNone || strings.TrimSpace(text) == "" {
		return fb
	}

	doc := newDocument(text)
	switch cat {
	case CategoryHeadline:
		fb.Findings = headlineDictionary(doc)
	case CategoryDirectSpeech:
		fb.Findings = speechDictionary(doc)
	}
	if len(fb.Findings) > 0 {
		fb.Source = types.SourceDictionary
		return fb
	}

	fb.Source = types.SourceAutoDetected
	fb.Findings = d.Detect(text, cat, name)
	fb.Withheld = len(fb.Findings) > 0 && !policy.Allows(cat)
	return fb
}

// Candidates converts renderable findings into evidence candidates.
func (fb Fallback) Candidates() []types.EvidenceCandidate {
	if fb.Withheld || len(fb.Findings) == 0 {
		return nil
	}

	priority, exact := types.PriorityAutoDetected, false
	if fb.Source == types.SourceDictionary {
		priority, exact = types.PriorityDictionary, true
	}

	cands := make([]types.EvidenceCandidate, 0, len(fb.Findings))
	for _, f := range fb.Findings {
		cands = append(cands, types.EvidenceCandidate{
			Text:       strings.TrimSpace(f.Text),
			Confidence: f.Confidence,
			Priority:   priority,
			Source:     fb.Source,
			ExactMatch: exact,
		})
	}
	return cands
}
