package detection

import "strings"

// Finding is one piece of heuristic evidence. Text is a substring of the sample
// (modulo case) that the locator can find again; Context is the surrounding text
// shown in diagnostics.
type Finding struct {
	Text       string  `json:"text"`
	Context    string  `json:"context"`
	Confidence float64 `json:"confidence"`
}

type detectFunc func(d *document, lex *Lexicon, name string) []Finding

var detectors = map[Category]detectFunc{
	CategoryHeadline:         detectHeadline,
	CategoryFormalTone:       detectFormalTone,
	CategoryPastTense:        detectPastTense,
	CategoryThirdPerson:      detectThirdPerson,
	CategoryDirectSpeech:     detectDirectSpeech,
	CategoryParagraphs:       detectParagraphs,
	CategoryPunctuation:      detectPunctuation,
	CategoryCapitalization:   detectCapitalization,
	CategorySpelling:         detectSpelling,
	CategoryPronouns:         detectPronouns,
	CategoryComplexSentences: detectComplexSentences,
	CategoryCoordinating:     detectCoordinatingConjunctions,
	CategoryAdjectives:       detectAdjectives,
	CategoryAdverbs:          detectAdverbs,
	CategoryRelativeClauses:  detectRelativeClauses,
	CategoryModalVerbs:       detectModalVerbs,
	CategoryPrepositions:     detectPrepositions,
	CategoryVerbs:            detectVerbs,
	CategoryCompound:         detectCompoundSentences,
	CategoryVocabulary:       detectVocabulary,
}

// Detector runs category detectors against a lexicon.
type Detector struct {
	lexicon *Lexicon
}

// New creates a Detector. A nil lexicon selects the built-in one.
func New(lex *Lexicon) *Detector {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Detector{lexicon: lex}
}

// Lexicon returns the lexicon the detector reads.
func (d *Detector) Lexicon() *Lexicon {
	return d.lexicon
}

// Detect returns findings for the category in detection order, one per distinct context.
// The criterion name refines some detectors, e.g. "possessive pronouns".
func (d *Detector) Detect(text string, cat Category, name string) []Finding {
	fn, ok := detectors[cat]
	if !ok || strings.TrimSpace(text) == "" {
		return nil
	}
	return dedupeByContext(fn(newDocument(text), d.lexicon, name))
}

// Detect runs the default detector.
func Detect(text string, cat Category, name string) []Finding {
	return defaultDetector.Detect(text, cat, name)
}

var defaultDetector = New(nil)

func dedupeByContext(findings []Finding) []Finding {
	if len(findings) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(findings))
	out := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if strings.TrimSpace(f.Text) == "" || seen[f.Context] {
			continue
		}
		seen[f.Context] = true
		out = append(out, f)
	}
	return out
}
