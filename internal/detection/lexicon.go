package detection

import (
	_ "embed"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lexicons.yaml
var defaultLexiconData []byte

// FrontedAdverbials groups the sentence openers that count as fronted adverbials.
type FrontedAdverbials struct {
	Words   []string `yaml:"words"`
	Phrases []string `yaml:"phrases"`
	Openers []string `yaml:"openers"`
}

// Lexicon is the word-list data behind every detector. It is read once and never mutated.
type Lexicon struct {
	Version int `yaml:"version"`

	FormalPhrases     []string `yaml:"formal_phrases"`
	NewsPhrases       []string `yaml:"news_phrases"`
	Contractions      []string `yaml:"contractions"`
	ExpandedNegations []string `yaml:"expanded_negations"`
	AttributionVerbs  []string `yaml:"attribution_verbs"`

	IrregularPastVerbs  []string `yaml:"irregular_past_verbs"`
	ThirdPersonPronouns []string `yaml:"third_person_pronouns"`
	SubjectDeterminers  []string `yaml:"subject_determiners"`

	FrontedAdverbials FrontedAdverbials   `yaml:"fronted_adverbials"`
	Pronouns          map[string][]string `yaml:"pronouns"`

	Subordinators            []string `yaml:"subordinators"`
	ClausePrepositions       []string `yaml:"clause_prepositions"`
	ComplexRelatives         []string `yaml:"complex_relatives"`
	RelativePronouns         []string `yaml:"relative_pronouns"`
	CoordinatingConjunctions []string `yaml:"coordinating_conjunctions"`

	Adjectives           map[string][]string `yaml:"adjectives"`
	AdjectiveSuffixes    []string            `yaml:"adjective_suffixes"`
	AdjectiveDeterminers []string            `yaml:"adjective_determiners"`
	LinkingVerbs         []string            `yaml:"linking_verbs"`

	IrregularAdverbs  []string `yaml:"irregular_adverbs"`
	AdverbAuxiliaries []string `yaml:"adverb_auxiliaries"`

	Modals       map[string][]string `yaml:"modals"`
	Prepositions map[string][]string `yaml:"prepositions"`

	AuxiliaryVerbs  []string `yaml:"auxiliary_verbs"`
	StrongVerbs     []string `yaml:"strong_verbs"`
	SubjectPronouns []string `yaml:"subject_pronouns"`
	VerbModals      []string `yaml:"verb_modals"`

	CommonWords        []string `yaml:"common_words"`
	CommonlyMisspelled []string `yaml:"commonly_misspelled"`

	sets    map[string]map[string]bool
	regexes lexiconPatterns
}

type lexiconPatterns struct {
	frontedAdverbials []*regexp.Regexp
	attribution       *regexp.Regexp
	commaConjunction  map[string]*regexp.Regexp
}

// set names used by the detectors
const (
	setIrregularPast    = "irregular_past"
	setThirdPerson      = "third_person"
	setSubjectDet       = "subject_determiners"
	setClausePreps      = "clause_prepositions"
	setAdjectives       = "adjectives"
	setAdjDeterminers   = "adjective_determiners"
	setLinkingVerbs     = "linking_verbs"
	setIrregularAdverbs = "irregular_adverbs"
	setAdverbAux        = "adverb_auxiliaries"
	setAuxiliaryVerbs   = "auxiliary_verbs"
	setStrongVerbs      = "strong_verbs"
	setSubjectPronouns  = "subject_pronouns"
	setVerbModals       = "verb_modals"
	setCommonWords      = "common_words"
	setMisspelled       = "commonly_misspelled"
)

// LoadLexicon reads a lexicon document and prepares its lookup tables.
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LexiconError{Message: "failed to read lexicon", Cause: err}
	}
	return parseLexicon(data)
}

func parseLexicon(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, &LexiconError{Message: "failed to decode lexicon", Cause: err}
	}
	if lex.Version < 1 {
		return nil, &LexiconError{Message: "lexicon version must be at least 1"}
	}
	lex.index()
	return &lex, nil
}

// DefaultLexicon returns the built-in lexicon.
func DefaultLexicon() *Lexicon {
	return defaultLexicon
}

var defaultLexicon = mustParseLexicon(defaultLexiconData)

func mustParseLexicon(data []byte) *Lexicon {
	lex, err := parseLexicon(data)
	if err != nil {
		panic(err)
	}
	return lex
}

func (l *Lexicon) index() {
	l.sets = map[string]map[string]bool{
		setIrregularPast:    toSet(l.IrregularPastVerbs),
		setThirdPerson:      toSet(l.ThirdPersonPronouns),
		setSubjectDet:       toSet(l.SubjectDeterminers),
		setClausePreps:      toSet(l.ClausePrepositions),
		setAdjectives:       toSet(flatten(l.Adjectives)),
		setAdjDeterminers:   toSet(l.AdjectiveDeterminers),
		setLinkingVerbs:     toSet(l.LinkingVerbs),
		setIrregularAdverbs: toSet(l.IrregularAdverbs),
		setAdverbAux:        toSet(l.AdverbAuxiliaries),
		setAuxiliaryVerbs:   toSet(l.AuxiliaryVerbs),
		setStrongVerbs:      toSet(l.StrongVerbs),
		setSubjectPronouns:  toSet(l.SubjectPronouns),
		setVerbModals:       toSet(l.VerbModals),
		setCommonWords:      toSet(l.CommonWords),
		setMisspelled:       toSet(l.CommonlyMisspelled),
	}

	l.regexes.frontedAdverbials = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(?:` + alternation(l.FrontedAdverbials.Words) + `),`),
		regexp.MustCompile(`(?i)^(?:` + alternation(l.FrontedAdverbials.Phrases) + `),`),
		regexp.MustCompile(`(?i)^(?:` + alternation(l.FrontedAdverbials.Openers) + `) \w+,`),
	}
	l.regexes.attribution = regexp.MustCompile(`(?:` + alternation(l.AttributionVerbs) + `)\s+[A-Z][a-z]+`)

	l.regexes.commaConjunction = make(map[string]*regexp.Regexp, len(l.CoordinatingConjunctions))
	for _, conj := range l.CoordinatingConjunctions {
		l.regexes.commaConjunction[conj] = regexp.MustCompile(`(?i),\s*\b` + regexp.QuoteMeta(conj) + `\b\s+`)
	}
}

func (l *Lexicon) has(set, word string) bool {
	return l.sets[set][word]
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

// flatten joins category lists in a stable order so lookups and ordering never depend on map iteration
func flatten(groups map[string][]string) []string {
	keys := sortedKeys(groups)
	var out []string
	for _, k := range keys {
		out = append(out, groups[k]...)
	}
	return out
}

func alternation(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	if len(quoted) == 0 {
		// matches nothing
		return `[^\s\S]`
	}
	return strings.Join(quoted, "|")
}
