// Package detection finds heuristic evidence for a criterion when the teacher's
// justification names none. Every detector is a lexicon or pattern match; none of
// them parse grammar.
package detection

import (
	"sort"
	"strings"
)

// Category is the grammar or style concept a criterion name refers to.
type Category string

// Recognised categories
const (
	CategoryNone             Category = ""
	CategoryHeadline         Category = "headline"
	CategoryFormalTone       Category = "formal tone"
	CategoryPastTense        Category = "past tense"
	CategoryThirdPerson      Category = "third person"
	CategoryDirectSpeech     Category = "direct speech"
	CategoryParagraphs       Category = "paragraphs"
	CategoryPunctuation      Category = "punctuation"
	CategoryCapitalization   Category = "capitalization"
	CategorySpelling         Category = "spelling"
	CategoryPronouns         Category = "pronouns"
	CategoryComplexSentences Category = "complex sentences"
	CategoryCoordinating     Category = "coordinating conjunctions"
	CategoryAdjectives       Category = "adjectives"
	CategoryAdverbs          Category = "adverbs"
	CategoryRelativeClauses  Category = "relative clauses"
	CategoryModalVerbs       Category = "modal verbs"
	CategoryPrepositions     Category = "prepositions"
	CategoryVerbs            Category = "verbs"
	CategoryCompound         Category = "compound sentences"
	CategoryVocabulary       Category = "vocabulary"
)

// classifier maps name keywords to a category. Order matters: the first rule with a
// matching keyword wins, so "modal verb" is tested before "verb".
var classifier = []struct {
	category Category
	keywords []string
}{
	{CategoryHeadline, []string{"headline", "title"}},
	{CategoryFormalTone, []string{"formal tone", "formality"}},
	{CategoryPastTense, []string{"past tense", "simple and progressive"}},
	{CategoryThirdPerson, []string{"third person"}},
	{CategoryDirectSpeech, []string{"direct speech", "speech", "quotation"}},
	{CategoryParagraphs, []string{"paragraph", "organise", "organize"}},
	{CategoryPunctuation, []string{"punctuation", "full stop", "comma"}},
	{CategoryCapitalization, []string{"capital"}},
	{CategorySpelling, []string{"spelling", "spelt", "spelled"}},
	{CategoryPronouns, []string{"pronoun"}},
	{CategoryComplexSentences, []string{"complex sentence"}},
	{CategoryCoordinating, []string{"coordinating conjunction"}},
	{CategoryAdjectives, []string{"adjective"}},
	{CategoryAdverbs, []string{"adverb"}},
	{CategoryRelativeClauses, []string{"relative clause"}},
	{CategoryModalVerbs, []string{"modal verb"}},
	{CategoryPrepositions, []string{"preposition"}},
	{CategoryVerbs, []string{"verb"}},
	{CategoryCompound, []string{"compound sentence"}},
	{CategoryVocabulary, []string{"vocabulary", "descriptive language", "expression"}},
}

// Classify maps a criterion name onto a category by keyword, case-insensitively.
func Classify(name string) Category {
	lower := strings.ToLower(name)
	for _, rule := range classifier {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryNone
}

// ParseCategory resolves a category by its name or any of its keywords.
func ParseCategory(s string) (Category, bool) {
	lower := strings.TrimSpace(strings.ToLower(s))
	if lower == "" {
		return CategoryNone, false
	}
	for _, rule := range classifier {
		if string(rule.category) == lower {
			return rule.category, true
		}
	}
	if c := Classify(lower); c != CategoryNone {
		return c, true
	}
	return CategoryNone, false
}

// Categories lists every recognised category in classification order.
func Categories() []Category {
	out := make([]Category, 0, len(classifier))
	for _, rule := range classifier {
		out = append(out, rule.category)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
