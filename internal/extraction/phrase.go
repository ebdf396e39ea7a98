package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/writing-highlighter/internal/types"
)

const (
	confidencePhraseMatch = 0.80
	maxPhraseWords        = 6
	minPhraseWords        = 3
	minClauseLength       = 5
)

var clauseSeparator = regexp.MustCompile(`[.;:!?]+`)

// metaWords mark clauses that talk about the criterion rather than quote the sample
var metaWords = []string{"example", "uses", "demonstrates", "criteria"}

// MatchPhrases finds runs of three to six justification words that also appear in the
// sample verbatim, case included. For each clause and window size only the first
// matching window is kept.
func MatchPhrases(justification, sample string) []types.EvidenceCandidate {
	if strings.TrimSpace(justification) == "" || strings.TrimSpace(sample) == "" {
		return nil
	}

	var cands []types.EvidenceCandidate

	for _, clause := range clauseSeparator.Split(justification, -1) {
		clause = strings.TrimSpace(clause)
		if len(clause) <= minClauseLength || mentionsMeta(clause) {
			continue
		}

		words := strings.Fields(clause)
		for size := maxPhraseWords; size >= minPhraseWords; size-- {
			for i := 0; i+size <= len(words); i++ {
				window := strings.Join(words[i:i+size], " ")
				if len(window) <= minClauseLength {
					continue
				}
				if strings.Contains(sample, window) {
					cands = append(cands, types.EvidenceCandidate{
						Text:       window,
						Confidence: confidencePhraseMatch,
						Priority:   types.PriorityPhraseMatch,
						Source:     types.SourcePhraseMatch,
						ExactMatch: true,
					})
					break
				}
			}
		}
	}

	return dedupe(cands)
}

func mentionsMeta(clause string) bool {
	lower := strings.ToLower(clause)
	for _, w := range metaWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
