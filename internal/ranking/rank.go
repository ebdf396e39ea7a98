// Package ranking provides functionality to filter, cap and order evidence candidates.
package ranking

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/writing-highlighter/internal/types"
)

// Options control how heuristic candidates are thinned out.
type Options struct {
	// AutoThreshold is the minimum confidence for auto-detected candidates.
	AutoThreshold float64 `json:"auto_threshold"`
	// MaxAuto caps auto-detected candidates per criterion.
	MaxAuto int `json:"max_auto"`
	// MaxDictionary caps dictionary candidates per criterion.
	MaxDictionary int `json:"max_dictionary"`
}

// Default thinning values
const (
	DefaultAutoThreshold = 0.85
	DefaultMaxAuto       = 2
	DefaultMaxDictionary = 3
)

// DefaultOptions returns the default thinning options.
func DefaultOptions() Options {
	return Options{
		AutoThreshold: DefaultAutoThreshold,
		MaxAuto:       DefaultMaxAuto,
		MaxDictionary: DefaultMaxDictionary,
	}
}

// Rank prepares one criterion's candidates for location. Explicit evidence is never
// thresholded or capped; auto-detected candidates below the threshold are dropped and
// the strongest few heuristic candidates are kept. Duplicate texts keep the strongest copy.
func Rank(cands []types.EvidenceCandidate, opts Options) []types.EvidenceCandidate {
	if len(cands) == 0 {
		return nil
	}

	sorted := make([]types.EvidenceCandidate, 0, len(cands))
	for _, c := range cands {
		c.Text = strings.TrimSpace(c.Text)
		if c.Text == "" {
			continue
		}
		if c.Source == types.SourceAutoDetected && c.Confidence < opts.AutoThreshold {
			continue
		}
		sorted = append(sorted, c)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].Confidence > sorted[j].Confidence
	})

	seen := make(map[string]bool, len(sorted))
	autoKept, dictKept := 0, 0
	ranked := make([]types.EvidenceCandidate, 0, len(sorted))
	for _, c := range sorted {
		if seen[c.Text] {
			continue
		}
		switch c.Source {
		case types.SourceAutoDetected:
			if autoKept >= opts.MaxAuto {
				continue
			}
			autoKept++
		case types.SourceDictionary:
			if dictKept >= opts.MaxDictionary {
				continue
			}
			dictKept++
		}
		seen[c.Text] = true
		ranked = append(ranked, c)
	}

	Order(ranked)
	return ranked
}

// Order sorts candidates in place for location: priority descending, then longer text
// first, keeping input order for ties.
func Order(cands []types.EvidenceCandidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Priority != cands[j].Priority {
			return cands[i].Priority > cands[j].Priority
		}
		return utf8.RuneCountInString(cands[i].Text) > utf8.RuneCountInString(cands[j].Text)
	})
}
