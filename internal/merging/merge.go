// Package merging resolves overlapping matches into non-overlapping annotated spans.
package merging

import (
	"sort"

	"github.com/jonathan/writing-highlighter/internal/types"
)

// Merge sorts matches by start and folds every run of overlapping or touching matches
// into one span covering the whole run. The run keeps the label of its strongest
// match: explicit evidence outranks heuristic evidence, then the higher score wins,
// and on a tie the earlier match keeps the label.
func Merge(matches []types.Match) []types.MergedSpan {
	if len(matches) == 0 {
		return nil
	}

	sorted := make([]types.Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	spans := make([]types.MergedSpan, 0, len(sorted))
	current := spanOf(sorted[0])
	for _, next := range sorted[1:] {
		if next.Start <= current.End {
			current.End = max(current.End, next.End)
			if outranks(next, current) {
				current.Score = next.Score
				current.Criterion = next.Criterion
				current.Explicit = next.Explicit
			}
			continue
		}
		spans = append(spans, current)
		current = spanOf(next)
	}
	spans = append(spans, current)
	return spans
}

func spanOf(m types.Match) types.MergedSpan {
	return types.MergedSpan{
		Start:     m.Start,
		End:       m.End,
		Score:     m.Score,
		Criterion: m.Criterion,
		Explicit:  m.Explicit,
	}
}

// outranks reports whether an incoming match should relabel the current span.
func outranks(next types.Match, current types.MergedSpan) bool {
	if next.Explicit != current.Explicit {
		return next.Explicit
	}
	return next.Score > current.Score
}
