package parsing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/writing-highlighter/internal/types"
)

// ParseScore converts a loosely typed score into 0, 1 or 2.
// Missing, unparseable and out-of-range values become types.DefaultScore.
func ParseScore(v any) int {
	var f float64
	switch s := v.(type) {
	case nil:
		return types.DefaultScore
	case int:
		f = float64(s)
	case int64:
		f = float64(s)
	case float64:
		f = s
	case json.Number:
		parsed, err := s.Float64()
		if err != nil {
			return types.DefaultScore
		}
		f = parsed
	case string:
		parsed, ok := parseScoreString(s)
		if !ok {
			return types.DefaultScore
		}
		f = parsed
	default:
		return types.DefaultScore
	}

	if math.IsNaN(f) {
		return types.DefaultScore
	}
	score := int(math.Trunc(f))
	if score < types.ScoreNotMet || score > types.ScoreAchieved {
		return types.DefaultScore
	}
	return score
}

// parseScoreString accepts "2", " 2 ", "2.0" and "2/2".
func parseScoreString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "/"); i > 0 {
		s = strings.TrimSpace(s[:i])
	}
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// NormalizeCriterionName trims and collapses whitespace in a criterion name
func NormalizeCriterionName(name string) string {
	normalized := strings.Join(strings.Fields(name), " ")
	if normalized == "" {
		return types.DefaultCriterionName
	}
	return normalized
}

// NormalizeCriterion converts one raw record into a Criterion
func NormalizeCriterion(r types.CriterionRecord) types.Criterion {
	return types.Criterion{
		Name:          NormalizeCriterionName(r.DisplayName()),
		Score:         ParseScore(r.Score),
		Justification: strings.TrimSpace(r.Evidence()),
	}
}

// NormalizeCriteria normalizes records in order. Records are never dropped: two records
// with the same name stay separate so each keeps its own score and justification.
func NormalizeCriteria(records []types.CriterionRecord) []types.Criterion {
	if len(records) == 0 {
		return nil
	}

	normalized := make([]types.Criterion, 0, len(records))
	for _, r := range records {
		normalized = append(normalized, NormalizeCriterion(r))
	}
	return normalized
}
