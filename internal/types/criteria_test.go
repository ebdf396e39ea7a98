//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriterionRecord_DisplayName(t *testing.T) {
	tests := []struct {
		name   string
		record CriterionRecord
		want   string
	}{
		{"name wins", CriterionRecord{Name: "Use adverbs", Text: "other"}, "Use adverbs"},
		{"text fallback", CriterionRecord{Text: "Use adverbs"}, "Use adverbs"},
		{"criteria fallback", CriterionRecord{Criteria: "Use adverbs"}, "Use adverbs"},
		{"criterion fallback", CriterionRecord{Criterion: "Use adverbs"}, "Use adverbs"},
		{"none", CriterionRecord{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.DisplayName())
		})
	}
}

func TestCriterionRecord_UnmarshalLooseScore(t *testing.T) {
	var records []CriterionRecord
	err := json.Unmarshal([]byte(`[
		{"criteria": "Use adverbs", "score": "2", "justification": "Example: 'quickly'"},
		{"text": "Use a headline", "score": 0},
		{"criterion": "Direct speech", "reason": "quotes used"}
	]`), &records)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Use adverbs", records[0].DisplayName())
	assert.Equal(t, "2", records[0].Score)
	assert.Equal(t, float64(0), records[1].Score)
	assert.Nil(t, records[2].Score)
	assert.Equal(t, "quotes used", records[2].Evidence())
}

func TestEvidenceSource_Explicit(t *testing.T) {
	assert.True(t, SourceQuoted.Explicit())
	assert.True(t, SourcePhraseMatch.Explicit())
	assert.False(t, SourceDictionary.Explicit())
	assert.False(t, SourceAutoDetected.Explicit())
}

func TestSourcePriorities_Ordered(t *testing.T) {
	ordered := []int{
		PriorityQuoted,
		PriorityListed,
		PriorityVerbIndicated,
		PriorityColonIndicated,
		PriorityPhraseMatch,
		PriorityDictionary,
		PriorityAutoDetected,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i-1], ordered[i])
	}
}

func TestAnnotateRequest_Validate(t *testing.T) {
	req := AnnotateRequest{
		Text:     "He ran quickly.",
		Criteria: []CriterionRecord{{Name: "Use adverbs", Score: 2}},
	}
	assert.NoError(t, req.Validate())

	req.Categories = []string{""}
	assert.Error(t, req.Validate())
}

func TestHighlightsPayload_Validate(t *testing.T) {
	ok := HighlightsPayload{Highlights: []Highlight{{Text: "quickly", Color: "#ffeb3b", Tooltip: "adverb"}}}
	assert.NoError(t, ok.Validate())

	missing := HighlightsPayload{Highlights: []Highlight{{Text: "quickly"}}}
	err := missing.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Color")
}
