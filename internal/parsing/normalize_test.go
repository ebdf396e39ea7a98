package parsing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/writing-highlighter/internal/types"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int
	}{
		{"nil defaults to partial", nil, 1},
		{"int zero", 0, 0},
		{"float two", float64(2), 2},
		{"float with fraction truncates", 1.7, 1},
		{"numeric string", "2", 2},
		{"padded string", " 0 ", 0},
		{"fraction string", "2/2", 2},
		{"decimal string", "2.0", 2},
		{"garbage string", "excellent", 1},
		{"empty string", "", 1},
		{"out of range high", 5, 1},
		{"out of range negative", -1, 1},
		{"json number", json.Number("2"), 2},
		{"bool", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseScore(tt.input))
		})
	}
}

func TestNormalizeCriterionName(t *testing.T) {
	assert.Equal(t, "Use adverbs", NormalizeCriterionName("  Use \n adverbs "))
	assert.Equal(t, types.DefaultCriterionName, NormalizeCriterionName("   "))
}

func TestNormalizeCriteria(t *testing.T) {
	records := []types.CriterionRecord{
		{Criteria: "Use adverbs", Score: "2", Justification: "  Example: 'quickly' "},
		{Text: "Use a headline"},
		{Score: float64(0), Reason: "no quotes"},
	}

	got := NormalizeCriteria(records)
	require.Len(t, got, 3)

	assert.Equal(t, types.Criterion{Name: "Use adverbs", Score: 2, Justification: "Example: 'quickly'"}, got[0])
	assert.Equal(t, types.Criterion{Name: "Use a headline", Score: 1}, got[1])
	assert.Equal(t, types.Criterion{Name: types.DefaultCriterionName, Score: 0, Justification: "no quotes"}, got[2])
}

func TestNormalizeCriteria_Empty(t *testing.T) {
	assert.Nil(t, NormalizeCriteria(nil))
}

func TestParseCriteriaJSON(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		got, err := ParseCriteriaJSON([]byte(`[{"name":"Use adverbs","score":2}]`))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Use adverbs", got[0].DisplayName())
	})

	t.Run("envelope", func(t *testing.T) {
		got, err := ParseCriteriaJSON([]byte(`{"criteria_marks":[{"criteria":"Use a headline","score":"1"}]}`))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Use a headline", got[0].DisplayName())
	})

	t.Run("empty payload", func(t *testing.T) {
		_, err := ParseCriteriaJSON([]byte("  "))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseCriteriaJSON([]byte(`[{"name":`))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, err.Error(), "criteria array")
	})
}
