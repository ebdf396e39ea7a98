package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/writing-highlighter/internal/types"
)

func auto(text string, confidence float64) types.EvidenceCandidate {
	return types.EvidenceCandidate{Text: text, Confidence: confidence, Priority: types.PriorityAutoDetected, Source: types.SourceAutoDetected}
}

func quoted(text string) types.EvidenceCandidate {
	return types.EvidenceCandidate{Text: text, Confidence: 0.95, Priority: types.PriorityQuoted, Source: types.SourceQuoted, ExactMatch: true}
}

func texts(cands []types.EvidenceCandidate) []string {
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.Text)
	}
	return out
}

func TestRank_Empty(t *testing.T) {
	assert.Nil(t, Rank(nil, DefaultOptions()))
}

func TestRank_AutoThresholdAndCap(t *testing.T) {
	cands := []types.EvidenceCandidate{
		auto("weak", 0.8),
		auto("first", 0.85),
		auto("strongest", 0.95),
		auto("third", 0.9),
	}

	got := Rank(cands, DefaultOptions())
	assert.Equal(t, []string{"strongest", "third"}, texts(got))
}

func TestRank_ExplicitNeverThresholded(t *testing.T) {
	low := quoted("quickly")
	low.Confidence = 0.1
	got := Rank([]types.EvidenceCandidate{low}, DefaultOptions())
	require.Len(t, got, 1)
	assert.Equal(t, "quickly", got[0].Text)
}

func TestRank_DictionaryCap(t *testing.T) {
	var cands []types.EvidenceCandidate
	for _, s := range []string{`"a1"`, `"b2"`, `"c3"`, `"d4"`} {
		cands = append(cands, types.EvidenceCandidate{Text: s, Confidence: 0.95, Priority: types.PriorityDictionary, Source: types.SourceDictionary})
	}
	got := Rank(cands, DefaultOptions())
	assert.Len(t, got, 3)
}

func TestRank_DedupesKeepingStrongest(t *testing.T) {
	colon := types.EvidenceCandidate{Text: " quickly ", Confidence: 0.75, Priority: types.PriorityColonIndicated, Source: types.SourceColonIndicated}
	got := Rank([]types.EvidenceCandidate{colon, quoted("quickly")}, DefaultOptions())
	require.Len(t, got, 1)
	assert.Equal(t, types.SourceQuoted, got[0].Source)
	assert.Equal(t, "quickly", got[0].Text)
}

func TestRank_DropsBlankText(t *testing.T) {
	assert.Empty(t, Rank([]types.EvidenceCandidate{quoted("   ")}, DefaultOptions()))
}

func TestOrder_PriorityThenLength(t *testing.T) {
	cands := []types.EvidenceCandidate{
		{Text: "short", Priority: types.PriorityListed},
		{Text: "a much longer phrase", Priority: types.PriorityListed},
		{Text: "x", Priority: types.PriorityQuoted},
		{Text: "auto text here", Priority: types.PriorityAutoDetected},
	}
	Order(cands)
	assert.Equal(t, []string{"x", "a much longer phrase", "short", "auto text here"}, texts(cands))
}
