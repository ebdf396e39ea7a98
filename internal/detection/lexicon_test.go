package detection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLexicon(t *testing.T) {
	lex := DefaultLexicon()
	require.NotNil(t, lex)
	assert.Equal(t, 1, lex.Version)
	assert.True(t, lex.has(setMisspelled, "because"))
	assert.True(t, lex.has(setIrregularPast, "ran"))
	assert.Contains(t, lex.Pronouns, "possessive")
	assert.Len(t, lex.regexes.frontedAdverbials, 3)
}

func TestLoadLexicon_Custom(t *testing.T) {
	lex, err := LoadLexicon(strings.NewReader("version: 2\nstrong_verbs: [zoom]\n"))
	require.NoError(t, err)

	findings := New(lex).Detect("They zoom past.", CategoryVerbs, "Use verbs")
	require.Len(t, findings, 1)
	assert.Equal(t, "zoom", findings[0].Text)
	assert.InDelta(t, 0.9, findings[0].Confidence, 1e-9)
}

func TestLoadLexicon_Errors(t *testing.T) {
	_, err := LoadLexicon(strings.NewReader("version: [oops"))
	var lexErr *LexiconError
	require.ErrorAs(t, err, &lexErr)
	assert.Contains(t, err.Error(), "decode")

	_, err = LoadLexicon(strings.NewReader("strong_verbs: [zoom]\n"))
	require.ErrorAs(t, err, &lexErr)
	assert.Contains(t, err.Error(), "version")
}

func TestNew_NilLexiconUsesDefault(t *testing.T) {
	assert.Same(t, DefaultLexicon(), New(nil).Lexicon())
}
