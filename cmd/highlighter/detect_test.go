package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/writing-highlighter/internal/detection"
)

func resetDetectFlags(t *testing.T) {
	t.Cleanup(func() { detectTextFile, detectCategory, detectConfigFile = "", "", "" })
}

func TestDetectCommand_DirectSpeechDictionary(t *testing.T) {
	resetDetectFlags(t)
	text := writeTemp(t, "sample.txt", `She said, "Come here now." Then she left.`)

	stdout, _, err := execute(t, "detect", "-t", text, "--category", "Use direct speech")
	require.NoError(t, err)

	var out detectOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, detection.CategoryDirectSpeech, out.Category)
	assert.Equal(t, "dictionary", out.Source)
	assert.False(t, out.Withheld)
	assert.NotEmpty(t, out.Findings)
}

func TestDetectCommand_Withheld(t *testing.T) {
	resetDetectFlags(t)
	text := writeTemp(t, "sample.txt", "He ran very fast.")

	stdout, _, err := execute(t, "detect", "-t", text, "--category", "adverbs")
	require.NoError(t, err)

	var out detectOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, detection.CategoryAdverbs, out.Category)
	assert.True(t, out.Withheld)
	assert.NotEmpty(t, out.Findings)
}

func TestDetectCommand_UnknownCategory(t *testing.T) {
	resetDetectFlags(t)
	text := writeTemp(t, "sample.txt", "Anything.")

	_, _, err := execute(t, "detect", "-t", text, "--category", "Be kind")
	assert.Error(t, err)
}
