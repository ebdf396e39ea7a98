package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/writing-highlighter/internal/highlights"
)

func TestSchemaEmbedded(t *testing.T) {
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS writing_highlights")
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS writing_annotations")
}

func TestHighlightStoreImplementsStore(t *testing.T) {
	var store highlights.Store = (&DB{}).Highlights()
	assert.NotNil(t, store)
}
