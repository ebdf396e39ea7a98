package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "score"],
	"properties": {
		"name": {"type": "string"},
		"score": {"type": "integer", "minimum": 0, "maximum": 2},
		"spans": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["start"],
				"properties": {"start": {"type": "integer"}}
			}
		}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "Use adverbs", "score": 2}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingField(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "Use adverbs"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{}`)

	err := ValidateJSON(filepath.Join(dir, "missing.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", "{ invalid json }")

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, ValidateJSON(schemaPath, jsonPath), &loadErr)
}

func TestValidateJSONString(t *testing.T) {
	assert.NoError(t, ValidateJSONString(testSchema, `{"name": "x", "score": 0}`))

	err := ValidateJSONString(testSchema, `{"name": 1, "score": 5}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 2)
}

func TestValidateJSONString_NestedField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "x", "score": 1, "spans": [{"start": 0}, {}]}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Contains(t, validationErr.Errors[0].Field, "spans.1")
}

func TestValidateValue(t *testing.T) {
	doc := map[string]any{"name": "x", "score": 1}
	assert.NoError(t, ValidateValue(testSchema, doc))

	doc["score"] = 9
	assert.Error(t, ValidateValue(testSchema, doc))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "name", Message: "is required"},
		{Field: "(root)", Message: "bad"},
	}}
	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. name: is required")
	assert.Contains(t, msg, "2. (root): bad")
}
