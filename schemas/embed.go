// Package schemas holds the JSON Schemas for criteria input and annotation output.
package schemas

import _ "embed"

// Criteria is the schema for criteria files accepted by the annotate command.
//
//go:embed criteria.schema.json
var Criteria string

// Annotation is the schema for a saved or returned annotation.
//
//go:embed annotation.schema.json
var Annotation string
