package parsing

import (
	"bytes"
	"encoding/json"

	"github.com/jonathan/writing-highlighter/internal/types"
)

// criteriaEnvelope is the object form some exports use instead of a bare array
type criteriaEnvelope struct {
	Criteria        []types.CriterionRecord `json:"criteria"`
	CriteriaMarks   []types.CriterionRecord `json:"criteria_marks"`
	SuccessCriteria []types.CriterionRecord `json:"success_criteria"`
}

// ParseCriteriaJSON decodes criteria records from either a JSON array or an object
// holding the array under criteria, criteria_marks or success_criteria.
func ParseCriteriaJSON(data []byte) ([]types.CriterionRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &ParseError{Message: "empty criteria payload"}
	}

	if trimmed[0] == '[' {
		var records []types.CriterionRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, &ParseError{Message: "failed to decode criteria array", Cause: err}
		}
		return records, nil
	}

	var env criteriaEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, &ParseError{Message: "failed to decode criteria object", Cause: err}
	}
	switch {
	case len(env.Criteria) > 0:
		return env.Criteria, nil
	case len(env.CriteriaMarks) > 0:
		return env.CriteriaMarks, nil
	default:
		return env.SuccessCriteria, nil
	}
}
