package taskdef

import (
	"encoding/json"
	"strings"
)

// =============================================================================
// Parsing
// =============================================================================

// ParseTaskShape parses the raw JSON configuration document into a TaskShape
// and validates its structure. Pure function: input bytes in, validated
// shape or error out.
func ParseTaskShape(raw []byte) (*TaskShape, error) {
	if strings.TrimSpace(string(raw)) == "" {
		return nil, ErrEmptyInput
	}

	var shape TaskShape
	decoder := json.NewDecoder(strings.NewReader(string(raw)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&shape); err != nil {
		return nil, NewShapeError("", err.Error(), ErrInvalidJSON)
	}

	if err := ValidateShape(&shape); err != nil {
		return nil, err
	}
	return &shape, nil
}
