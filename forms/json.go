package forms

import (
	"encoding/json"
	"strings"
)

// ParseObject parses text as a JSON object.
func ParseObject(field, text string) (map[string]any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, &FieldError{Field: field, Err: ErrInvalidJSON, Detail: err.Error()}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &FieldError{Field: field, Err: ErrNotObject}
	}
	return obj, nil
}

// ParseOptionalObject is ParseObject, except that blank text yields an
// empty object.
func ParseOptionalObject(field, text string) (map[string]any, error) {
	if isBlank(text) {
		return map[string]any{}, nil
	}
	return ParseObject(field, text)
}

// ParseArray parses text as a JSON array.
func ParseArray(field, text string) ([]any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, &FieldError{Field: field, Err: ErrInvalidJSON, Detail: err.Error()}
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, &FieldError{Field: field, Err: ErrNotArray}
	}
	return arr, nil
}

// ParseOptionalArray is ParseArray, except that blank text yields an empty
// array.
func ParseOptionalArray(field, text string) ([]any, error) {
	if isBlank(text) {
		return []any{}, nil
	}
	return ParseArray(field, text)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
