package forms

import (
	"errors"
	"strings"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidJSON is returned when a field does not contain valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotObject is returned when a field must hold a JSON object.
	ErrNotObject = errors.New("not a JSON object")

	// ErrNotArray is returned when a field must hold a JSON array.
	ErrNotArray = errors.New("not a JSON array")

	// ErrSchemaMismatch is returned when a parsed field has the wrong shape.
	ErrSchemaMismatch = errors.New("unexpected shape")
)

// FieldError is a local validation failure of one form field. It is raised
// before any request is sent.
type FieldError struct {
	Field  string
	Err    error
	Detail string
}

func (e *FieldError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidJSON):
		return "Invalid JSON in " + e.Field
	case errors.Is(e.Err, ErrNotObject):
		return e.Field + " must be an Object"
	case errors.Is(e.Err, ErrNotArray):
		return e.Field + " must be an Array"
	case e.Detail != "":
		return e.Field + ": " + e.Detail
	}
	return e.Field + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// BridgeError marks FieldError as an SDK error.
func (e *FieldError) BridgeError() {}

// ValidationError is one failed struct validation rule.
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// ValidationErrors collects every failed rule of a form.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Message)
	}
	return strings.Join(msgs, "; ")
}

// BridgeError marks ValidationErrors as an SDK error.
func (v ValidationErrors) BridgeError() {}
