package forms

import (
	"errors"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const extractionSchemaJSON = `{
	"type": "object",
	"minProperties": 1,
	"additionalProperties": {
		"anyOf": [
			{"type": "string", "minLength": 1},
			{"type": "object"},
			{"type": "array"}
		]
	}
}`

const selectorsJSON = `{
	"type": "object",
	"additionalProperties": {"type": "string", "minLength": 1}
}`

const authConfigJSON = `{
	"type": "object",
	"properties": {
		"type": {"type": "string"},
		"steps": {"$ref": "interaction_script.json"},
		"session_data": {"type": "object"}
	}
}`

const interactionScriptJSON = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["action"],
		"properties": {
			"action": {"enum": ["click", "type", "scroll_bottom", "wait", "wait_for_selector", "screenshot"]},
			"selector": {"type": "string", "minLength": 1},
			"text": {"type": "string"},
			"ms": {"type": "integer", "minimum": 0}
		},
		"allOf": [
			{
				"if": {"properties": {"action": {"enum": ["click", "type", "wait_for_selector"]}}},
				"then": {"required": ["selector"]}
			},
			{
				"if": {"properties": {"action": {"const": "type"}}},
				"then": {"required": ["text"]}
			}
		]
	}
}`

const schemaBaseURL = "https://apibridge.local/schemas/"

var (
	extractionSchema  = mustCompile("extraction_schema.json", extractionSchemaJSON)
	selectorsSchema   = mustCompile("selectors.json", selectorsJSON)
	interactionSchema = mustCompile("interaction_script.json", interactionScriptJSON)
	authConfigSchema  = mustCompileWith("auth_config.json", authConfigJSON, map[string]string{
		"interaction_script.json": interactionScriptJSON,
	})
)

func mustCompile(name, schema string) *jsonschema.Schema {
	return mustCompileWith(name, schema, nil)
}

func mustCompileWith(name, schema string, refs map[string]string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	for refName, ref := range refs {
		if err := compiler.AddResource(schemaBaseURL+refName, strings.NewReader(ref)); err != nil {
			panic(err)
		}
	}
	if err := compiler.AddResource(schemaBaseURL+name, strings.NewReader(schema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(schemaBaseURL + name)
}

// checkShape validates a parsed JSON value against schema and reports the
// first failure against field.
func checkShape(field string, schema *jsonschema.Schema, value any) error {
	err := schema.Validate(value)
	if err == nil {
		return nil
	}

	detail := err.Error()
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		detail = leafMessage(validationErr)
	}
	return &FieldError{Field: field, Err: ErrSchemaMismatch, Detail: detail}
}

// leafMessage returns the most specific message of a validation error tree,
// prefixed with the instance location when there is one.
func leafMessage(err *jsonschema.ValidationError) string {
	for len(err.Causes) > 0 {
		err = err.Causes[0]
	}
	if err.InstanceLocation == "" {
		return err.Message
	}
	return strings.TrimPrefix(err.InstanceLocation, "/") + ": " + err.Message
}
