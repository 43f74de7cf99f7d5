package forms

import (
	"net/url"

	apibridge "github.com/apibridge/client-go"
)

// Form field labels, as shown in error messages.
const (
	FieldExtractionSchema  = "Extraction Schema"
	FieldSelectors         = "Selectors"
	FieldAuthConfig        = "Auth Config"
	FieldInteractionScript = "Interaction Script"
)

// DefaultExtractionSchema is the schema a new bridge starts with.
const DefaultExtractionSchema = `{
  "title": "string",
  "url": "url"
}`

// NewBridge is the create-bridge form. JSON fields hold raw text as typed by
// the user.
type NewBridge struct {
	Name             string `form:"Name" validate:"required,max=255"`
	TargetURL        string `form:"Target URL" validate:"required,http_url"`
	ExtractionSchema string `form:"Extraction Schema"`
	Selectors        string `form:"Selectors"`
}

// Build validates the form and returns the request body. The domain is
// derived from the target URL. A blank extraction schema means
// DefaultExtractionSchema; blank selectors mean none.
func (f NewBridge) Build() (*apibridge.BridgeInput, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}

	schemaText := f.ExtractionSchema
	if isBlank(schemaText) {
		schemaText = DefaultExtractionSchema
	}
	schema, err := ParseObject(FieldExtractionSchema, schemaText)
	if err != nil {
		return nil, err
	}
	if err := checkShape(FieldExtractionSchema, extractionSchema, schema); err != nil {
		return nil, err
	}

	rawSelectors, err := ParseOptionalObject(FieldSelectors, f.Selectors)
	if err != nil {
		return nil, err
	}
	if err := checkShape(FieldSelectors, selectorsSchema, rawSelectors); err != nil {
		return nil, err
	}

	domain, err := Domain(f.TargetURL)
	if err != nil {
		return nil, err
	}

	return &apibridge.BridgeInput{
		Name:             f.Name,
		Domain:           domain,
		TargetURL:        f.TargetURL,
		ExtractionSchema: schema,
		Selectors:        stringMap(rawSelectors),
	}, nil
}

// BridgeSettings is the bridge settings form: authentication and the
// interaction script run before extraction.
type BridgeSettings struct {
	AuthConfig        string
	InteractionScript string
}

// Apply validates the form and returns the complete replacement body for b.
// The server replaces every field on update, so all other fields are
// carried over from b.
func (f BridgeSettings) Apply(b *apibridge.Bridge) (*apibridge.BridgeInput, error) {
	auth, err := ParseOptionalObject(FieldAuthConfig, f.AuthConfig)
	if err != nil {
		return nil, err
	}
	if err := checkShape(FieldAuthConfig, authConfigSchema, auth); err != nil {
		return nil, err
	}

	script, err := ParseOptionalArray(FieldInteractionScript, f.InteractionScript)
	if err != nil {
		return nil, err
	}
	if err := checkShape(FieldInteractionScript, interactionSchema, script); err != nil {
		return nil, err
	}

	steps := make([]apibridge.Document, 0, len(script))
	for _, step := range script {
		// The schema guarantees every step is an object.
		obj, _ := step.(map[string]any)
		steps = append(steps, obj)
	}

	in := InputFromBridge(b)
	in.AuthConfig = auth
	in.InteractionScript = steps
	return in, nil
}

// InputFromBridge copies the writable fields of a bridge into a request body.
func InputFromBridge(b *apibridge.Bridge) *apibridge.BridgeInput {
	return &apibridge.BridgeInput{
		Name:              b.Name,
		Domain:            b.Domain,
		TargetURL:         b.TargetURL,
		ExtractionSchema:  b.ExtractionSchema,
		Selectors:         b.Selectors,
		AuthConfig:        b.AuthConfig,
		InteractionScript: b.InteractionScript,
	}
}

// Domain returns the hostname of a target URL.
func Domain(targetURL string) (string, error) {
	u, err := url.Parse(targetURL)
	if err != nil || u.Hostname() == "" {
		return "", ValidationErrors{{
			Field:   "Target URL",
			Tag:     "http_url",
			Value:   targetURL,
			Message: "Target URL must be a valid http(s) URL",
		}}
	}
	return u.Hostname(), nil
}

func stringMap(m map[string]any) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		// The schema guarantees string values.
		out[k], _ = v.(string)
	}
	return out
}
