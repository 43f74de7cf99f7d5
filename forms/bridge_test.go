package forms

import (
	"encoding/json"
	"testing"

	apibridge "github.com/apibridge/client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBridge_Build(t *testing.T) {
	t.Parallel()

	in, err := NewBridge{
		Name:             "HN",
		TargetURL:        "https://news.ycombinator.com/newest?p=2",
		ExtractionSchema: `{"title": "string", "points": "number"}`,
		Selectors:        `{"title": ".titleline > a"}`,
	}.Build()
	require.NoError(t, err)

	assert.Equal(t, "HN", in.Name)
	assert.Equal(t, "news.ycombinator.com", in.Domain)
	assert.Equal(t, "https://news.ycombinator.com/newest?p=2", in.TargetURL)
	assert.Equal(t, apibridge.Document{"title": "string", "points": "number"}, in.ExtractionSchema)
	assert.Equal(t, map[string]string{"title": ".titleline > a"}, in.Selectors)
}

func TestNewBridge_DefaultSchema(t *testing.T) {
	t.Parallel()

	in, err := NewBridge{Name: "x", TargetURL: "http://example.com"}.Build()
	require.NoError(t, err)

	assert.Equal(t, apibridge.Document{"title": "string", "url": "url"}, in.ExtractionSchema)
	assert.Nil(t, in.Selectors)
	assert.Equal(t, "example.com", in.Domain)
}

func TestNewBridge_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		form    NewBridge
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing name",
			form:    NewBridge{TargetURL: "https://example.com"},
			wantMsg: "Name is required",
		},
		{
			name:    "bad url",
			form:    NewBridge{Name: "x", TargetURL: "example.com"},
			wantMsg: "Target URL must be a valid http(s) URL",
		},
		{
			name:    "schema not json",
			form:    NewBridge{Name: "x", TargetURL: "https://example.com", ExtractionSchema: `{title}`},
			wantErr: ErrInvalidJSON,
			wantMsg: "Invalid JSON in Extraction Schema",
		},
		{
			name:    "schema array",
			form:    NewBridge{Name: "x", TargetURL: "https://example.com", ExtractionSchema: `["title"]`},
			wantErr: ErrNotObject,
			wantMsg: "Extraction Schema must be an Object",
		},
		{
			name:    "schema empty object",
			form:    NewBridge{Name: "x", TargetURL: "https://example.com", ExtractionSchema: `{}`},
			wantErr: ErrSchemaMismatch,
		},
		{
			name:    "selector not a string",
			form:    NewBridge{Name: "x", TargetURL: "https://example.com", Selectors: `{"title": 3}`},
			wantErr: ErrSchemaMismatch,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in, err := tt.form.Build()
			require.Error(t, err)
			assert.Nil(t, in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func testBridge() *apibridge.Bridge {
	return &apibridge.Bridge{
		Name:             "HN",
		Domain:           "news.ycombinator.com",
		TargetURL:        "https://news.ycombinator.com",
		ExtractionSchema: apibridge.Document{"title": "string"},
		Selectors:        map[string]string{"title": "a"},
		AuthConfig:       apibridge.Document{"type": "old"},
	}
}

func TestBridgeSettings_Apply(t *testing.T) {
	t.Parallel()

	in, err := BridgeSettings{
		AuthConfig: `{"type": "form", "steps": [{"action": "click", "selector": "#login"}]}`,
		InteractionScript: `[
			{"action": "type", "selector": "#q", "text": "golang"},
			{"action": "wait", "ms": 500},
			{"action": "scroll_bottom"}
		]`,
	}.Apply(testBridge())
	require.NoError(t, err)

	assert.Equal(t, "HN", in.Name)
	assert.Equal(t, "news.ycombinator.com", in.Domain)
	assert.Equal(t, apibridge.Document{"title": "string"}, in.ExtractionSchema)
	assert.Equal(t, map[string]string{"title": "a"}, in.Selectors)
	assert.Equal(t, "form", in.AuthConfig["type"])
	require.Len(t, in.InteractionScript, 3)
	assert.Equal(t, "type", in.InteractionScript[0]["action"])
	assert.Equal(t, "golang", in.InteractionScript[0]["text"])
	assert.Equal(t, float64(500), in.InteractionScript[1]["ms"])
}

func TestBridgeSettings_Blank(t *testing.T) {
	t.Parallel()

	in, err := BridgeSettings{}.Apply(testBridge())
	require.NoError(t, err)

	assert.Empty(t, in.AuthConfig)
	assert.Empty(t, in.InteractionScript)

	body, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"auth_config":{}`)
	assert.Contains(t, string(body), `"interaction_script":[]`)
}

func TestBridgeSettings_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings BridgeSettings
		wantErr  error
		wantMsg  string
	}{
		{
			name:     "auth not json",
			settings: BridgeSettings{AuthConfig: `{type: form}`},
			wantErr:  ErrInvalidJSON,
			wantMsg:  "Invalid JSON in Auth Config",
		},
		{
			name:     "auth is array",
			settings: BridgeSettings{AuthConfig: `[]`},
			wantErr:  ErrNotObject,
			wantMsg:  "Auth Config must be an Object",
		},
		{
			name:     "script is object",
			settings: BridgeSettings{InteractionScript: `{"action": "click"}`},
			wantErr:  ErrNotArray,
			wantMsg:  "Interaction Script must be an Array",
		},
		{
			name:     "step without action",
			settings: BridgeSettings{InteractionScript: `[{"selector": "#a"}]`},
			wantErr:  ErrSchemaMismatch,
			wantMsg:  "Interaction Script",
		},
		{
			name:     "unknown action",
			settings: BridgeSettings{InteractionScript: `[{"action": "hover", "selector": "#a"}]`},
			wantErr:  ErrSchemaMismatch,
		},
		{
			name:     "click without selector",
			settings: BridgeSettings{InteractionScript: `[{"action": "click"}]`},
			wantErr:  ErrSchemaMismatch,
		},
		{
			name:     "type without text",
			settings: BridgeSettings{InteractionScript: `[{"action": "type", "selector": "#q"}]`},
			wantErr:  ErrSchemaMismatch,
		},
		{
			name:     "step is not an object",
			settings: BridgeSettings{InteractionScript: `["click"]`},
			wantErr:  ErrSchemaMismatch,
		},
		{
			name:     "bad auth step",
			settings: BridgeSettings{AuthConfig: `{"steps": [{"action": "click"}]}`},
			wantErr:  ErrSchemaMismatch,
			wantMsg:  "Auth Config",
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in, err := tt.settings.Apply(testBridge())
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, in)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestDomain(t *testing.T) {
	t.Parallel()

	d, err := Domain("https://User@Shop.Example.com:8443/path")
	require.NoError(t, err)
	assert.Equal(t, "Shop.Example.com", d)

	_, err = Domain("not a url")
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Target URL", verrs[0].Field)
}
