package forms

import (
	"strings"

	apibridge "github.com/apibridge/client-go"
)

// NewWebhook is the create-webhook form.
type NewWebhook struct {
	URL      string   `form:"URL" validate:"required,http_url"`
	Name     string   `form:"Name" validate:"max=255"`
	Events   []string `form:"Events" validate:"dive,oneof=extraction.success extraction.failed"`
	Secret   string   `form:"Secret"`
	Inactive bool     `form:"Inactive"`
}

// Options validates the form and returns the options for
// WebhooksService.Create.
func (f NewWebhook) Options() ([]apibridge.WebhookCreateOption, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}

	var opts []apibridge.WebhookCreateOption
	if f.Name != "" {
		opts = append(opts, apibridge.WithWebhookName(f.Name))
	}
	if len(f.Events) > 0 {
		events := make([]apibridge.WebhookEventType, len(f.Events))
		for i, e := range f.Events {
			events[i] = apibridge.WebhookEventType(e)
		}
		opts = append(opts, apibridge.WithWebhookEvents(events...))
	}
	if f.Secret != "" {
		opts = append(opts, apibridge.WithWebhookSecret(f.Secret))
	}
	if f.Inactive {
		opts = append(opts, apibridge.WithWebhookInactive())
	}
	return opts, nil
}

// NewHandshake is the permission request form. The recipient must match the
// method: an email address for EMAIL, a handle for TWITTER and GITHUB.
type NewHandshake struct {
	Domain    string `form:"Domain" validate:"required,hostname_rfc1123"`
	Method    string `form:"Method" validate:"required,oneof=EMAIL TWITTER GITHUB email twitter github"`
	Recipient string `form:"Recipient" validate:"required"`
	Context   string `form:"Context" validate:"max=2000"`
}

// Build validates the form and returns the request body.
func (f NewHandshake) Build() (*apibridge.HandshakeInput, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}
	return &apibridge.HandshakeInput{
		Domain:    strings.ToLower(f.Domain),
		Method:    strings.ToUpper(f.Method),
		Recipient: f.Recipient,
		Context:   f.Context,
	}, nil
}

// NewProvider is the add-LLM-provider form.
type NewProvider struct {
	Provider string `form:"Provider" validate:"required,oneof=openai anthropic google mistral cohere groq openrouter ollama"`
	Model    string `form:"Model" validate:"required,max=255"`
	APIKey   string `form:"API Key" validate:"required"`
	Priority int    `form:"Priority" validate:"gte=0"`
}

// Build validates the form and returns the request body.
func (f NewProvider) Build() (*apibridge.LLMProviderInput, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}
	return &apibridge.LLMProviderInput{
		Provider: f.Provider,
		APIKey:   f.APIKey,
		Model:    f.Model,
		Priority: f.Priority,
	}, nil
}

// TestRequest validates the form and returns the body for a credential test.
// Priority is ignored.
func (f NewProvider) TestRequest() (*apibridge.ProviderTestRequest, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}
	return &apibridge.ProviderTestRequest{
		Provider: f.Provider,
		Model:    f.Model,
		APIKey:   f.APIKey,
	}, nil
}
