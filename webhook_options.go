package apibridge

import "github.com/apibridge/client-go/internal/api"

// webhookCreateConfig holds configuration for creating a webhook.
type webhookCreateConfig struct {
	name     string
	events   []WebhookEventType
	secret   string
	inactive bool
}

// WebhookCreateOption configures webhook creation.
type WebhookCreateOption func(*webhookCreateConfig)

// WithWebhookName sets a display name for the webhook.
func WithWebhookName(name string) WebhookCreateOption {
	return func(c *webhookCreateConfig) {
		c.name = name
	}
}

// WithWebhookEvents sets the event types that trigger the webhook.
func WithWebhookEvents(events ...WebhookEventType) WebhookCreateOption {
	return func(c *webhookCreateConfig) {
		c.events = events
	}
}

// WithWebhookSecret sets the secret the server signs deliveries with.
func WithWebhookSecret(secret string) WebhookCreateOption {
	return func(c *webhookCreateConfig) {
		c.secret = secret
	}
}

// WithWebhookInactive creates the webhook disabled.
func WithWebhookInactive() WebhookCreateOption {
	return func(c *webhookCreateConfig) {
		c.inactive = true
	}
}

func (c *webhookCreateConfig) input(url string) *api.WebhookInput {
	in := &api.WebhookInput{
		URL:    url,
		Name:   c.name,
		Secret: c.secret,
	}
	if c.inactive {
		active := false
		in.IsActive = &active
	}
	if len(c.events) > 0 {
		in.Events = make([]string, len(c.events))
		for i, e := range c.events {
			in.Events[i] = string(e)
		}
	}
	return in
}
