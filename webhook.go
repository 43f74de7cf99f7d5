package apibridge

import (
	"context"

	"github.com/apibridge/client-go/internal/api"
)

// WebhookEventType represents the type of event that triggers a webhook.
type WebhookEventType string

const (
	// WebhookEventExtractionSuccess is triggered when an extraction succeeds.
	WebhookEventExtractionSuccess WebhookEventType = "extraction.success"
	// WebhookEventExtractionFailed is triggered when an extraction fails.
	WebhookEventExtractionFailed WebhookEventType = "extraction.failed"
)

// WebhooksService groups the webhook endpoints.
type WebhooksService struct {
	api *api.Client
}

// List returns all webhooks.
func (s *WebhooksService) List(ctx context.Context) ([]Webhook, error) {
	return s.api.ListWebhooks(ctx)
}

// Create registers a webhook for url. Without options the server applies its
// defaults: name "Default Webhook", active, subscribed to both extraction
// events.
//
// Example:
//
//	hook, err := client.Webhooks.Create(ctx, "https://hooks.example.com/bridge",
//	    apibridge.WithWebhookName("alerts"),
//	    apibridge.WithWebhookEvents(apibridge.WebhookEventExtractionFailed),
//	)
func (s *WebhooksService) Create(ctx context.Context, url string, opts ...WebhookCreateOption) (*Webhook, error) {
	cfg := &webhookCreateConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return s.api.CreateWebhook(ctx, cfg.input(url))
}

// Delete deletes a webhook.
func (s *WebhooksService) Delete(ctx context.Context, id string) (*StatusResponse, error) {
	return s.api.DeleteWebhook(ctx, id)
}

// Logs returns recent delivery attempts of a webhook.
func (s *WebhooksService) Logs(ctx context.Context, id string) ([]WebhookLog, error) {
	return s.api.ListWebhookLogs(ctx, id)
}
