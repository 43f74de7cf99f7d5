package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/apibridge/client-go/internal/apierrors"
)

// ListWebhooks returns all webhooks.
func (c *Client) ListWebhooks(ctx context.Context) ([]Webhook, error) {
	var result []Webhook
	if err := c.Do(ctx, http.MethodGet, "/webhooks", nil, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceWebhook)
	}
	return result, nil
}

// CreateWebhook creates a new webhook.
func (c *Client) CreateWebhook(ctx context.Context, req *WebhookInput) (*Webhook, error) {
	var result Webhook
	if err := c.Do(ctx, http.MethodPost, "/webhooks", req, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceWebhook)
	}
	return &result, nil
}

// DeleteWebhook deletes a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) (*StatusResponse, error) {
	var result StatusResponse
	path := fmt.Sprintf("/webhooks/%s", url.PathEscape(webhookID))
	if err := c.Do(ctx, http.MethodDelete, path, nil, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceWebhook)
	}
	return &result, nil
}

// ListWebhookLogs returns the most recent delivery attempts of a webhook.
func (c *Client) ListWebhookLogs(ctx context.Context, webhookID string) ([]WebhookLog, error) {
	var result []WebhookLog
	path := fmt.Sprintf("/webhooks/%s/logs", url.PathEscape(webhookID))
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceWebhook)
	}
	return result, nil
}
