package api

import "github.com/google/uuid"

// WebhookInput is the request body for creating a webhook.
type WebhookInput struct {
	URL      string   `json:"url"`
	Name     string   `json:"name,omitempty"`
	IsActive *bool    `json:"is_active,omitempty"`
	Events   []string `json:"events,omitempty"`
	Secret   string   `json:"secret,omitempty"`
}

// Webhook represents a webhook from the API.
type Webhook struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	URL       string    `json:"url"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	Events    []string  `json:"events"`
	CreatedAt Time      `json:"created_at"`
}

// WebhookLog is one delivery attempt of a webhook.
type WebhookLog struct {
	ID         uuid.UUID `json:"id"`
	WebhookID  uuid.UUID `json:"webhook_id"`
	EventType  string    `json:"event_type"`
	StatusCode *int      `json:"status_code,omitempty"`
	LatencyMS  *int      `json:"latency_ms,omitempty"`
	CreatedAt  Time      `json:"created_at"`
}
