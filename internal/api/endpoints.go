package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/apibridge/client-go/internal/apierrors"
)

// Keys

// ListKeys returns all API keys.
func (c *Client) ListKeys(ctx context.Context) ([]APIKey, error) {
	var result []APIKey
	if err := c.Do(ctx, http.MethodGet, "/keys", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateKey creates a new API key.
func (c *Client) CreateKey(ctx context.Context, name string) (*CreatedKey, error) {
	var result CreatedKey
	if err := c.Do(ctx, http.MethodPost, "/keys", &CreateKeyRequest{Name: name}, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceKey)
	}
	return &result, nil
}

// Handshake

// InitiateHandshake drafts a permission request to a site owner.
func (c *Client) InitiateHandshake(ctx context.Context, req *HandshakeInput) (*Handshake, error) {
	var result Handshake
	if err := c.Do(ctx, http.MethodPost, "/handshake/initiate", req, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceHandshake)
	}
	return &result, nil
}

// ApproveHandshake approves a drafted request so the server sends it.
func (c *Client) ApproveHandshake(ctx context.Context, handshakeID string) (*Handshake, error) {
	var result Handshake
	path := fmt.Sprintf("/handshake/approve/%s", url.PathEscape(handshakeID))
	if err := c.Do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceHandshake)
	}
	return &result, nil
}

// System

// GetHealth returns the server health report.
func (c *Client) GetHealth(ctx context.Context) (*Health, error) {
	var result Health
	if err := c.Do(ctx, http.MethodGet, "/health", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// LLM providers

// ListProviders returns the configured LLM providers ordered by priority.
func (c *Client) ListProviders(ctx context.Context) ([]LLMProvider, error) {
	var result []LLMProvider
	if err := c.Do(ctx, http.MethodGet, "/llm/providers", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateProvider adds an LLM provider configuration.
func (c *Client) CreateProvider(ctx context.Context, req *LLMProviderInput) (*LLMProvider, error) {
	var result LLMProvider
	if err := c.Do(ctx, http.MethodPost, "/llm/providers", req, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceProvider)
	}
	return &result, nil
}

// DeleteProvider removes an LLM provider configuration.
func (c *Client) DeleteProvider(ctx context.Context, providerID string) error {
	path := fmt.Sprintf("/llm/providers/%s", url.PathEscape(providerID))
	return apierrors.WithResourceType(c.Do(ctx, http.MethodDelete, path, nil, nil), apierrors.ResourceProvider)
}

// TestProvider checks provider credentials without storing them.
func (c *Client) TestProvider(ctx context.Context, req *ProviderTestRequest) (*ProviderTestResult, error) {
	var result ProviderTestResult
	if err := c.Do(ctx, http.MethodPost, "/llm/providers/test", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
