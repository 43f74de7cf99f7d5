package apibridge

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/apibridge/client-go/internal/api"
)

// Client is the API Bridge client. Its resource namespaces are created once
// in New and are safe for concurrent use.
type Client struct {
	apiClient *api.Client

	Bridges   *BridgesService
	Keys      *KeysService
	Webhooks  *WebhooksService
	Handshake *HandshakeService
	System    *SystemService
	LLM       *LLMService
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(cfg *clientConfig) (*api.Client, error) {
	apiCfg := api.Config{
		BaseURL:         cfg.baseURL,
		APIKey:          cfg.apiKey,
		HTTPClient:      cfg.httpClient,
		Timeout:         cfg.timeout,
		UserAgent:       cfg.userAgent,
		Headers:         cfg.headers,
		MaxResponseSize: cfg.maxResponseSize,
		Logger:          cfg.logger,
	}
	if cfg.rateLimit > 0 {
		burst := cfg.rateBurst
		if burst < 1 {
			burst = 1
		}
		apiCfg.Limiter = rate.NewLimiter(rate.Limit(cfg.rateLimit), burst)
	}
	return api.NewClient(apiCfg)
}

// New creates a new client. No request is made until a method is called.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		apiClient: apiClient,
		Bridges:   &BridgesService{api: apiClient},
		Keys:      &KeysService{api: apiClient},
		Webhooks:  &WebhooksService{api: apiClient},
		Handshake: &HandshakeService{api: apiClient},
		System:    &SystemService{api: apiClient},
		LLM:       &LLMService{api: apiClient},
	}, nil
}

// BaseURL returns the configured API host.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// Request sends one request to path, relative to /api/v1, and returns the
// decoded JSON value (map[string]any, []any, string, float64, bool or nil).
// It is the escape hatch for endpoints without a typed method.
//
// Example:
//
//	v, err := client.Request(ctx, "/keys",
//	    apibridge.WithMethod(http.MethodPost),
//	    apibridge.WithBody(map[string]string{"name": "ci"}),
//	)
func (c *Client) Request(ctx context.Context, path string, opts ...RequestOption) (any, error) {
	rc := &requestConfig{method: http.MethodGet}
	for _, opt := range opts {
		opt(rc)
	}

	method := strings.ToUpper(rc.method)
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, &RequestError{Method: rc.method, Err: ErrUnsupportedMethod}
	}

	reqOpts := make([]api.RequestOption, 0, len(rc.headers))
	for k, v := range rc.headers {
		reqOpts = append(reqOpts, api.WithHeader(k, v))
	}

	var result any
	if err := c.apiClient.Do(ctx, method, path, rc.body, &result, reqOpts...); err != nil {
		return nil, err
	}
	return result, nil
}
