package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/apibridge/client-go/internal/apierrors"
)

const (
	// DefaultBaseURL is the API host used when none is configured.
	DefaultBaseURL = "http://localhost:8000"
	// APIPrefix is the versioned path prefix every endpoint lives under.
	APIPrefix = "/api/v1"
	// DefaultTimeout is the HTTP client timeout used when none is configured.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is sent with every request unless overridden.
	DefaultUserAgent = "apibridge-go"
)

// Header names used by the client.
const (
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderUserAgent   = "User-Agent"
	HeaderAPIKey      = "X-API-Key"
	HeaderRequestID   = "X-Request-ID"
	ContentTypeJSON   = "application/json"
)

// Client is the HTTP API client.
type Client struct {
	baseURL         string
	apiKey          string
	userAgent       string
	headers         map[string]string
	httpClient      *http.Client
	limiter         *rate.Limiter
	maxResponseSize int64
	logger          zerolog.Logger
}

// Config holds the configuration for creating a new Client.
type Config struct {
	// BaseURL is the API host, e.g. "https://bridge.example.com". A trailing
	// "/api/v1" is tolerated and stripped.
	BaseURL string
	// APIKey is sent as X-API-Key when non-empty.
	APIKey string
	// HTTPClient overrides the default HTTP client. Timeout is ignored when set.
	HTTPClient *http.Client
	// Timeout for the default HTTP client. Zero means DefaultTimeout.
	Timeout time.Duration
	// UserAgent overrides DefaultUserAgent.
	UserAgent string
	// Headers are added to every request and override the client defaults.
	Headers map[string]string
	// Limiter, when set, throttles outgoing requests. Requests are never re-sent.
	Limiter *rate.Limiter
	// MaxResponseSize limits response bodies in bytes. Zero means no limit.
	MaxResponseSize int64
	// Logger receives debug logs for every request. Zero value means no logging.
	Logger *zerolog.Logger
}

// Option configures the API client.
type Option func(*Config)

// WithBaseURL sets the base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithAPIKey sets the API key.
func WithAPIKey(apiKey string) Option {
	return func(c *Config) {
		c.APIKey = apiKey
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithLimiter throttles outgoing requests.
func WithLimiter(limiter *rate.Limiter) Option {
	return func(c *Config) {
		c.Limiter = limiter
	}
}

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = &logger
	}
}

// New creates a new API client using functional options.
func New(opts ...Option) (*Client, error) {
	cfg := Config{BaseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

// NewClient creates a new API client from a Config.
func NewClient(cfg Config) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	return &Client{
		baseURL:         baseURL,
		apiKey:          cfg.APIKey,
		userAgent:       userAgent,
		headers:         headers,
		httpClient:      httpClient,
		limiter:         cfg.Limiter,
		maxResponseSize: cfg.MaxResponseSize,
		logger:          logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("base URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid base URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: missing host", raw)
	}
	base := strings.TrimSuffix(raw, "/")
	base = strings.TrimSuffix(base, APIPrefix)
	return strings.TrimSuffix(base, "/"), nil
}

// BaseURL returns the configured API host without the versioned prefix.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// RequestOption configures a single request.
type RequestOption func(*requestConfig)

type requestConfig struct {
	headers   map[string]string
	requestID string
}

// WithHeader sets a header on a single request. Per-request headers win over
// every default, including Content-Type.
func WithHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		rc.headers[key] = value
	}
}

// WithRequestID sets the X-Request-ID for a single request instead of a
// freshly generated one.
func WithRequestID(id string) RequestOption {
	return func(rc *requestConfig) {
		rc.requestID = id
	}
}

// Do sends one request and decodes a JSON response into result. It never
// retries. A nil result still requires a JSON body unless the server answers
// 204 No Content.
func (c *Client) Do(ctx context.Context, method, path string, body, result any, opts ...RequestOption) error {
	rc := &requestConfig{headers: make(map[string]string)}
	for _, opt := range opts {
		opt(rc)
	}

	req, err := c.buildRequest(ctx, method, path, body, rc)
	if err != nil {
		return err
	}
	requestID := req.Header.Get(HeaderRequestID)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &apierrors.NetworkError{Err: err, Method: method, URL: req.URL.String()}
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("method", method).
			Str("path", req.URL.Path).
			Str("request_id", requestID).
			Dur("duration", time.Since(start)).
			Msg("api request failed")
		return &apierrors.NetworkError{Err: err, Method: method, URL: req.URL.String()}
	}
	defer resp.Body.Close()

	if id := resp.Header.Get(HeaderRequestID); id != "" {
		requestID = id
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("duration", time.Since(start)).
		Msg("api request")

	return c.handleResponse(resp, result, requestID)
}

// URL returns the absolute URL for an endpoint path.
func (c *Client) URL(path string) string {
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	if path == APIPrefix || strings.HasPrefix(path, APIPrefix+"/") || strings.HasPrefix(path, APIPrefix+"?") {
		return c.baseURL + path
	}
	return c.baseURL + APIPrefix + path
}

func (c *Client) buildRequest(ctx context.Context, method, path string, body any, rc *requestConfig) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &apierrors.EncodeError{Err: err}
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), bodyReader)
	if err != nil {
		return nil, &apierrors.RequestError{Method: method, URL: c.URL(path), Err: err}
	}

	req.Header.Set(HeaderContentType, ContentTypeJSON)
	req.Header.Set(HeaderAccept, ContentTypeJSON)
	req.Header.Set(HeaderUserAgent, c.userAgent)
	if c.apiKey != "" {
		req.Header.Set(HeaderAPIKey, c.apiKey)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range rc.headers {
		req.Header.Set(k, v)
	}

	switch {
	case rc.requestID != "":
		req.Header.Set(HeaderRequestID, rc.requestID)
	case req.Header.Get(HeaderRequestID) == "":
		req.Header.Set(HeaderRequestID, uuid.New().String())
	}

	return req, nil
}

func (c *Client) handleResponse(resp *http.Response, result any, requestID string) error {
	data, err := c.readBody(resp)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp.StatusCode, resp.Status, data, requestID)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if result == nil {
		if !json.Valid(data) {
			return &apierrors.DecodeError{
				StatusCode: resp.StatusCode,
				Body:       data,
				Err:        errors.New("response body is not valid JSON"),
			}
		}
		return nil
	}

	if err := json.Unmarshal(data, result); err != nil {
		return &apierrors.DecodeError{StatusCode: resp.StatusCode, Body: data, Err: err}
	}
	return nil
}

func (c *Client) readBody(resp *http.Response) ([]byte, error) {
	body := io.Reader(resp.Body)
	if c.maxResponseSize > 0 {
		body = io.LimitReader(resp.Body, c.maxResponseSize+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &apierrors.NetworkError{Err: err, Method: resp.Request.Method, URL: resp.Request.URL.String()}
	}

	if c.maxResponseSize > 0 && int64(len(data)) > c.maxResponseSize {
		return nil, &apierrors.RequestError{
			Method: resp.Request.Method,
			URL:    resp.Request.URL.String(),
			Err:    apierrors.ErrResponseTooLarge,
		}
	}
	return data, nil
}
