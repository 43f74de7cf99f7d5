package apibridge

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/apibridge/client-go/internal/api"
)

const (
	// DefaultBaseURL is the API host used when WithBaseURL is not given.
	DefaultBaseURL = api.DefaultBaseURL

	// DefaultPollInterval is the first delay between task status checks.
	DefaultPollInterval = 1 * time.Second

	// DefaultWaitTimeout bounds WaitForTask when WithWaitTimeout is not given.
	DefaultWaitTimeout = 5 * time.Minute

	defaultMaxPollInterval = 15 * time.Second
	pollBackoffMultiplier  = 1.5
	pollJitterFactor       = 0.3
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL         string
	apiKey          string
	httpClient      *http.Client
	timeout         time.Duration
	userAgent       string
	headers         map[string]string
	rateLimit       float64
	rateBurst       int
	maxResponseSize int64
	logger          *zerolog.Logger
}

// requestConfig holds configuration for a raw Request call.
type requestConfig struct {
	method  string
	body    any
	headers map[string]string
}

// waitConfig holds configuration for waiting on a task.
type waitConfig struct {
	timeout         time.Duration
	pollInterval    time.Duration
	maxPollInterval time.Duration
}

// Option configures the client.
type Option func(*clientConfig)

// RequestOption configures a raw Request call.
type RequestOption func(*requestConfig)

// WaitOption configures task waiting.
type WaitOption func(*waitConfig)

// WithBaseURL sets the API host, e.g. "https://bridge.example.com".
// A trailing "/api/v1" is accepted.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithAPIKey sets the key sent in the X-API-Key header.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.apiKey = key
	}
}

// WithHTTPClient sets a custom HTTP client. WithTimeout is ignored when set.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// WithDefaultHeaders adds headers to every request. They override the
// client's own defaults and are overridden by per-request headers.
func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *clientConfig) {
		if c.headers == nil {
			c.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithRateLimit throttles outgoing requests to rps requests per second with
// the given burst. Throttled requests wait; they are never dropped or re-sent.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *clientConfig) {
		c.rateLimit = rps
		c.rateBurst = burst
	}
}

// WithMaxResponseSize rejects response bodies larger than n bytes with
// ErrResponseTooLarge.
func WithMaxResponseSize(n int64) Option {
	return func(c *clientConfig) {
		c.maxResponseSize = n
	}
}

// WithLogger sets the logger used for per-request debug logs.
// Default: zerolog.Nop()
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &logger
	}
}

// Request options

// WithMethod sets the HTTP method of a raw request. Default: GET
func WithMethod(method string) RequestOption {
	return func(c *requestConfig) {
		c.method = method
	}
}

// WithBody sets the JSON body of a raw request.
func WithBody(body any) RequestOption {
	return func(c *requestConfig) {
		c.body = body
	}
}

// WithHeader sets a header on a single request. It wins over every default.
func WithHeader(key, value string) RequestOption {
	return func(c *requestConfig) {
		if c.headers == nil {
			c.headers = make(map[string]string)
		}
		c.headers[key] = value
	}
}

// Wait options

// WithWaitTimeout sets how long WaitForTask polls before giving up.
// Default: 5 minutes
func WithWaitTimeout(timeout time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.timeout = timeout
	}
}

// WithPollInterval sets the initial delay between task status checks.
// Default: 1 second
func WithPollInterval(interval time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.pollInterval = interval
	}
}

// WithMaxPollInterval caps the delay between task status checks.
// Default: 15 seconds
func WithMaxPollInterval(interval time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.maxPollInterval = interval
	}
}
