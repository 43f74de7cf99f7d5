// Package apierrors provides shared error types for the API Bridge client.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrUnauthorized is returned when the API key is missing, invalid, revoked or expired.
	ErrUnauthorized = errors.New("invalid or missing API key")

	// ErrForbidden is returned when the API key may not access the resource.
	ErrForbidden = errors.New("access forbidden")

	// ErrNotFound is returned for any 404 response.
	ErrNotFound = errors.New("resource not found")

	// ErrBridgeNotFound is returned when a bridge is not found.
	ErrBridgeNotFound = errors.New("bridge not found")

	// ErrWebhookNotFound is returned when a webhook is not found.
	ErrWebhookNotFound = errors.New("webhook not found")

	// ErrHandshakeNotFound is returned when a handshake request is not found.
	ErrHandshakeNotFound = errors.New("handshake request not found")

	// ErrProviderNotFound is returned when an LLM provider configuration is not found.
	ErrProviderNotFound = errors.New("LLM provider not found")

	// ErrTaskNotFound is returned when an extraction task is not found.
	ErrTaskNotFound = errors.New("task not found")

	// ErrBadRequest is returned when the server rejects the request (400).
	ErrBadRequest = errors.New("bad request")

	// ErrConflict is returned when the request conflicts with server state (409).
	ErrConflict = errors.New("conflict")

	// ErrValidation is returned when the server rejects the request body (422).
	ErrValidation = errors.New("request validation failed")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServer is returned for any 5xx response.
	ErrServer = errors.New("server error")

	// ErrEncodeBody is returned when a request body cannot be encoded as JSON.
	ErrEncodeBody = errors.New("failed to encode request body")

	// ErrDecodeResponse is returned when a successful response is not valid JSON
	// or does not match the expected model.
	ErrDecodeResponse = errors.New("failed to decode response")

	// ErrResponseTooLarge is returned when a response exceeds the configured size limit.
	ErrResponseTooLarge = errors.New("response body too large")

	// ErrUnsupportedMethod is returned when a request uses a method other than
	// GET, POST, PUT or DELETE.
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")
)

// ResourceType indicates which type of resource an error relates to.
type ResourceType string

const (
	// ResourceUnknown indicates the resource type is not specified.
	ResourceUnknown ResourceType = ""
	// ResourceBridge indicates the error relates to a bridge.
	ResourceBridge ResourceType = "bridge"
	// ResourceWebhook indicates the error relates to a webhook.
	ResourceWebhook ResourceType = "webhook"
	// ResourceHandshake indicates the error relates to a handshake request.
	ResourceHandshake ResourceType = "handshake"
	// ResourceProvider indicates the error relates to an LLM provider.
	ResourceProvider ResourceType = "llm_provider"
	// ResourceTask indicates the error relates to an extraction task.
	ResourceTask ResourceType = "task"
	// ResourceKey indicates the error relates to an API key.
	ResourceKey ResourceType = "api_key"
)

// APIError represents a non-2xx response from the API Bridge server.
//
// Message is the server's "detail" field when the body carried one, and the
// HTTP status phrase otherwise. Error returns Message unchanged.
type APIError struct {
	StatusCode   int
	Status       string
	Message      string
	RequestID    string
	ResourceType ResourceType
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status != "" {
		return e.Status
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// BridgeError implements the BridgeError marker interface.
func (e *APIError) BridgeError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return target == ErrBadRequest
	case e.StatusCode == http.StatusUnauthorized:
		return target == ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return target == ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		if target == ErrNotFound {
			return true
		}
		switch e.ResourceType {
		case ResourceBridge:
			return target == ErrBridgeNotFound
		case ResourceWebhook:
			return target == ErrWebhookNotFound
		case ResourceHandshake:
			return target == ErrHandshakeNotFound
		case ResourceProvider:
			return target == ErrProviderNotFound
		case ResourceTask:
			return target == ErrTaskNotFound
		}
		return false
	case e.StatusCode == http.StatusConflict:
		return target == ErrConflict
	case e.StatusCode == http.StatusUnprocessableEntity:
		return target == ErrValidation
	case e.StatusCode == http.StatusTooManyRequests:
		return target == ErrRateLimited
	case e.StatusCode >= 500:
		return target == ErrServer
	}
	return false
}

// WithResourceType returns a copy of the error with the resource type set.
// If the error is not an *APIError, it is returned unchanged.
func WithResourceType(err error, rt ResourceType) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode:   apiErr.StatusCode,
			Status:       apiErr.Status,
			Message:      apiErr.Message,
			RequestID:    apiErr.RequestID,
			ResourceType: rt,
		}
	}
	return err
}

// NetworkError represents a transport-level failure: DNS, refused
// connections, timeouts and context cancellation.
type NetworkError struct {
	Err    error
	Method string
	URL    string
}

func (e *NetworkError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// BridgeError implements the BridgeError marker interface.
func (e *NetworkError) BridgeError() {}

// DecodeError indicates a 2xx response whose body could not be decoded.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return ErrDecodeResponse.Error()
	}
	return fmt.Sprintf("%s: %v", ErrDecodeResponse, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is matches ErrDecodeResponse.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecodeResponse
}

// BridgeError implements the BridgeError marker interface.
func (e *DecodeError) BridgeError() {}

// EncodeError indicates a request body that could not be encoded. No request
// was sent.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s: %v", ErrEncodeBody, e.Err)
}

// Unwrap returns the underlying error.
func (e *EncodeError) Unwrap() error {
	return e.Err
}

// Is matches ErrEncodeBody.
func (e *EncodeError) Is(target error) bool {
	return target == ErrEncodeBody
}

// BridgeError implements the BridgeError marker interface.
func (e *EncodeError) BridgeError() {}

// RequestError indicates a request that was rejected or abandoned by the
// client itself: an unsupported method, a request that could not be built,
// or a response over the size limit.
type RequestError struct {
	Method string
	URL    string
	Err    error
}

func (e *RequestError) Error() string {
	switch {
	case e.URL != "":
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	case e.Method != "":
		return fmt.Sprintf("%v: %q", e.Err, e.Method)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// BridgeError implements the BridgeError marker interface.
func (e *RequestError) BridgeError() {}
