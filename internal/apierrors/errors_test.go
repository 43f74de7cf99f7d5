package apierrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "detail message is returned verbatim",
			err:      &APIError{StatusCode: 404, Status: "Not Found", Message: "Bridge not found"},
			expected: "Bridge not found",
		},
		{
			name:     "status phrase when message is empty",
			err:      &APIError{StatusCode: 502, Status: "Bad Gateway"},
			expected: "Bad Gateway",
		},
		{
			name:     "status code only",
			err:      &APIError{StatusCode: 599},
			expected: "API error 599",
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *APIError
		target   error
		expected bool
	}{
		{"400 matches ErrBadRequest", &APIError{StatusCode: 400}, ErrBadRequest, true},
		{"401 matches ErrUnauthorized", &APIError{StatusCode: 401}, ErrUnauthorized, true},
		{"401 does not match ErrNotFound", &APIError{StatusCode: 401}, ErrNotFound, false},
		{"403 matches ErrForbidden", &APIError{StatusCode: 403}, ErrForbidden, true},
		{"404 matches ErrNotFound", &APIError{StatusCode: 404}, ErrNotFound, true},
		{"404 without resource does not match ErrBridgeNotFound", &APIError{StatusCode: 404}, ErrBridgeNotFound, false},
		{"404 bridge matches ErrBridgeNotFound", &APIError{StatusCode: 404, ResourceType: ResourceBridge}, ErrBridgeNotFound, true},
		{"404 bridge does not match ErrWebhookNotFound", &APIError{StatusCode: 404, ResourceType: ResourceBridge}, ErrWebhookNotFound, false},
		{"404 webhook matches ErrWebhookNotFound", &APIError{StatusCode: 404, ResourceType: ResourceWebhook}, ErrWebhookNotFound, true},
		{"404 handshake matches ErrHandshakeNotFound", &APIError{StatusCode: 404, ResourceType: ResourceHandshake}, ErrHandshakeNotFound, true},
		{"404 provider matches ErrProviderNotFound", &APIError{StatusCode: 404, ResourceType: ResourceProvider}, ErrProviderNotFound, true},
		{"404 task matches ErrTaskNotFound", &APIError{StatusCode: 404, ResourceType: ResourceTask}, ErrTaskNotFound, true},
		{"409 matches ErrConflict", &APIError{StatusCode: 409}, ErrConflict, true},
		{"422 matches ErrValidation", &APIError{StatusCode: 422}, ErrValidation, true},
		{"429 matches ErrRateLimited", &APIError{StatusCode: 429}, ErrRateLimited, true},
		{"500 matches ErrServer", &APIError{StatusCode: 500}, ErrServer, true},
		{"503 matches ErrServer", &APIError{StatusCode: 503}, ErrServer, true},
		{"500 does not match ErrRateLimited", &APIError{StatusCode: 500}, ErrRateLimited, false},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, errors.Is(tt.err, tt.target))
		})
	}
}

func TestWithResourceType(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, WithResourceType(nil, ResourceBridge))
	})

	t.Run("non API error unchanged", func(t *testing.T) {
		t.Parallel()
		orig := errors.New("boom")
		assert.Same(t, orig, WithResourceType(orig, ResourceBridge))
	})

	t.Run("wrapped API error is re-tagged", func(t *testing.T) {
		t.Parallel()
		orig := &APIError{StatusCode: 404, Status: "Not Found", Message: "Webhook not found", RequestID: "r-1"}
		err := WithResourceType(fmt.Errorf("delete: %w", orig), ResourceWebhook)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, ResourceWebhook, apiErr.ResourceType)
		assert.Equal(t, "Webhook not found", apiErr.Message)
		assert.Equal(t, "Not Found", apiErr.Status)
		assert.Equal(t, "r-1", apiErr.RequestID)
		assert.ErrorIs(t, err, ErrWebhookNotFound)
		assert.Equal(t, ResourceUnknown, orig.ResourceType)
	})
}

func TestNetworkError(t *testing.T) {
	t.Parallel()

	err := &NetworkError{Err: context.DeadlineExceeded, Method: "GET", URL: "http://localhost/api/v1/health"}

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "network error: GET http://localhost/api/v1/health: context deadline exceeded", err.Error())
	assert.Equal(t, "network error: boom", (&NetworkError{Err: errors.New("boom")}).Error())
}

func TestDecodeError(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected end of JSON input")
	err := error(&DecodeError{StatusCode: 200, Err: cause})

	assert.ErrorIs(t, err, ErrDecodeResponse)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to decode response: unexpected end of JSON input", err.Error())
}

func TestEncodeError(t *testing.T) {
	t.Parallel()

	cause := errors.New("json: unsupported type: chan int")
	err := error(&EncodeError{Err: cause})

	assert.ErrorIs(t, err, ErrEncodeBody)
	assert.ErrorIs(t, err, cause)
	assert.False(t, errors.Is(err, ErrDecodeResponse))
}
