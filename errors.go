package apibridge

import (
	"errors"
	"fmt"

	"github.com/apibridge/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrUnauthorized is returned when the API key is missing, invalid, revoked or expired.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrForbidden is returned when the API key may not access the resource.
	ErrForbidden = apierrors.ErrForbidden

	// ErrNotFound is returned for any 404 response.
	ErrNotFound = apierrors.ErrNotFound

	// ErrBridgeNotFound is returned when a bridge is not found.
	ErrBridgeNotFound = apierrors.ErrBridgeNotFound

	// ErrWebhookNotFound is returned when a webhook is not found.
	ErrWebhookNotFound = apierrors.ErrWebhookNotFound

	// ErrHandshakeNotFound is returned when a handshake request is not found.
	ErrHandshakeNotFound = apierrors.ErrHandshakeNotFound

	// ErrProviderNotFound is returned when an LLM provider configuration is not found.
	ErrProviderNotFound = apierrors.ErrProviderNotFound

	// ErrTaskNotFound is returned when an extraction task is not found.
	ErrTaskNotFound = apierrors.ErrTaskNotFound

	// ErrBadRequest is returned for a 400 response.
	ErrBadRequest = apierrors.ErrBadRequest

	// ErrConflict is returned for a 409 response.
	ErrConflict = apierrors.ErrConflict

	// ErrValidation is returned when the server rejects the request body (422).
	ErrValidation = apierrors.ErrValidation

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrServer is returned for any 5xx response.
	ErrServer = apierrors.ErrServer

	// ErrEncodeBody is returned when a request body cannot be encoded. No
	// request is sent.
	ErrEncodeBody = apierrors.ErrEncodeBody

	// ErrDecodeResponse is returned when a successful response is not the
	// expected JSON.
	ErrDecodeResponse = apierrors.ErrDecodeResponse

	// ErrResponseTooLarge is returned when a response exceeds WithMaxResponseSize.
	ErrResponseTooLarge = apierrors.ErrResponseTooLarge

	// ErrUnsupportedMethod is returned by Request for methods other than
	// GET, POST, PUT and DELETE.
	ErrUnsupportedMethod = apierrors.ErrUnsupportedMethod

	// ErrTaskFailed is matched by *TaskFailedError.
	ErrTaskFailed = errors.New("extraction task failed")

	// ErrTaskRevoked is matched by *TaskFailedError when the task was revoked.
	ErrTaskRevoked = errors.New("extraction task revoked")
)

// BridgeError is implemented by all SDK errors.
type BridgeError interface {
	error
	BridgeError() // marker method
}

// APIError represents a non-2xx response from the API. Error returns the
// server's message verbatim.
type APIError = apierrors.APIError

// NetworkError represents a failure to reach the server or read its
// response, including cancellation and deadline expiry.
type NetworkError = apierrors.NetworkError

// DecodeError represents a successful response whose body could not be decoded.
type DecodeError = apierrors.DecodeError

// EncodeError represents a request body that could not be encoded.
type EncodeError = apierrors.EncodeError

// RequestError represents a request the client refused or abandoned on its
// own: an unsupported method or a response over WithMaxResponseSize.
type RequestError = apierrors.RequestError

// ResourceType indicates which type of resource an APIError relates to.
type ResourceType = apierrors.ResourceType

// Resource types carried by APIError.
const (
	ResourceUnknown   = apierrors.ResourceUnknown
	ResourceBridge    = apierrors.ResourceBridge
	ResourceWebhook   = apierrors.ResourceWebhook
	ResourceHandshake = apierrors.ResourceHandshake
	ResourceProvider  = apierrors.ResourceProvider
	ResourceTask      = apierrors.ResourceTask
	ResourceKey       = apierrors.ResourceKey
)

// TaskFailedError is returned by WaitForTask when a task ends in FAILURE or
// REVOKED.
type TaskFailedError struct {
	TaskID  string
	Status  string
	Message string
}

func (e *TaskFailedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("task %s %s: %s", e.TaskID, e.Status, e.Message)
	}
	return fmt.Sprintf("task %s %s", e.TaskID, e.Status)
}

// Is implements errors.Is for sentinel error matching.
func (e *TaskFailedError) Is(target error) bool {
	switch target {
	case ErrTaskFailed:
		return true
	case ErrTaskRevoked:
		return e.Status == TaskRevoked
	}
	return false
}

// BridgeError implements the BridgeError interface.
func (e *TaskFailedError) BridgeError() {}
