// Package api provides the HTTP transport for the API Bridge server. It
// builds versioned URLs, attaches authentication and tracing headers, and
// normalizes every failure into one of the typed errors in apierrors.
//
// # Client Creation
//
// The package provides two ways to create a client:
//
//   - [NewClient]: Struct-based configuration for explicit, type-safe setup.
//   - [New]: Functional options pattern, defaulting to [DefaultBaseURL].
//
// The base URL names the host only. Every endpoint path is resolved under
// [APIPrefix]; a path that already carries the prefix is not prefixed again.
//
// # Request Contract
//
// Each call sends exactly one request. There is no retry, backoff or caching.
// An optional rate limiter can delay a request before it is sent, never
// re-send it. Headers are layered: client defaults, then [Config.Headers],
// then per-request [WithHeader] values, the last one winning.
//
// # Error Handling
//
// A non-2xx response becomes an [apierrors.APIError] whose message is the
// server's "detail" string, a flattened FastAPI validation list, or the HTTP
// reason phrase. Transport failures become [apierrors.NetworkError] and
// unparseable success bodies become [apierrors.DecodeError].
//
//	if errors.Is(err, apierrors.ErrBridgeNotFound) {
//	    // Handle missing bridge
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
