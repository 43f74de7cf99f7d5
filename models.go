package apibridge

import "github.com/apibridge/client-go/internal/api"

// Document is an opaque JSON object such as an extraction schema or an
// analyze proposal.
type Document = api.Document

// Time is a server timestamp. Timezone-naive values are read as UTC.
type Time = api.Time

// StatusResponse is the acknowledgement returned by deletes.
type StatusResponse = api.StatusResponse

// Bridge is a saved extraction configuration for one target page.
type Bridge = api.Bridge

// BridgeInput is the body for creating or replacing a bridge.
type BridgeInput = api.BridgeInput

// Task is the handle returned when an extraction is queued.
type Task = api.Task

// TaskStatus is the state of a queued extraction.
type TaskStatus = api.TaskStatus

// UsageLog is one extraction or API usage record.
type UsageLog = api.UsageLog

// Stats holds the dashboard counters.
type Stats = api.Stats

// SecurityPulse holds security telemetry.
type SecurityPulse = api.SecurityPulse

// SecurityEvent is the latest event inside a SecurityPulse.
type SecurityEvent = api.SecurityEvent

// ScanReport is the result of a secret scan.
type ScanReport = api.ScanReport

// ScanFinding is one secret detected by a scan.
type ScanFinding = api.ScanFinding

// APIKey is a listed API key. The secret itself is never returned.
type APIKey = api.APIKey

// CreatedKey is a newly created API key. Key is only shown once.
type CreatedKey = api.CreatedKey

// Webhook is a registered webhook.
type Webhook = api.Webhook

// WebhookInput is the body for creating a webhook.
type WebhookInput = api.WebhookInput

// WebhookLog is one webhook delivery attempt.
type WebhookLog = api.WebhookLog

// Handshake is a permission request to a site owner.
type Handshake = api.Handshake

// HandshakeInput is the body for initiating a handshake.
type HandshakeInput = api.HandshakeInput

// Health is the server health report.
type Health = api.Health

// LLMProvider is a configured LLM provider.
type LLMProvider = api.LLMProvider

// LLMProviderInput is the body for adding an LLM provider.
type LLMProviderInput = api.LLMProviderInput

// ProviderTestRequest is the body for testing provider credentials.
type ProviderTestRequest = api.ProviderTestRequest

// ProviderTestResult is the outcome of a provider credential test.
type ProviderTestResult = api.ProviderTestResult

// Task statuses reported by the task queue.
const (
	TaskPending = "PENDING"
	TaskStarted = "STARTED"
	TaskSuccess = "SUCCESS"
	TaskFailure = "FAILURE"
	TaskRetry   = "RETRY"
	TaskRevoked = "REVOKED"
)

// Handshake methods and statuses.
const (
	HandshakeEmail   = "EMAIL"
	HandshakeTwitter = "TWITTER"
	HandshakeGitHub  = "GITHUB"

	HandshakePendingApproval = "PENDING_APPROVAL"
)

// Supported LLM provider names.
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderGoogle     = "google"
	ProviderMistral    = "mistral"
	ProviderCohere     = "cohere"
	ProviderGroq       = "groq"
	ProviderOpenRouter = "openrouter"
	ProviderOllama     = "ollama"
)

// Providers lists every supported LLM provider name.
var Providers = []string{
	ProviderOpenAI,
	ProviderAnthropic,
	ProviderGoogle,
	ProviderMistral,
	ProviderCohere,
	ProviderGroq,
	ProviderOpenRouter,
	ProviderOllama,
}

// IsTerminal reports whether a task status will not change anymore.
func IsTerminal(status string) bool {
	switch status {
	case TaskSuccess, TaskFailure, TaskRevoked:
		return true
	}
	return false
}
