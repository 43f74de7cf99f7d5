package api

import "github.com/google/uuid"

// LLMProvider is a configured LLM provider. The provider API key is never returned.
type LLMProvider struct {
	ID                  uuid.UUID `json:"id"`
	Provider            string    `json:"provider"`
	Model               string    `json:"model"`
	Priority            int       `json:"priority"`
	IsActive            bool      `json:"is_active"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	LastUsedAt          *Time     `json:"last_used_at,omitempty"`
	LastError           *string   `json:"last_error,omitempty"`
}

// LLMProviderInput is the request body for POST /llm/providers.
type LLMProviderInput struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
	Model    string `json:"model"`
	Priority int    `json:"priority"`
}

// ProviderTestRequest is the request body for POST /llm/providers/test.
type ProviderTestRequest struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	APIKey   string `json:"api_key"`
}

// ProviderTestResult is the outcome of a provider test. A failed test is
// still a 200 response with Status "failed".
type ProviderTestResult struct {
	Status    string `json:"status"`
	LatencyMS int    `json:"latency_ms,omitempty"`
	Response  string `json:"response,omitempty"`
	Error     string `json:"error,omitempty"`
}
