package api

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Document is an opaque JSON object.
type Document map[string]any

// StatusResponse is the {"status": "..."} acknowledgement returned by deletes.
type StatusResponse struct {
	Status string `json:"status"`
}

// Bridge represents a bridge from the API.
type Bridge struct {
	ID                       uuid.UUID         `json:"id"`
	Name                     string            `json:"name"`
	Domain                   string            `json:"domain"`
	TargetURL                string            `json:"target_url"`
	ExtractionSchema         Document          `json:"extraction_schema"`
	Selectors                map[string]string `json:"selectors,omitempty"`
	AuthConfig               Document          `json:"auth_config,omitempty"`
	InteractionScript        []Document        `json:"interaction_script,omitempty"`
	Status                   string            `json:"status"`
	CreatedAt                Time              `json:"created_at"`
	UpdatedAt                Time              `json:"updated_at"`
	LastSuccessfulExtraction *Time             `json:"last_successful_extraction,omitempty"`
	LastError                *string           `json:"last_error,omitempty"`
}

// BridgeInput is the request body for creating or replacing a bridge.
// AuthConfig and InteractionScript are always sent: an empty object or
// array clears the stored value, nil is sent as null.
type BridgeInput struct {
	Name              string            `json:"name"`
	Domain            string            `json:"domain"`
	TargetURL         string            `json:"target_url"`
	ExtractionSchema  Document          `json:"extraction_schema"`
	Selectors         map[string]string `json:"selectors,omitempty"`
	AuthConfig        Document          `json:"auth_config"`
	InteractionScript []Document        `json:"interaction_script"`
}

// AnalyzeRequest is the request body for POST /bridges/analyze.
type AnalyzeRequest struct {
	URL string `json:"url"`
}

// Task is the response from queueing an extraction.
type Task struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// TaskStatus represents the /bridges/tasks/{id} response.
type TaskStatus struct {
	TaskID string          `json:"task_id"`
	Status string          `json:"status"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// UsageLog is one extraction/API usage record.
type UsageLog struct {
	ID            uuid.UUID  `json:"id"`
	BridgeID      *uuid.UUID `json:"bridge_id,omitempty"`
	BridgeName    string     `json:"bridgeName,omitempty"`
	Method        string     `json:"method"`
	Path          string     `json:"path,omitempty"`
	StatusCode    int        `json:"status_code"`
	LatencyMS     *int       `json:"latency_ms,omitempty"`
	Cached        bool       `json:"cached,omitempty"`
	DataSizeBytes int64      `json:"data_size_bytes,omitempty"`
	CreatedAt     Time       `json:"created_at"`
}

// Stats represents the /bridges/stats dashboard counters.
type Stats struct {
	ActiveBridges    int    `json:"active_bridges"`
	TotalExtractions int    `json:"total_extractions"`
	APIUsagePercent  int    `json:"api_usage_percent"`
	SuccessRate      string `json:"success_rate"`
	AvgLatency       string `json:"avg_latency"`
	TotalDataVolume  string `json:"total_data_volume"`
}

// SecurityPulse represents the /bridges/security/pulse telemetry.
type SecurityPulse struct {
	AuthHealth     string         `json:"auth_health"`
	TokenLeakage   string         `json:"token_leakage"`
	AuditLog       string         `json:"audit_log"`
	EncryptionMode string         `json:"encryption_mode"`
	LastEvent      *SecurityEvent `json:"last_event,omitempty"`
}

// SecurityEvent is the most recent security event in a SecurityPulse.
type SecurityEvent struct {
	Label   string `json:"label"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

// ScanFinding is a single secret detected by a scan.
type ScanFinding struct {
	Type             string  `json:"type"`
	Match            string  `json:"match"`
	File             *string `json:"file,omitempty"`
	Source           string  `json:"source,omitempty"`
	ValidationStatus string  `json:"validation_status,omitempty"`
	Start            int     `json:"start"`
	End              int     `json:"end"`
}

// ScanReport represents a /bridges/scan or /bridges/scan/deep response.
type ScanReport struct {
	TotalFindings int           `json:"total_findings"`
	Findings      []ScanFinding `json:"findings"`
	ScannedAt     Time          `json:"scanned_at"`
}

// APIKey is an API key as listed by the server. The secret is never returned.
type APIKey struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Prefix     string    `json:"prefix"`
	LastFour   string    `json:"last_four"`
	CreatedAt  Time      `json:"created_at"`
	LastUsedAt *Time     `json:"last_used_at,omitempty"`
}

// CreateKeyRequest is the request body for POST /keys.
type CreateKeyRequest struct {
	Name string `json:"name"`
}

// CreatedKey is the response from POST /keys. Key is only ever shown once.
type CreatedKey struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Key     string    `json:"key"`
	Warning string    `json:"warning,omitempty"`
}

// HandshakeInput is the request body for POST /handshake/initiate.
type HandshakeInput struct {
	Domain    string `json:"domain"`
	Method    string `json:"method"`
	Recipient string `json:"recipient"`
	Context   string `json:"context,omitempty"`
}

// Handshake represents a permission request sent to a site owner.
type Handshake struct {
	ID          uuid.UUID `json:"id"`
	Status      string    `json:"status"`
	MessageBody string    `json:"message_body"`
	Recipient   string    `json:"recipient"`
}

// Health represents the /health response.
type Health struct {
	Status     string `json:"status"`
	Database   string `json:"database,omitempty"`
	Redis      string `json:"redis,omitempty"`
	Playwright string `json:"playwright,omitempty"`
}
