package apibridge

import (
	"context"

	"github.com/apibridge/client-go/internal/api"
)

// BridgesService groups the bridge endpoints.
type BridgesService struct {
	api *api.Client
}

// List returns all bridges.
func (s *BridgesService) List(ctx context.Context) ([]Bridge, error) {
	return s.api.ListBridges(ctx)
}

// Get returns one bridge. A missing bridge matches ErrBridgeNotFound.
func (s *BridgesService) Get(ctx context.Context, id string) (*Bridge, error) {
	return s.api.GetBridge(ctx, id)
}

// Create creates a bridge.
func (s *BridgesService) Create(ctx context.Context, in *BridgeInput) (*Bridge, error) {
	return s.api.CreateBridge(ctx, in)
}

// Update replaces a bridge. The server overwrites every field, so in must be
// the complete bridge.
func (s *BridgesService) Update(ctx context.Context, id string, in *BridgeInput) (*Bridge, error) {
	return s.api.UpdateBridge(ctx, id, in)
}

// Delete deletes a bridge.
func (s *BridgesService) Delete(ctx context.Context, id string) (*StatusResponse, error) {
	return s.api.DeleteBridge(ctx, id)
}

// Run queues an extraction for a bridge and returns its task handle.
// Use WaitForTask to block until it finishes.
func (s *BridgesService) Run(ctx context.Context, id string) (*Task, error) {
	return s.api.RunExtraction(ctx, id)
}

// Task returns the status of a queued extraction.
func (s *BridgesService) Task(ctx context.Context, taskID string) (*TaskStatus, error) {
	return s.api.GetTask(ctx, taskID)
}

// Logs returns recent usage logs of one bridge.
func (s *BridgesService) Logs(ctx context.Context, id string) ([]UsageLog, error) {
	return s.api.ListBridgeLogs(ctx, id)
}

// AllLogs returns recent usage logs across all bridges.
func (s *BridgesService) AllLogs(ctx context.Context) ([]UsageLog, error) {
	return s.api.ListAllLogs(ctx)
}

// Stats returns the dashboard counters.
func (s *BridgesService) Stats(ctx context.Context) (*Stats, error) {
	return s.api.GetStats(ctx)
}

// SecurityPulse returns security telemetry.
func (s *BridgesService) SecurityPulse(ctx context.Context) (*SecurityPulse, error) {
	return s.api.GetSecurityPulse(ctx)
}

// Scan runs a secret scan on the server's workspace.
func (s *BridgesService) Scan(ctx context.Context) (*ScanReport, error) {
	return s.api.Scan(ctx)
}

// ScanDeep runs a secret scan including git history.
func (s *BridgesService) ScanDeep(ctx context.Context) (*ScanReport, error) {
	return s.api.ScanDeep(ctx)
}

// Analyze asks the server to propose a name, extraction schema and selectors
// for a page.
func (s *BridgesService) Analyze(ctx context.Context, targetURL string) (Document, error) {
	return s.api.AnalyzeURL(ctx, targetURL)
}
