package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/apibridge/client-go/internal/apierrors"
)

// ListBridges returns all bridges.
func (c *Client) ListBridges(ctx context.Context) ([]Bridge, error) {
	var result []Bridge
	if err := c.Do(ctx, http.MethodGet, "/bridges", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetBridge returns a specific bridge by ID.
func (c *Client) GetBridge(ctx context.Context, bridgeID string) (*Bridge, error) {
	var result Bridge
	path := fmt.Sprintf("/bridges/%s", url.PathEscape(bridgeID))
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceBridge)
	}
	return &result, nil
}

// CreateBridge creates a new bridge.
func (c *Client) CreateBridge(ctx context.Context, req *BridgeInput) (*Bridge, error) {
	var result Bridge
	if err := c.Do(ctx, http.MethodPost, "/bridges", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateBridge replaces a bridge.
func (c *Client) UpdateBridge(ctx context.Context, bridgeID string, req *BridgeInput) (*Bridge, error) {
	var result Bridge
	path := fmt.Sprintf("/bridges/%s", url.PathEscape(bridgeID))
	if err := c.Do(ctx, http.MethodPut, path, req, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceBridge)
	}
	return &result, nil
}

// DeleteBridge deletes a bridge.
func (c *Client) DeleteBridge(ctx context.Context, bridgeID string) (*StatusResponse, error) {
	var result StatusResponse
	path := fmt.Sprintf("/bridges/%s", url.PathEscape(bridgeID))
	if err := c.Do(ctx, http.MethodDelete, path, nil, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceBridge)
	}
	return &result, nil
}

// AnalyzeURL asks the server to propose an extraction setup for a URL.
func (c *Client) AnalyzeURL(ctx context.Context, targetURL string) (Document, error) {
	var result Document
	if err := c.Do(ctx, http.MethodPost, "/bridges/analyze", &AnalyzeRequest{URL: targetURL}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// RunExtraction queues an extraction run for a bridge.
func (c *Client) RunExtraction(ctx context.Context, bridgeID string) (*Task, error) {
	var result Task
	path := fmt.Sprintf("/bridges/%s/extract", url.PathEscape(bridgeID))
	if err := c.Do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceBridge)
	}
	return &result, nil
}

// GetTask returns the status of a queued extraction.
func (c *Client) GetTask(ctx context.Context, taskID string) (*TaskStatus, error) {
	var result TaskStatus
	path := fmt.Sprintf("/bridges/tasks/%s", url.PathEscape(taskID))
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceTask)
	}
	return &result, nil
}

// ListBridgeLogs returns the most recent usage logs of one bridge.
func (c *Client) ListBridgeLogs(ctx context.Context, bridgeID string) ([]UsageLog, error) {
	var result []UsageLog
	path := fmt.Sprintf("/bridges/%s/logs", url.PathEscape(bridgeID))
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, apierrors.WithResourceType(err, apierrors.ResourceBridge)
	}
	return result, nil
}

// ListAllLogs returns the most recent usage logs across all bridges.
func (c *Client) ListAllLogs(ctx context.Context) ([]UsageLog, error) {
	var result []UsageLog
	if err := c.Do(ctx, http.MethodGet, "/bridges/logs", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetStats returns dashboard counters.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var result Stats
	if err := c.Do(ctx, http.MethodGet, "/bridges/stats", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetSecurityPulse returns security telemetry.
func (c *Client) GetSecurityPulse(ctx context.Context) (*SecurityPulse, error) {
	var result SecurityPulse
	if err := c.Do(ctx, http.MethodGet, "/bridges/security/pulse", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Scan runs a file-system secret scan.
func (c *Client) Scan(ctx context.Context) (*ScanReport, error) {
	var result ScanReport
	if err := c.Do(ctx, http.MethodGet, "/bridges/scan", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ScanDeep runs a secret scan including git history and key validation.
func (c *Client) ScanDeep(ctx context.Context) (*ScanReport, error) {
	var result ScanReport
	if err := c.Do(ctx, http.MethodPost, "/bridges/scan/deep", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
