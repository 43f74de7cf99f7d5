package apibridge

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	method string
	path   string
	body   map[string]any
}

func capturingClient(t *testing.T, status int, response string) (*Client, *capture) {
	t.Helper()
	c := &capture{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		c.method = r.Method
		c.path = r.URL.EscapedPath()
		_ = json.NewDecoder(r.Body).Decode(&c.body)
		w.WriteHeader(status)
		if status != http.StatusNoContent {
			_, _ = w.Write([]byte(response))
		}
	})
	return client, c
}

func TestKeys_Create(t *testing.T) {
	t.Parallel()

	client, got := capturingClient(t, http.StatusOK,
		`{"id":"4c2d1f0e-8b8b-4a3e-9d51-7a3c35f5f7a2","name":"foo","key":"ab_live_123","warning":"Store this key securely."}`)

	key, err := client.Keys.Create(context.Background(), "foo")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/v1/keys", got.path)
	assert.Equal(t, map[string]any{"name": "foo"}, got.body)
	assert.Equal(t, "foo", key.Name)
	assert.Equal(t, "ab_live_123", key.Key)
}

func TestServices_MethodAndPath(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tests := []struct {
		name       string
		response   string
		call       func(c *Client) error
		wantMethod string
		wantPath   string
	}{
		{"bridges list", `[]`, func(c *Client) error { _, err := c.Bridges.List(ctx); return err }, http.MethodGet, "/api/v1/bridges"},
		{"bridges get", `{}`, func(c *Client) error { _, err := c.Bridges.Get(ctx, "b1"); return err }, http.MethodGet, "/api/v1/bridges/b1"},
		{"bridges create", `{}`, func(c *Client) error { _, err := c.Bridges.Create(ctx, &BridgeInput{Name: "n"}); return err }, http.MethodPost, "/api/v1/bridges"},
		{"bridges update", `{}`, func(c *Client) error { _, err := c.Bridges.Update(ctx, "b1", &BridgeInput{Name: "n"}); return err }, http.MethodPut, "/api/v1/bridges/b1"},
		{"bridges delete", `{"status":"success"}`, func(c *Client) error { _, err := c.Bridges.Delete(ctx, "b1"); return err }, http.MethodDelete, "/api/v1/bridges/b1"},
		{"bridges run", `{"task_id":"t1","status":"pending"}`, func(c *Client) error { _, err := c.Bridges.Run(ctx, "b1"); return err }, http.MethodPost, "/api/v1/bridges/b1/extract"},
		{"bridges task", `{"task_id":"t1","status":"PENDING"}`, func(c *Client) error { _, err := c.Bridges.Task(ctx, "t1"); return err }, http.MethodGet, "/api/v1/bridges/tasks/t1"},
		{"bridges logs", `[]`, func(c *Client) error { _, err := c.Bridges.Logs(ctx, "b1"); return err }, http.MethodGet, "/api/v1/bridges/b1/logs"},
		{"bridges all logs", `[]`, func(c *Client) error { _, err := c.Bridges.AllLogs(ctx); return err }, http.MethodGet, "/api/v1/bridges/logs"},
		{"bridges stats", `{}`, func(c *Client) error { _, err := c.Bridges.Stats(ctx); return err }, http.MethodGet, "/api/v1/bridges/stats"},
		{"bridges pulse", `{}`, func(c *Client) error { _, err := c.Bridges.SecurityPulse(ctx); return err }, http.MethodGet, "/api/v1/bridges/security/pulse"},
		{"bridges scan", `{"findings":[]}`, func(c *Client) error { _, err := c.Bridges.Scan(ctx); return err }, http.MethodGet, "/api/v1/bridges/scan"},
		{"bridges deep scan", `{"findings":[]}`, func(c *Client) error { _, err := c.Bridges.ScanDeep(ctx); return err }, http.MethodPost, "/api/v1/bridges/scan/deep"},
		{"bridges analyze", `{}`, func(c *Client) error { _, err := c.Bridges.Analyze(ctx, "https://example.com"); return err }, http.MethodPost, "/api/v1/bridges/analyze"},
		{"keys list", `[]`, func(c *Client) error { _, err := c.Keys.List(ctx); return err }, http.MethodGet, "/api/v1/keys"},
		{"webhooks list", `[]`, func(c *Client) error { _, err := c.Webhooks.List(ctx); return err }, http.MethodGet, "/api/v1/webhooks"},
		{"webhooks create", `{}`, func(c *Client) error { _, err := c.Webhooks.Create(ctx, "https://h.example.com"); return err }, http.MethodPost, "/api/v1/webhooks"},
		{"webhooks delete", `{"status":"success"}`, func(c *Client) error { _, err := c.Webhooks.Delete(ctx, "w1"); return err }, http.MethodDelete, "/api/v1/webhooks/w1"},
		{"webhooks logs", `[]`, func(c *Client) error { _, err := c.Webhooks.Logs(ctx, "w1"); return err }, http.MethodGet, "/api/v1/webhooks/w1/logs"},
		{"handshake initiate", `{}`, func(c *Client) error { _, err := c.Handshake.Initiate(ctx, &HandshakeInput{}); return err }, http.MethodPost, "/api/v1/handshake/initiate"},
		{"handshake approve", `{}`, func(c *Client) error { _, err := c.Handshake.Approve(ctx, "h1"); return err }, http.MethodPost, "/api/v1/handshake/approve/h1"},
		{"system health", `{"status":"healthy"}`, func(c *Client) error { _, err := c.System.Health(ctx); return err }, http.MethodGet, "/api/v1/health"},
		{"llm providers", `[]`, func(c *Client) error { _, err := c.LLM.Providers(ctx); return err }, http.MethodGet, "/api/v1/llm/providers"},
		{"llm create", `{}`, func(c *Client) error { _, err := c.LLM.CreateProvider(ctx, &LLMProviderInput{}); return err }, http.MethodPost, "/api/v1/llm/providers"},
		{"llm test", `{"status":"failed","error":"401"}`, func(c *Client) error { _, err := c.LLM.TestProvider(ctx, &ProviderTestRequest{}); return err }, http.MethodPost, "/api/v1/llm/providers/test"},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, got := capturingClient(t, http.StatusOK, tt.response)

			require.NoError(t, tt.call(client))
			assert.Equal(t, tt.wantMethod, got.method)
			assert.Equal(t, tt.wantPath, got.path)
		})
	}
}

func TestLLM_DeleteProviderNoContent(t *testing.T) {
	t.Parallel()

	client, got := capturingClient(t, http.StatusNoContent, "")

	require.NoError(t, client.LLM.DeleteProvider(context.Background(), "p1"))
	assert.Equal(t, http.MethodDelete, got.method)
	assert.Equal(t, "/api/v1/llm/providers/p1", got.path)
}

func TestWebhooks_CreateOptions(t *testing.T) {
	t.Parallel()

	client, got := capturingClient(t, http.StatusOK, `{"url":"https://hooks.example.com/x","name":"alerts","is_active":false,"events":["extraction.failed"]}`)

	hook, err := client.Webhooks.Create(context.Background(), "https://hooks.example.com/x",
		WithWebhookName("alerts"),
		WithWebhookEvents(WebhookEventExtractionFailed),
		WithWebhookSecret("s3cret"),
		WithWebhookInactive(),
	)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"url":       "https://hooks.example.com/x",
		"name":      "alerts",
		"is_active": false,
		"events":    []any{"extraction.failed"},
		"secret":    "s3cret",
	}, got.body)
	assert.Equal(t, "alerts", hook.Name)
	assert.False(t, hook.IsActive)
}

func TestServices_NotFoundIsResourceTyped(t *testing.T) {
	t.Parallel()

	client, _ := capturingClient(t, http.StatusNotFound, `{"detail":"Bridge not found"}`)

	_, err := client.Bridges.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "Bridge not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrBridgeNotFound)
	assert.NotErrorIs(t, err, ErrWebhookNotFound)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ResourceBridge, apiErr.ResourceType)
}
