//go:build integration

package integration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"

	apibridge "github.com/apibridge/client-go"
	"github.com/apibridge/client-go/forms"
)

var (
	apiKey  string
	baseURL string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("BRIDGE_API_KEY")
	baseURL = os.Getenv("BRIDGE_API_URL")

	if baseURL == "" {
		os.Stderr.WriteString("Skipping integration tests: BRIDGE_API_URL not set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running integration tests...\n")
	os.Stderr.WriteString("API URL: " + baseURL + "\n")

	os.Exit(m.Run())
}

func newClient(t *testing.T) *apibridge.Client {
	t.Helper()

	client, err := apibridge.New(
		apibridge.WithBaseURL(baseURL),
		apibridge.WithAPIKey(apiKey),
		apibridge.WithTimeout(30*time.Second),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestIntegration_Health(t *testing.T) {
	client := newClient(t)

	health, err := client.System.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	t.Logf("Health: status=%s database=%s redis=%s playwright=%s",
		health.Status, health.Database, health.Redis, health.Playwright)

	if health.Status == "" {
		t.Error("Status is empty")
	}
}

func TestIntegration_BridgeLifecycle(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	in, err := forms.NewBridge{
		Name:      fmt.Sprintf("integration-%d", time.Now().UnixNano()),
		TargetURL: "https://example.com",
	}.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	bridge, err := client.Bridges.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	id := bridge.ID.String()
	t.Logf("Created bridge: %s", id)

	t.Cleanup(func() {
		if _, err := client.Bridges.Delete(context.Background(), id); err != nil && !errors.Is(err, apibridge.ErrNotFound) {
			t.Errorf("Delete() error = %v", err)
		}
	})

	if bridge.Domain != "example.com" {
		t.Errorf("Domain = %q, want example.com", bridge.Domain)
	}

	got, err := client.Bridges.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != in.Name {
		t.Errorf("Name = %q, want %q", got.Name, in.Name)
	}

	update, err := forms.BridgeSettings{
		InteractionScript: `[{"action": "wait", "ms": 100}]`,
	}.Apply(got)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	updated, err := client.Bridges.Update(ctx, id, update)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if len(updated.InteractionScript) != 1 {
		t.Errorf("InteractionScript has %d steps, want 1", len(updated.InteractionScript))
	}
	if len(updated.ExtractionSchema) == 0 {
		t.Error("ExtractionSchema was dropped by update")
	}
}

func TestIntegration_RunAndWait(t *testing.T) {
	if os.Getenv("BRIDGE_RUN_EXTRACTION") == "" {
		t.Skip("BRIDGE_RUN_EXTRACTION not set")
	}

	client := newClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	in, err := forms.NewBridge{Name: "integration-run", TargetURL: "https://example.com"}.Build()
	if err != nil {
		t.Fatal(err)
	}
	bridge, err := client.Bridges.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	t.Cleanup(func() { _, _ = client.Bridges.Delete(context.Background(), bridge.ID.String()) })

	task, err := client.Bridges.Run(ctx, bridge.ID.String())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	status, err := client.Bridges.WaitForTask(ctx, task.TaskID, apibridge.WithPollInterval(2*time.Second))
	var failed *apibridge.TaskFailedError
	if errors.As(err, &failed) {
		t.Logf("Extraction failed on the server: %v", failed)
		return
	}
	if err != nil {
		t.Fatalf("WaitForTask() error = %v", err)
	}
	t.Logf("Task %s finished: %s", status.TaskID, status.Status)
}

func TestIntegration_Overview(t *testing.T) {
	client := newClient(t)

	o := client.Overview(context.Background())
	if o.HealthErr != nil {
		t.Fatalf("health section failed: %v", o.HealthErr)
	}
	if o.Stats == nil && o.StatsErr == nil {
		t.Error("stats section has neither value nor error")
	}
}

func TestIntegration_NotFound(t *testing.T) {
	client := newClient(t)

	_, err := client.Bridges.Get(context.Background(), "00000000-0000-0000-0000-000000000000")
	if !errors.Is(err, apibridge.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
	var apiErr *apibridge.APIError
	if errors.As(err, &apiErr) && apiErr.ResourceType != apibridge.ResourceBridge {
		t.Errorf("ResourceType = %v, want %v", apiErr.ResourceType, apibridge.ResourceBridge)
	}
}
