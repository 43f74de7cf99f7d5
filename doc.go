// Package apibridge provides a Go client SDK for API Bridge, a service that
// turns websites into structured APIs.
//
// Every call sends exactly one HTTP request to the server's /api/v1 routes
// and returns either the decoded model or a single error. Nothing is retried
// or cached.
//
// Basic usage:
//
//	client, err := apibridge.New(
//	    apibridge.WithBaseURL("https://bridge.example.com"),
//	    apibridge.WithAPIKey(os.Getenv("BRIDGE_API_KEY")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	bridges, err := client.Bridges.List(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	task, err := client.Bridges.Run(ctx, bridges[0].ID.String())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	status, err := client.Bridges.WaitForTask(ctx, task.TaskID)
//
// Errors returned by the server are *APIError values whose Error method
// returns the server's message. Use errors.Is with the sentinel errors to
// branch on the kind of failure:
//
//	if errors.Is(err, apibridge.ErrBridgeNotFound) {
//	    // Handle missing bridge
//	}
package apibridge
