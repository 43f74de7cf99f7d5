package cli

import (
	"context"
	"errors"
	"text/tabwriter"

	apibridge "github.com/apibridge/client-go"
	"github.com/spf13/cobra"
)

// errUnhealthy is returned by health when a dependency is not ok.
var errUnhealthy = errors.New("server is not healthy")

func (a *app) healthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server and its dependencies are reachable",
		Args:  cobra.NoArgs,
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, _ []string) error {
			h, err := c.System.Health(ctx)
			if err != nil {
				return err
			}
			if err := a.render(h, func(w *tabwriter.Writer) { healthTable(w, h) }); err != nil {
				return err
			}
			if !healthy(h) {
				return errUnhealthy
			}
			return nil
		}),
	}
}

// healthy reports the server's own verdict. A missing browser runtime is
// shown but does not make the server unhealthy.
func healthy(h *apibridge.Health) bool {
	return h.Status == "healthy"
}

func healthTable(w *tabwriter.Writer, h *apibridge.Health) {
	row(w, "Status:", h.Status)
	row(w, "Database:", orDash(h.Database))
	row(w, "Redis:", orDash(h.Redis))
	row(w, "Playwright:", orDash(h.Playwright))
}

// overviewJSON is the JSON form of an Overview: each section is either its
// value or an error message.
type overviewJSON struct {
	Stats         *apibridge.Stats         `json:"stats,omitempty"`
	SecurityPulse *apibridge.SecurityPulse `json:"security_pulse,omitempty"`
	Health        *apibridge.Health        `json:"health,omitempty"`
	RecentLogs    []apibridge.UsageLog     `json:"recent_logs,omitempty"`
	Errors        map[string]string        `json:"errors,omitempty"`
}

const overviewRecentLogs = 10

func (a *app) overviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show the dashboard: stats, security pulse, health and recent logs",
		Args:  cobra.NoArgs,
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, _ []string) error {
			o := c.Overview(ctx)

			logs := o.Logs
			if len(logs) > overviewRecentLogs {
				logs = logs[:overviewRecentLogs]
			}
			view := overviewJSON{
				Stats:         o.Stats,
				SecurityPulse: o.SecurityPulse,
				Health:        o.Health,
				RecentLogs:    logs,
				Errors:        map[string]string{},
			}
			for name, err := range map[string]error{
				"stats":          o.StatsErr,
				"security_pulse": o.SecurityErr,
				"health":         o.HealthErr,
				"recent_logs":    o.LogsErr,
			} {
				if err != nil {
					view.Errors[name] = err.Error()
					a.logger.Warn().Err(err).Str("section", name).Msg("overview section failed")
				}
			}

			err := a.render(view, func(w *tabwriter.Writer) {
				section := func(title string, err error, body func()) {
					row(w, "== "+title)
					if err != nil {
						row(w, "unavailable:", err.Error())
					} else {
						body()
					}
					row(w)
				}
				section("Stats", o.StatsErr, func() { statsTable(w, o.Stats) })
				section("Security", o.SecurityErr, func() { pulseTable(w, o.SecurityPulse) })
				section("Health", o.HealthErr, func() { healthTable(w, o.Health) })
				section("Recent activity", o.LogsErr, func() { logsTable(w, logs) })
			})
			if err != nil {
				return err
			}
			// Only a total outage is a failure.
			if o.StatsErr != nil && o.SecurityErr != nil && o.HealthErr != nil && o.LogsErr != nil {
				return o.Err()
			}
			return nil
		}),
	}
}
