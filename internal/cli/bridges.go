package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	apibridge "github.com/apibridge/client-go"
	"github.com/apibridge/client-go/forms"
	"github.com/spf13/cobra"
)

// errWaitTimedOut is returned when a task is still running at --wait-timeout.
var errWaitTimedOut = errors.New("gave up waiting for task")

func (a *app) bridgesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bridges",
		Aliases: []string{"bridge", "b"},
		Short:   "Manage bridges and extraction tasks",
	}
	cmd.AddCommand(
		a.bridgesListCommand(),
		a.bridgesGetCommand(),
		a.bridgesCreateCommand(),
		a.bridgesUpdateCommand(),
		a.bridgesDeleteCommand(),
		a.bridgesRunCommand(),
		a.bridgesWaitCommand(),
		a.bridgesTaskCommand(),
		a.bridgesLogsCommand(),
		a.bridgesStatsCommand(),
		a.bridgesPulseCommand(),
		a.bridgesScanCommand(),
		a.bridgesAnalyzeCommand(),
	)
	return cmd
}

func (a *app) bridgesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bridges",
		Args:  cobra.NoArgs,
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, _ []string) error {
			bridges, err := c.Bridges.List(ctx)
			if err != nil {
				return err
			}
			return a.render(bridges, func(w *tabwriter.Writer) {
				row(w, "ID", "NAME", "DOMAIN", "STATUS", "LAST SUCCESS")
				for _, b := range bridges {
					last := "-"
					if b.LastSuccessfulExtraction != nil {
						last = formatTime(b.LastSuccessfulExtraction.Time)
					}
					row(w, b.ID, truncate(b.Name, 30), b.Domain, b.Status, last)
				}
			})
		}),
	}
}

func (a *app) bridgesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <bridge-id>",
		Short: "Show one bridge",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, args []string) error {
			b, err := c.Bridges.Get(ctx, args[0])
			if err != nil {
				return err
			}
			return a.render(b, func(w *tabwriter.Writer) { bridgeTable(w, b) })
		}),
	}
}

func bridgeTable(w *tabwriter.Writer, b *apibridge.Bridge) {
	row(w, "ID:", b.ID)
	row(w, "Name:", b.Name)
	row(w, "Domain:", b.Domain)
	row(w, "Target URL:", b.TargetURL)
	row(w, "Status:", b.Status)
	row(w, "Schema fields:", len(b.ExtractionSchema))
	row(w, "Script steps:", len(b.InteractionScript))
	row(w, "Created:", formatTime(b.CreatedAt.Time))
	row(w, "Updated:", formatTime(b.UpdatedAt.Time))
	if b.LastError != nil {
		row(w, "Last error:", *b.LastError)
	}
}

func (a *app) bridgesCreateCommand() *cobra.Command {
	var form forms.NewBridge
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a bridge",
		Long: `Create a bridge. JSON flags accept literal JSON or @file.

The extraction schema maps field names to types, e.g. {"title": "string"}.
When omitted, {"title": "string", "url": "url"} is used.`,
		Example: `  bridgectl bridges create --name HN --url https://news.ycombinator.com \
    --schema '{"title": "string", "points": "number"}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if form.ExtractionSchema, err = readText(form.ExtractionSchema, cmd.InOrStdin()); err != nil {
				return err
			}
			if form.Selectors, err = readText(form.Selectors, cmd.InOrStdin()); err != nil {
				return err
			}
			in, err := form.Build()
			if err != nil {
				return err
			}

			c, err := a.apiClient()
			if err != nil {
				return err
			}
			b, err := c.Bridges.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			return a.render(b, func(w *tabwriter.Writer) { bridgeTable(w, b) })
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "Bridge name")
	cmd.Flags().StringVar(&form.TargetURL, "url", "", "Target URL to extract from")
	cmd.Flags().StringVar(&form.ExtractionSchema, "schema", "", "Extraction schema JSON or @file")
	cmd.Flags().StringVar(&form.Selectors, "selectors", "", "CSS selectors JSON or @file")
	return cmd
}

func (a *app) bridgesUpdateCommand() *cobra.Command {
	var (
		settings forms.BridgeSettings
		name     string
	)
	cmd := &cobra.Command{
		Use:   "update <bridge-id>",
		Short: "Update a bridge's auth config and interaction script",
		Long: `Update a bridge. The current bridge is fetched first and every field not
given on the command line is sent back unchanged. JSON flags accept literal
JSON or @file; an empty value clears the field.`,
		Example: `  bridgectl bridges update 0f8c... --script '[{"action": "scroll_bottom"}]'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.apiClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			current, err := c.Bridges.Get(ctx, args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			settings.AuthConfig, err = keepOrRead(flags.Changed("auth-config"), settings.AuthConfig, current.AuthConfig, cmd)
			if err != nil {
				return err
			}
			settings.InteractionScript, err = keepOrRead(flags.Changed("script"), settings.InteractionScript, current.InteractionScript, cmd)
			if err != nil {
				return err
			}

			in, err := settings.Apply(current)
			if err != nil {
				return err
			}
			if flags.Changed("name") {
				in.Name = name
				if err := forms.Validate(forms.NewBridge{Name: in.Name, TargetURL: in.TargetURL}); err != nil {
					return err
				}
			}

			b, err := c.Bridges.Update(ctx, args[0], in)
			if err != nil {
				return err
			}
			return a.render(b, func(w *tabwriter.Writer) { bridgeTable(w, b) })
		},
	}
	cmd.Flags().StringVar(&settings.AuthConfig, "auth-config", "", "Auth config JSON object or @file")
	cmd.Flags().StringVar(&settings.InteractionScript, "script", "", "Interaction script JSON array or @file")
	cmd.Flags().StringVar(&name, "name", "", "New bridge name")
	return cmd
}

// keepOrRead returns the flag text when the flag was given and the JSON of
// the current value otherwise.
func keepOrRead(changed bool, text string, current any, cmd *cobra.Command) (string, error) {
	if changed {
		return readText(text, cmd.InOrStdin())
	}
	return marshalText(current)
}

func (a *app) bridgesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <bridge-id>",
		Short: "Delete a bridge",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, args []string) error {
			res, err := c.Bridges.Delete(ctx, args[0])
			if err != nil {
				return err
			}
			return a.render(res, func(w *tabwriter.Writer) { row(w, "Deleted bridge", args[0]) })
		}),
	}
}

func (a *app) bridgesRunCommand() *cobra.Command {
	var (
		wait bool
		wf   waitFlags
	)
	cmd := &cobra.Command{
		Use:   "run <bridge-id>",
		Short: "Queue an extraction run",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, args []string) error {
			task, err := c.Bridges.Run(ctx, args[0])
			if err != nil {
				return err
			}
			a.logger.Info().Str("task_id", task.TaskID).Msg("extraction queued")
			if !wait {
				return a.render(task, func(w *tabwriter.Writer) {
					row(w, "Task:", task.TaskID)
					row(w, "Status:", task.Status)
				})
			}
			return a.waitTask(ctx, c, task.TaskID, wf)
		}),
	}
	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "Wait for the task to finish")
	wf.register(cmd, " with --wait")
	return cmd
}

func (a *app) bridgesWaitCommand() *cobra.Command {
	var wf waitFlags
	cmd := &cobra.Command{
		Use:   "wait <task-id>",
		Short: "Wait for an extraction task to finish",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, args []string) error {
			return a.waitTask(ctx, c, args[0], wf)
		}),
	}
	wf.register(cmd, "")
	return cmd
}

// waitFlags are shared by "bridges run --wait" and "bridges wait".
type waitFlags struct {
	interval time.Duration
	timeout  time.Duration
}

func (wf *waitFlags) register(cmd *cobra.Command, suffix string) {
	cmd.Flags().DurationVar(&wf.interval, "poll-interval", apibridge.DefaultPollInterval, "Initial polling interval"+suffix)
	cmd.Flags().DurationVar(&wf.timeout, "wait-timeout", apibridge.DefaultWaitTimeout, "Give up waiting after this long"+suffix)
}

func (a *app) waitTask(ctx context.Context, c *apibridge.Client, taskID string, wf waitFlags) error {
	status, err := c.Bridges.WaitForTask(ctx, taskID,
		apibridge.WithPollInterval(wf.interval),
		apibridge.WithWaitTimeout(wf.timeout),
	)
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return fmt.Errorf("%w %s after %s (raise --wait-timeout)", errWaitTimedOut, taskID, wf.timeout)
	}
	if status != nil {
		if renderErr := a.render(status, func(w *tabwriter.Writer) { taskTable(w, status) }); renderErr != nil {
			return renderErr
		}
	}
	return err
}

func (a *app) bridgesTaskCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "task <task-id>",
		Short: "Show the status of an extraction task",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, args []string) error {
			status, err := c.Bridges.Task(ctx, args[0])
			if err != nil {
				return err
			}
			return a.render(status, func(w *tabwriter.Writer) { taskTable(w, status) })
		}),
	}
}

func taskTable(w *tabwriter.Writer, s *apibridge.TaskStatus) {
	row(w, "Task:", s.TaskID)
	row(w, "Status:", s.Status)
	if s.Error != "" {
		row(w, "Error:", s.Error)
	}
	if len(s.Result) > 0 {
		row(w, "Result:", truncate(string(s.Result), 200))
	}
}

func (a *app) bridgesLogsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logs [bridge-id]",
		Short: "Show usage logs for one bridge, or for all bridges",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, args []string) error {
			var (
				logs []apibridge.UsageLog
				err  error
			)
			if len(args) == 1 {
				logs, err = c.Bridges.Logs(ctx, args[0])
			} else {
				logs, err = c.Bridges.AllLogs(ctx)
			}
			if err != nil {
				return err
			}
			return a.render(logs, func(w *tabwriter.Writer) { logsTable(w, logs) })
		}),
	}
}

func logsTable(w *tabwriter.Writer, logs []apibridge.UsageLog) {
	row(w, "TIME", "BRIDGE", "METHOD", "STATUS", "LATENCY", "CACHED")
	for _, l := range logs {
		latency := "-"
		if l.LatencyMS != nil {
			latency = fmt.Sprintf("%dms", *l.LatencyMS)
		}
		row(w, formatTime(l.CreatedAt.Time), orDash(l.BridgeName), l.Method, l.StatusCode, latency, l.Cached)
	}
}

func (a *app) bridgesStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard counters",
		Args:  cobra.NoArgs,
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, _ []string) error {
			stats, err := c.Bridges.Stats(ctx)
			if err != nil {
				return err
			}
			return a.render(stats, func(w *tabwriter.Writer) { statsTable(w, stats) })
		}),
	}
}

func statsTable(w *tabwriter.Writer, s *apibridge.Stats) {
	row(w, "Active bridges:", s.ActiveBridges)
	row(w, "Total extractions:", s.TotalExtractions)
	row(w, "API usage:", fmt.Sprintf("%d%%", s.APIUsagePercent))
	row(w, "Success rate:", s.SuccessRate)
	row(w, "Avg latency:", s.AvgLatency)
	row(w, "Data volume:", s.TotalDataVolume)
}

func (a *app) bridgesPulseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pulse",
		Short: "Show security telemetry",
		Args:  cobra.NoArgs,
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, _ []string) error {
			pulse, err := c.Bridges.SecurityPulse(ctx)
			if err != nil {
				return err
			}
			return a.render(pulse, func(w *tabwriter.Writer) { pulseTable(w, pulse) })
		}),
	}
}

func pulseTable(w *tabwriter.Writer, p *apibridge.SecurityPulse) {
	row(w, "Auth health:", p.AuthHealth)
	row(w, "Token leakage:", p.TokenLeakage)
	row(w, "Audit log:", p.AuditLog)
	row(w, "Encryption:", p.EncryptionMode)
	if p.LastEvent != nil {
		row(w, "Last event:", fmt.Sprintf("[%s] %s (%s)", p.LastEvent.Label, p.LastEvent.Message, p.LastEvent.Time))
	}
}

func (a *app) bridgesScanCommand() *cobra.Command {
	var deep bool
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan for leaked secrets",
		Args:  cobra.NoArgs,
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, _ []string) error {
			var (
				report *apibridge.ScanReport
				err    error
			)
			if deep {
				report, err = c.Bridges.ScanDeep(ctx)
			} else {
				report, err = c.Bridges.Scan(ctx)
			}
			if err != nil {
				return err
			}
			return a.render(report, func(w *tabwriter.Writer) {
				row(w, "Scanned:", formatTime(report.ScannedAt.Time))
				row(w, "Findings:", report.TotalFindings)
				if len(report.Findings) == 0 {
					return
				}
				row(w)
				row(w, "TYPE", "MATCH", "SOURCE", "VALIDATION")
				for _, f := range report.Findings {
					source := f.Source
					if f.File != nil {
						source = *f.File
					}
					row(w, f.Type, truncate(f.Match, 40), orDash(source), orDash(f.ValidationStatus))
				}
			})
		}),
	}
	cmd.Flags().BoolVar(&deep, "deep", false, "Run a deep scan, including history")
	return cmd
}

func (a *app) bridgesAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <url>",
		Short: "Ask the server to suggest an extraction schema for a URL",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, args []string) error {
			if err := forms.Validate(forms.NewBridge{Name: "analyze", TargetURL: args[0]}); err != nil {
				return err
			}
			doc, err := c.Bridges.Analyze(ctx, args[0])
			if err != nil {
				return err
			}
			return a.render(doc, nil)
		}),
	}
}
