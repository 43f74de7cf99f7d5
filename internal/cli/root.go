// Package cli implements the bridgectl command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	apibridge "github.com/apibridge/client-go"
	"github.com/apibridge/client-go/internal/cliconfig"
	"github.com/apibridge/client-go/internal/logutil"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	apiURL     string
	apiKey     string
	timeout    time.Duration
	logLevel   string
	output     string
	query      string
}

// app carries the state of one bridgectl invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	flags    globalFlags
	loadOpts cliconfig.LoadOptions

	cfg    *cliconfig.Config
	logger zerolog.Logger
	client *apibridge.Client
}

func newApp(out, errOut io.Writer) *app {
	return &app{out: out, errOut: errOut, logger: zerolog.Nop()}
}

// Execute runs bridgectl with os.Args and exits 1 on error.
func Execute() {
	if err := Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", FormatError(err))
		os.Exit(1)
	}
}

// Run executes the command line args, writing results to out and
// diagnostics to errOut.
func Run(ctx context.Context, args []string, out, errOut io.Writer) error {
	a := newApp(out, errOut)
	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "bridgectl",
		Short: "bridgectl manages API Bridge bridges, keys, webhooks and LLM providers",
		Long: `bridgectl talks to an API Bridge server. A bridge turns a website into a
JSON API: it is defined by a target URL and an extraction schema, and each
run queues a background extraction task.

Configuration is read from $XDG_CONFIG_HOME/apibridge/config.yaml, then a .env
file in the current directory, then BRIDGE_* environment variables, then flags.`,
		Version:           Version + " (" + Commit + ")",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd, true) },
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "Profile file (default $XDG_CONFIG_HOME/apibridge/config.yaml)")
	pf.StringVar(&a.flags.apiURL, "api-url", "", "API host (default "+apibridge.DefaultBaseURL+")")
	pf.StringVar(&a.flags.apiKey, "api-key", "", "API key sent as X-API-Key")
	pf.DurationVar(&a.flags.timeout, "timeout", 0, "Per-request timeout (default 30s)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	pf.StringVarP(&a.flags.output, "output", "o", "", "Output format: table or json")
	pf.StringVarP(&a.flags.query, "query", "q", "", "JSONPath applied to the JSON result, e.g. '$[*].name'")

	root.AddCommand(
		a.bridgesCommand(),
		a.keysCommand(),
		a.webhooksCommand(),
		a.handshakeCommand(),
		a.healthCommand(),
		a.overviewCommand(),
		a.llmCommand(),
		a.configCommand(),
	)
	return root
}

// setup resolves configuration and logging. The API client is built lazily
// so config commands work without a reachable server. Config commands skip
// validation so a broken profile can be repaired.
func (a *app) setup(cmd *cobra.Command, validate bool) error {
	opts := a.loadOpts
	if a.flags.configPath != "" {
		opts.ConfigPath = a.flags.configPath
	}
	cfg, err := cliconfig.Load(opts)
	if err != nil {
		return err
	}

	flagCfg := &cliconfig.Config{}
	flags := cmd.Flags()
	if flags.Changed("api-url") {
		flagCfg.APIURL = a.flags.apiURL
	}
	if flags.Changed("api-key") {
		flagCfg.APIKey = a.flags.apiKey
	}
	if flags.Changed("timeout") {
		flagCfg.Timeout = a.flags.timeout
	}
	if flags.Changed("log-level") {
		flagCfg.LogLevel = a.flags.logLevel
	}
	if flags.Changed("output") {
		flagCfg.Output = a.flags.output
	}
	cliconfig.MergeConfig(cfg, flagCfg, cliconfig.SourceFlag)

	if validate {
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.logger = logutil.NewConsole(a.errOut, cfg.LogLevel)
	return nil
}

// apiClient returns the SDK client for the resolved configuration.
func (a *app) apiClient() (*apibridge.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	key, err := a.cfg.ResolveAPIKey()
	if err != nil {
		return nil, err
	}

	client, err := apibridge.New(
		apibridge.WithBaseURL(a.cfg.APIURL),
		apibridge.WithAPIKey(key),
		apibridge.WithTimeout(a.cfg.Timeout),
		apibridge.WithUserAgent("bridgectl/"+Version),
		apibridge.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}
	a.client = client
	return client, nil
}

// withClient adapts a handler that needs the API client into a cobra RunE.
func (a *app) withClient(fn func(ctx context.Context, c *apibridge.Client, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		client, err := a.apiClient()
		if err != nil {
			return err
		}
		return fn(cmd.Context(), client, args)
	}
}
