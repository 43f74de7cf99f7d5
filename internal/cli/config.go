package cli

import (
	"errors"
	"text/tabwriter"

	"github.com/apibridge/client-go/internal/cliconfig"
	"github.com/spf13/cobra"
)

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "config",
		Short:             "Show or change the bridgectl profile",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd, false) },
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration and where each value came from",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cfg := a.cfg
			view := map[string]any{
				"api_url":   cfg.APIURL,
				"api_key":   cfg.MaskedKey(),
				"log_level": cfg.LogLevel,
				"timeout":   cfg.Timeout.String(),
				"output":    cfg.Output,
				"sources":   cfg.Sources,
			}
			return a.render(view, func(w *tabwriter.Writer) {
				row(w, "KEY", "VALUE", "SOURCE")
				row(w, cliconfig.FieldAPIURL, cfg.APIURL, cfg.Sources[cliconfig.FieldAPIURL])
				row(w, cliconfig.FieldAPIKey, orDash(cfg.MaskedKey()), orDash(cfg.Sources[cliconfig.FieldAPIKey]))
				row(w, cliconfig.FieldLogLevel, cfg.LogLevel, cfg.Sources[cliconfig.FieldLogLevel])
				row(w, cliconfig.FieldTimeout, cfg.Timeout, cfg.Sources[cliconfig.FieldTimeout])
				row(w, cliconfig.FieldOutput, cfg.Output, cfg.Sources[cliconfig.FieldOutput])
			})
		},
	}

	setURL := &cobra.Command{
		Use:   "set-url <url>",
		Short: "Store the API host in the profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.updateProfile(func(p *cliconfig.Config) error {
				p.APIURL = args[0]
				check := *a.cfg
				check.APIURL = args[0]
				return check.Validate()
			})
		},
	}

	var seal bool
	setKey := &cobra.Command{
		Use:   "set-key <api-key>",
		Short: "Store the API key in the profile",
		Long: `Store the API key in the profile. With --seal the key is encrypted with the
passphrase from ` + cliconfig.EnvVaultPassphrase + ` and that variable must be set
whenever bridgectl runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			passphrase := ""
			if seal {
				passphrase = a.cfg.VaultPassphrase
				if passphrase == "" {
					return errors.New("--seal needs " + cliconfig.EnvVaultPassphrase)
				}
			}
			return a.updateProfile(func(p *cliconfig.Config) error {
				return p.SetAPIKey(args[0], passphrase)
			})
		},
	}
	setKey.Flags().BoolVar(&seal, "seal", false, "Encrypt the key with "+cliconfig.EnvVaultPassphrase)

	cmd.AddCommand(show, setURL, setKey)
	return cmd
}

// updateProfile applies fn to the profile file alone, so values from the
// environment or flags are never written back.
func (a *app) updateProfile(fn func(*cliconfig.Config) error) error {
	path := a.flags.configPath
	if path == "" {
		path = a.loadOpts.ConfigPath
	}
	if path == "" {
		var err error
		if path, err = cliconfig.DefaultPath(); err != nil {
			return err
		}
	}

	profile, err := cliconfig.LoadConfigFile(path)
	if err != nil {
		return err
	}
	if err := fn(profile); err != nil {
		return err
	}
	if err := cliconfig.Save(path, profile); err != nil {
		return err
	}
	a.logger.Info().Str("path", path).Msg("profile saved")
	_, err = a.out.Write([]byte("Saved " + path + "\n"))
	return err
}
