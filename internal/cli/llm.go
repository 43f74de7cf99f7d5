package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	apibridge "github.com/apibridge/client-go"
	"github.com/apibridge/client-go/forms"
	"github.com/spf13/cobra"
)

// errProviderTestFailed is returned when a provider credential test fails.
var errProviderTestFailed = errors.New("provider test failed")

func (a *app) llmCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "llm",
		Short: "Manage LLM providers used for schema analysis",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List configured providers",
		Args:  cobra.NoArgs,
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, _ []string) error {
			providers, err := c.LLM.Providers(ctx)
			if err != nil {
				return err
			}
			return a.render(providers, func(w *tabwriter.Writer) {
				row(w, "ID", "PROVIDER", "MODEL", "PRIORITY", "ACTIVE", "FAILURES", "LAST ERROR")
				for _, p := range providers {
					lastErr := "-"
					if p.LastError != nil {
						lastErr = truncate(*p.LastError, 40)
					}
					row(w, p.ID, p.Provider, p.Model, p.Priority, p.IsActive, p.ConsecutiveFailures, lastErr)
				}
			})
		}),
	}

	var (
		form   forms.NewProvider
		verify bool
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := form.Build()
			if err != nil {
				return err
			}
			c, err := a.apiClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if verify {
				if err := a.testProvider(ctx, c, form, false); err != nil {
					return err
				}
			}
			p, err := c.LLM.CreateProvider(ctx, in)
			if err != nil {
				return err
			}
			return a.render(p, func(w *tabwriter.Writer) {
				row(w, "ID:", p.ID)
				row(w, "Provider:", p.Provider)
				row(w, "Model:", p.Model)
				row(w, "Priority:", p.Priority)
			})
		},
	}
	providerFlags(add, &form)
	add.Flags().IntVar(&form.Priority, "priority", 0, "Lower values are tried first")
	add.Flags().BoolVar(&verify, "test", false, "Test the credentials before adding")

	var testForm forms.NewProvider
	test := &cobra.Command{
		Use:   "test",
		Short: "Test provider credentials without saving them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.apiClient()
			if err != nil {
				return err
			}
			return a.testProvider(cmd.Context(), c, testForm, true)
		},
	}
	providerFlags(test, &testForm)

	del := &cobra.Command{
		Use:   "delete <provider-id>",
		Short: "Remove a provider",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, args []string) error {
			if err := c.LLM.DeleteProvider(ctx, args[0]); err != nil {
				return err
			}
			return a.render(map[string]string{"status": "deleted", "id": args[0]}, func(w *tabwriter.Writer) {
				row(w, "Deleted provider", args[0])
			})
		}),
	}

	cmd.AddCommand(list, add, test, del)
	return cmd
}

func providerFlags(cmd *cobra.Command, form *forms.NewProvider) {
	cmd.Flags().StringVar(&form.Provider, "provider", "", "Provider: "+strings.Join(apibridge.Providers, ", "))
	cmd.Flags().StringVar(&form.Model, "model", "", "Model name")
	cmd.Flags().StringVar(&form.APIKey, "provider-key", "", "Provider API key")
}

// testProvider runs a credential test. When show is set the result is
// rendered; a failed test is an error either way.
func (a *app) testProvider(ctx context.Context, c *apibridge.Client, form forms.NewProvider, show bool) error {
	req, err := form.TestRequest()
	if err != nil {
		return err
	}
	res, err := c.LLM.TestProvider(ctx, req)
	if err != nil {
		return err
	}
	if show {
		err := a.render(res, func(w *tabwriter.Writer) {
			row(w, "Status:", res.Status)
			if res.LatencyMS > 0 {
				row(w, "Latency:", fmt.Sprintf("%dms", res.LatencyMS))
			}
			if res.Response != "" {
				row(w, "Response:", truncate(res.Response, 80))
			}
			if res.Error != "" {
				row(w, "Error:", res.Error)
			}
		})
		if err != nil {
			return err
		}
	}
	if res.Status != "success" {
		if res.Error != "" {
			return fmt.Errorf("%w: %s", errProviderTestFailed, res.Error)
		}
		return errProviderTestFailed
	}
	return nil
}
