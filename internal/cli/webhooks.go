package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	apibridge "github.com/apibridge/client-go"
	"github.com/apibridge/client-go/forms"
	"github.com/spf13/cobra"
)

func (a *app) webhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhooks",
		Aliases: []string{"webhook"},
		Short:   "Manage extraction webhooks",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List webhooks",
		Args:  cobra.NoArgs,
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, _ []string) error {
			hooks, err := c.Webhooks.List(ctx)
			if err != nil {
				return err
			}
			return a.render(hooks, func(w *tabwriter.Writer) {
				row(w, "ID", "NAME", "URL", "EVENTS", "ACTIVE")
				for _, h := range hooks {
					row(w, h.ID, orDash(h.Name), truncate(h.URL, 50), strings.Join(h.Events, ","), h.IsActive)
				}
			})
		}),
	}

	var form forms.NewWebhook
	create := &cobra.Command{
		Use:     "create <url>",
		Short:   "Register a webhook",
		Example: `  bridgectl webhooks create https://hooks.example.com/bridge --event extraction.failed`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form.URL = args[0]
			opts, err := form.Options()
			if err != nil {
				return err
			}
			c, err := a.apiClient()
			if err != nil {
				return err
			}
			h, err := c.Webhooks.Create(cmd.Context(), form.URL, opts...)
			if err != nil {
				return err
			}
			return a.render(h, func(w *tabwriter.Writer) {
				row(w, "ID:", h.ID)
				row(w, "URL:", h.URL)
				row(w, "Events:", strings.Join(h.Events, ","))
				row(w, "Active:", h.IsActive)
			})
		},
	}
	create.Flags().StringVar(&form.Name, "name", "", "Display name")
	create.Flags().StringSliceVar(&form.Events, "event", nil,
		fmt.Sprintf("Event to subscribe to (%s, %s); repeatable", apibridge.WebhookEventExtractionSuccess, apibridge.WebhookEventExtractionFailed))
	create.Flags().StringVar(&form.Secret, "secret", "", "Secret used to sign deliveries")
	create.Flags().BoolVar(&form.Inactive, "inactive", false, "Create the webhook disabled")

	del := &cobra.Command{
		Use:   "delete <webhook-id>",
		Short: "Delete a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, args []string) error {
			res, err := c.Webhooks.Delete(ctx, args[0])
			if err != nil {
				return err
			}
			return a.render(res, func(w *tabwriter.Writer) { row(w, "Deleted webhook", args[0]) })
		}),
	}

	logs := &cobra.Command{
		Use:   "logs <webhook-id>",
		Short: "Show delivery attempts of a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, args []string) error {
			entries, err := c.Webhooks.Logs(ctx, args[0])
			if err != nil {
				return err
			}
			return a.render(entries, func(w *tabwriter.Writer) {
				row(w, "TIME", "EVENT", "STATUS", "LATENCY")
				for _, l := range entries {
					status, latency := "-", "-"
					if l.StatusCode != nil {
						status = fmt.Sprint(*l.StatusCode)
					}
					if l.LatencyMS != nil {
						latency = fmt.Sprintf("%dms", *l.LatencyMS)
					}
					row(w, formatTime(l.CreatedAt.Time), l.EventType, status, latency)
				}
			})
		}),
	}

	cmd.AddCommand(list, create, del, logs)
	return cmd
}
