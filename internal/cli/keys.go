package cli

import (
	"context"
	"text/tabwriter"

	apibridge "github.com/apibridge/client-go"
	"github.com/spf13/cobra"
)

func (a *app) keysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage API keys",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List API keys",
		Args:  cobra.NoArgs,
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, _ []string) error {
			keys, err := c.Keys.List(ctx)
			if err != nil {
				return err
			}
			return a.render(keys, func(w *tabwriter.Writer) {
				row(w, "ID", "NAME", "KEY", "CREATED", "LAST USED")
				for _, k := range keys {
					lastUsed := "never"
					if k.LastUsedAt != nil {
						lastUsed = formatTime(k.LastUsedAt.Time)
					}
					row(w, k.ID, k.Name, k.Prefix+"..."+k.LastFour, formatTime(k.CreatedAt.Time), lastUsed)
				}
			})
		}),
	}

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an API key. The key is shown only once.",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, args []string) error {
			key, err := c.Keys.Create(ctx, args[0])
			if err != nil {
				return err
			}
			return a.render(key, func(w *tabwriter.Writer) {
				row(w, "ID:", key.ID)
				row(w, "Name:", key.Name)
				row(w, "Key:", key.Key)
				if key.Warning != "" {
					row(w, "Warning:", key.Warning)
				}
			})
		}),
	}

	cmd.AddCommand(list, create)
	return cmd
}
