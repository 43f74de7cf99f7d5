package cli

import (
	"context"
	"text/tabwriter"

	apibridge "github.com/apibridge/client-go"
	"github.com/apibridge/client-go/forms"
	"github.com/spf13/cobra"
)

func (a *app) handshakeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "handshake",
		Short: "Ask site owners for permission to extract",
	}

	var form forms.NewHandshake
	initiate := &cobra.Command{
		Use:     "initiate",
		Short:   "Draft a permission request to a site owner",
		Example: `  bridgectl handshake initiate --domain example.com --method EMAIL --recipient owner@example.com`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := form.Build()
			if err != nil {
				return err
			}
			c, err := a.apiClient()
			if err != nil {
				return err
			}
			h, err := c.Handshake.Initiate(cmd.Context(), in)
			if err != nil {
				return err
			}
			return a.render(h, func(w *tabwriter.Writer) { handshakeTable(w, h) })
		},
	}
	initiate.Flags().StringVar(&form.Domain, "domain", "", "Site domain")
	initiate.Flags().StringVar(&form.Method, "method", apibridge.HandshakeEmail, "Outreach method: EMAIL, TWITTER or GITHUB")
	initiate.Flags().StringVar(&form.Recipient, "recipient", "", "Email address or handle of the site owner")
	initiate.Flags().StringVar(&form.Context, "context", "", "Why the data is needed")

	approve := &cobra.Command{
		Use:   "approve <handshake-id>",
		Short: "Mark a permission request as sent",
		Args:  cobra.ExactArgs(1),
		RunE: a.withClient(func(ctx context.Context, c *apibridge.Client, args []string) error {
			h, err := c.Handshake.Approve(ctx, args[0])
			if err != nil {
				return err
			}
			return a.render(h, func(w *tabwriter.Writer) { handshakeTable(w, h) })
		}),
	}

	cmd.AddCommand(initiate, approve)
	return cmd
}

func handshakeTable(w *tabwriter.Writer, h *apibridge.Handshake) {
	row(w, "ID:", h.ID)
	row(w, "Status:", h.Status)
	row(w, "Recipient:", h.Recipient)
	if h.MessageBody != "" {
		row(w, "Message:", h.MessageBody)
	}
}
