package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxwalkley/dotqr/pkg/vcard"
)

// vcardCommand creates the vcard command for rendering contact QR codes.
func (c *CLI) vcardCommand() *cobra.Command {
	var (
		flags    styleFlags
		output   string
		logoPath string
		show     bool
		card     vcard.Card
	)

	cmd := &cobra.Command{
		Use:   "vcard",
		Short: "Render a QR code for a vCard contact",
		Long:  `Render a styled QR PNG carrying a VERSION:3.0 vCard. Empty fields are omitted; no address fields are supported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			payload := card.Build()
			if show {
				fmt.Fprintln(cmd.OutOrStdout(), payload)
			}
			return c.renderToFile(cmd.Context(), payload, cfg, logoPath, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "vcard-qr.png", "output PNG path")
	cmd.Flags().StringVar(&logoPath, "logo", "", "logo image (PNG or JPEG) to center on the symbol")
	cmd.Flags().BoolVar(&show, "show-vcard", false, "print the vCard text before rendering")

	cmd.Flags().StringVar(&card.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&card.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&card.Org, "org", "", "company or organization")
	cmd.Flags().StringVar(&card.Phone, "phone", "", "work phone, e.g. +1 604 555 1234")
	cmd.Flags().StringVar(&card.Email, "email", "", "work email")
	cmd.Flags().StringVar(&card.URL, "url", "", "website (optional)")

	return cmd
}
