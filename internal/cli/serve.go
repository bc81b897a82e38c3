package cli

import (
	"github.com/spf13/cobra"

	"github.com/maxwalkley/dotqr/internal/server"
)

// serveCommand creates the serve command for running the HTTP renderer.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags styleFlags
		addr  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the QR renderer over HTTP",
		Long: `Serve the renderer as an HTTP API.

Endpoints:
  GET  /health  liveness probe
  GET  /qr      render a link QR; style via query parameters
  POST /qr      multipart form with an optional logo upload
  POST /vcard   render a contact QR from form fields

Style flags set the server-wide defaults; requests may override them
per call with matching query parameters.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			srv := server.New(cfg, loggerFromContext(cmd.Context()))
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
