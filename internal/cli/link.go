package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxwalkley/dotqr/pkg/errors"
	"github.com/maxwalkley/dotqr/pkg/qrencode"
	"github.com/maxwalkley/dotqr/pkg/render/symbol"
	"github.com/maxwalkley/dotqr/pkg/render/symbol/sink"
	"github.com/maxwalkley/dotqr/pkg/render/symbol/style"
)

// linkCommand creates the link command for rendering URL QR codes.
func (c *CLI) linkCommand() *cobra.Command {
	var (
		flags    styleFlags
		output   string
		logoPath string
	)

	cmd := &cobra.Command{
		Use:   "link [url]",
		Short: "Render a QR code for a link",
		Long:  `Render a styled QR PNG for a URL. A link without a scheme gets https:// prepended.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}
			return c.runLink(cmd.Context(), args[0], cfg, logoPath, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "link-qr.png", "output PNG path")
	cmd.Flags().StringVar(&logoPath, "logo", "", "logo image (PNG or JPEG) to center on the symbol")

	return cmd
}

func (c *CLI) runLink(ctx context.Context, rawLink string, cfg style.Config, logoPath, output string) error {
	link := qrencode.NormalizeURL(rawLink)
	if err := errors.ValidateURL(link); err != nil {
		return err
	}
	return c.renderToFile(ctx, link, cfg, logoPath, output)
}

// renderToFile encodes payload, renders it with an optional logo from
// logoPath and writes the PNG to output. Shared by link and vcard.
func (c *CLI) renderToFile(ctx context.Context, payload string, cfg style.Config, logoPath, output string) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	var opts []symbol.RenderOption
	logoPresent := false
	if logoPath != "" {
		if err := errors.ValidateLogoPath(logoPath); err != nil {
			return err
		}
		f, err := os.Open(logoPath)
		if err != nil {
			return errors.Wrap(errors.ErrCodeLogoDecode, err, "open logo %s", logoPath)
		}
		defer f.Close()
		opts = append(opts, symbol.WithLogoReader(f))
		logoPresent = true
	}

	level := qrencode.Resolve(cfg.ErrorCorrection, logoPresent)
	logger.Debug("encoding payload", "bytes", len(payload), "level", level)

	m, err := qrencode.Encode(payload, level)
	if err != nil {
		return err
	}
	logger.Debug("encoded symbol", "modules", m.Size())

	res, err := symbol.Render(m, cfg, opts...)
	if err != nil {
		return err
	}
	if res.LogoErr != nil {
		logger.Warn("logo skipped", "err", res.LogoErr)
	}
	logger.Debug("solved geometry",
		"modulePx", res.Geometry.ModulePx,
		"marginPx", res.Geometry.MarginPerSide,
	)

	if err := sink.WritePNG(output, res.Image); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Generated %s", output))
	return nil
}
