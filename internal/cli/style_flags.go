package cli

import (
	"github.com/spf13/cobra"

	"github.com/maxwalkley/dotqr/pkg/qrencode"
	"github.com/maxwalkley/dotqr/pkg/render/symbol/style"
)

// styleFlags binds the rendering knobs to a command. Flag defaults
// mirror style.Default(); flags the user actually set override the
// base config, which itself may come from a --config TOML file.
type styleFlags struct {
	configPath string

	targetPx       int
	symbolPxGoal   int
	minModulePx    int
	quietModules   int
	dotScale       float64
	color          string
	centerScale    float64
	reserveModules int
	reservePadding int
	logoBackdrop   bool
	backdropRadius int
	level          string
}

func (f *styleFlags) register(cmd *cobra.Command) {
	def := style.Default()

	cmd.Flags().StringVar(&f.configPath, "config", "", "TOML style file to use as the base configuration")
	cmd.Flags().IntVar(&f.targetPx, "target-px", def.TargetPx, "output image side in pixels")
	cmd.Flags().IntVar(&f.symbolPxGoal, "symbol-px-goal", def.SymbolPxGoal, "desired symbol footprint before quiet zone, in pixels")
	cmd.Flags().IntVar(&f.minModulePx, "min-module-px", def.MinModulePx, "smallest acceptable module size in pixels")
	cmd.Flags().IntVar(&f.quietModules, "quiet-modules", def.QuietModules, "quiet zone in modules on each side")
	cmd.Flags().Float64Var(&f.dotScale, "dot-scale", def.DotScale, "dot diameter as a fraction of the module size")
	cmd.Flags().StringVar(&f.color, "color", def.Color, "symbol color as #RRGGBB")
	cmd.Flags().Float64Var(&f.centerScale, "center-scale", def.CenterScale, "logo side as a fraction of the image side")
	cmd.Flags().IntVar(&f.reserveModules, "reserve-modules", def.ReserveModules, "explicit reserve size in modules (0 = computed)")
	cmd.Flags().IntVar(&f.reservePadding, "reserve-padding", def.ReservePaddingModules, "whole-module cushion around the logo")
	cmd.Flags().BoolVar(&f.logoBackdrop, "logo-backdrop", def.DrawLogoBackdrop, "paint a white rounded backdrop beneath the logo")
	cmd.Flags().IntVar(&f.backdropRadius, "backdrop-radius", def.BackdropCornerRadiusPx, "backdrop corner radius in pixels")
	cmd.Flags().StringVar(&f.level, "level", def.ErrorCorrection.String(), "error correction: auto, L, M, Q or H")
}

// config resolves the effective style: the TOML file (when given)
// layered over defaults, then explicitly set flags on top.
func (f *styleFlags) config(cmd *cobra.Command) (style.Config, error) {
	cfg := style.Default()
	if f.configPath != "" {
		loaded, err := style.LoadFile(f.configPath, cfg)
		if err != nil {
			return style.Config{}, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("target-px") {
		cfg.TargetPx = f.targetPx
	}
	if changed("symbol-px-goal") {
		cfg.SymbolPxGoal = f.symbolPxGoal
	}
	if changed("min-module-px") {
		cfg.MinModulePx = f.minModulePx
	}
	if changed("quiet-modules") {
		cfg.QuietModules = f.quietModules
	}
	if changed("dot-scale") {
		cfg.DotScale = f.dotScale
	}
	if changed("color") {
		cfg.Color = f.color
	}
	if changed("center-scale") {
		cfg.CenterScale = f.centerScale
	}
	if changed("reserve-modules") {
		cfg.ReserveModules = f.reserveModules
	}
	if changed("reserve-padding") {
		cfg.ReservePaddingModules = f.reservePadding
	}
	if changed("logo-backdrop") {
		cfg.DrawLogoBackdrop = f.logoBackdrop
	}
	if changed("backdrop-radius") {
		cfg.BackdropCornerRadiusPx = f.backdropRadius
	}
	if changed("level") {
		level, err := qrencode.ParseLevel(f.level)
		if err != nil {
			return style.Config{}, err
		}
		cfg.ErrorCorrection = level
	}

	return cfg, nil
}
