package style

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/maxwalkley/dotqr/pkg/errors"
	"github.com/maxwalkley/dotqr/pkg/qrencode"
)

// fileConfig mirrors Config with TOML field names. Pointer fields
// distinguish "absent" from zero so a partial file only overrides what
// it names.
type fileConfig struct {
	TargetPx               *int     `toml:"target_px"`
	SymbolPxGoal           *int     `toml:"symbol_px_goal"`
	MinModulePx            *int     `toml:"min_module_px"`
	QuietModules           *int     `toml:"quiet_modules"`
	DotScale               *float64 `toml:"dot_scale"`
	Color                  *string  `toml:"color"`
	CenterScale            *float64 `toml:"center_scale"`
	ReserveModules         *int     `toml:"reserve_modules"`
	ReservePaddingModules  *int     `toml:"reserve_padding_modules"`
	LogoBackdrop           *bool    `toml:"logo_backdrop"`
	BackdropCornerRadiusPx *int     `toml:"backdrop_corner_radius_px"`
	ErrorCorrection        *string  `toml:"error_correction"`
}

// LoadFile reads a TOML style file and applies it on top of base.
// Fields missing from the file keep their base values. The merged
// configuration is not validated here; callers validate after applying
// any flag overrides.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read style file %s", path)
	}

	var f fileConfig
	if err := toml.Unmarshal(data, &f); err != nil {
		return base, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to parse style file %s", path)
	}

	cfg := base
	if f.TargetPx != nil {
		cfg.TargetPx = *f.TargetPx
	}
	if f.SymbolPxGoal != nil {
		cfg.SymbolPxGoal = *f.SymbolPxGoal
	}
	if f.MinModulePx != nil {
		cfg.MinModulePx = *f.MinModulePx
	}
	if f.QuietModules != nil {
		cfg.QuietModules = *f.QuietModules
	}
	if f.DotScale != nil {
		cfg.DotScale = *f.DotScale
	}
	if f.Color != nil {
		cfg.Color = *f.Color
	}
	if f.CenterScale != nil {
		cfg.CenterScale = *f.CenterScale
	}
	if f.ReserveModules != nil {
		cfg.ReserveModules = *f.ReserveModules
	}
	if f.ReservePaddingModules != nil {
		cfg.ReservePaddingModules = *f.ReservePaddingModules
	}
	if f.LogoBackdrop != nil {
		cfg.DrawLogoBackdrop = *f.LogoBackdrop
	}
	if f.BackdropCornerRadiusPx != nil {
		cfg.BackdropCornerRadiusPx = *f.BackdropCornerRadiusPx
	}
	if f.ErrorCorrection != nil {
		level, err := qrencode.ParseLevel(*f.ErrorCorrection)
		if err != nil {
			return base, err
		}
		cfg.ErrorCorrection = level
	}
	return cfg, nil
}
