package server

import (
	"net/http"
	"strconv"

	"github.com/maxwalkley/dotqr/pkg/errors"
	"github.com/maxwalkley/dotqr/pkg/qrencode"
	"github.com/maxwalkley/dotqr/pkg/render/symbol/style"
)

// styleFromQuery applies request parameter overrides on top of the
// server's base style. Range checks happen later in Config.Validate;
// this only rejects values that fail to parse at all.
func (s *Server) styleFromQuery(r *http.Request) (style.Config, qrencode.Level, error) {
	cfg := s.base
	level := cfg.ErrorCorrection

	intParams := []struct {
		name string
		dst  *int
	}{
		{"target_px", &cfg.TargetPx},
		{"symbol_px_goal", &cfg.SymbolPxGoal},
		{"min_module_px", &cfg.MinModulePx},
		{"quiet_modules", &cfg.QuietModules},
		{"reserve_modules", &cfg.ReserveModules},
		{"reserve_padding_modules", &cfg.ReservePaddingModules},
		{"backdrop_corner_radius_px", &cfg.BackdropCornerRadiusPx},
	}
	for _, p := range intParams {
		raw := r.FormValue(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return style.Config{}, 0, errors.New(errors.ErrCodeInvalidInput,
				"parameter %s: not an integer: %q", p.name, raw)
		}
		*p.dst = v
	}

	floatParams := []struct {
		name string
		dst  *float64
	}{
		{"dot_scale", &cfg.DotScale},
		{"center_scale", &cfg.CenterScale},
	}
	for _, p := range floatParams {
		raw := r.FormValue(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return style.Config{}, 0, errors.New(errors.ErrCodeInvalidInput,
				"parameter %s: not a number: %q", p.name, raw)
		}
		*p.dst = v
	}

	if raw := r.FormValue("color"); raw != "" {
		cfg.Color = raw
	}
	if raw := r.FormValue("logo_backdrop"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return style.Config{}, 0, errors.New(errors.ErrCodeInvalidInput,
				"parameter logo_backdrop: not a boolean: %q", raw)
		}
		cfg.DrawLogoBackdrop = v
	}
	if raw := r.FormValue("level"); raw != "" {
		v, err := qrencode.ParseLevel(raw)
		if err != nil {
			return style.Config{}, 0, err
		}
		level = v
	}
	cfg.ErrorCorrection = level

	return cfg, level, nil
}
