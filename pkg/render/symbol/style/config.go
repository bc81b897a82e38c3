// Package style defines the validated rendering configuration shared
// by every stage of a symbol render.
//
// A Config is an immutable value object: it is constructed once per
// render call, validated up front, and threaded through the geometry
// solver, painter, and logo compositor. There is no process-wide
// configuration state.
package style

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/maxwalkley/dotqr/pkg/errors"
	"github.com/maxwalkley/dotqr/pkg/qrencode"
)

// Documented ranges for every configurable value. Values outside a
// range are a configuration error, never silently clamped.
const (
	MinTargetPx = 200
	MaxTargetPx = 1024

	MinSymbolPxGoal = 100

	MinModulePxFloor = 1
	MinModulePxCeil  = 10

	MaxQuietModules = 8

	MinDotScale = 0.5
	MaxDotScale = 1.0

	MinCenterScale = 0.05
	MaxCenterScale = 0.40

	MaxReservePaddingModules = 8

	MaxBackdropCornerRadiusPx = 40
)

// Config is the complete set of rendering parameters for one symbol.
type Config struct {
	// TargetPx is the output image side in pixels.
	TargetPx int

	// SymbolPxGoal is the desired symbol footprint before the quiet
	// zone, in pixels. The solver treats it as a goal, not a promise.
	SymbolPxGoal int

	// MinModulePx is the smallest acceptable module size in pixels.
	MinModulePx int

	// QuietModules is the required quiet-zone width on each side,
	// counted in modules.
	QuietModules int

	// DotScale is the fraction of the module size used for the dot
	// diameter. Never clamped by the painter; values near 1.0 make
	// adjacent dots touch.
	DotScale float64

	// Color is the symbol color as a 6-hex-digit RGB string, with or
	// without a leading '#'. Always rendered fully opaque.
	Color string

	// CenterScale is the logo side as a fraction of TargetPx.
	CenterScale float64

	// ReserveModules overrides the computed reserve module count when
	// non-zero. Zero means "use the computed value".
	ReserveModules int

	// ReservePaddingModules is the cushion in whole modules added
	// around the logo footprint on each side.
	ReservePaddingModules int

	// DrawLogoBackdrop paints an opaque rounded backdrop beneath the
	// logo, sized to the reserved pixel footprint.
	DrawLogoBackdrop bool

	// BackdropCornerRadiusPx is the backdrop corner radius in pixels.
	BackdropCornerRadiusPx int

	// ErrorCorrection is the requested error-correction level for the
	// external encoder. LevelAuto resolves based on logo presence.
	ErrorCorrection qrencode.Level
}

// Default returns the configuration matching the tool's canonical
// output: a 250px canvas with a 200px symbol goal, 3px minimum
// modules, a 4-module quiet zone, and 0.82-scale black dots.
func Default() Config {
	return Config{
		TargetPx:               250,
		SymbolPxGoal:           200,
		MinModulePx:            3,
		QuietModules:           4,
		DotScale:               0.82,
		Color:                  "#000000",
		CenterScale:            0.20,
		ReservePaddingModules:  1,
		BackdropCornerRadiusPx: 12,
		ErrorCorrection:        qrencode.LevelAuto,
	}
}

// Validate checks every field against its documented range. It fails
// fast: the first violation is returned as a CONFIG_RANGE error (or
// INVALID_COLOR for a malformed color string) before any geometry is
// computed or pixels drawn.
func (c Config) Validate() error {
	if c.TargetPx < MinTargetPx || c.TargetPx > MaxTargetPx {
		return errors.New(errors.ErrCodeConfigRange,
			"targetPx %d outside [%d,%d]", c.TargetPx, MinTargetPx, MaxTargetPx)
	}
	if c.SymbolPxGoal < MinSymbolPxGoal || c.SymbolPxGoal > c.TargetPx {
		return errors.New(errors.ErrCodeConfigRange,
			"symbolPxGoal %d outside [%d,%d]", c.SymbolPxGoal, MinSymbolPxGoal, c.TargetPx)
	}
	if c.MinModulePx < MinModulePxFloor || c.MinModulePx > MinModulePxCeil {
		return errors.New(errors.ErrCodeConfigRange,
			"minModulePx %d outside [%d,%d]", c.MinModulePx, MinModulePxFloor, MinModulePxCeil)
	}
	if c.QuietModules < 0 || c.QuietModules > MaxQuietModules {
		return errors.New(errors.ErrCodeConfigRange,
			"quietModules %d outside [0,%d]", c.QuietModules, MaxQuietModules)
	}
	if c.DotScale < MinDotScale || c.DotScale > MaxDotScale {
		return errors.New(errors.ErrCodeConfigRange,
			"dotScale %v outside [%v,%v]", c.DotScale, MinDotScale, MaxDotScale)
	}
	if _, err := ParseHexColor(c.Color); err != nil {
		return err
	}
	if c.CenterScale < MinCenterScale || c.CenterScale > MaxCenterScale {
		return errors.New(errors.ErrCodeConfigRange,
			"centerScale %v outside [%v,%v]", c.CenterScale, MinCenterScale, MaxCenterScale)
	}
	if c.ReserveModules < 0 {
		return errors.New(errors.ErrCodeConfigRange,
			"reserveModules %d must not be negative", c.ReserveModules)
	}
	if c.ReservePaddingModules < 0 || c.ReservePaddingModules > MaxReservePaddingModules {
		return errors.New(errors.ErrCodeConfigRange,
			"reservePaddingModules %d outside [0,%d]", c.ReservePaddingModules, MaxReservePaddingModules)
	}
	if c.BackdropCornerRadiusPx < 0 || c.BackdropCornerRadiusPx > MaxBackdropCornerRadiusPx {
		return errors.New(errors.ErrCodeConfigRange,
			"backdropCornerRadiusPx %d outside [0,%d]", c.BackdropCornerRadiusPx, MaxBackdropCornerRadiusPx)
	}
	if c.ErrorCorrection < qrencode.LevelAuto || c.ErrorCorrection > qrencode.LevelHigh {
		return errors.New(errors.ErrCodeConfigRange,
			"error-correction level %d out of range", c.ErrorCorrection)
	}
	return nil
}

// ParseHexColor parses a 6-hex-digit RGB string ("1a2b3c" or
// "#1a2b3c") into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, errors.New(errors.ErrCodeInvalidColor,
			"color %q must be 6 hex digits", s)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.RGBA{}, errors.New(errors.ErrCodeInvalidColor,
				"color %q contains non-hex digits", s)
		}
		channels[i] = uint8(v)
	}

	return color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: 255}, nil
}
