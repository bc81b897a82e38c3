package symbol

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/maxwalkley/dotqr/pkg/errors"
	"github.com/maxwalkley/dotqr/pkg/qrencode"
	"github.com/maxwalkley/dotqr/pkg/render/symbol/layout"
	"github.com/maxwalkley/dotqr/pkg/render/symbol/paint"
	"github.com/maxwalkley/dotqr/pkg/render/symbol/style"
)

// Result is a finished render. Image is targetPx square with a
// transparent background and is owned by the caller.
//
// LogoErr reports a logo that could not be decoded. It never aborts
// the render: the symbol is produced without the logo and without a
// reserve region.
type Result struct {
	Image    *image.RGBA
	Geometry layout.Geometry
	Reserve  layout.Region
	LogoErr  error
}

type RenderOption func(*renderer)

type renderer struct {
	logo       image.Image
	logoReader io.Reader
}

// WithLogo overlays an already decoded image at the symbol center.
func WithLogo(img image.Image) RenderOption {
	return func(r *renderer) { r.logo = img }
}

// WithLogoReader decodes a PNG or JPEG logo from rd. A decode failure
// is reported through Result.LogoErr while the symbol still renders.
func WithLogoReader(rd io.Reader) RenderOption {
	return func(r *renderer) { r.logoReader = rd }
}

// Render rasterizes the matrix according to cfg.
//
// Configuration and geometry errors abort the render with no partial
// result. Logo decode failures degrade gracefully: the symbol renders
// logoless and Result.LogoErr carries the cause.
func Render(m qrencode.Matrix, cfg style.Config, opts ...RenderOption) (Result, error) {
	r := renderer{}
	for _, opt := range opts {
		opt(&r)
	}

	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	dotColor, err := style.ParseHexColor(cfg.Color)
	if err != nil {
		return Result{}, err
	}

	geo, err := layout.Solve(m.Size(), cfg.TargetPx, cfg.SymbolPxGoal, cfg.MinModulePx, cfg.QuietModules)
	if err != nil {
		return Result{}, err
	}

	var logoErr error
	logo := r.logo
	if logo == nil && r.logoReader != nil {
		decoded, _, err := image.Decode(r.logoReader)
		if err != nil {
			logoErr = errors.Wrap(errors.ErrCodeLogoDecode, err, "decode logo image")
		} else {
			logo = decoded
		}
	}

	var reserve layout.Region
	if logo != nil {
		reserve = layout.ComputeReserve(m.Size(), geo.ModulePx, geo.TargetPx,
			cfg.CenterScale, cfg.ReservePaddingModules, cfg.ReserveModules)
	}

	img := paint.Paint(m, geo, reserve, dotColor, cfg.DotScale)
	img = paint.CompositeLogo(img, logo, geo, paint.LogoStyle{
		CenterScale:    cfg.CenterScale,
		PaddingModules: cfg.ReservePaddingModules,
		DrawBackdrop:   cfg.DrawLogoBackdrop,
		CornerRadiusPx: cfg.BackdropCornerRadiusPx,
	})

	return Result{
		Image:    img,
		Geometry: geo,
		Reserve:  reserve,
		LogoErr:  logoErr,
	}, nil
}
