package paint

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"

	"github.com/maxwalkley/dotqr/pkg/render/symbol/layout"
)

// LogoStyle carries the styling knobs the compositor needs beyond the
// solved geometry.
type LogoStyle struct {
	// CenterScale is the fraction of the canvas side the resized logo
	// occupies.
	CenterScale float64

	// PaddingModules is the whole-module cushion around the logo; the
	// backdrop footprint includes it so backdrop and reservation agree.
	PaddingModules int

	// DrawBackdrop paints an opaque white rounded rectangle beneath
	// the logo.
	DrawBackdrop bool

	// CornerRadiusPx is the backdrop corner radius.
	CornerRadiusPx int
}

// CompositeLogo scales the logo to floor(targetPx*CenterScale) square
// with Lanczos resampling and alpha-composites it over the center of
// the canvas. The logo is placed by pixel-center alignment, not module
// alignment; the reserve region is sized elsewhere to contain it.
//
// With DrawBackdrop set, an opaque white rounded rectangle sized to the
// reserved pixel footprint is painted first, beneath the logo.
//
// A nil logo leaves the canvas untouched.
func CompositeLogo(canvas *image.RGBA, logo image.Image, geo layout.Geometry, st LogoStyle) *image.RGBA {
	if logo == nil {
		return canvas
	}

	if st.DrawBackdrop {
		drawBackdrop(canvas, geo, st)
	}

	side := int(float64(geo.TargetPx) * st.CenterScale)
	if side < 1 {
		side = 1
	}
	scaled := resize.Resize(uint(side), uint(side), logo, resize.Lanczos3)

	x := (geo.TargetPx - side) / 2
	y := (geo.TargetPx - side) / 2
	rect := image.Rect(x, y, x+side, y+side)
	draw.Draw(canvas, rect, scaled, scaled.Bounds().Min, draw.Over)

	return canvas
}

func drawBackdrop(canvas *image.RGBA, geo layout.Geometry, st LogoStyle) {
	footprint := layout.ReservePx(geo.TargetPx, st.CenterScale, st.PaddingModules, geo.ModulePx)
	if footprint < 1 {
		return
	}

	dc := gg.NewContext(geo.TargetPx, geo.TargetPx)
	dc.SetColor(color.White)
	x := float64(geo.TargetPx-footprint) / 2
	dc.DrawRoundedRectangle(x, x, float64(footprint), float64(footprint), float64(st.CornerRadiusPx))
	dc.Fill()

	draw.Draw(canvas, canvas.Bounds(), dc.Image(), image.Point{}, draw.Over)
}
