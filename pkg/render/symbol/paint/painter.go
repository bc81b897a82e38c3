package paint

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/maxwalkley/dotqr/pkg/qrencode"
	"github.com/maxwalkley/dotqr/pkg/render/symbol/layout"
)

// Paint rasterizes the matrix onto a fully transparent canvas of
// geo.TargetPx square. Finder glyphs are painted as exact rectangles at
// the three fixed corners; every other dark module becomes a filled
// circle of diameter modulePx*dotScale centered in its cell. Dark
// modules inside the reserve region are skipped so the logo area stays
// clear.
//
// Dot centers are placed with round-half-up pixel coordinates so
// placement stays symmetric across the grid.
func Paint(m qrencode.Matrix, geo layout.Geometry, reserve layout.Region, dot color.RGBA, dotScale float64) *image.RGBA {
	dc := gg.NewContext(geo.TargetPx, geo.TargetPx)
	dc.SetColor(dot)

	n := m.Size()
	for _, corner := range layout.FinderCorners(n) {
		drawFinderGlyph(dc, geo, corner[0], corner[1])
	}

	mp := float64(geo.ModulePx)
	radius := mp * dotScale / 2
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !m.Dark(row, col) {
				continue
			}
			if layout.InFinder(row, col, n) || reserve.Contains(row, col) {
				continue
			}
			x, y := geo.ModuleOrigin(row, col)
			cx := math.Round(float64(x) + mp/2)
			cy := math.Round(float64(y) + mp/2)
			dc.DrawCircle(cx, cy, radius)
			dc.Fill()
		}
	}

	return dc.Image().(*image.RGBA)
}

// drawFinderGlyph paints one finder pattern: an outer 7×7-module ring
// one module thick, built from four bars, plus a solid 3×3-module
// center block.
func drawFinderGlyph(dc *gg.Context, geo layout.Geometry, cornerRow, cornerCol int) {
	mp := float64(geo.ModulePx)
	x, y := geo.ModuleOrigin(cornerRow, cornerCol)
	fx, fy := float64(x), float64(y)
	side := mp * layout.FinderSize

	dc.DrawRectangle(fx, fy, side, mp)
	dc.DrawRectangle(fx, fy+side-mp, side, mp)
	dc.DrawRectangle(fx, fy+mp, mp, side-2*mp)
	dc.DrawRectangle(fx+side-mp, fy+mp, mp, side-2*mp)

	dc.DrawRectangle(fx+2*mp, fy+2*mp, 3*mp, 3*mp)
	dc.Fill()
}
