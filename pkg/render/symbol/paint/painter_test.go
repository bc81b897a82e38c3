package paint

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/maxwalkley/dotqr/pkg/qrencode"
	"github.com/maxwalkley/dotqr/pkg/render/symbol/layout"
)

var black = color.RGBA{A: 255}

// fillMatrix builds an n×n matrix whose darkness at each cell is
// decided by dark.
func fillMatrix(t *testing.T, n int, dark func(row, col int) bool) qrencode.Matrix {
	t.Helper()
	modules := make([][]bool, n)
	for row := range modules {
		modules[row] = make([]bool, n)
		for col := range modules[row] {
			modules[row][col] = dark(row, col)
		}
	}
	m, err := qrencode.NewMatrix(modules)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func solveGeometry(t *testing.T, n int) layout.Geometry {
	t.Helper()
	geo, err := layout.Solve(n, 250, 200, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	return geo
}

func TestPaintCanvasSize(t *testing.T) {
	m := fillMatrix(t, 21, func(row, col int) bool { return false })
	geo := solveGeometry(t, 21)

	img := Paint(m, geo, layout.Region{}, black, 0.82)

	b := img.Bounds()
	if b.Dx() != 250 || b.Dy() != 250 {
		t.Errorf("canvas = %dx%d, want 250x250", b.Dx(), b.Dy())
	}
}

func TestPaintTransparentBackground(t *testing.T) {
	m := fillMatrix(t, 21, func(row, col int) bool { return false })
	geo := solveGeometry(t, 21)

	img := Paint(m, geo, layout.Region{}, black, 0.82)

	// No dark modules, so only the three finder glyphs are painted.
	// Margin pixels stay fully transparent.
	for _, p := range [][2]int{{0, 0}, {125, 5}, {249, 249}} {
		if _, _, _, a := img.At(p[0], p[1]).RGBA(); a != 0 {
			t.Errorf("pixel (%d,%d) alpha = %d, want 0", p[0], p[1], a)
		}
	}
}

func TestPaintFinderGlyphs(t *testing.T) {
	m := fillMatrix(t, 21, func(row, col int) bool { return false })
	geo := solveGeometry(t, 21) // modulePx 8, margin 41

	img := Paint(m, geo, layout.Region{}, black, 0.82)

	center := func(row, col int) (int, int) {
		x, y := geo.ModuleOrigin(row, col)
		return x + geo.ModulePx/2, y + geo.ModulePx/2
	}

	tests := []struct {
		name     string
		row, col int
		painted  bool
	}{
		{"top-left ring corner", 0, 0, true},
		{"top-left ring gap", 1, 1, false},
		{"top-left center block", 3, 3, true},
		{"top-right ring corner", 0, 20, true},
		{"top-right center block", 3, 17, true},
		{"bottom-left ring corner", 20, 0, true},
		{"bottom-left center block", 17, 3, true},
		{"bottom-right corner stays empty", 20, 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := center(tt.row, tt.col)
			_, _, _, a := img.At(x, y).RGBA()
			if tt.painted && a != 0xffff {
				t.Errorf("module (%d,%d) alpha = %d, want opaque", tt.row, tt.col, a)
			}
			if !tt.painted && a != 0 {
				t.Errorf("module (%d,%d) alpha = %d, want transparent", tt.row, tt.col, a)
			}
		})
	}
}

func TestPaintDots(t *testing.T) {
	m := fillMatrix(t, 21, func(row, col int) bool { return true })
	geo := solveGeometry(t, 21)

	img := Paint(m, geo, layout.Region{}, black, 0.82)

	// A dark module outside the finders gets a dot; its center pixel
	// is fully inside the circle and therefore fully opaque.
	x, y := geo.ModuleOrigin(10, 10)
	cx, cy := x+geo.ModulePx/2, y+geo.ModulePx/2
	if got := img.RGBAAt(cx, cy); got != black {
		t.Errorf("dot center pixel = %v, want %v", got, black)
	}

	// The corner of the same cell stays clear: the dot diameter is
	// below the full module size.
	if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
		t.Errorf("dot cell corner alpha = %d, want 0", a)
	}
}

func TestPaintSkipsReserve(t *testing.T) {
	m := fillMatrix(t, 21, func(row, col int) bool { return true })
	geo := solveGeometry(t, 21)
	reserve := layout.ComputeReserve(21, geo.ModulePx, geo.TargetPx, 0.20, 1, 0)
	if !reserve.Present() {
		t.Fatal("expected a reserve region")
	}

	img := Paint(m, geo, reserve, black, 0.82)

	// Every dark module inside the reserve is left blank.
	for row := reserve.Start; row <= reserve.End; row++ {
		for col := reserve.Start; col <= reserve.End; col++ {
			x, y := geo.ModuleOrigin(row, col)
			cx, cy := x+geo.ModulePx/2, y+geo.ModulePx/2
			if _, _, _, a := img.At(cx, cy).RGBA(); a != 0 {
				t.Fatalf("reserved module (%d,%d) alpha = %d, want 0", row, col, a)
			}
		}
	}

	// Dark modules just outside the reserve are still painted.
	x, y := geo.ModuleOrigin(reserve.Start-1, 10)
	cx, cy := x+geo.ModulePx/2, y+geo.ModulePx/2
	if got := img.RGBAAt(cx, cy); got != black {
		t.Errorf("module above reserve = %v, want %v", got, black)
	}
}

func TestPaintDeterministic(t *testing.T) {
	m := fillMatrix(t, 21, func(row, col int) bool { return (row*31+col)%3 == 0 })
	geo := solveGeometry(t, 21)

	a := Paint(m, geo, layout.Region{}, black, 0.82)
	b := Paint(m, geo, layout.Region{}, black, 0.82)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("identical inputs produced different rasters")
	}
}

func TestPaintColor(t *testing.T) {
	m := fillMatrix(t, 21, func(row, col int) bool { return row == 10 && col == 10 })
	geo := solveGeometry(t, 21)
	blue := color.RGBA{B: 255, A: 255}

	img := Paint(m, geo, layout.Region{}, blue, 1.0)

	x, y := geo.ModuleOrigin(10, 10)
	cx, cy := x+geo.ModulePx/2, y+geo.ModulePx/2
	if got := img.RGBAAt(cx, cy); got != blue {
		t.Errorf("dot center pixel = %v, want %v", got, blue)
	}
}
