package layout

import "github.com/maxwalkley/dotqr/pkg/errors"

// Geometry is the solved pixel layout for one symbol render.
// All coordinates are in whole pixels.
type Geometry struct {
	Modules       int // matrix side N
	TargetPx      int // output canvas side
	ModulePx      int // pixels per module
	MarginPerSide int // blank pixels on each side of the symbol
}

// SymbolPx returns the pixel footprint of the symbol without margins.
func (g Geometry) SymbolPx() int { return g.ModulePx * g.Modules }

// Offset returns the pixel position of the symbol's top-left corner.
// Margins are symmetric, so the offset is the same on both axes.
func (g Geometry) Offset() int { return g.MarginPerSide }

// ModuleOrigin returns the top-left pixel of the module at (row, col).
func (g Geometry) ModuleOrigin(row, col int) (x, y int) {
	return g.MarginPerSide + col*g.ModulePx, g.MarginPerSide + row*g.ModulePx
}

// Solve derives the module pixel size and per-side margin for a symbol
// of n modules on a targetPx canvas.
//
// The search starts at max(minModulePx, symbolPxGoal/n) and decrements
// until the leftover margin per side, (targetPx − modulePx*n)/2, can
// hold quietModules whole modules. It fails with an
// INSUFFICIENT_CANVAS error when no module size at or above
// minModulePx satisfies the quiet-zone constraint; the caller must
// relax a constraint, the solver never clamps silently.
func Solve(n, targetPx, symbolPxGoal, minModulePx, quietModules int) (Geometry, error) {
	modulePx := symbolPxGoal / n
	if modulePx < minModulePx {
		modulePx = minModulePx
	}

	for {
		marginPerSide := (targetPx - modulePx*n) / 2
		if marginPerSide >= quietModules*modulePx {
			return Geometry{
				Modules:       n,
				TargetPx:      targetPx,
				ModulePx:      modulePx,
				MarginPerSide: marginPerSide,
			}, nil
		}
		modulePx--
		if modulePx < minModulePx {
			return Geometry{}, errors.New(errors.ErrCodeInsufficientCanvas,
				"target %dpx cannot hold %d modules plus a %d-module quiet zone at module size >= %dpx; raise the target size or relax the quiet zone",
				targetPx, n, quietModules, minModulePx)
		}
	}
}
