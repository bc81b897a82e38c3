package layout

// Region is a centered square of modules reserved for a logo overlay.
// Start and End are inclusive module indices. The zero value is the
// absent region: nothing reserved, Contains always false.
type Region struct {
	Start int
	End   int
	Count int
}

// Present reports whether any modules are reserved.
func (r Region) Present() bool { return r.Count > 0 }

// Contains reports whether the cell at (row, col) falls inside the
// reserved square.
func (r Region) Contains(row, col int) bool {
	if r.Count == 0 {
		return false
	}
	return row >= r.Start && row <= r.End && col >= r.Start && col <= r.End
}

// ReservePx returns the pixel footprint that must stay clear for a
// logo: the logo side implied by centerScale plus a cushion of
// paddingModules whole modules on each side, clamped to the canvas.
//
// The same derivation sizes the logo backdrop, so reservation and
// backdrop always agree.
func ReservePx(targetPx int, centerScale float64, paddingModules, modulePx int) int {
	px := int(float64(targetPx)*centerScale) + 2*paddingModules*modulePx
	if px > targetPx {
		px = targetPx
	}
	return px
}

// ComputeReserve converts the reserved pixel footprint into a centered
// square of whole modules on an n×n matrix.
//
// Reservation is expressed in whole modules so skipped cells align
// exactly with the module grid the painter uses; fractional-pixel
// reservations would clip modules partially and create scanning
// artifacts.
//
// A non-zero override takes precedence over the computed module count.
// Either value is clamped to [0, n]; a resulting count of zero means
// no reservation.
func ComputeReserve(n, modulePx, targetPx int, centerScale float64, paddingModules, override int) Region {
	count := override
	if count == 0 {
		px := ReservePx(targetPx, centerScale, paddingModules, modulePx)
		count = (px + modulePx - 1) / modulePx // ceiling division
	}
	if count < 0 {
		count = 0
	}
	if count > n {
		count = n
	}
	if count == 0 {
		return Region{}
	}

	start := (n - count) / 2
	return Region{
		Start: start,
		End:   start + count - 1,
		Count: count,
	}
}
