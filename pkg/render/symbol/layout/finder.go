package layout

// FinderSize is the side length in modules of a QR finder pattern.
const FinderSize = 7

// InFinder reports whether the cell at (row, col) of an n×n matrix
// lies inside one of the three finder patterns: the 7×7 blocks
// anchored at the top-left, top-right, and bottom-left corners.
//
// The bottom-right corner has no finder; that asymmetry is how
// scanners orient the symbol and must never be "symmetrized".
func InFinder(row, col, n int) bool {
	inTL := row < FinderSize && col < FinderSize
	inTR := row < FinderSize && col >= n-FinderSize
	inBL := row >= n-FinderSize && col < FinderSize
	return inTL || inTR || inBL
}

// FinderCorners returns the module coordinates of the top-left cell of
// each finder pattern in an n×n matrix, in top-left, top-right,
// bottom-left order.
func FinderCorners(n int) [3][2]int {
	return [3][2]int{
		{0, 0},
		{0, n - FinderSize},
		{n - FinderSize, 0},
	}
}
