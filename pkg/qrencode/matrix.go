package qrencode

import "github.com/maxwalkley/dotqr/pkg/errors"

// minMatrixSize is the side length of the smallest standard QR version.
const minMatrixSize = 21

// Matrix is an immutable N×N grid of QR modules, true meaning a dark
// module. N is odd and at least 21, with finder patterns anchored at
// the top-left, top-right, and bottom-left corners per the QR standard.
//
// The layout engine consumes this contract directly, so synthetic
// matrices (for tests) and encoder output are interchangeable.
type Matrix struct {
	modules [][]bool
}

// NewMatrix validates modules against the contract and wraps it in a
// Matrix. The slice is retained, not copied; callers must not mutate
// it afterwards.
func NewMatrix(modules [][]bool) (Matrix, error) {
	n := len(modules)
	if n < minMatrixSize {
		return Matrix{}, errors.New(errors.ErrCodeInvalidMatrix,
			"matrix side %d below minimum %d", n, minMatrixSize)
	}
	if n%2 == 0 {
		return Matrix{}, errors.New(errors.ErrCodeInvalidMatrix,
			"matrix side %d must be odd", n)
	}
	for i, row := range modules {
		if len(row) != n {
			return Matrix{}, errors.New(errors.ErrCodeInvalidMatrix,
				"matrix row %d has %d columns, want %d", i, len(row), n)
		}
	}
	return Matrix{modules: modules}, nil
}

// Size returns the side length N.
func (m Matrix) Size() int { return len(m.modules) }

// Dark reports whether the module at (row, col) is dark.
func (m Matrix) Dark(row, col int) bool { return m.modules[row][col] }
