// Package layout computes the pixel geometry of a styled QR symbol.
//
// # Overview
//
// The layout engine answers three questions, all in integer pixel and
// module coordinates so results are reproducible across platforms:
//
//  1. Geometry ([Solve]): how many pixels per module, and how much
//     margin per side, so that the symbol approaches a pixel-size goal
//     while keeping a minimum module size and an enforced quiet zone.
//  2. Finder membership ([InFinder]): which matrix cells belong to the
//     three fixed 7×7 finder patterns rather than to data.
//  3. Reservation ([ComputeReserve]): which centered square of modules
//     is left undrawn to make room for an overlaid logo.
//
// The solver is a monotonic downward search: it starts from the module
// size implied by the symbol pixel goal and decrements until the
// remaining margin can hold the required quiet zone. Decreasing the
// module size shrinks the symbol footprint, freeing margin, so the
// search converges or exhausts the minimum module size; no oscillation
// is possible.
//
// All division is floor division. Layout never inspects module
// darkness; it is purely a function of the matrix side N and the size
// constraints, which keeps it testable with synthetic matrices.
package layout
