// Package paint rasterizes a module matrix onto an RGBA canvas: square
// finder glyphs at the three fixed corners, circular dots for every
// remaining dark module, and an optional logo composited over the
// reserved center.
package paint
