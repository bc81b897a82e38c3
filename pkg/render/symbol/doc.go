// Package symbol renders a styled QR symbol: it solves the pixel
// geometry for a module matrix on a fixed canvas, paints finder glyphs
// and circular dots, and optionally clears a centered region for a
// composited logo.
package symbol
