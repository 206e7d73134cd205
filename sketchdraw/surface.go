package sketchdraw

import (
	"image/color"

	"github.com/benoitkugler/oksketch/sketch"
)

// Surface knows how to do the actual paint operations
// but doesn't need any knowledge of drawables.
// Coordinates are sent untransformed.
type Surface interface {
	// Save pushes the current style state (colors, width, dash).
	Save()
	// Restore pops the style state saved by the matching Save.
	Restore()

	SetStrokeColor(c color.Color)
	SetStrokeWidth(w float64)
	// SetDash sets the dash pattern used by the next strokes.
	SetDash(dash []float64)
	// SetDashOffset sets the starting offset into the dash pattern.
	SetDashOffset(offset float64)

	SetFillColor(c color.Color)

	// BeginPath discards the current path, if any.
	BeginPath()
	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)

	// Stroke paints the current path with the stroke style.
	Stroke()
	// Fill paints the inside of the current path, as defined by rule,
	// with the fill color.
	Fill(rule sketch.FillRule)
}
