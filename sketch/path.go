package sketch

import (
	"fmt"
	"strings"
)

// This file defines the primitive path operations produced by the generator

// Operation groups the path construction commands.
// The set of implementations is closed: MoveTo, LineTo, CubicTo and Unknown.
type Operation interface {
	isOperation()
}

// MoveTo starts a new subpath.
type MoveTo struct{ X, Y float64 }

// LineTo extends the current subpath with a straight segment.
type LineTo struct{ X, Y float64 }

// CubicTo extends the current subpath with a cubic bezier curve,
// using two control points and an end point.
type CubicTo struct {
	C1X, C1Y float64
	C2X, C2Y float64
	X, Y     float64
}

// Unknown stores an operation whose kind is not understood,
// or whose payload has the wrong size.
// It is never painted.
type Unknown struct {
	Kind string
	Data []float64
}

func (MoveTo) isOperation()  {}
func (LineTo) isOperation()  {}
func (CubicTo) isOperation() {}
func (Unknown) isOperation() {}

// wire names of the operations
const (
	kindMove  = "move"
	kindLine  = "lineTo"
	kindCubic = "bcurveTo"
)

// NewOperation builds an operation from its wire form.
// An unrecognized kind, or a payload of the wrong length, returns an Unknown.
func NewOperation(kind string, data []float64) Operation {
	switch {
	case kind == kindMove && len(data) == 2:
		return MoveTo{data[0], data[1]}
	case kind == kindLine && len(data) == 2:
		return LineTo{data[0], data[1]}
	case kind == kindCubic && len(data) == 6:
		return CubicTo{data[0], data[1], data[2], data[3], data[4], data[5]}
	default:
		return Unknown{Kind: kind, Data: append([]float64(nil), data...)}
	}
}

// Path describes a sequence of basic operations.
type Path []Operation

// ToSVGPath returns a string representation of the path.
// Unknown operations are skipped.
func (p Path) ToSVGPath() string {
	chunks := make([]string, 0, len(p))
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks = append(chunks, fmt.Sprintf("M%4.3f,%4.3f", op.X, op.Y))
		case LineTo:
			chunks = append(chunks, fmt.Sprintf("L%4.3f,%4.3f", op.X, op.Y))
		case CubicTo:
			chunks = append(chunks, fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f",
				op.C1X, op.C1Y, op.C2X, op.C2Y, op.X, op.Y))
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new subpath at the given point.
func (p *Path) Start(x, y float64) {
	*p = append(*p, MoveTo{x, y})
}

// Line adds a linear segment to the current subpath.
func (p *Path) Line(x, y float64) {
	*p = append(*p, LineTo{x, y})
}

// CubeBezier adds a cubic segment to the current subpath.
func (p *Path) CubeBezier(c1x, c1y, c2x, c2y, x, y float64) {
	*p = append(*p, CubicTo{c1x, c1y, c2x, c2y, x, y})
}
