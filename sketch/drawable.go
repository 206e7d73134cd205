// Provides the intermediate representation of a hand-drawn shape:
// a shape tag, resolved style options and the operation sets needed
// to paint it. Drawables are produced by a generator and consumed,
// read only, by painting drivers such as oksketch/sketchdraw.
package sketch

import "fmt"

// Shape identifies the kind of shape a Drawable was generated from.
// Any value is accepted; only curves and polygons change the painting
// (see FillRuleFor).
type Shape string

const (
	ShapeLine       Shape = "line"
	ShapeRectangle  Shape = "rectangle"
	ShapeEllipse    Shape = "ellipse"
	ShapeCircle     Shape = "circle"
	ShapeLinearPath Shape = "linearPath"
	ShapePolygon    Shape = "polygon"
	ShapeArc        Shape = "arc"
	ShapeCurve      Shape = "curve"
	ShapePath       Shape = "path"
)

// Role is the rendering role of an operation set.
type Role uint8

const (
	// OutlineStroke strokes the path with the stroke style.
	OutlineStroke Role = iota
	// DirectFill fills the path as a solid region.
	DirectFill
	// SketchFill strokes hatch lines with the fill color.
	SketchFill
)

var roleNames = [...]string{
	OutlineStroke: "path",
	DirectFill:    "fillPath",
	SketchFill:    "fillSketch",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("<unknown Role %d>", r)
}

// ParseRole returns the role with the given wire name.
func ParseRole(s string) (Role, error) {
	for i, name := range roleNames {
		if name == s {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operation set type %q", s)
}

// OperationSet is an ordered group of operations, painted
// according to its role. Order is significant.
type OperationSet struct {
	Role Role
	Ops  Path
}

// Drawable describes one logical shape.
type Drawable struct {
	Shape Shape
	Sets  []OperationSet
	// Options may be nil, in which case the painter
	// uses its own defaults.
	Options *Options
}

// FillRule is the rule deciding which regions of a
// self-intersecting path are inside.
type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
)

func (f FillRule) String() string {
	switch f {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "<unknown FillRule>"
	}
}

// FillRuleFor returns the rule used to fill the solid regions of
// the given shape: even-odd for curves and polygons, nonzero otherwise.
func FillRuleFor(shape Shape) FillRule {
	switch shape {
	case ShapeCurve, ShapePolygon:
		return EvenOdd
	default:
		return NonZero
	}
}
