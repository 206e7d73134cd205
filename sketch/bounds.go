package sketch

import "math"

// compute the bounding box of a path, needed to size a target surface

// Rect is an axis aligned rectangle.
// The zero value is the empty rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
	nonEmpty               bool
}

// Empty returns true if no point has been added to r.
func (r Rect) Empty() bool { return !r.nonEmpty }

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

func (r Rect) addPoint(x, y float64) Rect {
	if !r.nonEmpty {
		return Rect{x, y, x, y, true}
	}
	r.MinX, r.MinY = math.Min(r.MinX, x), math.Min(r.MinY, y)
	r.MaxX, r.MaxY = math.Max(r.MaxX, x), math.Max(r.MaxY, y)
	return r
}

// Union returns the smallest rectangle containing r and other.
func (r Rect) Union(other Rect) Rect {
	if other.Empty() {
		return r
	}
	r = r.addPoint(other.MinX, other.MinY)
	return r.addPoint(other.MaxX, other.MaxY)
}

// Bounds returns the bounding box of the path.
// Curves are bounded exactly, not by their control points.
// Unknown operations are ignored.
func (p Path) Bounds() Rect {
	var (
		out    Rect
		cx, cy float64 // current point
	)
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			out = out.addPoint(op.X, op.Y)
			cx, cy = op.X, op.Y
		case LineTo:
			out = out.addPoint(cx, cy).addPoint(op.X, op.Y)
			cx, cy = op.X, op.Y
		case CubicTo:
			out = out.Union(cubicBezier{cx, cy, op.C1X, op.C1Y, op.C2X, op.C2Y, op.X, op.Y}.bounds())
			cx, cy = op.X, op.Y
		}
	}
	return out
}

// Bounds returns the bounding box of all the operation sets of d.
// The stroke width is not taken into account.
func (d Drawable) Bounds() Rect {
	var out Rect
	for _, set := range d.Sets {
		out = out.Union(set.Ops.Bounds())
	}
	return out
}

// p0, c1, c2, p3 as x, y pairs
type cubicBezier [8]float64

func (cu cubicBezier) bounds() Rect {
	aX, bX, cX := cubicDerivative(cu[0], cu[2], cu[4], cu[6])
	aY, bY, cY := cubicDerivative(cu[1], cu[3], cu[5], cu[7])

	var out Rect
	// add begin and end point
	ts := append(append(quadraticRoots(aX, bX, cX), 0, 1), quadraticRoots(aY, bY, cY)...)
	for _, t := range ts {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		out = out.addPoint(bezierSpline(cu[0], cu[2], cu[4], cu[6], t), bezierSpline(cu[1], cu[3], cu[5], cu[7], t))
	}
	return out
}

// cubic polynomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as at^2 + bt + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		// linear derivative
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
