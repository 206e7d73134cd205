package sketchdraw

import (
	"errors"

	"github.com/benoitkugler/oksketch/sketch"
)

// ErrNoSurface is returned when building a renderer without surface.
var ErrNoSurface = errors.New("sketchdraw: no paint surface")

// Renderer paints drawables on one surface.
// It is not safe for concurrent use, and callers sharing a surface
// between renderers must serialize the calls.
type Renderer struct {
	surface  Surface
	defaults sketch.Options // used by drawables without options
}

// NewRenderer returns a renderer painting on `s`.
// `defaults` is copied and used for every drawable which carries no options.
func NewRenderer(s Surface, defaults sketch.Options) (*Renderer, error) {
	if s == nil {
		return nil, ErrNoSurface
	}
	return &Renderer{surface: s, defaults: defaults.Clone()}, nil
}

// DefaultOptions returns a copy of the options used for drawables without options.
func (r *Renderer) DefaultOptions() sketch.Options { return r.defaults.Clone() }

// Surface returns the surface painted by r.
func (r *Renderer) Surface() Surface { return r.surface }

// Draw paints the operation sets of `d`, in order.
// Later sets are painted over earlier ones.
func (r *Renderer) Draw(d sketch.Drawable) {
	o := &r.defaults
	if d.Options != nil {
		o = d.Options
	}
	for _, set := range d.Sets {
		switch set.Role {
		case sketch.OutlineStroke:
			r.scoped(func() { r.drawOutline(set, o) })
		case sketch.DirectFill:
			r.scoped(func() { r.drawFill(set, o, sketch.FillRuleFor(d.Shape)) })
		case sketch.SketchFill:
			r.scoped(func() { r.drawSketchFill(set, o) })
		}
		// unknown roles are not painted
	}
}

// scoped brackets fn with Save and Restore,
// restoring the surface even if fn panics.
func (r *Renderer) scoped(fn func()) {
	r.surface.Save()
	defer r.surface.Restore()
	fn()
}

func (r *Renderer) drawOutline(set sketch.OperationSet, o *sketch.Options) {
	r.setStrokeColor(o.Stroke)
	r.surface.SetStrokeWidth(o.StrokeWidth)
	r.setDash(o.StrokeLineDash, o.StrokeLineDashOffset)
	r.drawOperationSet(set, sketch.NonZero)
}

func (r *Renderer) drawFill(set sketch.OperationSet, o *sketch.Options, rule sketch.FillRule) {
	if c, ok := sketch.ParseColor(o.Fill); ok {
		r.surface.SetFillColor(c)
	}
	r.drawOperationSet(set, rule)
}

// drawSketchFill strokes the hatch lines computed by the generator,
// using the fill color.
func (r *Renderer) drawSketchFill(set sketch.OperationSet, o *sketch.Options) {
	r.setDash(o.FillLineDash, o.FillLineDashOffset)
	r.setStrokeColor(o.Fill)
	r.surface.SetStrokeWidth(o.HatchWidth())
	r.drawOperationSet(set, sketch.NonZero)
}

// setStrokeColor leaves the surface color untouched
// when `c` is not a valid color.
func (r *Renderer) setStrokeColor(c string) {
	if col, ok := sketch.ParseColor(c); ok {
		r.surface.SetStrokeColor(col)
	}
}

// a zero offset is never sent, so that it can't be told apart
// from a missing one
func (r *Renderer) setDash(dash []float64, offset float64) {
	if dash != nil {
		r.surface.SetDash(dash)
	}
	if offset != 0 {
		r.surface.SetDashOffset(offset)
	}
}

// drawOperationSet replays the operations in a new path,
// which is then filled with `rule` for a DirectFill set, or stroked otherwise.
func (r *Renderer) drawOperationSet(set sketch.OperationSet, rule sketch.FillRule) {
	s := r.surface
	s.BeginPath()
	for _, op := range set.Ops {
		switch op := op.(type) {
		case sketch.MoveTo:
			s.MoveTo(op.X, op.Y)
		case sketch.LineTo:
			s.LineTo(op.X, op.Y)
		case sketch.CubicTo:
			s.CubicTo(op.C1X, op.C1Y, op.C2X, op.C2Y, op.X, op.Y)
		case sketch.Unknown:
			// dropped, so that new kinds of operations don't break rendering
		}
	}
	if set.Role == sketch.DirectFill {
		s.Fill(rule)
	} else {
		s.Stroke()
	}
}
