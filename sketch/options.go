package sketch

// NoColor disables the stroke paint.
const NoColor = "none"

// Options holds the resolved style of a Drawable.
type Options struct {
	// Stroke is a CSS color, or NoColor for a fully transparent outline.
	Stroke      string
	StrokeWidth float64
	// StrokeLineDash is nil when the outline is solid.
	StrokeLineDash []float64
	// StrokeLineDashOffset is only applied when non zero.
	StrokeLineDashOffset float64

	// Fill is empty when no fill paint is configured.
	Fill string
	// FillWeight is the width of the hatch lines. A negative value
	// means half the stroke width.
	FillWeight         float64
	FillLineDash       []float64
	FillLineDashOffset float64
}

// DefaultOptions returns the options used when nothing
// else is configured: a black, one unit wide outline.
func DefaultOptions() Options {
	return Options{
		Stroke:      "#000",
		StrokeWidth: 1,
		FillWeight:  -1,
	}
}

// HatchWidth returns the effective width of the hatch lines
// of a sketch fill.
func (o Options) HatchWidth() float64 {
	if o.FillWeight < 0 {
		return o.StrokeWidth / 2
	}
	return o.FillWeight
}

// Clone returns a deep copy of o.
func (o Options) Clone() Options {
	out := o
	if o.StrokeLineDash != nil {
		out.StrokeLineDash = append(make([]float64, 0, len(o.StrokeLineDash)), o.StrokeLineDash...)
	}
	if o.FillLineDash != nil {
		out.FillLineDash = append(make([]float64, 0, len(o.FillLineDash)), o.FillLineDash...)
	}
	return out
}
