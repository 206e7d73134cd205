package sketch

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperation(t *testing.T) {
	assert.Equal(t, MoveTo{1, 2}, NewOperation("move", []float64{1, 2}))
	assert.Equal(t, LineTo{3, 4}, NewOperation("lineTo", []float64{3, 4}))
	assert.Equal(t, CubicTo{1, 2, 3, 4, 5, 6}, NewOperation("bcurveTo", []float64{1, 2, 3, 4, 5, 6}))

	// wrong payload size
	assert.Equal(t, Unknown{Kind: "move", Data: []float64{1, 2, 3}}, NewOperation("move", []float64{1, 2, 3}))
	assert.Equal(t, Unknown{Kind: "qcurveTo", Data: []float64{1, 2, 3, 4}}, NewOperation("qcurveTo", []float64{1, 2, 3, 4}))
}

func TestRole(t *testing.T) {
	for _, r := range []Role{OutlineStroke, DirectFill, SketchFill} {
		got, err := ParseRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	_, err := ParseRole("fillHachure")
	assert.Error(t, err)
	assert.Equal(t, "<unknown Role 7>", Role(7).String())
}

func TestFillRuleFor(t *testing.T) {
	assert.Equal(t, EvenOdd, FillRuleFor(ShapeCurve))
	assert.Equal(t, EvenOdd, FillRuleFor(ShapePolygon))
	for _, s := range []Shape{ShapeLine, ShapeRectangle, ShapeEllipse, ShapeCircle,
		ShapeLinearPath, ShapeArc, ShapePath, "custom"} {
		assert.Equal(t, NonZero, FillRuleFor(s), s)
	}
}

func TestHatchWidth(t *testing.T) {
	o := Options{StrokeWidth: 3, FillWeight: -1}
	assert.Equal(t, 1.5, o.HatchWidth())
	o.FillWeight = 0
	assert.Equal(t, 0., o.HatchWidth())
	o.FillWeight = 2.5
	assert.Equal(t, 2.5, o.HatchWidth())
}

func TestClone(t *testing.T) {
	o := Options{StrokeLineDash: []float64{1, 2}}
	c := o.Clone()
	c.StrokeLineDash[0] = 5
	assert.Equal(t, 1., o.StrokeLineDash[0])
	assert.Nil(t, c.FillLineDash)

	// an empty pattern is a solid line, not a missing one
	o = Options{FillLineDash: []float64{}}
	assert.NotNil(t, o.Clone().FillLineDash)
}

func TestParseColor(t *testing.T) {
	for s, exp := range map[string]color.Color{
		"none":              Transparent,
		"transparent":       Transparent,
		"#f00":              color.NRGBA{R: 0xff, A: 0xff},
		"#00ff0080":         color.NRGBA{G: 0xff, A: 0x80},
		"#1234":             color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44},
		"rgb(10, 20, 30)":   color.NRGBA{R: 10, G: 20, B: 30, A: 0xff},
		"rgba(255,0,0,0.5)": color.NRGBA{R: 255, A: 128},
		"rgb(100%, 0%, 0%)": color.NRGBA{R: 255, A: 0xff},
		"  Red ":            color.RGBA{R: 0xff, A: 0xff},
		"cornflowerblue":    color.RGBA{R: 0x64, G: 0x95, B: 0xed, A: 0xff},
	} {
		got, ok := ParseColor(s)
		if assert.True(t, ok, s) {
			assert.Equal(t, exp, got, s)
		}
	}
	for _, s := range []string{"", "#12", "#zzzzzz", "rgb(1,2)", "notacolor", "rgb(1,2,3"} {
		_, ok := ParseColor(s)
		assert.False(t, ok, s)
	}
}

func TestBounds(t *testing.T) {
	var p Path
	p.Start(0, 0)
	p.Line(10, 5)
	p.Line(-2, 3)
	b := p.Bounds()
	assert.Equal(t, Rect{-2, 0, 10, 5, true}, b)
	assert.Equal(t, 12., b.Width())
	assert.Equal(t, 5., b.Height())

	// symmetric arch: the extremum is at t = 0.5, below the control points
	arch := Path{MoveTo{0, 0}, CubicTo{0, 10, 10, 10, 10, 0}}
	b = arch.Bounds()
	assert.InDelta(t, 7.5, b.MaxY, 1e-9)
	assert.InDelta(t, 0, b.MinX, 1e-9)
	assert.InDelta(t, 10, b.MaxX, 1e-9)

	assert.True(t, Path{Unknown{Kind: "x"}}.Bounds().Empty())

	d := Drawable{Sets: []OperationSet{
		{Role: OutlineStroke, Ops: Path{MoveTo{1, 1}, LineTo{2, 2}}},
		{Role: DirectFill, Ops: Path{MoveTo{-1, 4}, LineTo{0, 0}}},
	}}
	assert.Equal(t, Rect{-1, 0, 2, 4, true}, d.Bounds())
	assert.True(t, Drawable{}.Bounds().Empty())
}

func TestToSVGPath(t *testing.T) {
	p := Path{MoveTo{0, 0}, Unknown{Kind: "z"}, LineTo{1, 2}, CubicTo{1, 2, 3, 4, 5, 6}}
	assert.Equal(t, "M0.000,0.000 L1.000,2.000 C1.000,2.000,3.000,4.000,5.000,6.000", p.String())
}
