package sketchpdf

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/benoitkugler/oksketch/sketch"
	"github.com/benoitkugler/oksketch/sketchdraw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = sketch.Path{
	sketch.MoveTo{X: 0, Y: 0},
	sketch.LineTo{X: 10, Y: 0},
	sketch.LineTo{X: 10, Y: 10},
	sketch.LineTo{X: 0, Y: 10},
}

// render returns the uncompressed document
func render(t *testing.T, drawables ...sketch.Drawable) string {
	pdf := NewDocument(100, 100)
	pdf.SetCompression(false)
	renderer, err := sketchdraw.NewRenderer(New(pdf), sketch.DefaultOptions())
	require.NoError(t, err)
	for _, d := range drawables {
		renderer.Draw(d)
	}
	var b bytes.Buffer
	require.NoError(t, pdf.Output(&b))
	return b.String()
}

func countLines(doc, line string) int {
	n := 0
	for _, l := range strings.Split(doc, "\n") {
		if strings.TrimSpace(l) == line {
			n++
		}
	}
	return n
}

func TestFillRule(t *testing.T) {
	doc := render(t, sketch.Drawable{
		Shape:   sketch.ShapePolygon,
		Options: &sketch.Options{Fill: "red"},
		Sets:    []sketch.OperationSet{{Role: sketch.DirectFill, Ops: square}},
	})
	assert.Equal(t, 1, countLines(doc, "f*"))
	assert.Zero(t, countLines(doc, "f"))
	assert.Zero(t, countLines(doc, "S"))

	doc = render(t, sketch.Drawable{
		Shape:   sketch.ShapeEllipse,
		Options: &sketch.Options{Fill: "red"},
		Sets:    []sketch.OperationSet{{Role: sketch.DirectFill, Ops: square}},
	})
	assert.Equal(t, 1, countLines(doc, "f"))
	assert.Zero(t, countLines(doc, "f*"))
}

func TestStrokeAndSketch(t *testing.T) {
	doc := render(t, sketch.Drawable{
		Shape:   sketch.ShapeRectangle,
		Options: &sketch.Options{Stroke: "blue", StrokeWidth: 2, Fill: "green", FillWeight: -1},
		Sets: []sketch.OperationSet{
			{Role: sketch.SketchFill, Ops: square},
			{Role: sketch.OutlineStroke, Ops: square},
		},
	})
	assert.Equal(t, 2, countLines(doc, "S"))
	assert.Zero(t, countLines(doc, "f"))
	// each path is isolated
	assert.Equal(t, countLines(doc, "q"), countLines(doc, "Q"))
	assert.GreaterOrEqual(t, countLines(doc, "q"), 2)
}

func TestEmptyPath(t *testing.T) {
	doc := render(t, sketch.Drawable{
		Sets: []sketch.OperationSet{{Role: sketch.OutlineStroke}},
	})
	assert.Zero(t, countLines(doc, "S"))
}

func TestRenderToPDF(t *testing.T) {
	var b bytes.Buffer
	err := RenderToPDF([]sketch.Drawable{{
		Shape: sketch.ShapeLine,
		Sets:  []sketch.OperationSet{{Role: sketch.OutlineStroke, Ops: square}},
	}}, 50, 50, sketch.DefaultOptions(), &b)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b.Bytes(), []byte("%PDF-")))
}

func TestStyleStack(t *testing.T) {
	s := New(NewDocument(10, 10))
	s.Save()
	s.SetStrokeColor(color.RGBA{R: 0xff, A: 0xff})
	s.SetFillColor(color.Transparent)
	s.SetStrokeWidth(4)
	s.SetDash([]float64{1, 2})
	s.SetDashOffset(3)
	assert.Equal(t, style{
		stroke: color.NRGBA{R: 0xff, A: 0xff},
		width:  4, dash: []float64{1, 2}, dashOffset: 3,
	}, s.style)

	s.SetDash([]float64{-1})
	assert.Equal(t, []float64{1, 2}, s.style.dash)

	s.Restore()
	assert.Equal(t, defaultStyle, s.style)
}
