// Implements a raster backend to render drawables,
// by wrapping rasterx.
package sketchraster

import (
	"image"
	"image/color"

	"github.com/benoitkugler/oksketch/sketch"
	"github.com/benoitkugler/oksketch/sketchdraw"
	"github.com/srwiley/rasterx"
	"github.com/srwiley/scanx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

var _ sketchdraw.Surface = (*Surface)(nil) // assert interface conformance

// miter limit of the stroke joins, as in an HTML canvas
const miterLimit = 10

// style is the state saved and restored by the surface
type style struct {
	stroke, fill color.Color
	width        float64
	dash         []float64
	dashOffset   float64
}

// defaultStyle matches a fresh HTML canvas context
var defaultStyle = style{
	stroke: color.Black,
	fill:   color.Black,
	width:  1,
}

// Surface paints into an image.
// The path is recorded, then replayed into the filler or the dasher
// when it is painted.
type Surface struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance

	path  sketch.Path
	style style
	stack []style
}

// New returns a surface painting into `img`, with a scanx scanner,
// which supports both fill rules.
func New(img *image.RGBA) *Surface {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := scanx.NewScanner(scanx.NewImgSpanner(img), w, h)
	return NewSurface(w, h, scanner)
}

// NewSurface returns a surface using the given scanner.
// For instance, rasterx.NewScannerGV paints on any draw.Image,
// but always fills with the nonzero rule.
func NewSurface(width, height int, scanner rasterx.Scanner) *Surface {
	return &Surface{
		dasher: rasterx.NewDasher(width, height, scanner),
		filler: rasterx.NewFiller(width, height, scanner),
		style:  defaultStyle,
	}
}

// RenderToImage paints the drawables, in order, on an image of the given size,
// initially filled with `background` (which may be nil for a transparent image).
func RenderToImage(drawables []sketch.Drawable, width, height int, background color.Color, defaults sketch.Options) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}
	renderer, err := sketchdraw.NewRenderer(New(img), defaults)
	if err != nil {
		return nil, err
	}
	for _, d := range drawables {
		renderer.Draw(d)
	}
	return img, nil
}

func (s *Surface) Save() {
	saved := s.style
	saved.dash = append([]float64(nil), s.style.dash...)
	s.stack = append(s.stack, saved)
}

// Restore is a no-op when nothing is saved.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.style = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *Surface) SetStrokeColor(c color.Color) { s.style.stroke = c }

// SetStrokeWidth ignores negative, infinite or NaN widths.
func (s *Surface) SetStrokeWidth(w float64) {
	if w >= 0 && w < maxFixed {
		s.style.width = w
	}
}

// SetDash ignores patterns with negative values.
// Odd length patterns are repeated.
func (s *Surface) SetDash(dash []float64) {
	if d, ok := normalizeDash(dash); ok {
		s.style.dash = d
	}
}

func (s *Surface) SetDashOffset(offset float64) { s.style.dashOffset = offset }

func (s *Surface) SetFillColor(c color.Color) { s.style.fill = c }

func (s *Surface) BeginPath() { s.path.Clear() }

func (s *Surface) MoveTo(x, y float64) { s.path.Start(x, y) }

func (s *Surface) LineTo(x, y float64) { s.path.Line(x, y) }

func (s *Surface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.path.CubeBezier(c1x, c1y, c2x, c2y, x, y)
}

func (s *Surface) Stroke() {
	if s.style.width == 0 {
		return
	}
	s.dasher.Clear()
	s.dasher.SetStroke(
		fixed.Int26_6(s.style.width*64), fixed.Int26_6(miterLimit*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter,
		s.style.dash, s.style.dashOffset,
	)
	s.replay(s.dasher)
	s.dasher.Scanner.SetColor(s.style.stroke)
	s.dasher.Draw()
}

func (s *Surface) Fill(rule sketch.FillRule) {
	s.filler.Clear()
	s.filler.SetWinding(rule == sketch.NonZero)
	s.replay(s.filler)
	s.filler.Scanner.SetColor(s.style.fill)
	s.filler.Draw()
	s.filler.SetWinding(true) // default is true
}

// replay adds the recorded path to `a`
func (s *Surface) replay(a rasterx.Adder) {
	for _, op := range s.path {
		switch op := op.(type) {
		case sketch.MoveTo:
			a.Stop(false) // implicit close if currently in path.
			a.Start(toFixedP(op.X, op.Y))
		case sketch.LineTo:
			a.Line(toFixedP(op.X, op.Y))
		case sketch.CubicTo:
			a.CubeBezier(toFixedP(op.C1X, op.C1Y), toFixedP(op.C2X, op.C2Y), toFixedP(op.X, op.Y))
		}
	}
	a.Stop(false)
}

// largest value representable by a fixed.Int26_6
const maxFixed = 1 << 25

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// normalizeDash follows the HTML canvas rules: a pattern with a negative
// or non finite value is invalid, odd length patterns are repeated,
// and an all zero pattern is solid.
func normalizeDash(dash []float64) ([]float64, bool) {
	allZeros := true
	for _, d := range dash {
		if !(d >= 0 && d < maxFixed) {
			return nil, false
		}
		if d != 0 {
			allZeros = false
		}
	}
	if allZeros {
		return nil, true
	}
	out := append([]float64(nil), dash...)
	if len(out)%2 == 1 {
		out = append(out, dash...)
	}
	return out, true
}
