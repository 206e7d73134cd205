// Implements a PDF backend to render drawables,
// by wrapping github.com/jung-kurt/gofpdf.
package sketchpdf

import (
	"image/color"
	"io"

	"github.com/benoitkugler/oksketch/sketch"
	"github.com/benoitkugler/oksketch/sketchdraw"
	"github.com/jung-kurt/gofpdf"
)

var _ sketchdraw.Surface = (*Surface)(nil) // assert interface conformance

type style struct {
	stroke, fill color.NRGBA
	width        float64
	dash         []float64
	dashOffset   float64
}

var defaultStyle = style{
	stroke: color.NRGBA{A: 0xff},
	fill:   color.NRGBA{A: 0xff},
	width:  1,
}

// Surface writes to a page of a gofpdf document, in the
// unit of the document, with the origin at the top left corner.
// Every painted path is written inside its own graphic state (q/Q),
// with its complete style, so that other users of the document are not affected.
type Surface struct {
	pdf *gofpdf.Fpdf

	path  sketch.Path
	style style
	stack []style
}

// New returns a surface which will
// write to the current page of `pdf`.
func New(pdf *gofpdf.Fpdf) *Surface {
	return &Surface{pdf: pdf, style: defaultStyle}
}

// NewDocument returns a document with one page of the
// given size, in points.
func NewDocument(width, height float64) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.AddPage()
	return pdf
}

// RenderToPDF paints the drawables, in order, on a page
// of the given size (in points) and writes the document to `out`.
func RenderToPDF(drawables []sketch.Drawable, width, height float64, defaults sketch.Options, out io.Writer) error {
	pdf := NewDocument(width, height)
	renderer, err := sketchdraw.NewRenderer(New(pdf), defaults)
	if err != nil {
		return err
	}
	for _, d := range drawables {
		renderer.Draw(d)
	}
	return pdf.Output(out)
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (s *Surface) Save() {
	saved := s.style
	saved.dash = append([]float64(nil), s.style.dash...)
	s.stack = append(s.stack, saved)
}

func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.style = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *Surface) SetStrokeColor(c color.Color) { s.style.stroke = toNRGBA(c) }

func (s *Surface) SetStrokeWidth(w float64) {
	if w >= 0 {
		s.style.width = w
	}
}

func (s *Surface) SetDash(dash []float64) {
	for _, d := range dash {
		if d < 0 {
			return
		}
	}
	s.style.dash = append([]float64(nil), dash...)
}

func (s *Surface) SetDashOffset(offset float64) { s.style.dashOffset = offset }

func (s *Surface) SetFillColor(c color.Color) { s.style.fill = toNRGBA(c) }

func (s *Surface) BeginPath() { s.path.Clear() }

func (s *Surface) MoveTo(x, y float64) { s.path.Start(x, y) }

func (s *Surface) LineTo(x, y float64) { s.path.Line(x, y) }

func (s *Surface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.path.CubeBezier(c1x, c1y, c2x, c2y, x, y)
}

func (s *Surface) Stroke() {
	if len(s.path) == 0 {
		return
	}
	c := s.style.stroke
	s.pdf.TransformBegin()
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetAlpha(float64(c.A)/255, "Normal")
	s.pdf.SetLineWidth(s.style.width)
	s.pdf.SetDashPattern(s.style.dash, s.style.dashOffset)
	s.writePath()
	s.pdf.DrawPath("D")
	s.pdf.TransformEnd()
}

func (s *Surface) Fill(rule sketch.FillRule) {
	if len(s.path) == 0 {
		return
	}
	styleStr := "F*"
	if rule == sketch.NonZero {
		styleStr = "F"
	}
	c := s.style.fill
	s.pdf.TransformBegin()
	s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetAlpha(float64(c.A)/255, "Normal")
	s.writePath()
	s.pdf.DrawPath(styleStr)
	s.pdf.TransformEnd()
}

func (s *Surface) writePath() {
	for _, op := range s.path {
		switch op := op.(type) {
		case sketch.MoveTo:
			s.pdf.MoveTo(op.X, op.Y)
		case sketch.LineTo:
			s.pdf.LineTo(op.X, op.Y)
		case sketch.CubicTo:
			s.pdf.CurveBezierCubicTo(op.C1X, op.C1Y, op.C2X, op.C2Y, op.X, op.Y)
		}
	}
}
