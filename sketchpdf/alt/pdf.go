// Alternative implementation of PDF rendering, writing
// content stream operations with github.com/benoitkugler/pdf.
package alt

import (
	"image/color"

	"github.com/benoitkugler/oksketch/sketch"
	"github.com/benoitkugler/oksketch/sketchdraw"
	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
)

// assert interface conformance
var _ sketchdraw.Surface = (*Surface)(nil)

// Surface maps the surface state to the PDF graphic state:
// Save and Restore are q and Q, and style changes are written
// as soon as they happen.
type Surface struct {
	pdf *contentstream.Appearance

	// opacity states are shared by all the paths
	fillOpacityStates   map[float64]*model.GraphicState
	strokeOpacityStates map[float64]*model.GraphicState

	dash       []float64 // needed since dash and offset are written together
	dashOffset float64
	dashStack  []dashState

	hasPath bool
}

type dashState struct {
	dash   []float64
	offset float64
}

// New return a surface which will
// write to the given appearance stream.
func New(cs *contentstream.Appearance) *Surface {
	return &Surface{
		pdf:                 cs,
		fillOpacityStates:   make(map[float64]*model.GraphicState),
		strokeOpacityStates: make(map[float64]*model.GraphicState),
	}
}

// RenderToPDF paints the drawables on a page of the given size
// (in points) and writes the document into the given file.
// The y axis goes down, as for the other surfaces.
func RenderToPDF(drawables []sketch.Drawable, width, height float64, defaults sketch.Options, pdfName string) error {
	pdf := contentstream.NewAppearance(width, height)
	renderer, err := sketchdraw.NewRenderer(New(&pdf), defaults)
	if err != nil {
		return err
	}
	pdf.SaveState()
	pdf.Ops(contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, 0, height}})
	for _, d := range drawables {
		renderer.Draw(d)
	}
	if err := pdf.RestoreState(); err != nil {
		return err
	}

	var doc model.Document
	doc.Catalog.Pages.Kids = append(doc.Catalog.Pages.Kids, pdf.ToPageObject(true))
	return doc.WriteFile(pdfName, nil)
}

// Save also saves the colors cached by the appearance,
// so that they are written again after Restore.
func (s *Surface) Save() {
	s.dashStack = append(s.dashStack, dashState{s.dash, s.dashOffset})
	s.pdf.SaveState()
}

// Restore is a no-op when nothing is saved.
func (s *Surface) Restore() {
	if len(s.dashStack) == 0 {
		return
	}
	last := s.dashStack[len(s.dashStack)-1]
	s.dashStack = s.dashStack[:len(s.dashStack)-1]
	s.dash, s.dashOffset = last.dash, last.offset
	_ = s.pdf.RestoreState() // balanced by the dash stack
}

// returns the cached graphic state for the alpha channel of `c`
func opacityState(states map[float64]*model.GraphicState, c color.NRGBA, stroke bool) *model.GraphicState {
	opacity := float64(c.A) / 255
	gs, ok := states[opacity]
	if !ok {
		gs = &model.GraphicState{BM: []model.Name{"Normal"}}
		if stroke {
			gs.CA = model.ObjFloat(opacity)
		} else {
			gs.Ca = model.ObjFloat(opacity)
		}
		states[opacity] = gs
	}
	return gs
}

func (s *Surface) SetStrokeColor(c color.Color) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	s.pdf.SetColorStroke(color.RGBA{R: nc.R, G: nc.G, B: nc.B, A: 0xff})
	name := s.pdf.AddExtGState(opacityState(s.strokeOpacityStates, nc, true))
	s.pdf.Ops(contentstream.OpSetExtGState{Dict: name})
}

func (s *Surface) SetFillColor(c color.Color) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	s.pdf.SetColorFill(color.RGBA{R: nc.R, G: nc.G, B: nc.B, A: 0xff})
	name := s.pdf.AddExtGState(opacityState(s.fillOpacityStates, nc, false))
	s.pdf.Ops(contentstream.OpSetExtGState{Dict: name})
}

func (s *Surface) SetStrokeWidth(w float64) {
	s.pdf.Ops(contentstream.OpSetLineWidth{W: w})
}

func (s *Surface) SetDash(dash []float64) {
	s.dash = append([]float64(nil), dash...)
	s.writeDash()
}

func (s *Surface) SetDashOffset(offset float64) {
	s.dashOffset = offset
	s.writeDash()
}

func (s *Surface) writeDash() {
	s.pdf.Ops(contentstream.OpSetDash{Dash: model.DashPattern{
		Array: s.dash,
		Phase: s.dashOffset,
	}})
}

// BeginPath writes nothing: in PDF, painting a path ends it.
func (s *Surface) BeginPath() { s.hasPath = false }

func (s *Surface) MoveTo(x, y float64) {
	s.hasPath = true
	s.pdf.Ops(contentstream.OpMoveTo{X: x, Y: y})
}

func (s *Surface) LineTo(x, y float64) {
	s.pdf.Ops(contentstream.OpLineTo{X: x, Y: y})
}

func (s *Surface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.pdf.Ops(contentstream.OpCubicTo{X1: c1x, Y1: c1y, X2: c2x, Y2: c2y, X3: x, Y3: y})
}

// Stroke and Fill skip empty paths, which are invalid in PDF.
func (s *Surface) Stroke() {
	if !s.hasPath {
		return
	}
	s.pdf.Ops(contentstream.OpStroke{})
}

func (s *Surface) Fill(rule sketch.FillRule) {
	if !s.hasPath {
		return
	}
	if rule == sketch.NonZero {
		s.pdf.Ops(contentstream.OpFill{})
	} else {
		s.pdf.Ops(contentstream.OpEOFill{})
	}
}
