package sketchio

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/benoitkugler/oksketch/sketch"
)

type wireDocument struct {
	XMLName   xml.Name       `json:"-" yaml:"-" xml:"drawables"`
	Drawables []wireDrawable `json:"drawables" yaml:"drawables" xml:"drawable"`
}

type wireDrawable struct {
	Shape   string       `json:"shape" yaml:"shape" xml:"shape,attr"`
	Options *wireOptions `json:"options" yaml:"options" xml:"options"`
	Sets    []wireSet    `json:"sets" yaml:"sets" xml:"set"`
}

// wireOptions uses pointers so that missing fields
// keep their default value.
type wireOptions struct {
	Stroke               *string   `json:"stroke" yaml:"stroke" xml:"stroke,attr"`
	StrokeWidth          *float64  `json:"strokeWidth" yaml:"strokeWidth" xml:"strokeWidth,attr"`
	StrokeLineDash       floatList `json:"strokeLineDash" yaml:"strokeLineDash" xml:"strokeLineDash,attr"`
	StrokeLineDashOffset *float64  `json:"strokeLineDashOffset" yaml:"strokeLineDashOffset" xml:"strokeLineDashOffset,attr"`
	Fill                 *string   `json:"fill" yaml:"fill" xml:"fill,attr"`
	FillWeight           *float64  `json:"fillWeight" yaml:"fillWeight" xml:"fillWeight,attr"`
	FillLineDash         floatList `json:"fillLineDash" yaml:"fillLineDash" xml:"fillLineDash,attr"`
	FillLineDashOffset   *float64  `json:"fillLineDashOffset" yaml:"fillLineDashOffset" xml:"fillLineDashOffset,attr"`
}

type wireSet struct {
	Type string   `json:"type" yaml:"type" xml:"type,attr"`
	Ops  []wireOp `json:"ops" yaml:"ops" xml:"op"`
}

type wireOp struct {
	Op   string    `json:"op" yaml:"op" xml:"kind,attr"`
	Data floatList `json:"data" yaml:"data" xml:"data,attr"`
}

// floatList is written as a list of numbers separated
// by spaces or commas in XML attributes.
type floatList []float64

func (fl *floatList) UnmarshalXMLAttr(attr xml.Attr) error {
	fields := strings.FieldsFunc(attr.Value, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' || r == '\n' })
	out := make(floatList, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return err
		}
		out[i] = v
	}
	*fl = out
	return nil
}

var knownShapes = map[sketch.Shape]bool{
	sketch.ShapeLine:       true,
	sketch.ShapeRectangle:  true,
	sketch.ShapeEllipse:    true,
	sketch.ShapeCircle:     true,
	sketch.ShapeLinearPath: true,
	sketch.ShapePolygon:    true,
	sketch.ShapeArc:        true,
	sketch.ShapeCurve:      true,
	sketch.ShapePath:       true,
}

func (c converter) drawables(doc wireDocument) ([]sketch.Drawable, error) {
	out := make([]sketch.Drawable, 0, len(doc.Drawables))
	for i, wd := range doc.Drawables {
		d, err := c.drawable(wd)
		if err != nil {
			return nil, fmt.Errorf("sketchio: drawable %d: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func (c converter) drawable(wd wireDrawable) (sketch.Drawable, error) {
	d := sketch.Drawable{Shape: sketch.Shape(wd.Shape)}
	if !knownShapes[d.Shape] {
		if err := c.report("unknown shape %q", wd.Shape); err != nil {
			return d, err
		}
	}
	if wd.Options != nil {
		o, err := c.options(*wd.Options)
		if err != nil {
			return d, err
		}
		d.Options = &o
	}
	for _, ws := range wd.Sets {
		role, err := sketch.ParseRole(ws.Type)
		if err != nil {
			if err = c.report("%s", err); err != nil {
				return d, err
			}
			continue // the set can't be painted
		}
		ops, err := c.operations(ws.Ops)
		if err != nil {
			return d, err
		}
		d.Sets = append(d.Sets, sketch.OperationSet{Role: role, Ops: ops})
	}
	return d, nil
}

// operations keeps unknown operations, which are skipped when painting.
func (c converter) operations(wops []wireOp) (sketch.Path, error) {
	path := make(sketch.Path, 0, len(wops))
	for _, wop := range wops {
		op := sketch.NewOperation(wop.Op, wop.Data)
		if _, isUnknown := op.(sketch.Unknown); isUnknown {
			if err := c.report("unsupported operation %q with %d values", wop.Op, len(wop.Data)); err != nil {
				return nil, err
			}
		}
		path = append(path, op)
	}
	return path, nil
}

// options starts from the configured defaults.
func (c converter) options(wo wireOptions) (sketch.Options, error) {
	o := c.defaults.Clone()
	if wo.Stroke != nil {
		o.Stroke = *wo.Stroke
		if err := c.checkColor(o.Stroke); err != nil {
			return o, err
		}
	}
	if wo.StrokeWidth != nil {
		o.StrokeWidth = *wo.StrokeWidth
	}
	if wo.StrokeLineDash != nil {
		o.StrokeLineDash = []float64(wo.StrokeLineDash)
	}
	if wo.StrokeLineDashOffset != nil {
		o.StrokeLineDashOffset = *wo.StrokeLineDashOffset
	}
	if wo.Fill != nil {
		o.Fill = *wo.Fill
		if err := c.checkColor(o.Fill); err != nil {
			return o, err
		}
	}
	if wo.FillWeight != nil {
		o.FillWeight = *wo.FillWeight
	}
	if wo.FillLineDash != nil {
		o.FillLineDash = []float64(wo.FillLineDash)
	}
	if wo.FillLineDashOffset != nil {
		o.FillLineDashOffset = *wo.FillLineDashOffset
	}
	return o, nil
}

// an empty color is valid: it means no color is configured
func (c converter) checkColor(s string) error {
	if s == "" {
		return nil
	}
	if _, ok := sketch.ParseColor(s); !ok {
		return c.report("invalid color %q", s)
	}
	return nil
}
