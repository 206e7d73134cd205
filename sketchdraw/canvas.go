package sketchdraw

import (
	"errors"

	"github.com/benoitkugler/oksketch/sketch"
)

// Point is a 2D point, in surface coordinates.
type Point struct{ X, Y float64 }

// Generator computes the (possibly randomized) operation sets of shapes.
// `o` may be nil, meaning the generator defaults.
type Generator interface {
	Line(x1, y1, x2, y2 float64, o *sketch.Options) sketch.Drawable
	Rectangle(x, y, width, height float64, o *sketch.Options) sketch.Drawable
	Ellipse(x, y, width, height float64, o *sketch.Options) sketch.Drawable
	Circle(x, y, diameter float64, o *sketch.Options) sketch.Drawable
	LinearPath(points []Point, o *sketch.Options) sketch.Drawable
	Polygon(points []Point, o *sketch.Options) sketch.Drawable
	// Arc describes the part of the ellipse between the angles `start` and `stop`,
	// in radians. If `closed` is true, the ends are joined to the center.
	Arc(x, y, width, height, start, stop float64, closed bool, o *sketch.Options) sketch.Drawable
	Curve(points []Point, o *sketch.Options) sketch.Drawable
	// Path uses a SVG path data string.
	Path(d string, o *sketch.Options) sketch.Drawable
}

// Canvas binds a generator to a renderer: each shape
// method generates a drawable, paints it once, and returns it
// so that it may be inspected or painted again.
type Canvas struct {
	gen      Generator
	renderer *Renderer
}

// NewCanvas returns a canvas painting the shapes of `gen` on `s`.
func NewCanvas(gen Generator, s Surface, defaults sketch.Options) (*Canvas, error) {
	if gen == nil {
		return nil, errors.New("sketchdraw: no generator")
	}
	r, err := NewRenderer(s, defaults)
	if err != nil {
		return nil, err
	}
	return &Canvas{gen: gen, renderer: r}, nil
}

// Generator returns the shape generator of the canvas.
func (c *Canvas) Generator() Generator { return c.gen }

// Renderer returns the renderer of the canvas.
func (c *Canvas) Renderer() *Renderer { return c.renderer }

// Draw paints an already generated drawable.
func (c *Canvas) Draw(d sketch.Drawable) { c.renderer.Draw(d) }

func (c *Canvas) draw(d sketch.Drawable) sketch.Drawable {
	c.renderer.Draw(d)
	return d
}

func (c *Canvas) Line(x1, y1, x2, y2 float64, o *sketch.Options) sketch.Drawable {
	return c.draw(c.gen.Line(x1, y1, x2, y2, o))
}

func (c *Canvas) Rectangle(x, y, width, height float64, o *sketch.Options) sketch.Drawable {
	return c.draw(c.gen.Rectangle(x, y, width, height, o))
}

func (c *Canvas) Ellipse(x, y, width, height float64, o *sketch.Options) sketch.Drawable {
	return c.draw(c.gen.Ellipse(x, y, width, height, o))
}

func (c *Canvas) Circle(x, y, diameter float64, o *sketch.Options) sketch.Drawable {
	return c.draw(c.gen.Circle(x, y, diameter, o))
}

// LinearPath draws an open polyline.
func (c *Canvas) LinearPath(points []Point, o *sketch.Options) sketch.Drawable {
	return c.draw(c.gen.LinearPath(points, o))
}

// Polygon draws a closed polyline.
func (c *Canvas) Polygon(points []Point, o *sketch.Options) sketch.Drawable {
	return c.draw(c.gen.Polygon(points, o))
}

func (c *Canvas) Arc(x, y, width, height, start, stop float64, closed bool, o *sketch.Options) sketch.Drawable {
	return c.draw(c.gen.Arc(x, y, width, height, start, stop, closed, o))
}

// Curve draws a free-form curve through the points.
func (c *Canvas) Curve(points []Point, o *sketch.Options) sketch.Drawable {
	return c.draw(c.gen.Curve(points, o))
}

// Path draws the shape described by the SVG path data `d`.
func (c *Canvas) Path(d string, o *sketch.Options) sketch.Drawable {
	return c.draw(c.gen.Path(d, o))
}
