// Command sketchrender paints serialized drawables to a PNG or PDF file.
//
// Usage:
//
//	sketchrender -in shapes.json -out shapes.png [-format png|pdf|pdf-alt] [-config sketch.toml]
//	sketchrender -in shapes.json -dump
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/oksketch/sketch"
	"github.com/benoitkugler/oksketch/sketchconf"
	"github.com/benoitkugler/oksketch/sketchio"
	"github.com/benoitkugler/oksketch/sketchpdf"
	"github.com/benoitkugler/oksketch/sketchpdf/alt"
	"github.com/benoitkugler/oksketch/sketchraster"
)

type options struct {
	in, out, format, config string
	width, height           float64
	errMode                 sketchio.ErrorMode
	dump                    bool
}

func main() {
	var (
		opts         options
		strict, warn bool
	)
	flag.StringVar(&opts.in, "in", "", "input file (.json, .yaml, .yml or .xml)")
	flag.StringVar(&opts.out, "out", "", "output file")
	flag.StringVar(&opts.format, "format", "", "output format: png, pdf or pdf-alt (default: from the output extension)")
	flag.StringVar(&opts.config, "config", "", "optional TOML configuration file")
	flag.Float64Var(&opts.width, "width", 0, "output width, 0 to fit the drawables")
	flag.Float64Var(&opts.height, "height", 0, "output height, 0 to fit the drawables")
	flag.BoolVar(&strict, "strict", false, "fail on unsupported content")
	flag.BoolVar(&warn, "warn", false, "log unsupported content")
	flag.BoolVar(&opts.dump, "dump", false, "print the operation sets as SVG path data instead of rendering")
	flag.Parse()

	switch {
	case strict:
		opts.errMode = sketchio.StrictErrorMode
	case warn:
		opts.errMode = sketchio.WarnErrorMode
	}

	if err := run(opts); err != nil {
		slog.Error("rendering failed", "error", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.in == "" || (opts.out == "" && !opts.dump) {
		return errors.New("both -in and -out are required")
	}
	format := opts.format
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.out)), ".")
	}

	conf := sketchconf.Default()
	if opts.config != "" {
		var err error
		conf, err = sketchconf.Load(opts.config)
		if err != nil {
			return err
		}
	}

	drawables, err := sketchio.Config{ErrorMode: opts.errMode, Defaults: conf.Defaults}.ReadFile(opts.in)
	if err != nil {
		return err
	}
	if opts.dump {
		return dump(os.Stdout, drawables)
	}
	width, height := pageSize(drawables, opts.width, opts.height)
	slog.Info("rendering", "drawables", len(drawables), "width", width, "height", height, "format", format)

	switch format {
	case "png":
		var background color.Color
		if c, ok := sketch.ParseColor(conf.Background); ok {
			background = c
		}
		img, err := sketchraster.RenderToImage(drawables, int(math.Ceil(width)), int(math.Ceil(height)), background, conf.Defaults)
		if err != nil {
			return err
		}
		fout, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		if err := png.Encode(fout, img); err != nil {
			fout.Close()
			return err
		}
		return fout.Close()
	case "pdf":
		fout, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		if err := sketchpdf.RenderToPDF(drawables, width, height, conf.Defaults, fout); err != nil {
			fout.Close()
			return err
		}
		return fout.Close()
	case "pdf-alt":
		return alt.RenderToPDF(drawables, width, height, conf.Defaults, opts.out)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// dump writes one line per operation set: the shape,
// the set type and the path data.
func dump(w io.Writer, drawables []sketch.Drawable) error {
	for i, d := range drawables {
		for _, set := range d.Sets {
			if _, err := fmt.Fprintf(w, "%d %s %s: %s\n", i, d.Shape, set.Role, set.Ops.ToSVGPath()); err != nil {
				return err
			}
		}
	}
	return nil
}

// pageSize returns the given size, or for zero dimensions,
// the extent of the drawables from the origin, with a margin
// for the strokes.
func pageSize(drawables []sketch.Drawable, width, height float64) (float64, float64) {
	const margin = 10
	var bounds sketch.Rect
	for _, d := range drawables {
		bounds = bounds.Union(d.Bounds())
	}
	if width <= 0 {
		width = math.Max(bounds.MaxX, 0) + margin
	}
	if height <= 0 {
		height = math.Max(bounds.MaxY, 0) + margin
	}
	return width, height
}
