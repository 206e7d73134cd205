// Loads the renderer configuration from TOML files.
//
// A configuration file looks like:
//
//	background = "white"
//
//	[defaults]
//	stroke = "#333"
//	stroke_width = 2
//	stroke_line_dash = [4, 2]
//	fill = "none"
//	fill_weight = -1
//
// Missing keys keep their value from sketch.DefaultOptions.
package sketchconf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/benoitkugler/oksketch/sketch"
)

// Config holds the settings shared by all the drawables of a rendering.
type Config struct {
	// Background is a CSS color, empty for a transparent background.
	Background string
	// Defaults is used for the drawables without options.
	Defaults sketch.Options
}

// Default returns the configuration used without file.
func Default() Config {
	return Config{Defaults: sketch.DefaultOptions()}
}

type fileOptions struct {
	Stroke               string    `toml:"stroke"`
	StrokeWidth          float64   `toml:"stroke_width"`
	StrokeLineDash       []float64 `toml:"stroke_line_dash"`
	StrokeLineDashOffset float64   `toml:"stroke_line_dash_offset"`
	Fill                 string    `toml:"fill"`
	FillWeight           float64   `toml:"fill_weight"`
	FillLineDash         []float64 `toml:"fill_line_dash"`
	FillLineDashOffset   float64   `toml:"fill_line_dash_offset"`
}

type file struct {
	Background string      `toml:"background"`
	Defaults   fileOptions `toml:"defaults"`
}

// Decode reads a TOML configuration.
// Unknown keys and invalid colors are errors.
func Decode(r io.Reader) (Config, error) {
	def := sketch.DefaultOptions()
	f := file{Defaults: fileOptions{
		Stroke:      def.Stroke,
		StrokeWidth: def.StrokeWidth,
		FillWeight:  def.FillWeight,
	}}
	metadata, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return Config{}, fmt.Errorf("sketchconf: %w", err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("sketchconf: unknown keys %s", strings.Join(keys, ", "))
	}

	for _, c := range [...]string{f.Background, f.Defaults.Stroke, f.Defaults.Fill} {
		if _, ok := sketch.ParseColor(c); c != "" && !ok {
			return Config{}, fmt.Errorf("sketchconf: invalid color %q", c)
		}
	}

	o := f.Defaults
	return Config{
		Background: f.Background,
		Defaults: sketch.Options{
			Stroke:               o.Stroke,
			StrokeWidth:          o.StrokeWidth,
			StrokeLineDash:       o.StrokeLineDash,
			StrokeLineDashOffset: o.StrokeLineDashOffset,
			Fill:                 o.Fill,
			FillWeight:           o.FillWeight,
			FillLineDash:         o.FillLineDash,
			FillLineDashOffset:   o.FillLineDashOffset,
		},
	}, nil
}

// Load reads the named TOML file.
func Load(path string) (Config, error) {
	fin, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer fin.Close()
	return Decode(fin)
}
