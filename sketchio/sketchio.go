// Reads drawables serialized by a generator, from JSON, YAML or XML.
//
// The three formats share the same structure: a list of drawables, each
// with a shape, optional options and a list of operation sets.
// For instance, in JSON:
//
//	{"drawables": [{
//		"shape": "rectangle",
//		"options": {"stroke": "#000", "strokeWidth": 1, "fill": "red"},
//		"sets": [{"type": "fillPath", "ops": [{"op": "move", "data": [0, 0]}, {"op": "lineTo", "data": [10, 0]}]}]
//	}]}
//
// and in XML:
//
//	<drawables>
//		<drawable shape="rectangle">
//			<options stroke="#000" strokeWidth="1" fill="red"/>
//			<set type="fillPath"><op kind="move" data="0 0"/><op kind="lineTo" data="10 0"/></set>
//		</drawable>
//	</drawables>
//
// Options carried by a drawable may be partial: missing fields are taken
// from Config.Defaults, usually the defaults given to the renderer.
package sketchio

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/oksketch/sketch"
	"golang.org/x/net/html/charset"
	"gopkg.in/yaml.v3"
)

// ErrorMode determines how unsupported content is handled:
// an unknown operation set type, operation or shape, or an invalid color.
// Malformed documents are always an error.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently drops (or keeps, for shapes and colors) the content.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode does the same as IgnoreErrorMode, but logs a warning.
	WarnErrorMode
	// StrictErrorMode returns an error.
	StrictErrorMode
)

// Format is a serialization format.
type Format uint8

const (
	JSON Format = iota
	YAML
	XML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case XML:
		return "xml"
	default:
		return fmt.Sprintf("<unknown Format %d>", f)
	}
}

// ErrUnknownFormat is returned for unsupported formats or file extensions.
var ErrUnknownFormat = errors.New("sketchio: unknown format")

// FormatFromExt returns the format matching the extension of `fileName`.
func FormatFromExt(fileName string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".xml":
		return XML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, fileName)
	}
}

// Config controls how drawables are decoded.
type Config struct {
	// ErrorMode determines if content not supported by the renderer
	// is ignored, logged as a warning or returned as an error.
	ErrorMode ErrorMode
	// Defaults is the base of the options carried by a drawable:
	// fields missing from the document keep the value of Defaults.
	// Drawables without options are not affected.
	Defaults sketch.Options
}

// Read decodes the drawables from the given stream, with
// sketch.DefaultOptions as base for partial options.
func Read(stream io.Reader, format Format, errMode ErrorMode) ([]sketch.Drawable, error) {
	return Config{ErrorMode: errMode, Defaults: sketch.DefaultOptions()}.Read(stream, format)
}

// ReadFile reads the drawables from the named file,
// whose format is deduced from its extension.
// See Read for the default options.
func ReadFile(fileName string, errMode ErrorMode) ([]sketch.Drawable, error) {
	return Config{ErrorMode: errMode, Defaults: sketch.DefaultOptions()}.ReadFile(fileName)
}

// Read decodes the drawables from the given stream.
func (cf Config) Read(stream io.Reader, format Format) ([]sketch.Drawable, error) {
	var doc wireDocument
	var err error
	switch format {
	case JSON:
		err = json.NewDecoder(stream).Decode(&doc)
	case YAML:
		err = yaml.NewDecoder(stream).Decode(&doc)
	case XML:
		decoder := xml.NewDecoder(stream)
		decoder.CharsetReader = charset.NewReaderLabel
		err = decoder.Decode(&doc)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("sketchio: invalid %s document: %w", format, err)
	}
	c := converter{mode: cf.ErrorMode, defaults: cf.Defaults}
	return c.drawables(doc)
}

// ReadFile reads the drawables from the named file,
// whose format is deduced from its extension.
func (cf Config) ReadFile(fileName string) ([]sketch.Drawable, error) {
	format, err := FormatFromExt(fileName)
	if err != nil {
		return nil, err
	}
	fin, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return cf.Read(fin, format)
}

type converter struct {
	mode     ErrorMode
	defaults sketch.Options
}

// report returns a non nil error in strict mode only
func (c converter) report(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	switch c.mode {
	case StrictErrorMode:
		return err
	case WarnErrorMode:
		slog.Warn("sketchio: unsupported content", "error", err)
	}
	return nil
}
