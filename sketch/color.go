package sketch

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Transparent is the paint used for NoColor.
var Transparent = color.NRGBA{}

// ParseColor parses a CSS color: NoColor, "transparent", a named color,
// #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(r,g,b) or rgba(r,g,b,a).
// The boolean is false for an empty or invalid string.
func ParseColor(s string) (color.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return nil, false
	case s == NoColor, s == "transparent":
		return Transparent, true
	case s[0] == '#':
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb"):
		return parseRGBFunc(s)
	}
	c, ok := colornames.Map[s]
	if !ok {
		return nil, false
	}
	return c, true
}

func parseHex(s string) (color.Color, bool) {
	// expand the short forms
	if len(s) == 3 || len(s) == 4 {
		var b strings.Builder
		for _, r := range s {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		s = b.String()
	}
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return nil, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, false
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

// parseRGBFunc handles rgb(...) and rgba(...), with
// 0-255 or percentage channels and a 0-1 alpha.
func parseRGBFunc(s string) (color.Color, bool) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return nil, false
	}
	fields := strings.FieldsFunc(s[open+1:end], func(r rune) bool { return r == ',' || r == ' ' || r == '/' })
	if len(fields) != 3 && len(fields) != 4 {
		return nil, false
	}
	var channels [4]uint8
	channels[3] = 0xff
	for i, f := range fields {
		var (
			v   float64
			err error
		)
		if strings.HasSuffix(f, "%") {
			v, err = strconv.ParseFloat(strings.TrimSuffix(f, "%"), 64)
			v = v * 255 / 100
		} else {
			v, err = strconv.ParseFloat(f, 64)
			if i == 3 {
				v *= 255
			}
		}
		if err != nil {
			return nil, false
		}
		channels[i] = clampByte(v)
	}
	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, true
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
