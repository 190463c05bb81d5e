package convert

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tommycarstensen/bokeh/pkg/errors"
	"github.com/tommycarstensen/bokeh/pkg/mpl"
)

// letterColors maps the source library's single-letter color codes to the
// named colors the target pipeline understands.
var letterColors = map[string]string{
	"b": "blue",
	"g": "green",
	"r": "red",
	"c": "cyan",
	"m": "magenta",
	"y": "yellow",
	"k": "black",
	"w": "white",
}

// ConvertColor normalizes a source color specification. Single-letter codes
// map to named colors, a numeric string in [0, 1] is treated as a grayscale
// fraction and expanded to a hex triple, and anything else passes through
// unchanged on the assumption that it is already a valid target color.
func ConvertColor(spec string) string {
	if name, ok := letterColors[spec]; ok {
		return name
	}
	if f, err := strconv.ParseFloat(spec, 64); err == nil && f >= 0 && f <= 1 {
		return ConvertRGBA(mpl.RGBA{f, f, f, 1})
	}
	return spec
}

// ConvertRGBA expands a source color tuple with unit-interval channels into
// a hex triple, truncating each channel to a byte the way the source
// library's own conversion does.
func ConvertRGBA(c mpl.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", int(255*c[0]), int(255*c[1]), int(255*c[2]))
}

// rgbaHex converts a source color tuple to hex with per-channel rounding,
// matching the source library's rgb2hex used for collection styling.
func rgbaHex(c mpl.RGBA) string {
	return colorful.Color{R: c[0], G: c[1], B: c[2]}.Hex()
}

// colorsHex validates and converts a cycled color tuple list to hex strings.
// A channel outside the unit interval is a malformed source object and fails
// with an INVALID_COLOR error.
func colorsHex(colors []mpl.RGBA) ([]string, error) {
	out := make([]string, len(colors))
	for i, c := range colors {
		for _, v := range c {
			if err := errors.ValidateChannel(v); err != nil {
				return nil, fmt.Errorf("color %d: %w", i, err)
			}
		}
		out[i] = rgbaHex(c)
	}
	return out, nil
}
