package convert

import (
	"github.com/tommycarstensen/bokeh/pkg/errors"
	"github.com/tommycarstensen/bokeh/pkg/glyphs"
	"github.com/tommycarstensen/bokeh/pkg/objects"
)

// dashMap translates the source library's linestyle shorthand characters to
// the named dash patterns the target pipeline understands.
var dashMap = map[string]string{
	"-":  glyphs.DashSolid,
	"--": glyphs.DashDashed,
	":":  glyphs.DashDotted,
	"-.": glyphs.DashDashdot,
}

// ConvertDashes translates a source dash specification. Shorthand characters
// map through the fixed table; any other value passes through unchanged as a
// named pattern, so already-named patterns are idempotent.
func ConvertDashes(style string) glyphs.DashPattern {
	if name, ok := dashMap[style]; ok {
		return glyphs.NamedDash(name)
	}
	return glyphs.NamedDash(style)
}

// capMap translates solid cap styles. The source "projecting" cap is the
// target's "square".
var capMap = map[string]glyphs.LineCap{
	"butt":       glyphs.CapButt,
	"round":      glyphs.CapRound,
	"projecting": glyphs.CapSquare,
}

// convertCapStyle translates a solid cap style, or returns an
// UNSUPPORTED_CAP_STYLE error for values outside the fixed table.
func convertCapStyle(style string) (glyphs.LineCap, error) {
	cap, ok := capMap[style]
	if !ok {
		return "", errors.New(errors.ErrCodeUnsupportedCapStyle,
			"unable to handle cap style: %q", style)
	}
	return cap, nil
}

// markerMap translates marker symbol characters to target marker types.
var markerMap = map[string]glyphs.MarkerType{
	"o": glyphs.MarkerCircle,
	"s": glyphs.MarkerSquare,
	"+": glyphs.MarkerCross,
	"^": glyphs.MarkerTriangle,
	"v": glyphs.MarkerInvertedTriangle,
	"x": glyphs.MarkerX,
	"D": glyphs.MarkerDiamond,
	"*": glyphs.MarkerAsterisk,
}

// convertMarker translates a marker symbol, or returns an
// UNSUPPORTED_MARKER error for symbols outside the fixed table. The
// converter treats that error as recoverable and skips the element.
func convertMarker(symbol string) (glyphs.MarkerType, error) {
	mt, ok := markerMap[symbol]
	if !ok {
		return "", errors.New(errors.ErrCodeUnsupportedMarker,
			"unable to handle marker: %q", symbol)
	}
	return mt, nil
}

// baselineMap translates vertical alignments to text baselines. The source
// "baseline" alignment has no target equivalent and is rejected.
var baselineMap = map[string]objects.TextBaseline{
	"center": objects.BaselineMiddle,
	"top":    objects.BaselineTop,
	"bottom": objects.BaselineBottom,
}

// convertBaseline translates a vertical alignment, or returns an
// UNSUPPORTED_BASELINE error for alignments outside the fixed table.
func convertBaseline(alignment string) (objects.TextBaseline, error) {
	b, ok := baselineMap[alignment]
	if !ok {
		return "", errors.New(errors.ErrCodeUnsupportedBaseline,
			"unable to handle vertical alignment: %q", alignment)
	}
	return b, nil
}
