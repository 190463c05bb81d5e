package convert

import (
	"fmt"

	"github.com/tommycarstensen/bokeh/pkg/glyphs"
	"github.com/tommycarstensen/bokeh/pkg/mpl"
	"github.com/tommycarstensen/bokeh/pkg/objects"
)

// lineProps fills a glyph's stroke styling from a source line.
// Join styles pass through; cap styles go through the fixed table and an
// unknown cap style aborts the conversion.
func lineProps(p *glyphs.LineProps, line *mpl.Line2D) error {
	lineCap, err := convertCapStyle(line.SolidCapStyle)
	if err != nil {
		return err
	}
	p.LineColor = glyphs.ColorValue(ConvertColor(line.Color))
	p.LineWidth = glyphs.NumberValue(line.LineWidth)
	p.LineAlpha = glyphs.NumberValue(line.Alpha)
	p.LineJoin = glyphs.LineJoin(line.SolidJoinStyle)
	p.LineCap = lineCap
	p.LineDash = ConvertDashes(line.LineStyle)
	return nil
}

// markerProps fills a marker glyph's styling from a source line's marker
// attributes. The source model carries a single alpha, applied to both
// stroke and fill.
func markerProps(m *glyphs.Marker, line *mpl.Line2D) {
	m.LineColor = glyphs.ColorValue(ConvertColor(line.MarkerEdgeColor))
	m.FillColor = glyphs.ColorValue(ConvertColor(line.MarkerFaceColor))
	m.LineWidth = glyphs.NumberValue(line.MarkerEdgeWidth)
	m.Size = glyphs.NumberValue(line.MarkerSize)
	m.LineAlpha = glyphs.NumberValue(line.Alpha)
	m.FillAlpha = glyphs.NumberValue(line.Alpha)
}

// textProps maps source text styling onto the target's text property bundle.
// Style and weight are independent on the source side but collapse into one
// target field; bold wins, so a bold italic label loses the italic bit.
func textProps(t mpl.Text) (objects.TextProps, error) {
	baseline, err := convertBaseline(t.VerticalAlignment)
	if err != nil {
		return objects.TextProps{}, err
	}

	style := objects.FontNormal
	if t.FontStyle == "italic" || t.FontStyle == "oblique" {
		style = objects.FontItalic
	}
	if t.Weight == "bold" || t.Weight == "heavy" {
		style = objects.FontBold
	}

	// The full family name is often unavailable in the browser, so the
	// first entry of the family list is used instead.
	font := ""
	if len(t.FontFamily) > 0 {
		font = t.FontFamily[0]
	}

	return objects.TextProps{
		Font:     font,
		Size:     fmt.Sprintf("%dpx", int(t.Size)),
		Style:    style,
		Color:    ConvertColor(t.Color),
		Alpha:    t.Alpha,
		Baseline: baseline,
	}, nil
}

// collectionDash fills dash styling from a collection's dash-offset and
// on/off tuple representation. An empty tuple draws solid strokes.
func collectionDash(p *glyphs.LineProps, offset float64, onOff []int) {
	p.LineDashOffset = int(offset)
	if len(onOff) > 0 {
		p.LineDash = glyphs.OnOffDash(onOff)
	}
}
