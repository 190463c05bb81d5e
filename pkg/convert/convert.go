package convert

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tommycarstensen/bokeh/pkg/errors"
	"github.com/tommycarstensen/bokeh/pkg/glyphs"
	"github.com/tommycarstensen/bokeh/pkg/mpl"
	"github.com/tommycarstensen/bokeh/pkg/objects"
	"github.com/tommycarstensen/bokeh/pkg/sketch"
)

// Sketch-mode presentation overrides. Sketch mode changes how the figure
// looks, never its geometry semantics.
const (
	sketchFont      = "Comic Sans MS, Textile, cursive"
	sketchLineWidth = 3.0
)

// Options configures a conversion. The zero value converts with normal
// styling, the default logger and no gallery capture.
type Options struct {
	// Sketch enables the hand-drawn presentation mode: every line runs
	// through the sketch filter and titles, axes and strokes take a fixed
	// bundle of hand-drawn overrides.
	Sketch bool

	// SketchOptions tunes the sketch filter. Nil uses the filter defaults.
	SketchOptions *sketch.Options

	// Logger receives non-fatal conversion warnings. Nil uses log.Default().
	Logger *log.Logger

	// Gallery, when non-nil, collects every produced plot. Conversions
	// sharing one gallery must run one at a time.
	Gallery *Gallery
}

func (o *Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

// AxesToPlot converts one source axes container into a fully wired target
// plot: one renderer per drawn element, a shared columnar data source, both
// coordinate ranges, axes, grids and interaction tools.
//
// A source line with both a visible line style and a visible marker becomes
// two renderers, one per aspect. Elements with an unsupported marker symbol
// are skipped with a warning; an unsupported cap style or vertical alignment
// aborts the conversion with a coded error.
//
// Renderers appear in source element order, with a line's plain-line aspect
// directly before its marker aspect and collection renderers after all line
// renderers. Renderer order carries no drawing semantics.
func AxesToPlot(ax *mpl.Axes, opts *Options) (*objects.Plot, error) {
	if ax == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nil source axes")
	}
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.logger()

	plot := objects.NewPlot(ax.Title)
	plot.BackgroundFill = ConvertColor(ax.BackgroundColor)
	if opts.Sketch {
		plot.TitleTextFont = sketchFont
		plot.TitleTextFontStyle = objects.FontBold
		plot.TitleTextColor = "black"
	}
	if opts.Gallery != nil {
		opts.Gallery.Collect(plot)
	}

	source := objects.NewColumnDataSource()
	plot.DataSources = append(plot.DataSources, source)

	skipped := 0
	for i, line := range ax.Lines {
		if stylePresent(line.LineStyle) {
			r, err := makeLine(source, plot.XRange, plot.YRange, line, opts)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i, err)
			}
			plot.Renderers = append(plot.Renderers, r)
		}
		if stylePresent(line.Marker) {
			r, err := makeMarker(source, plot.XRange, plot.YRange, line)
			if errors.Is(err, errors.ErrCodeUnsupportedMarker) {
				logger.Warn("skipping element with unsupported marker",
					"marker", line.Marker, "line", i)
				skipped++
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("marker %d: %w", i, err)
			}
			plot.Renderers = append(plot.Renderers, r)
		}
	}
	if skipped > 0 {
		logger.Debug("skipped renderers", "count", skipped)
	}

	for i, col := range ax.Collections {
		var (
			r   *objects.GlyphRenderer
			err error
		)
		switch c := col.(type) {
		case *mpl.LineCollection:
			r, err = makeMultiLine(source, plot.XRange, plot.YRange, c, opts)
		case *mpl.PolyCollection:
			r, err = makePatches(source, plot.XRange, plot.YRange, c)
		default:
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("collection %d: %w", i, err)
		}
		plot.Renderers = append(plot.Renderers, r)
	}

	xaxis, err := makeAxis(ax.XAxis, objects.DimX, opts)
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	yaxis, err := makeAxis(ax.YAxis, objects.DimY, opts)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	plot.Axes = append(plot.Axes, xaxis, yaxis)

	plot.Grids = append(plot.Grids,
		makeGrid(ax, objects.DimX, xaxis),
		makeGrid(ax, objects.DimY, yaxis))

	plot.Tools = append(plot.Tools, objects.NewPanTool(), objects.NewWheelZoomTool())

	return plot, nil
}

// stylePresent reports whether a linestyle or marker string describes a
// drawn style. "", " " and "none" in any case all mean "not drawn".
func stylePresent(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return false
	}
	return true
}

// makeLine emits one line-geometry renderer for the plain-line aspect of a
// source line, registering both coordinate columns with the plot's ranges.
func makeLine(source *objects.ColumnDataSource, xr, yr *objects.DataRange1d, line *mpl.Line2D, opts *Options) (*objects.GlyphRenderer, error) {
	if err := errors.ValidateCoordinates(line.X, line.Y); err != nil {
		return nil, err
	}

	x, y := line.X, line.Y
	if opts.Sketch {
		// The sketch filter enforces its own two-point minimum.
		var err error
		x, y, err = sketch.Line(x, y, opts.SketchOptions)
		if err != nil {
			return nil, err
		}
	}

	g := &glyphs.Line{
		X: glyphs.NumberField(source.AddFloats(x)),
		Y: glyphs.NumberField(source.AddFloats(y)),
	}
	xr.AddSource(source.Columns(g.X.Field))
	yr.AddSource(source.Columns(g.Y.Field))

	if err := lineProps(&g.LineProps, line); err != nil {
		return nil, err
	}
	if opts.Sketch {
		g.LineWidth = glyphs.NumberValue(sketchLineWidth)
	}

	return objects.NewGlyphRenderer(source, xr, yr, g), nil
}

// makeMarker emits one marker-geometry renderer for the marker aspect of a
// source line. The marker symbol is resolved before any columns are added,
// so a skipped element leaves no orphan data behind.
func makeMarker(source *objects.ColumnDataSource, xr, yr *objects.DataRange1d, line *mpl.Line2D) (*objects.GlyphRenderer, error) {
	markerType, err := convertMarker(line.Marker)
	if err != nil {
		return nil, err
	}
	if err := errors.ValidateCoordinates(line.X, line.Y); err != nil {
		return nil, err
	}

	g := &glyphs.Marker{
		Type: markerType,
		X:    glyphs.NumberField(source.AddFloats(line.X)),
		Y:    glyphs.NumberField(source.AddFloats(line.Y)),
	}
	xr.AddSource(source.Columns(g.X.Field))
	yr.AddSource(source.Columns(g.Y.Field))

	markerProps(g, line)

	return objects.NewGlyphRenderer(source, xr, yr, g), nil
}

// makeMultiLine emits one multi-line renderer for a line-segment collection.
// Colors and widths are cycled to the segment count and stored as columns;
// in sketch mode every segment runs through the sketch filter independently.
func makeMultiLine(source *objects.ColumnDataSource, xr, yr *objects.DataRange1d, col *mpl.LineCollection, opts *Options) (*objects.GlyphRenderer, error) {
	n := len(col.Segments)
	xs := make([][]float64, n)
	ys := make([][]float64, n)
	for i, seg := range col.Segments {
		if err := errors.ValidateCoordinates(seg.X, seg.Y); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		sx, sy := seg.X, seg.Y
		if opts.Sketch {
			var err error
			sx, sy, err = sketch.Line(sx, sy, opts.SketchOptions)
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
		}
		xs[i], ys[i] = sx, sy
	}

	g := &glyphs.MultiLine{
		Xs: glyphs.NumberField(source.AddFloatLists(xs)),
		Ys: glyphs.NumberField(source.AddFloatLists(ys)),
	}
	xr.AddSource(source.Columns(g.Xs.Field))
	yr.AddSource(source.Columns(g.Ys.Field))

	strokes, err := colorsHex(cycled(col.Colors, n))
	if err != nil {
		return nil, err
	}
	g.LineColor = glyphs.ColorField(source.AddStrings(strokes))
	g.LineWidth = glyphs.NumberField(source.AddFloats(cycled(col.LineWidths, n)))
	g.LineAlpha = glyphs.NumberValue(col.Alpha)
	collectionDash(&g.LineProps, col.DashOffset, col.OnOff)

	return objects.NewGlyphRenderer(source, xr, yr, g), nil
}

// makePatches emits one patches renderer for a polygon collection. Each
// path's duplicated closing vertex is dropped; face and edge styling are
// cycled to the path count and stored as columns.
func makePatches(source *objects.ColumnDataSource, xr, yr *objects.DataRange1d, col *mpl.PolyCollection) (*objects.GlyphRenderer, error) {
	n := len(col.Paths)
	xs := make([][]float64, n)
	ys := make([][]float64, n)
	for i, path := range col.Paths {
		if err := errors.ValidatePolyline(path.X, path.Y); err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
		// Closed paths repeat the first vertex at the end.
		xs[i] = path.X[:len(path.X)-1]
		ys[i] = path.Y[:len(path.Y)-1]
	}

	g := &glyphs.Patches{
		Xs: glyphs.NumberField(source.AddFloatLists(xs)),
		Ys: glyphs.NumberField(source.AddFloatLists(ys)),
	}
	xr.AddSource(source.Columns(g.Xs.Field))
	yr.AddSource(source.Columns(g.Ys.Field))

	faces, err := colorsHex(cycled(col.FaceColors, n))
	if err != nil {
		return nil, err
	}
	edges, err := colorsHex(cycled(col.EdgeColors, n))
	if err != nil {
		return nil, err
	}
	g.FillColor = glyphs.ColorField(source.AddStrings(faces))
	g.LineColor = glyphs.ColorField(source.AddStrings(edges))
	g.LineWidth = glyphs.NumberField(source.AddFloats(cycled(col.LineWidths, n)))
	g.LineAlpha = glyphs.NumberValue(col.Alpha)
	collectionDash(&g.LineProps, col.DashOffset, col.OnOff)

	return objects.NewGlyphRenderer(source, xr, yr, g), nil
}

// makeAxis builds the target axis for one source axis dimension. Tick label
// styling comes from the first tick label, assuming the rest are formatted
// the same way; an axis without tick labels falls back to default styling.
func makeAxis(src mpl.Axis, dim objects.Dimension, opts *Options) (*objects.LinearAxis, error) {
	axis := objects.NewLinearAxis(dim)
	axis.AxisLabel = src.LabelText

	labelProps, err := textProps(src.Label)
	if err != nil {
		return nil, fmt.Errorf("axis label: %w", err)
	}
	axis.LabelProps = labelProps

	tick := mpl.NewText()
	if len(src.TickLabels) > 0 {
		tick = src.TickLabels[0]
	}
	majorProps, err := textProps(tick)
	if err != nil {
		return nil, fmt.Errorf("tick label: %w", err)
	}
	axis.MajorLabelProps = majorProps

	if opts.Sketch {
		axis.AxisLineWidth = sketchLineWidth
		sketchTextOverride(&axis.LabelProps)
		sketchTextOverride(&axis.MajorLabelProps)
	}

	return axis, nil
}

// sketchTextOverride applies the fixed hand-drawn text bundle.
func sketchTextOverride(p *objects.TextProps) {
	p.Font = sketchFont
	p.Style = objects.FontBold
	p.Color = "black"
}

// makeGrid builds the grid for one dimension, styled from the first
// gridline of that dimension's own axis. A dimension without gridlines
// borrows the x axis styling, and a figure with no gridlines at all gets a
// plain gray grid.
func makeGrid(ax *mpl.Axes, dim objects.Dimension, axis *objects.LinearAxis) *objects.Grid {
	grid := objects.NewGrid(dim, axis)

	gl := mpl.GridLine{Color: "gray", LineWidth: 1}
	switch {
	case dim == objects.DimY && len(ax.YAxis.GridLines) > 0:
		gl = ax.YAxis.GridLines[0]
	case len(ax.XAxis.GridLines) > 0:
		gl = ax.XAxis.GridLines[0]
	}

	grid.GridLineColor = ConvertColor(gl.Color)
	grid.GridLineWidth = gl.LineWidth
	return grid
}
