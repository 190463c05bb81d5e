package objects

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tommycarstensen/bokeh/pkg/glyphs"
)

var (
	// ErrUnknownColumn is returned by [Plot.Validate] when a renderer's
	// geometry field references a column that does not exist in the
	// renderer's data source.
	ErrUnknownColumn = errors.New("glyph references unknown data source column")

	// ErrUnregisteredColumn is returned by [Plot.Validate] when a renderer's
	// geometry column is missing from the range the renderer is plotted
	// against. Ranges must list every geometry column of their renderers.
	ErrUnregisteredColumn = errors.New("geometry column not registered with range")
)

// GlyphRenderer pairs one glyph specification with the data source it reads
// and the two ranges it is plotted against.
type GlyphRenderer struct {
	ID         string
	DataSource *ColumnDataSource
	XRange     *DataRange1d
	YRange     *DataRange1d
	Glyph      glyphs.Glyph
}

// NewGlyphRenderer creates a renderer with a fresh id.
func NewGlyphRenderer(source *ColumnDataSource, xr, yr *DataRange1d, g glyphs.Glyph) *GlyphRenderer {
	return &GlyphRenderer{
		ID:         uuid.NewString(),
		DataSource: source,
		XRange:     xr,
		YRange:     yr,
		Glyph:      g,
	}
}

// Tool is an interaction tool attached to a plot.
type Tool interface {
	isTool()
}

// PanTool lets the user drag the plot along the listed dimensions.
type PanTool struct {
	ID         string
	Dimensions []Dimension
}

func (*PanTool) isTool() {}

// NewPanTool creates a pan tool scoped to both dimensions.
func NewPanTool() *PanTool {
	return &PanTool{ID: uuid.NewString(), Dimensions: []Dimension{DimX, DimY}}
}

// WheelZoomTool lets the user zoom the plot along the listed dimensions.
type WheelZoomTool struct {
	ID         string
	Dimensions []Dimension
}

func (*WheelZoomTool) isTool() {}

// NewWheelZoomTool creates a wheel-zoom tool scoped to both dimensions.
func NewWheelZoomTool() *WheelZoomTool {
	return &WheelZoomTool{ID: uuid.NewString(), Dimensions: []Dimension{DimX, DimY}}
}

// Plot is the fully wired target object returned by a conversion: renderers,
// shared data sources, coordinate ranges, axes, grids and tools. A plot is
// populated once and not mutated after handoff.
type Plot struct {
	ID    string
	Title string

	BackgroundFill string

	TitleTextFont      string
	TitleTextFontStyle FontStyle
	TitleTextColor     string

	XRange *DataRange1d
	YRange *DataRange1d

	DataSources []*ColumnDataSource
	Renderers   []*GlyphRenderer
	Axes        []*LinearAxis
	Grids       []*Grid
	Tools       []Tool
}

// NewPlot creates an empty plot with a fresh id and fresh x/y ranges.
func NewPlot(title string) *Plot {
	return &Plot{
		ID:     uuid.NewString(),
		Title:  title,
		XRange: NewDataRange1d(),
		YRange: NewDataRange1d(),
	}
}

// Validate checks the plot's structural invariants and returns nil if valid.
//
// For every renderer it verifies that each geometry field resolves to an
// existing column in the renderer's data source, and that the x/y geometry
// columns are registered with the renderer's x/y range respectively.
// Returns ErrUnknownColumn or ErrUnregisteredColumn wrapped with the
// offending renderer and column.
func (p *Plot) Validate() error {
	for _, r := range p.Renderers {
		xs, ys := geometryFields(r.Glyph)
		for _, name := range xs {
			if err := checkColumn(r, r.XRange, name); err != nil {
				return err
			}
		}
		for _, name := range ys {
			if err := checkColumn(r, r.YRange, name); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkColumn(r *GlyphRenderer, rng *DataRange1d, name string) error {
	if _, ok := r.DataSource.Column(name); !ok {
		return fmt.Errorf("renderer %s column %q: %w", r.ID, name, ErrUnknownColumn)
	}
	if !rng.References(r.DataSource, name) {
		return fmt.Errorf("renderer %s column %q: %w", r.ID, name, ErrUnregisteredColumn)
	}
	return nil
}

// geometryFields returns the column names a glyph's x-side and y-side
// geometry specs reference. Literal-valued specs contribute nothing.
func geometryFields(g glyphs.Glyph) (xs, ys []string) {
	appendField := func(dst []string, s glyphs.NumberSpec) []string {
		if s.IsField() {
			return append(dst, s.Field)
		}
		return dst
	}
	switch g := g.(type) {
	case *glyphs.Line:
		xs = appendField(xs, g.X)
		ys = appendField(ys, g.Y)
	case *glyphs.Marker:
		xs = appendField(xs, g.X)
		ys = appendField(ys, g.Y)
	case *glyphs.MultiLine:
		xs = appendField(xs, g.Xs)
		ys = appendField(ys, g.Ys)
	case *glyphs.Patches:
		xs = appendField(xs, g.Xs)
		ys = appendField(ys, g.Ys)
	}
	return xs, ys
}
