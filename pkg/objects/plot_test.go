package objects

import (
	"errors"
	"testing"

	"github.com/tommycarstensen/bokeh/pkg/glyphs"
)

func wiredPlot() (*Plot, *ColumnDataSource, *glyphs.Line) {
	p := NewPlot("test")
	s := NewColumnDataSource()
	p.DataSources = append(p.DataSources, s)

	g := &glyphs.Line{
		X: glyphs.NumberField(s.AddFloats([]float64{0, 1})),
		Y: glyphs.NumberField(s.AddFloats([]float64{2, 3})),
	}
	p.XRange.AddSource(s.Columns(g.X.Field))
	p.YRange.AddSource(s.Columns(g.Y.Field))
	p.Renderers = append(p.Renderers, NewGlyphRenderer(s, p.XRange, p.YRange, g))
	return p, s, g
}

func TestPlot_Validate(t *testing.T) {
	p, _, _ := wiredPlot()
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestPlot_Validate_UnknownColumn(t *testing.T) {
	p, _, g := wiredPlot()
	g.X = glyphs.NumberField("ghost")

	if err := p.Validate(); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("Validate() = %v, want ErrUnknownColumn", err)
	}
}

func TestPlot_Validate_UnregisteredColumn(t *testing.T) {
	p, s, g := wiredPlot()
	// A fresh column that exists in the source but was never registered
	// with the y range.
	g.Y = glyphs.NumberField(s.AddFloats([]float64{9, 9}))

	if err := p.Validate(); !errors.Is(err, ErrUnregisteredColumn) {
		t.Errorf("Validate() = %v, want ErrUnregisteredColumn", err)
	}
}

func TestPlot_Validate_LiteralSpecs(t *testing.T) {
	// Literal-valued geometry specs reference no columns and always pass.
	p := NewPlot("literal")
	s := NewColumnDataSource()
	p.DataSources = append(p.DataSources, s)
	g := &glyphs.Line{X: glyphs.NumberValue(1), Y: glyphs.NumberValue(2)}
	p.Renderers = append(p.Renderers, NewGlyphRenderer(s, p.XRange, p.YRange, g))

	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestNewPlot_FreshObjects(t *testing.T) {
	a := NewPlot("a")
	b := NewPlot("b")

	if a.ID == b.ID {
		t.Error("two plots share an id")
	}
	if a.XRange == b.XRange || a.YRange == b.YRange {
		t.Error("two plots share a range")
	}
	if a.XRange.ID == a.YRange.ID {
		t.Error("x and y ranges share an id")
	}
}

func TestTools_BothDimensions(t *testing.T) {
	pan := NewPanTool()
	zoom := NewWheelZoomTool()

	for _, dims := range [][]Dimension{pan.Dimensions, zoom.Dimensions} {
		if len(dims) != 2 || dims[0] != DimX || dims[1] != DimY {
			t.Errorf("tool dimensions = %v, want [DimX DimY]", dims)
		}
	}
}
