// Package mpl defines the source-side figure model consumed by the converter.
//
// # Overview
//
// The converter translates figures authored against a matplotlib-style object
// model into the web-oriented plot model in [objects] and [glyphs]. This
// package provides the narrow value types that stand in for the source
// library's objects: an [Axes] container holding [Line2D] children,
// line-segment and polygon [Collection] children, and per-dimension [Axis]
// descriptors with label and tick [Text] styling.
//
// The types are deliberately plain data carriers. They capture exactly the
// attributes the converter reads and nothing else, so the converter depends
// on an explicit shape rather than on whatever attributes happen to exist on
// the real source objects.
//
// # Defaults
//
// Constructors fill in the source library's defaults (solid blue line, width
// 1, full opacity, 12pt normal text), so a figure built field-by-field
// converts the same way a default-styled source figure would:
//
//	line := mpl.NewLine2D([]float64{0, 1, 2}, []float64{0, 1, 4})
//	line.Color = "r"
//	ax := mpl.NewAxes()
//	ax.Lines = append(ax.Lines, line)
//
// # Style presence
//
// Line styles and marker symbols are open strings on the source side. The
// values "", " ", "none" and "None" all mean "not drawn"; classification of
// those strings is the converter's job, not this package's.
//
// [objects]: github.com/tommycarstensen/bokeh/pkg/objects
// [glyphs]: github.com/tommycarstensen/bokeh/pkg/glyphs
package mpl
