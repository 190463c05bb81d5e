// Package convert translates source figures into target plots.
//
// # Overview
//
// In the source object model, an axes container holds everything drawn on a
// plot. [AxesToPlot] walks one [mpl.Axes], classifies its children, and
// produces one [objects.Plot] with one renderer per drawn element, a shared
// columnar data source, both coordinate ranges, axes, grids and interaction
// tools.
//
// Classification is string-based on linestyle and marker: "", " " and "none"
// (any case) mean "not drawn". A line carries two drawable aspects, so a
// source line with both a visible linestyle and a visible marker yields two
// independent renderers.
//
// # Mapping tables
//
// Styling is translated through fixed tables: dash shorthand ("-" → "solid"),
// cap styles ("projecting" → "square"), marker symbols ("o" → circle), and
// vertical alignments ("center" → "middle"). Color specs normalize through
// [ConvertColor]: single-letter codes become named colors, grayscale
// fractions and float tuples become hex triples, everything else passes
// through untouched.
//
// Values outside a table fall into two severities: an unsupported marker is
// a recoverable condition (the element is skipped with a warning), while an
// unsupported cap style or vertical alignment aborts the conversion with a
// coded error.
//
// # Sketch mode
//
// With [Options.Sketch] set, every line and segment runs through the sketch
// filter and the plot takes a fixed bundle of hand-drawn presentation
// overrides: heavier strokes and a bold, black, hand-drawn font for the
// title and axis text. Geometry semantics are unchanged otherwise.
//
// # Concurrency
//
// Conversions are pure, synchronous, and independent; separate calls share
// no state unless they share an [Options.Gallery] collector, which is
// single-caller-at-a-time.
//
// [mpl.Axes]: github.com/tommycarstensen/bokeh/pkg/mpl
// [objects.Plot]: github.com/tommycarstensen/bokeh/pkg/objects
package convert
