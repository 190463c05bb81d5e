// Package objects defines the target-side plot model produced by the converter.
//
// # Overview
//
// A [Plot] owns two independent 1-D coordinate ranges, a list of renderers, a
// shared columnar data store, axes, grids, and interaction tools. Every
// object carries a unique id, as the downstream web pipeline expects.
//
// The central invariants, checked by [Plot.Validate]:
//
//   - every renderer geometry field resolves to an existing column in the
//     renderer's data source, and
//   - each range lists every geometry column of the renderers plotted
//     against it.
//
// The converter maintains both invariants by registering each new geometry
// column into the x and y range as it is added.
//
// # Data sources
//
// [ColumnDataSource] is an append-only store of named, immutable columns.
// Adding data returns the generated column name, which glyph specs then
// reference:
//
//	source := objects.NewColumnDataSource()
//	xname := source.AddFloats([]float64{0, 1, 2})
//	line.X = glyphs.NumberField(xname)
//
// # Concurrency
//
// None of the types in this package are safe for concurrent mutation. A plot
// is fully populated by a single conversion call and not mutated after
// handoff.
package objects
