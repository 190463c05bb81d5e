// Package glyphs defines the geometry specifications drawn into a target plot.
//
// # Overview
//
// A glyph pairs a geometry kind (line, marker, multi-line, patches) with the
// styling needed to draw it. Glyphs do not own data: coordinate and per-path
// style fields are [NumberSpec] and [ColorSpec] values that either reference a
// named column in a [ColumnDataSource] or carry a literal value directly.
//
// The four glyph kinds mirror the source model's drawable children:
//
//   - [Line]: one connected polyline
//   - [Marker]: one point set drawn with a [MarkerType] symbol
//   - [MultiLine]: many independent polylines with cycled styling
//   - [Patches]: many closed polygons with cycled fill and edge styling
//
// [ColumnDataSource]: github.com/tommycarstensen/bokeh/pkg/objects
package glyphs
