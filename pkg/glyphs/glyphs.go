package glyphs

// Glyph is implemented by every geometry specification that can be attached
// to a renderer. It is a sealed interface over the four concrete kinds.
type Glyph interface {
	isGlyph()
}

// Line draws one connected polyline. X and Y reference columns holding the
// point coordinates.
type Line struct {
	X, Y NumberSpec
	LineProps
}

func (*Line) isGlyph() {}

// MarkerType identifies the symbol drawn by a Marker glyph.
type MarkerType string

// Supported marker symbols.
const (
	MarkerCircle           MarkerType = "circle"
	MarkerSquare           MarkerType = "square"
	MarkerCross            MarkerType = "cross"
	MarkerTriangle         MarkerType = "triangle"
	MarkerInvertedTriangle MarkerType = "inverted_triangle"
	MarkerX                MarkerType = "x"
	MarkerDiamond          MarkerType = "diamond"
	MarkerAsterisk         MarkerType = "asterisk"
)

// Marker draws one symbol per point. X and Y reference coordinate columns;
// Size is the symbol size in screen units.
type Marker struct {
	Type MarkerType
	X, Y NumberSpec
	Size NumberSpec
	LineProps
	FillProps
}

func (*Marker) isGlyph() {}

// MultiLine draws many independent polylines. Xs and Ys reference columns of
// coordinate lists (one list per polyline); LineColor and LineWidth reference
// columns cycled per polyline.
type MultiLine struct {
	Xs, Ys NumberSpec
	LineProps
}

func (*MultiLine) isGlyph() {}

// Patches draws many closed polygons. Xs and Ys reference columns of
// coordinate lists (one list per polygon, without the duplicated closing
// vertex); fill color, edge color and width reference cycled columns.
type Patches struct {
	Xs, Ys NumberSpec
	LineProps
	FillProps
}

func (*Patches) isGlyph() {}
