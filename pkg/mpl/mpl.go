package mpl

// RGBA is a source-model color with float channels in [0, 1],
// ordered red, green, blue, alpha.
type RGBA [4]float64

// Path is one polyline or polygon as parallel coordinate arrays.
// For polygon paths the last vertex duplicates the first (closed path).
type Path struct {
	X []float64
	Y []float64
}

// Len returns the number of vertices in the path.
func (p Path) Len() int { return len(p.X) }

// Line2D models a single drawn line in the source figure. A Line2D carries
// both line and marker styling; an element with both a visible line style and
// a visible marker is drawn twice on the target side, once per aspect.
type Line2D struct {
	X, Y []float64

	// Line styling
	Color     string  // color spec: letter code, grayscale fraction, or named color
	LineWidth float64 // stroke width in points
	Alpha     float64 // opacity in [0, 1]
	LineStyle string  // shorthand ("-", "--", ":", "-.") or "none"

	// Marker styling
	Marker          string // marker symbol ("o", "s", "+", ...) or "none"
	MarkerSize      float64
	MarkerEdgeColor string
	MarkerFaceColor string
	MarkerEdgeWidth float64

	// Stroke geometry for the solid segments
	SolidCapStyle  string // "butt", "round", or "projecting"
	SolidJoinStyle string // "miter", "round", or "bevel"
}

// NewLine2D creates a line through the given points with the source library's
// default styling: a solid blue line of width 1 with no marker.
func NewLine2D(x, y []float64) *Line2D {
	return &Line2D{
		X:               x,
		Y:               y,
		Color:           "b",
		LineWidth:       1,
		Alpha:           1,
		LineStyle:       "-",
		Marker:          "",
		MarkerSize:      6,
		MarkerEdgeColor: "b",
		MarkerFaceColor: "b",
		MarkerEdgeWidth: 1,
		SolidCapStyle:   "butt",
		SolidJoinStyle:  "round",
	}
}

// Collection is the common contract of the source model's multi-path
// children. It is a sealed interface: the converter dispatches on the two
// concrete kinds, LineCollection and PolyCollection.
type Collection interface {
	isCollection()
}

// LineCollection is an ordered sequence of independent line segments with
// cycled styling. Colors and widths shorter than the segment count repeat
// cyclically, mirroring the source library's style cycling.
type LineCollection struct {
	Segments   []Path
	Colors     []RGBA    // stroke colors, cycled over segments
	LineWidths []float64 // stroke widths, cycled over segments
	Alpha      float64
	DashOffset float64
	OnOff      []int // dash on/off tuple; empty means solid
}

func (*LineCollection) isCollection() {}

// NewLineCollection creates a collection of segments with default styling.
func NewLineCollection(segments []Path) *LineCollection {
	return &LineCollection{
		Segments:   segments,
		Colors:     []RGBA{{0, 0, 1, 1}},
		LineWidths: []float64{1},
		Alpha:      1,
	}
}

// PolyCollection is an ordered sequence of closed polygon paths with cycled
// face and edge styling. Each path's last vertex duplicates its first.
type PolyCollection struct {
	Paths      []Path
	FaceColors []RGBA
	EdgeColors []RGBA
	LineWidths []float64
	Alpha      float64
	DashOffset float64
	OnOff      []int
}

func (*PolyCollection) isCollection() {}

// NewPolyCollection creates a collection of closed polygons with default styling.
func NewPolyCollection(paths []Path) *PolyCollection {
	return &PolyCollection{
		Paths:      paths,
		FaceColors: []RGBA{{0, 0, 1, 1}},
		EdgeColors: []RGBA{{0, 0, 0, 1}},
		LineWidths: []float64{1},
		Alpha:      1,
	}
}

// Text models a styled label: axis labels, tick labels, and titles.
// FontStyle and Weight are independent axes on the source side even though
// they collapse into a single style field on the target side.
type Text struct {
	FontStyle         string   // "normal", "italic", or "oblique"
	Weight            string   // "normal", "bold", "heavy", ...
	Size              float64  // font size in points
	Alpha             float64  // opacity in [0, 1]
	Color             string   // color spec
	VerticalAlignment string   // "center", "top", or "bottom"
	FontFamily        []string // preference-ordered family list; first entry wins
}

// NewText creates a text style with the source library's defaults.
func NewText() Text {
	return Text{
		FontStyle:         "normal",
		Weight:            "normal",
		Size:              12,
		Alpha:             1,
		Color:             "k",
		VerticalAlignment: "center",
		FontFamily:        []string{"sans-serif"},
	}
}

// GridLine carries the two gridline attributes the converter reads.
type GridLine struct {
	Color     string
	LineWidth float64
}

// Axis describes one dimension of the source axes: its label text and
// styling, the styling of its tick labels, and its gridlines.
type Axis struct {
	LabelText  string
	Label      Text
	TickLabels []Text
	GridLines  []GridLine
}

// NewAxis creates an axis with default label styling, one default-styled
// tick label, and one default gridline.
func NewAxis() Axis {
	return Axis{
		Label:      NewText(),
		TickLabels: []Text{NewText()},
		GridLines:  []GridLine{{Color: "gray", LineWidth: 1}},
	}
}

// Axes is the source-side container for everything on a plot: drawn lines,
// collections, the two axis descriptors, the title, and the background.
type Axes struct {
	BackgroundColor string
	Title           string
	Lines           []*Line2D
	Collections     []Collection
	XAxis           Axis
	YAxis           Axis
}

// NewAxes creates an empty axes with a white background and default axes.
func NewAxes() *Axes {
	return &Axes{
		BackgroundColor: "w",
		XAxis:           NewAxis(),
		YAxis:           NewAxis(),
	}
}
