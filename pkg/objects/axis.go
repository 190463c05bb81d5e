package objects

import "github.com/google/uuid"

// FontStyle is the collapsed text style field on the target side. The source
// model's independent style and weight axes both map into it, so bold wins
// over italic when a label is both.
type FontStyle string

// Supported font styles.
const (
	FontNormal FontStyle = "normal"
	FontItalic FontStyle = "italic"
	FontBold   FontStyle = "bold"
)

// TextBaseline is the vertical anchor of rendered text.
type TextBaseline string

// Supported text baselines.
const (
	BaselineTop    TextBaseline = "top"
	BaselineMiddle TextBaseline = "middle"
	BaselineBottom TextBaseline = "bottom"
)

// TextProps is the text styling bundle shared by titles, axis labels and
// tick labels. Size is a pixel size string such as "12px".
type TextProps struct {
	Font     string
	Size     string
	Style    FontStyle
	Color    string
	Alpha    float64
	Baseline TextBaseline
}

// Dimension selects a plot axis: 0 for x, 1 for y.
type Dimension int

// Plot dimensions.
const (
	DimX Dimension = 0
	DimY Dimension = 1
)

// LinearAxis is a target axis derived from one source axis dimension.
// It owns the label text and the styling of both the axis label and the
// tick ("major") labels.
type LinearAxis struct {
	ID        string
	Dimension Dimension
	Location  string // edge placement; the converter always emits "min"

	AxisLabel     string
	AxisLineWidth float64

	LabelProps      TextProps // axis label styling
	MajorLabelProps TextProps // tick label styling
}

// NewLinearAxis creates an axis for the given dimension at the "min"
// location with a fresh id.
func NewLinearAxis(dim Dimension) *LinearAxis {
	return &LinearAxis{
		ID:            uuid.NewString(),
		Dimension:     dim,
		Location:      "min",
		AxisLineWidth: 1,
	}
}

// Grid draws gridlines for one plot dimension, paired with the axis whose
// ticks it follows.
type Grid struct {
	ID        string
	Dimension Dimension
	Axis      *LinearAxis

	GridLineColor string
	GridLineWidth float64
}

// NewGrid creates a grid bound to the given axis and dimension with a
// fresh id.
func NewGrid(dim Dimension, axis *LinearAxis) *Grid {
	return &Grid{
		ID:        uuid.NewString(),
		Dimension: dim,
		Axis:      axis,
	}
}
