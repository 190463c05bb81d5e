package glyphs

// LineCap controls how stroke ends are drawn.
type LineCap string

// Supported line cap styles.
const (
	CapButt   LineCap = "butt"
	CapRound  LineCap = "round"
	CapSquare LineCap = "square"
)

// LineJoin controls how stroke corners are drawn.
type LineJoin string

// Supported line join styles.
const (
	JoinMiter LineJoin = "miter"
	JoinRound LineJoin = "round"
	JoinBevel LineJoin = "bevel"
)

// DashPattern is a stroke dash specification: either one of the named
// patterns ("solid", "dashed", "dotted", "dashdot") or an explicit on/off
// pixel tuple. The zero value draws a solid stroke.
type DashPattern struct {
	Name  string // named pattern; wins over OnOff when non-empty
	OnOff []int  // explicit on/off tuple
}

// Named dash patterns understood by the target pipeline.
const (
	DashSolid   = "solid"
	DashDashed  = "dashed"
	DashDotted  = "dotted"
	DashDashdot = "dashdot"
)

// NamedDash creates a DashPattern from a pattern name.
func NamedDash(name string) DashPattern { return DashPattern{Name: name} }

// OnOffDash creates a DashPattern from an explicit on/off tuple.
func OnOffDash(onOff []int) DashPattern { return DashPattern{OnOff: onOff} }

// LineProps is the stroke styling shared by every glyph that draws lines.
// Color, width and alpha are specs so that multi-path glyphs can cycle them
// through data source columns.
type LineProps struct {
	LineColor      ColorSpec
	LineWidth      NumberSpec
	LineAlpha      NumberSpec
	LineJoin       LineJoin
	LineCap        LineCap
	LineDash       DashPattern
	LineDashOffset int
}

// FillProps is the fill styling shared by every glyph that fills areas.
type FillProps struct {
	FillColor ColorSpec
	FillAlpha NumberSpec
}
