package glyphs

// NumberSpec is a numeric glyph field that either references a data source
// column by name or carries a literal value. A non-empty Field wins over Value.
type NumberSpec struct {
	Field string  // column name in the renderer's data source
	Value float64 // literal, used when Field is empty
}

// NumberField creates a NumberSpec referencing a column.
func NumberField(name string) NumberSpec { return NumberSpec{Field: name} }

// NumberValue creates a NumberSpec carrying a literal value.
func NumberValue(v float64) NumberSpec { return NumberSpec{Value: v} }

// IsField reports whether the spec references a column.
func (s NumberSpec) IsField() bool { return s.Field != "" }

// ColorSpec is a color glyph field that either references a data source
// column by name or carries a literal color string. A non-empty Field wins
// over Value.
type ColorSpec struct {
	Field string // column name in the renderer's data source
	Value string // literal color spec, used when Field is empty
}

// ColorField creates a ColorSpec referencing a column.
func ColorField(name string) ColorSpec { return ColorSpec{Field: name} }

// ColorValue creates a ColorSpec carrying a literal color.
func ColorValue(c string) ColorSpec { return ColorSpec{Value: c} }

// IsField reports whether the spec references a column.
func (s ColorSpec) IsField() bool { return s.Field != "" }
