package objects

import (
	"fmt"

	"github.com/google/uuid"
)

// ColumnData is the value sequence stored in one column.
// The three implementations cover the column kinds the converter emits:
// plain coordinates, per-path coordinate lists, and cycled color strings.
type ColumnData interface {
	Len() int
}

// Floats is a column of numeric values.
type Floats []float64

// Len returns the number of values in the column.
func (f Floats) Len() int { return len(f) }

// FloatLists is a column of numeric sequences, one per path. Multi-line and
// patches glyphs reference columns of this kind.
type FloatLists [][]float64

// Len returns the number of sequences in the column.
func (f FloatLists) Len() int { return len(f) }

// Strings is a column of string values, typically hex color specs cycled
// over a collection's paths.
type Strings []string

// Len returns the number of values in the column.
func (s Strings) Len() int { return len(s) }

// Column is one immutable named value sequence in a data source.
type Column struct {
	Name string
	Data ColumnData
}

// ColumnDataSource is an append-only columnar store shared by the renderers
// of one plot. Columns are added once, named automatically, and referenced
// by name from glyph specs. It is not safe for concurrent use.
type ColumnDataSource struct {
	ID      string
	columns []Column
	byName  map[string]int
}

// NewColumnDataSource creates an empty data source with a fresh id.
func NewColumnDataSource() *ColumnDataSource {
	return &ColumnDataSource{
		ID:     uuid.NewString(),
		byName: make(map[string]int),
	}
}

// AddFloats appends a numeric column and returns its generated name.
func (s *ColumnDataSource) AddFloats(data []float64) string {
	return s.add(Floats(data))
}

// AddFloatLists appends a column of per-path sequences and returns its
// generated name.
func (s *ColumnDataSource) AddFloatLists(data [][]float64) string {
	return s.add(FloatLists(data))
}

// AddStrings appends a string column and returns its generated name.
func (s *ColumnDataSource) AddStrings(data []string) string {
	return s.add(Strings(data))
}

func (s *ColumnDataSource) add(data ColumnData) string {
	name := fmt.Sprintf("col%d", len(s.columns))
	s.byName[name] = len(s.columns)
	s.columns = append(s.columns, Column{Name: name, Data: data})
	return name
}

// Column returns the named column and true, or a zero Column and false if no
// column with that name exists.
func (s *ColumnDataSource) Column(name string) (Column, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Column{}, false
	}
	return s.columns[i], true
}

// NumColumns returns the number of columns in the source.
func (s *ColumnDataSource) NumColumns() int { return len(s.columns) }

// Names returns the column names in insertion order.
func (s *ColumnDataSource) Names() []string {
	names := make([]string, len(s.columns))
	for i, c := range s.columns {
		names[i] = c.Name
	}
	return names
}

// Columns creates a reference to a set of this source's columns, suitable
// for registering with a DataRange1d. The column names are not required to
// exist yet; Plot.Validate catches dangling references.
func (s *ColumnDataSource) Columns(names ...string) ColumnsRef {
	return ColumnsRef{Source: s, Columns: names}
}

// ColumnsRef points a range at a subset of one data source's columns.
type ColumnsRef struct {
	Source  *ColumnDataSource
	Columns []string
}

// DataRange1d is a 1-D coordinate extent derived from the columns registered
// with it. All renderers plotted against a range must have their geometry
// columns listed in its sources.
type DataRange1d struct {
	ID      string
	Sources []ColumnsRef
}

// NewDataRange1d creates an empty range with a fresh id.
func NewDataRange1d() *DataRange1d {
	return &DataRange1d{ID: uuid.NewString()}
}

// AddSource registers a column reference with the range.
func (r *DataRange1d) AddSource(ref ColumnsRef) {
	r.Sources = append(r.Sources, ref)
}

// References reports whether the range lists the named column of the given
// data source.
func (r *DataRange1d) References(source *ColumnDataSource, name string) bool {
	for _, ref := range r.Sources {
		if ref.Source != source {
			continue
		}
		for _, c := range ref.Columns {
			if c == name {
				return true
			}
		}
	}
	return false
}
