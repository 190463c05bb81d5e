package objects

import "testing"

func TestColumnDataSource_AddAndLookup(t *testing.T) {
	s := NewColumnDataSource()

	xname := s.AddFloats([]float64{0, 1, 2})
	yname := s.AddFloats([]float64{3, 4, 5})

	if xname != "col0" || yname != "col1" {
		t.Errorf("column names = (%q, %q), want (col0, col1)", xname, yname)
	}
	if s.NumColumns() != 2 {
		t.Errorf("NumColumns() = %d, want 2", s.NumColumns())
	}

	col, ok := s.Column(xname)
	if !ok {
		t.Fatalf("Column(%q) not found", xname)
	}
	if col.Data.Len() != 3 {
		t.Errorf("column length = %d, want 3", col.Data.Len())
	}
	if _, ok := s.Column("missing"); ok {
		t.Error("Column(missing) = ok, want not found")
	}
}

func TestColumnDataSource_Kinds(t *testing.T) {
	s := NewColumnDataSource()

	fl := s.AddFloatLists([][]float64{{0, 1}, {2, 3, 4}})
	st := s.AddStrings([]string{"#ff0000", "#0000ff"})

	col, _ := s.Column(fl)
	if lists, ok := col.Data.(FloatLists); !ok || lists.Len() != 2 {
		t.Errorf("float lists column = %T len %d, want FloatLists len 2", col.Data, col.Data.Len())
	}
	col, _ = s.Column(st)
	if strs, ok := col.Data.(Strings); !ok || strs.Len() != 2 {
		t.Errorf("strings column = %T len %d, want Strings len 2", col.Data, col.Data.Len())
	}
}

func TestColumnDataSource_Names(t *testing.T) {
	s := NewColumnDataSource()
	s.AddFloats([]float64{1})
	s.AddStrings([]string{"a"})

	names := s.Names()
	if len(names) != 2 || names[0] != "col0" || names[1] != "col1" {
		t.Errorf("Names() = %v, want [col0 col1]", names)
	}
}

func TestDataRange1d_References(t *testing.T) {
	s := NewColumnDataSource()
	name := s.AddFloats([]float64{0, 1})

	r := NewDataRange1d()
	if r.References(s, name) {
		t.Error("References() = true before registration")
	}

	r.AddSource(s.Columns(name))
	if !r.References(s, name) {
		t.Error("References() = false after registration")
	}
	if r.References(s, "other") {
		t.Error("References(other) = true, want false")
	}

	// A different source with the same column name does not match.
	other := NewColumnDataSource()
	other.AddFloats([]float64{0, 1})
	if r.References(other, name) {
		t.Error("References() matched a column from a different source")
	}
}
