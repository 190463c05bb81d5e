package glyphs

import "testing"

func TestNumberSpec(t *testing.T) {
	f := NumberField("col3")
	if !f.IsField() || f.Field != "col3" {
		t.Errorf("NumberField() = %+v, want field col3", f)
	}

	v := NumberValue(2.5)
	if v.IsField() {
		t.Error("NumberValue().IsField() = true, want false")
	}
	if v.Value != 2.5 {
		t.Errorf("Value = %g, want 2.5", v.Value)
	}
}

func TestColorSpec(t *testing.T) {
	f := ColorField("col0")
	if !f.IsField() || f.Field != "col0" {
		t.Errorf("ColorField() = %+v, want field col0", f)
	}

	v := ColorValue("red")
	if v.IsField() {
		t.Error("ColorValue().IsField() = true, want false")
	}
	if v.Value != "red" {
		t.Errorf("Value = %q, want red", v.Value)
	}
}

func TestDashPattern(t *testing.T) {
	named := NamedDash(DashDashed)
	if named.Name != "dashed" || len(named.OnOff) != 0 {
		t.Errorf("NamedDash() = %+v", named)
	}

	onOff := OnOffDash([]int{4, 2})
	if onOff.Name != "" || len(onOff.OnOff) != 2 {
		t.Errorf("OnOffDash() = %+v", onOff)
	}

	var solid DashPattern
	if solid.Name != "" || len(solid.OnOff) != 0 {
		t.Errorf("zero DashPattern = %+v, want solid", solid)
	}
}
