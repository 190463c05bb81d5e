package convert

import "testing"

func TestCycled(t *testing.T) {
	got := cycled([]string{"a", "b"}, 5)
	want := []string{"a", "b", "a", "b", "a"}
	if len(got) != len(want) {
		t.Fatalf("cycled returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cycled[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCycled_Truncates(t *testing.T) {
	got := cycled([]float64{1, 2, 3, 4}, 2)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("cycled() = %v, want [1 2]", got)
	}
}

func TestCycled_Empty(t *testing.T) {
	if got := cycled([]string(nil), 3); got != nil {
		t.Errorf("cycled(nil, 3) = %v, want nil", got)
	}
	if got := cycled([]string{"a"}, 0); got != nil {
		t.Errorf("cycled([a], 0) = %v, want nil", got)
	}
}
