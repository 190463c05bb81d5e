package sketch

import (
	"math"
	"testing"
)

func TestFirwin_UnityDCGain(t *testing.T) {
	taps := firwin(30, 0.001, 5)
	if len(taps) != 30 {
		t.Fatalf("got %d taps, want 30", len(taps))
	}
	var sum float64
	for _, b := range taps {
		sum += b
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("tap sum = %g, want 1", sum)
	}
}

func TestFirwin_Symmetric(t *testing.T) {
	// Linear phase requires symmetric taps.
	taps := firwin(30, 0.1, 5)
	for i := 0; i < len(taps)/2; i++ {
		j := len(taps) - 1 - i
		if math.Abs(taps[i]-taps[j]) > 1e-12 {
			t.Errorf("taps[%d] = %g, taps[%d] = %g, want symmetric", i, taps[i], j, taps[j])
		}
	}
}

func TestKaiser_Shape(t *testing.T) {
	// The window peaks in the middle and tapers toward the edges.
	n := 31
	mid := kaiser(n/2, n, 5)
	edge := kaiser(0, n, 5)
	if math.Abs(mid-1) > 1e-12 {
		t.Errorf("center = %g, want 1", mid)
	}
	if edge >= mid || edge <= 0 {
		t.Errorf("edge = %g, want in (0, %g)", edge, mid)
	}
	if other := kaiser(n-1, n, 5); math.Abs(other-edge) > 1e-12 {
		t.Errorf("window asymmetric: %g vs %g", edge, other)
	}
}

func TestBesselI0(t *testing.T) {
	// Reference values of the modified Bessel function I0.
	cases := []struct {
		x, want float64
	}{
		{0, 1},
		{1, 1.2660658777520084},
		{5, 27.239871823604442},
	}
	for _, c := range cases {
		if got := besselI0(c.x); math.Abs(got-c.want) > 1e-9*c.want {
			t.Errorf("besselI0(%g) = %g, want %g", c.x, got, c.want)
		}
	}
}

func TestLfilter(t *testing.T) {
	// A unit impulse response passes the signal through unchanged.
	signal := []float64{1, 2, 3, 4}
	got := lfilter([]float64{1}, signal)
	for i, want := range signal {
		if got[i] != want {
			t.Errorf("lfilter[%d] = %g, want %g", i, got[i], want)
		}
	}

	// A delayed impulse shifts the signal.
	got = lfilter([]float64{0, 1}, signal)
	want := []float64{0, 1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delayed lfilter[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}
