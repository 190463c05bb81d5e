package errors

import "testing"

func TestValidateCoordinates(t *testing.T) {
	// A single point is fine; only the lengths must match.
	if err := ValidateCoordinates([]float64{3}, []float64{4}); err != nil {
		t.Errorf("ValidateCoordinates() = %v, want nil", err)
	}
	if err := ValidateCoordinates(nil, nil); err != nil {
		t.Errorf("ValidateCoordinates(nil, nil) = %v, want nil", err)
	}

	err := ValidateCoordinates([]float64{0, 1}, []float64{0})
	if !Is(err, ErrCodeInvalidPolyline) {
		t.Errorf("ValidateCoordinates() code = %q, want %q", GetCode(err), ErrCodeInvalidPolyline)
	}
}

func TestValidatePolyline(t *testing.T) {
	if err := ValidatePolyline([]float64{0, 1, 2}, []float64{0, 1, 2}); err != nil {
		t.Errorf("ValidatePolyline() = %v, want nil", err)
	}

	err := ValidatePolyline([]float64{0, 1}, []float64{0, 1, 2})
	if !Is(err, ErrCodeInvalidPolyline) {
		t.Errorf("ValidatePolyline() code = %q, want %q", GetCode(err), ErrCodeInvalidPolyline)
	}

	err = ValidatePolyline([]float64{0}, []float64{0})
	if !Is(err, ErrCodeInvalidPolyline) {
		t.Errorf("ValidatePolyline() code = %q, want %q", GetCode(err), ErrCodeInvalidPolyline)
	}
}

func TestValidateChannel(t *testing.T) {
	for _, v := range []float64{0, 0.5, 1} {
		if err := ValidateChannel(v); err != nil {
			t.Errorf("ValidateChannel(%g) = %v, want nil", v, err)
		}
	}
	for _, v := range []float64{-0.1, 1.1, 255} {
		if err := ValidateChannel(v); !Is(err, ErrCodeInvalidColor) {
			t.Errorf("ValidateChannel(%g) code = %q, want %q", v, GetCode(err), ErrCodeInvalidColor)
		}
	}
}
