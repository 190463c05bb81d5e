package errors

// ValidateCoordinates validates a pair of coordinate arrays. Matched lengths
// are the only requirement: a single-point marker set is a valid source
// element.
func ValidateCoordinates(x, y []float64) error {
	if len(x) != len(y) {
		return New(ErrCodeInvalidPolyline, "coordinate arrays differ in length: %d vs %d", len(x), len(y))
	}
	return nil
}

// ValidatePolyline validates a pair of coordinate arrays describing a
// traversable polyline. The sketch filter requires at least two points on top
// of matched lengths; anything shorter has no path to follow.
func ValidatePolyline(x, y []float64) error {
	if err := ValidateCoordinates(x, y); err != nil {
		return err
	}
	if len(x) < 2 {
		return New(ErrCodeInvalidPolyline, "polyline needs at least 2 points, got %d", len(x))
	}
	return nil
}

// ValidateChannel validates a single color channel value.
// Source color tuples carry float channels in the unit interval; values
// outside it indicate a malformed source object rather than a color space
// the converter should guess at.
func ValidateChannel(v float64) error {
	if v < 0 || v > 1 {
		return New(ErrCodeInvalidColor, "color channel %g outside [0, 1]", v)
	}
	return nil
}
