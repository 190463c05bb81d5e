package convert

// cycled repeats a style-value list cyclically and truncates it to exactly n
// entries, mimicking the source library's style cycling over a collection's
// paths: output index i takes source index i mod len(vals).
// Returns nil for an empty input list.
func cycled[T any](vals []T, n int) []T {
	if len(vals) == 0 || n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = vals[i%len(vals)]
	}
	return out
}
