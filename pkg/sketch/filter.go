package sketch

import "math"

// firwin designs a linear-phase low-pass FIR filter of the given tap count
// using the windowed-sinc method with a Kaiser window. cutoff is expressed
// as a fraction of the Nyquist frequency. The taps are normalized to unity
// gain at DC.
func firwin(taps int, cutoff, beta float64) []float64 {
	h := make([]float64, taps)
	mid := float64(taps-1) / 2
	var sum float64
	for i := range h {
		h[i] = cutoff * sinc(cutoff*(float64(i)-mid)) * kaiser(i, taps, beta)
		sum += h[i]
	}
	if sum != 0 {
		for i := range h {
			h[i] /= sum
		}
	}
	return h
}

// sinc is the normalized sinc function sin(πt)/(πt).
func sinc(t float64) float64 {
	if t == 0 {
		return 1
	}
	return math.Sin(math.Pi*t) / (math.Pi * t)
}

// kaiser evaluates tap i of an n-tap Kaiser window with shape parameter beta.
func kaiser(i, n int, beta float64) float64 {
	if n == 1 {
		return 1
	}
	r := 2*float64(i)/float64(n-1) - 1
	return besselI0(beta*math.Sqrt(1-r*r)) / besselI0(beta)
}

// besselI0 computes the zeroth-order modified Bessel function of the first
// kind via its power series. The series converges quickly for the argument
// range Kaiser windows use.
func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0
	half := x / 2
	for k := 1; k < 64; k++ {
		term *= (half / float64(k)) * (half / float64(k))
		sum += term
		if term < 1e-12*sum {
			break
		}
	}
	return sum
}

// lfilter applies the FIR filter taps to the signal by direct convolution,
// matching a direct-form transposed filter with unit denominator. The output
// has the same length as the input.
func lfilter(taps, signal []float64) []float64 {
	out := make([]float64, len(signal))
	for i := range signal {
		var acc float64
		for k := 0; k < len(taps) && k <= i; k++ {
			acc += taps[k] * signal[i-k]
		}
		out[i] = acc
	}
	return out
}
