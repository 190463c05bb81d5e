package sketch

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"

	"github.com/tommycarstensen/bokeh/pkg/errors"
)

// samplesPerUnit is the resample density: interpolated points per unit of
// path length in rescaled (unit square) space.
const samplesPerUnit = 200

// noiseSigma is the standard deviation of the raw per-sample perturbation
// before magnitude scaling and filtering.
const noiseSigma = 0.01

// Interval is an inclusive 1-D coordinate extent.
type Interval struct {
	Min, Max float64
}

// degenerate reports whether the interval has zero width.
func (iv Interval) degenerate() bool { return iv.Min == iv.Max }

// Options tunes the distortion filter. The zero value of any field selects
// its default; pass nil for all defaults.
type Options struct {
	// XLim and YLim are the assumed plot ranges used to rescale the path.
	// When nil they are taken from the data's own extent.
	XLim, YLim *Interval

	// Mag scales the distortion magnitude. Default 1.0.
	Mag float64

	// Window is the FIR filter length in taps. Default 30.
	Window int

	// Cutoff is the filter's high-frequency cutoff per unit of rescaled
	// path length. Default 0.001.
	Cutoff float64

	// Beta is the Kaiser window shape parameter. Default 5.
	Beta float64

	// Rand is the perturbation source. When nil the shared math/rand/v2
	// source is used, making the output nondeterministic.
	Rand *rand.Rand
}

var defaultOpts = Options{
	Mag:    1.0,
	Window: 30,
	Cutoff: 0.001,
	Beta:   5,
}

// withDefaults returns a copy of opts with zero-valued fields replaced by
// their defaults.
func (o *Options) withDefaults() Options {
	if o == nil {
		return defaultOpts
	}
	out := *o
	if out.Mag == 0 {
		out.Mag = defaultOpts.Mag
	}
	if out.Window == 0 {
		out.Window = defaultOpts.Window
	}
	if out.Cutoff == 0 {
		out.Cutoff = defaultOpts.Cutoff
	}
	if out.Beta == 0 {
		out.Beta = defaultOpts.Beta
	}
	return out
}

// Line redraws the polyline (x, y) with hand wobble and returns the
// perturbed coordinate arrays. The output is a denser polyline whose length
// is proportional to the path's geometric length; it differs from the input
// length and is independent of the distortion magnitude.
//
// Returns an INVALID_POLYLINE error for mismatched or too-short inputs and a
// DEGENERATE_PATH error when the path has no usable extent.
func Line(x, y []float64, opts *Options) ([]float64, []float64, error) {
	if err := errors.ValidatePolyline(x, y); err != nil {
		return nil, nil, err
	}
	o := opts.withDefaults()

	xlim, ylim, err := resolveLimits(x, y, o.XLim, o.YLim)
	if err != nil {
		return nil, nil, err
	}

	xs := rescale(x, xlim)
	ys := rescale(y, ylim)

	distTot := pathLength(xs, ys)
	n := int(samplesPerUnit * distTot)
	if n < 2 {
		return nil, nil, errors.New(errors.ErrCodeDegeneratePath,
			"path too short to resample: rescaled length %g", distTot)
	}

	// Resample along the fitted spline, with one extra sample beyond each
	// end so the interior tangents come from clean central differences.
	xi, yi, err := resample(xs, ys, n)
	if err != nil {
		return nil, nil, err
	}

	// Local tangents at the n interior samples.
	dx := make([]float64, n)
	dy := make([]float64, n)
	dist := make([]float64, n)
	for i := 0; i < n; i++ {
		dx[i] = xi[i+2] - xi[i]
		dy[i] = yi[i+2] - yi[i]
		dist[i] = math.Hypot(dx[i], dy[i])
	}

	// Filtered Gaussian perturbation, one value per interior sample.
	coeffs := make([]float64, n)
	for i := range coeffs {
		coeffs[i] = o.Mag * normFloat64(o.Rand) * noiseSigma
	}
	taps := firwin(o.Window, o.Cutoff*distTot, o.Beta)
	response := lfilter(taps, coeffs)

	// Displace each interior sample perpendicular to its tangent. A zero
	// local distance carries no direction, so that sample stays put.
	for i := 0; i < n; i++ {
		if dist[i] == 0 {
			continue
		}
		xi[i+1] += response[i] * dy[i] / dist[i]
		yi[i+1] += response[i] * dx[i] / dist[i]
	}

	// Drop the boundary samples and map back to the original range.
	outX := make([]float64, n)
	outY := make([]float64, n)
	for i := 0; i < n; i++ {
		outX[i] = xi[i+1]*(xlim.Max-xlim.Min) + xlim.Min
		outY[i] = yi[i+1]*(ylim.Max-ylim.Min) + ylim.Min
	}
	return outX, outY, nil
}

// resolveLimits determines the rescaling intervals from explicit options or
// the data extent. A degenerate axis borrows the other axis's interval;
// both degenerate is a precondition violation.
func resolveLimits(x, y []float64, xlim, ylim *Interval) (Interval, Interval, error) {
	xl := dataInterval(x, xlim)
	yl := dataInterval(y, ylim)

	if xl.degenerate() && yl.degenerate() {
		return Interval{}, Interval{}, errors.New(errors.ErrCodeDegeneratePath,
			"both axes degenerate: all points coincide at (%g, %g)", xl.Min, yl.Min)
	}
	if xl.degenerate() {
		xl = yl
	}
	if yl.degenerate() {
		yl = xl
	}
	return xl, yl, nil
}

func dataInterval(v []float64, explicit *Interval) Interval {
	if explicit != nil {
		return *explicit
	}
	return Interval{Min: floats.Min(v), Max: floats.Max(v)}
}

// rescale maps v into [0, 1] relative to the interval.
func rescale(v []float64, iv Interval) []float64 {
	out := make([]float64, len(v))
	span := iv.Max - iv.Min
	for i, x := range v {
		out[i] = (x - iv.Min) / span
	}
	return out
}

// pathLength returns the cumulative Euclidean length of the polyline.
func pathLength(x, y []float64) float64 {
	var total float64
	for i := 1; i < len(x); i++ {
		total += math.Hypot(x[i]-x[i-1], y[i]-y[i-1])
	}
	return total
}

// normFloat64 draws a standard normal variate from rng, or from the shared
// source when rng is nil.
func normFloat64(rng *rand.Rand) float64 {
	if rng != nil {
		return rng.NormFloat64()
	}
	return rand.NormFloat64()
}
