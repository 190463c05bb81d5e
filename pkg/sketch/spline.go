package sketch

import (
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/tommycarstensen/bokeh/pkg/errors"
)

// resample fits a parametric spline through the rescaled points and
// evaluates it at n positions uniformly spaced along the chord-length
// parameter. The returned arrays have n+2 entries: one linearly extrapolated
// sample before the start and one after the end, used only for the boundary
// tangents and dropped by the caller.
func resample(xs, ys []float64, n int) ([]float64, []float64, error) {
	ts, px, py := chordParam(xs, ys)
	if len(px) < 2 {
		return nil, nil, errors.New(errors.ErrCodeDegeneratePath,
			"fewer than 2 distinct points")
	}

	fx, fy := predictors(len(px))
	if err := fx.Fit(ts, px); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "fitting x spline")
	}
	if err := fy.Fit(ts, py); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "fitting y spline")
	}

	xi := make([]float64, n+2)
	yi := make([]float64, n+2)
	for j := 0; j < n; j++ {
		u := float64(j) / float64(n-1)
		xi[j+1] = fx.Predict(u)
		yi[j+1] = fy.Predict(u)
	}
	xi[0] = 2*xi[1] - xi[2]
	yi[0] = 2*yi[1] - yi[2]
	xi[n+1] = 2*xi[n] - xi[n-1]
	yi[n+1] = 2*yi[n] - yi[n-1]
	return xi, yi, nil
}

// predictors picks the interpolant degree for the point count: piecewise
// linear for 2 points, a natural cubic spline otherwise.
func predictors(points int) (interp.FittablePredictor, interp.FittablePredictor) {
	if points == 2 {
		return &interp.PiecewiseLinear{}, &interp.PiecewiseLinear{}
	}
	return &interp.NaturalCubic{}, &interp.NaturalCubic{}
}

// chordParam parameterizes the points by normalized cumulative chord length.
// Consecutive duplicate points are collapsed so the parameter stays strictly
// increasing, which the spline fit requires.
func chordParam(xs, ys []float64) (ts, px, py []float64) {
	ts = append(ts, 0)
	px = append(px, xs[0])
	py = append(py, ys[0])
	var acc float64
	for i := 1; i < len(xs); i++ {
		step := math.Hypot(xs[i]-xs[i-1], ys[i]-ys[i-1])
		if step == 0 {
			continue
		}
		acc += step
		ts = append(ts, acc)
		px = append(px, xs[i])
		py = append(py, ys[i])
	}
	if acc > 0 {
		for i := range ts {
			ts[i] /= acc
		}
	}
	return ts, px, py
}
