// Package sketch perturbs polylines to look hand-drawn.
//
// # Overview
//
// [Line] takes an ordered (x, y) polyline and returns a denser polyline
// depicting the same path redrawn with hand wobble. The converter invokes it
// in sketch mode; it is a pure numeric transform with no dependency on either
// plotting model.
//
// The algorithm rescales the path into the unit square, resamples it along a
// fitted parametric spline at a density proportional to its length, draws one
// small Gaussian perturbation per sample, low-passes the perturbation
// sequence with a Kaiser-windowed FIR filter, and displaces each sample
// perpendicular to the local tangent before scaling back.
//
// # Determinism
//
// By default the filter draws from the shared math/rand/v2 source, so
// repeated calls on identical input produce different wobble. Supply
// [Options.Rand] with a seeded source for reproducible output:
//
//	rng := rand.New(rand.NewPCG(42, 42))
//	xs, ys, err := sketch.Line(x, y, &sketch.Options{Rand: rng})
//
// # Preconditions
//
// The input needs at least two distinct points, and at most one of the two
// axes may be degenerate (all values equal). Violations return a
// DEGENERATE_PATH or INVALID_POLYLINE coded error instead of NaN output.
//
// The output length depends only on the path's geometric length, never on
// the input point count or the distortion magnitude.
package sketch
