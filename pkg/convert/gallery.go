package convert

import "github.com/tommycarstensen/bokeh/pkg/objects"

// Gallery accumulates the plots produced by conversions that opt in via
// [Options.Gallery]. It exists for test and gallery capture; conversion
// correctness never depends on it.
//
// A Gallery is append-only and has no concurrency contract: conversions
// sharing one collector must run one at a time.
type Gallery struct {
	plots []*objects.Plot
}

// Collect appends a plot to the gallery.
func (g *Gallery) Collect(p *objects.Plot) {
	g.plots = append(g.plots, p)
}

// Plots returns the collected plots in collection order.
func (g *Gallery) Plots() []*objects.Plot {
	return g.plots
}
