package convert_test

import (
	"fmt"

	"github.com/tommycarstensen/bokeh/pkg/convert"
	"github.com/tommycarstensen/bokeh/pkg/mpl"
)

func ExampleAxesToPlot() {
	// Author a figure against the familiar source model: one red line
	// through three points on a titled plot.
	ax := mpl.NewAxes()
	ax.Title = "quadratic"
	line := mpl.NewLine2D([]float64{0, 1, 2}, []float64{0, 1, 4})
	line.Color = "r"
	ax.Lines = append(ax.Lines, line)

	plot, err := convert.AxesToPlot(ax, nil)
	if err != nil {
		fmt.Println("convert:", err)
		return
	}

	fmt.Println("title:", plot.Title)
	fmt.Println("background:", plot.BackgroundFill)
	fmt.Println("renderers:", len(plot.Renderers))
	fmt.Println("columns:", plot.DataSources[0].NumColumns())
	// Output:
	// title: quadratic
	// background: white
	// renderers: 1
	// columns: 2
}

func ExampleAxesToPlot_gallery() {
	// A caller-supplied gallery captures every plot a conversion produces.
	var gallery convert.Gallery
	opts := &convert.Options{Gallery: &gallery}

	for i := 0; i < 3; i++ {
		ax := mpl.NewAxes()
		ax.Lines = append(ax.Lines, mpl.NewLine2D([]float64{0, 1}, []float64{0, float64(i)}))
		if _, err := convert.AxesToPlot(ax, opts); err != nil {
			fmt.Println("convert:", err)
			return
		}
	}

	fmt.Println("captured:", len(gallery.Plots()))
	// Output:
	// captured: 3
}
