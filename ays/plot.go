package ays

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/pbrl/climate-rl/rl"
)

// PlotTrajectory draws the normalized A, Y and S components of an
// episode trace against time.
func PlotTrajectory(trace *rl.Trace, figPath string) error {
	p := plot.New()
	p.Title.Text = "AYS trajectory"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Normalized state"
	p.Y.Min = 0
	p.Y.Max = 1

	labels := []string{"A", "Y", "S"}
	for dim := 0; dim < 3; dim++ {
		points := make(plotter.XYs, trace.Len())
		for i := 0; i < trace.Len(); i++ {
			obs, _, _, _, _ := trace.Get(i)
			points[i] = plotter.XY{X: float64(i), Y: obs[dim]}
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(dim)
		p.Add(line)
		p.Legend.Add(labels[dim], line)
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, figPath)
}
