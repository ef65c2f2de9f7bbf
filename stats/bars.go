package stats

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotQDifferenceBars draws the mean Q-value gap per action group.
func PlotQDifferenceBars(qdiffs []float64, actions []int, actionNames []string, figPath string) error {
	means := make(plotter.Values, len(actionNames))
	for a := range actionNames {
		group := make([]float64, 0)
		for i, action := range actions {
			if action == a {
				group = append(group, qdiffs[i])
			}
		}
		if len(group) > 0 {
			means[a] = stat.Mean(group, nil)
		}
	}

	p := plot.New()
	p.Title.Text = "Q-differences by action"
	p.Y.Label.Text = "Mean Q-difference"

	bars, err := plotter.NewBarChart(means, vg.Points(30))
	if err != nil {
		return err
	}
	bars.Color = plotutil.Color(2)
	p.Add(bars)
	p.NominalX(actionNames...)
	return p.Save(6*vg.Inch, 4*vg.Inch, figPath)
}
