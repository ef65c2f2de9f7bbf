package rl

import (
	"fmt"
	"os"
	"path"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// RewardCurve holds the moving average and moving standard deviation of
// episode rewards.
type RewardCurve struct {
	Avg []float64
	Std []float64
}

// MovingAverageReward computes the reward curve over a trailing window.
func MovingAverageReward(window int) Analyzer {
	return func(stats []EpisodeStats) DataSet {
		curve := &RewardCurve{
			Avg: make([]float64, len(stats)),
			Std: make([]float64, len(stats)),
		}
		rewards := make([]float64, len(stats))
		for i, s := range stats {
			rewards[i] = s.Reward
		}
		for i := range rewards {
			from := i - window + 1
			if from < 0 {
				from = 0
			}
			tail := rewards[from : i+1]
			mean, std := stat.MeanStdDev(tail, nil)
			curve.Avg[i] = mean
			if len(tail) < 2 {
				std = 0
			}
			curve.Std[i] = std
		}
		return curve
	}
}

// RewardPlotter draws the reward curves of all experiments into a
// single comparison figure, with dashed lines half a standard deviation
// around each curve.
func RewardPlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(names []string, datasets []DataSet) {
		p := plot.New()
		p.Title.Text = "Comparison"
		p.X.Label.Text = "Episode"
		p.Y.Label.Text = "Reward (moving average)"
		for i := 0; i < len(names); i++ {
			curve := datasets[i].(*RewardCurve)

			line, err := plotter.NewLine(curvePoints(curve.Avg, curve.Std, 0))
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)

			for _, scale := range []float64{0.5, -0.5} {
				band, err := plotter.NewLine(curvePoints(curve.Avg, curve.Std, scale))
				if err != nil {
					continue
				}
				band.Color = plotutil.Color(i)
				band.Dashes = plotutil.Dashes(1)
				p.Add(band)
			}
			fmt.Printf("Final moving average reward: %.3f for experiment: %s\n", curve.Avg[len(curve.Avg)-1], names[i])
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, "rewards.png"))
	}
}

func curvePoints(avg, std []float64, scale float64) plotter.XYs {
	points := make(plotter.XYs, len(avg))
	for i := range avg {
		points[i] = plotter.XY{
			X: float64(i),
			Y: avg[i] + scale*std[i],
		}
	}
	return points
}
