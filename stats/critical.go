// Package stats holds the explainability statistics of the toolkit:
// Q-value gap analysis over sampled states and basin matrices over
// scanned initial conditions.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// QDifferences returns, per sample, the gap between the Q-value of the
// taken action and the mean Q-value of the state. Large gaps mark
// critical states where the action choice matters.
func QDifferences(qvalues [][]float64, actions []int) []float64 {
	diffs := make([]float64, len(actions))
	for i, action := range actions {
		diffs[i] = qvalues[i][action] - stat.Mean(qvalues[i], nil)
	}
	return diffs
}

// CriticalStatesResult carries the test outcomes of a critical-state
// analysis.
type CriticalStatesResult struct {
	// TopAction is the action whose group contains the largest gap
	TopAction int
	// PANOVA is the one-way ANOVA p-value across the action groups
	PANOVA float64
	// PTTest is the one-sided p-value of the top group's mean gap
	// exceeding the overall mean gap
	PTTest float64
}

// CriticalStates groups the Q-value gaps by the action taken and tests
// whether the groups differ (one-way ANOVA) and whether the group
// holding the largest gap sits above the overall mean (one-sample
// t-test, greater). Degenerate groupings yield NaN p-values.
func CriticalStates(qdiffs []float64, actions []int, numActions int) CriticalStatesResult {
	groups := make([][]float64, numActions)
	for i, action := range actions {
		groups[action] = append(groups[action], qdiffs[i])
	}

	top := 0
	for i, d := range qdiffs {
		if d > qdiffs[top] {
			top = i
		}
	}
	topAction := actions[top]

	return CriticalStatesResult{
		TopAction: topAction,
		PANOVA:    oneWayANOVA(groups),
		PTTest:    oneSampleTTest(groups[topAction], stat.Mean(qdiffs, nil)),
	}
}

// oneWayANOVA returns the p-value of the F test that all group means
// are equal.
func oneWayANOVA(groups [][]float64) float64 {
	all := make([]float64, 0)
	nonEmpty := 0
	for _, g := range groups {
		if len(g) > 0 {
			nonEmpty++
		}
		all = append(all, g...)
	}
	n := len(all)
	if nonEmpty < 2 || n <= nonEmpty {
		return math.NaN()
	}
	grand := stat.Mean(all, nil)

	ssBetween := 0.0
	ssWithin := 0.0
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		mean := stat.Mean(g, nil)
		ssBetween += float64(len(g)) * (mean - grand) * (mean - grand)
		for _, x := range g {
			ssWithin += (x - mean) * (x - mean)
		}
	}

	d1 := float64(nonEmpty - 1)
	d2 := float64(n - nonEmpty)
	if ssWithin == 0 {
		return 0
	}
	f := (ssBetween / d1) / (ssWithin / d2)
	dist := distuv.F{D1: d1, D2: d2}
	return 1 - dist.CDF(f)
}

// oneSampleTTest returns the one-sided p-value that the sample mean
// exceeds mu.
func oneSampleTTest(sample []float64, mu float64) float64 {
	n := len(sample)
	if n < 2 {
		return math.NaN()
	}
	mean, std := stat.MeanStdDev(sample, nil)
	if std == 0 {
		if mean > mu {
			return 0
		}
		return 1
	}
	t := (mean - mu) / (std / math.Sqrt(float64(n)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	return 1 - dist.CDF(t)
}
