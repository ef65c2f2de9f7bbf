package experiments

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/pbrl/climate-rl/ays"
	"github.com/pbrl/climate-rl/replay"
	"github.com/pbrl/climate-rl/stats"
	"github.com/pbrl/climate-rl/util"
)

var numPoints int

// Critical trains a learner, collects greedy-policy experience into a
// uniform buffer and tests whether the states where the chosen action
// stands out from the alternatives cluster on particular actions.
func Critical(episodes, horizon int, savePath string, points int) {
	if _, err := os.Stat(savePath); err != nil {
		os.MkdirAll(savePath, os.ModePerm)
	}
	trainer, learner := buildTrainer("Critical", episodes, horizon, 0, savePath, alpha, betaStart)
	trainer.Run()

	// fill an evaluation buffer from greedy rollouts
	env := ays.NewEnv(ays.DefaultConfig(), nil)
	eval := replay.NewUniform(points*4, env.StateDim(), nil)
	for eval.Len() < points {
		obs := env.Reset()
		for step := 0; step < horizon; step++ {
			action := learner.Act(obs, false)
			next, reward, done := env.Step(action)
			eval.Push(obs, action, reward, next, done)
			obs = next
			if done {
				break
			}
		}
	}

	batch := eval.Sample(points)
	qvalues := make([][]float64, batch.Size())
	for i := range qvalues {
		qvalues[i] = learner.Qs(batch.Obs.RawRowView(i))
	}
	qdiffs := stats.QDifferences(qvalues, batch.Actions)
	result := stats.CriticalStates(qdiffs, batch.Actions, env.NumActions())

	fmt.Printf("One-way ANOVA test p-value: %g\n", result.PANOVA)
	fmt.Printf("One-sample t-test p-value: %g\n", result.PTTest)
	fmt.Printf("Most critical action: %s\n", ays.ActionNames[result.TopAction])

	util.WriteJSON(path.Join(savePath, "critical.json"), result)
	stats.PlotQDifferenceBars(qdiffs, batch.Actions, ays.ActionNames, path.Join(savePath, "q_differences.png"))
}

func CriticalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use: "critical",
		Run: func(cmd *cobra.Command, args []string) {
			Critical(episodes, horizon, saveFile, numPoints)
		},
	}
	cmd.Flags().IntVar(&numPoints, "points", 256, "Number of states to sample for the analysis")
	addReplayFlags(cmd)
	return cmd
}
