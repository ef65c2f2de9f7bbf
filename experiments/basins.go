package experiments

import (
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/pbrl/climate-rl/ays"
	"github.com/pbrl/climate-rl/stats"
)

var gridSize int

// Basins trains a learner, then rolls out its greedy policy from a
// grid of initial states around the current state and records which
// basin each trajectory ends in.
func Basins(episodes, horizon int, savePath string, size int) {
	if _, err := os.Stat(savePath); err != nil {
		os.MkdirAll(savePath, os.ModePerm)
	}
	trainer, learner := buildTrainer("Basins", episodes, horizon, 0, savePath, alpha, betaStart)
	trainer.Run()

	env := ays.NewEnv(ays.DefaultConfig(), nil)
	matrix := stats.NewEndStateMatrix(size, 0.45, 0.55)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			obs := env.ResetTo([]float64{matrix.Coord(j), matrix.Coord(i), 0.5})
			for step := 0; step < horizon; step++ {
				next, _, done := env.Step(learner.Act(obs, false))
				obs = next
				if done {
					break
				}
			}
			matrix.Set(i, j, env.Basin())
		}
	}
	stats.PlotEndStates(matrix, path.Join(savePath, "end_states.png"))
}

func BasinsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use: "basins",
		Run: func(cmd *cobra.Command, args []string) {
			Basins(episodes, horizon, saveFile, gridSize)
		},
	}
	cmd.Flags().IntVar(&gridSize, "grid", 20, "Edge length of the initial-state grid")
	addReplayFlags(cmd)
	return cmd
}
