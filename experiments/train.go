package experiments

import (
	"path"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pbrl/climate-rl/agent"
	"github.com/pbrl/climate-rl/ays"
	"github.com/pbrl/climate-rl/replay"
	"github.com/pbrl/climate-rl/rl"
)

var (
	bufferCapacity int
	batchSize      int
	alpha          float64
	betaStart      float64
)

// buildTrainer wires an AYS environment, a linear Q-learner and a
// prioritized buffer into a trainer. alpha 0 with betaStart 0 degrades
// the buffer to plain uniform replay, which is how the baseline
// experiment is configured.
func buildTrainer(name string, episodes, horizon, run int, savePath string, alpha, betaStart float64) (*rl.Trainer, *agent.LinearQ) {
	env := ays.NewEnv(ays.DefaultConfig(), nil)
	learner := agent.NewLinearQ(agent.DefaultConfig(env.StateDim(), env.NumActions()), nil)
	buffer := replay.New(bufferCapacity, alpha, env.StateDim(), nil)

	betaFrames := episodes * horizon / 2
	if betaStart == 0 {
		betaFrames = 0
	}
	trainer := rl.NewTrainer(name, &rl.TrainerConfig{
		Episodes:     episodes,
		Horizon:      horizon,
		BatchSize:    batchSize,
		WarmUp:       batchSize * 4,
		SyncEvery:    500,
		BetaStart:    betaStart,
		BetaFrames:   betaFrames,
		RecordTraces: true,
		RecordPath:   savePath,
		CurrentRun:   run,
	}, env, learner, buffer)
	return trainer, learner
}

// Train compares prioritized replay against the uniform baseline on the
// AYS environment and plots the reward curves per run.
func Train(episodes, horizon int, savePath string, runs int) {
	for run := 0; run < runs; run++ {
		runPath := path.Join(savePath, "run_"+strconv.Itoa(run))
		c := rl.NewComparison(rl.MovingAverageReward(50), rl.RewardPlotter(runPath))

		perTrainer, _ := buildTrainer("PER", episodes, horizon, run, runPath, alpha, betaStart)
		uniformTrainer, _ := buildTrainer("Uniform", episodes, horizon, run, runPath, 0, 0)
		c.AddExperiment(rl.NewExperiment("PER", perTrainer))
		c.AddExperiment(rl.NewExperiment("Uniform", uniformTrainer))
		c.Run()
	}
}

func TrainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use: "train",
		Run: func(cmd *cobra.Command, args []string) {
			Train(episodes, horizon, saveFile, runs)
		},
	}
	addReplayFlags(cmd)
	return cmd
}

// addReplayFlags registers the buffer parameters shared by all
// commands that train a learner.
func addReplayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&bufferCapacity, "capacity", 1<<14, "Replay buffer capacity")
	cmd.Flags().IntVar(&batchSize, "batch", 64, "Batch size for learning updates")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.6, "Priority exponent of the replay buffer")
	cmd.Flags().Float64Var(&betaStart, "beta", 0.4, "Initial importance-sampling exponent, annealed to 1")
}
