package rl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/pbrl/climate-rl/replay"
)

// stubEnv terminates after a fixed number of steps with reward 1 each.
type stubEnv struct {
	limit int
	steps int
}

func (s *stubEnv) Reset() []float64 {
	s.steps = 0
	return []float64{0.1, 0.2}
}

func (s *stubEnv) Step(action int) ([]float64, float64, bool) {
	s.steps++
	return []float64{0.1, float64(s.steps)}, 1, s.steps >= s.limit
}

func (s *stubEnv) StateDim() int   { return 2 }
func (s *stubEnv) NumActions() int { return 2 }

// stubLearner fixes the action and reports constant TD errors.
type stubLearner struct {
	learned int
	synced  int
}

func (s *stubLearner) Act(obs []float64, explore bool) int { return 0 }

func (s *stubLearner) Learn(batch *replay.Batch) []float64 {
	s.learned++
	errs := make([]float64, batch.Size())
	for i := range errs {
		errs[i] = 0.5
	}
	return errs
}

func (s *stubLearner) Sync() { s.synced++ }

func TestTrainerRunsEpisodes(t *testing.T) {
	env := &stubEnv{limit: 5}
	learner := &stubLearner{}
	buffer := replay.New(64, 0.6, 2, rand.NewSource(1))
	trainer := NewTrainer("stub", &TrainerConfig{
		Episodes:   4,
		Horizon:    10,
		BatchSize:  2,
		WarmUp:     3,
		SyncEvery:  5,
		BetaStart:  0.4,
		BetaFrames: 100,
	}, env, learner, buffer)

	stats := trainer.Run()
	require.Len(t, stats, 4)
	for i, s := range stats {
		assert.Equal(t, i, s.Episode)
		assert.Equal(t, 5, s.Steps)
		assert.InDelta(t, 5.0, s.Reward, 1e-12)
		assert.True(t, s.Done)
	}
	// 20 transitions stored, learning active from the 3rd onward
	assert.Equal(t, 20, buffer.Len())
	assert.Equal(t, 18, learner.learned)
	assert.Equal(t, 4, learner.synced)
}

func TestTrainerBetaAnneal(t *testing.T) {
	trainer := NewTrainer("stub", &TrainerConfig{
		BetaStart:  0.4,
		BetaFrames: 10,
	}, nil, nil, nil)

	assert.InDelta(t, 0.4, trainer.beta(), 1e-12)
	trainer.frame = 5
	assert.InDelta(t, 0.7, trainer.beta(), 1e-12)
	trainer.frame = 50
	assert.Equal(t, 1.0, trainer.beta())
}

func TestMovingAverageReward(t *testing.T) {
	stats := []EpisodeStats{
		{Episode: 0, Reward: 1},
		{Episode: 1, Reward: 3},
		{Episode: 2, Reward: 5},
	}
	curve := MovingAverageReward(2)(stats).(*RewardCurve)
	require.Len(t, curve.Avg, 3)
	assert.InDelta(t, 1.0, curve.Avg[0], 1e-12)
	assert.InDelta(t, 2.0, curve.Avg[1], 1e-12)
	assert.InDelta(t, 4.0, curve.Avg[2], 1e-12)
	assert.Equal(t, 0.0, curve.Std[0])
	assert.Greater(t, curve.Std[1], 0.0)
}

func TestComparisonRunsAllExperiments(t *testing.T) {
	mkTrainer := func() *Trainer {
		return NewTrainer("stub", &TrainerConfig{
			Episodes:  2,
			Horizon:   4,
			BatchSize: 1,
			WarmUp:    2,
			BetaStart: 0.4,
		}, &stubEnv{limit: 3}, &stubLearner{}, replay.New(16, 0.6, 2, rand.NewSource(1)))
	}

	gotNames := []string{}
	gotSets := 0
	c := NewComparison(
		func(stats []EpisodeStats) DataSet { return len(stats) },
		func(names []string, datasets []DataSet) {
			gotNames = names
			gotSets = len(datasets)
		},
	)
	c.AddExperiment(NewExperiment("A", mkTrainer()))
	c.AddExperiment(NewExperiment("B", mkTrainer()))
	c.Run()

	assert.Equal(t, []string{"A", "B"}, gotNames)
	assert.Equal(t, 2, gotSets)
	for _, e := range c.Experiments {
		assert.Len(t, e.Result, 2)
	}
}
