package rl

import "github.com/pbrl/climate-rl/replay"

// Environment is a discrete-action control task observed through a
// fixed-width continuous state vector.
type Environment interface {
	// Reset starts a new episode and returns the initial observation
	Reset() []float64
	// Step applies an action and returns the next observation, the
	// reward and whether the episode ended
	Step(action int) ([]float64, float64, bool)
	// StateDim is the observation width
	StateDim() int
	// NumActions is the size of the discrete action set
	NumActions() int
}

// Learner selects actions and updates itself from sampled batches.
type Learner interface {
	// Act picks an action for the observation. With explore set the
	// learner may deviate from its greedy choice.
	Act(obs []float64, explore bool) int
	// Learn performs one update on the batch, honoring its
	// importance-sampling weights, and returns the absolute TD error
	// per sample for the priority refresh.
	Learn(batch *replay.Batch) []float64
	// Sync refreshes the learner's target weights
	Sync()
}
