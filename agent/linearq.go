// Package agent provides the learner side of the training loop: a
// DQN-style temporal-difference learner with a linear Q-function, which
// is enough for the low-dimensional AYS state while keeping updates
// cheap and deterministic to test.
package agent

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/pbrl/climate-rl/replay"
	"github.com/pbrl/climate-rl/rl"
)

// priorityEps keeps refreshed priorities strictly positive so that a
// transition with zero TD error can still be re-sampled.
const priorityEps = 1e-6

// Config holds the learner hyperparameters.
type Config struct {
	StateDim   int
	NumActions int

	LearningRate float64
	// Gamma is the discount factor
	Gamma float64

	// epsilon-greedy exploration, decayed exponentially over frames
	EpsilonStart float64
	EpsilonEnd   float64
	EpsilonDecay float64

	// Temperature > 0 replaces the greedy exploit step with softmax
	// sampling over the Q-values
	Temperature float64
}

func DefaultConfig(stateDim, numActions int) Config {
	return Config{
		StateDim:     stateDim,
		NumActions:   numActions,
		LearningRate: 0.01,
		Gamma:        0.99,
		EpsilonStart: 1.0,
		EpsilonEnd:   0.05,
		EpsilonDecay: 5000,
	}
}

// LinearQ learns Q(s, a) = w_a . [1, s] by TD(0) with a periodically
// synced target weight matrix. Batch updates are scaled by the
// importance-sampling weights attached to the batch.
type LinearQ struct {
	config  Config
	weights *mat.Dense // NumActions x (StateDim+1)
	target  *mat.Dense
	frames  int
	rng     *rand.Rand
}

var _ rl.Learner = &LinearQ{}

// NewLinearQ creates a learner with zero weights. src may be nil for
// time-seeded exploration.
func NewLinearQ(config Config, src rand.Source) *LinearQ {
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	featDim := config.StateDim + 1
	return &LinearQ{
		config:  config,
		weights: mat.NewDense(config.NumActions, featDim, nil),
		target:  mat.NewDense(config.NumActions, featDim, nil),
		rng:     rand.New(src),
	}
}

// epsilon follows an exponential decay over the frames seen so far.
func (l *LinearQ) epsilon() float64 {
	c := l.config
	return c.EpsilonEnd + (c.EpsilonStart-c.EpsilonEnd)*math.Exp(-float64(l.frames)/c.EpsilonDecay)
}

// features prepends the bias term.
func (l *LinearQ) features(obs []float64) []float64 {
	feat := make([]float64, len(obs)+1)
	feat[0] = 1
	copy(feat[1:], obs)
	return feat
}

func qValues(weights *mat.Dense, feat []float64) []float64 {
	rows, _ := weights.Dims()
	qs := make([]float64, rows)
	for a := 0; a < rows; a++ {
		qs[a] = floats.Dot(weights.RawRowView(a), feat)
	}
	return qs
}

// Qs returns the current Q-values for an observation.
func (l *LinearQ) Qs(obs []float64) []float64 {
	return qValues(l.weights, l.features(obs))
}

// Act picks an action. With explore set, an epsilon-greedy (or, with a
// temperature, softmax) choice is made and the exploration schedule
// advances.
func (l *LinearQ) Act(obs []float64, explore bool) int {
	qs := l.Qs(obs)
	if !explore {
		return argmax(qs)
	}
	l.frames++
	if l.rng.Float64() < l.epsilon() {
		return l.rng.Intn(l.config.NumActions)
	}
	if l.config.Temperature > 0 {
		return l.softmax(qs)
	}
	return argmax(qs)
}

// softmax samples an action with probability proportional to
// exp(q / temperature).
func (l *LinearQ) softmax(qs []float64) int {
	sum := 0.0
	weights := make([]float64, len(qs))
	for i, q := range qs {
		weights[i] = math.Exp(q / l.config.Temperature)
		sum += weights[i]
	}
	for i := range weights {
		weights[i] /= sum
	}
	i, ok := sampleuv.NewWeighted(weights, l.rng).Take()
	if !ok {
		return argmax(qs)
	}
	return i
}

// Learn runs one importance-weighted TD(0) pass over the batch and
// returns the per-sample priorities |TD error| + eps.
func (l *LinearQ) Learn(batch *replay.Batch) []float64 {
	priorities := make([]float64, batch.Size())
	for i := 0; i < batch.Size(); i++ {
		feat := l.features(batch.Obs.RawRowView(i))
		action := batch.Actions[i]

		q := floats.Dot(l.weights.RawRowView(action), feat)
		targetQ := batch.Rewards[i]
		if !batch.Dones[i] {
			nextQs := qValues(l.target, l.features(batch.NextObs.RawRowView(i)))
			targetQ += l.config.Gamma * floats.Max(nextQs)
		}
		tdErr := targetQ - q

		isWeight := 1.0
		if batch.Weights != nil {
			isWeight = batch.Weights[i]
		}
		step := l.config.LearningRate * isWeight * tdErr
		row := l.weights.RawRowView(action)
		floats.AddScaled(row, step, feat)

		priorities[i] = math.Abs(tdErr) + priorityEps
	}
	return priorities
}

// Sync copies the online weights into the target weights.
func (l *LinearQ) Sync() {
	l.target.Copy(l.weights)
}

func argmax(vals []float64) int {
	best := 0
	for i, v := range vals {
		if v > vals[best] {
			best = i
		}
	}
	return best
}
