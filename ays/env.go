// Package ays implements the low-complexity AYS climate-economy model
// as a reinforcement-learning environment: excess atmospheric carbon A,
// economic output Y and renewable knowledge S evolve under four
// management options (none, degrowth, energy transition, both). The
// agent observes the state in normalized coordinates and is rewarded
// for staying inside the planetary boundaries.
package ays

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"

	"github.com/pbrl/climate-rl/rl"
)

// Model parameters, yearly units: A in GtC, Y in USD/yr, S in GJ.
const (
	growthRate       = 0.03    // economic growth rate
	energyIntensity  = 147.0   // GJ needed per USD of output
	fossilEfficiency = 4.7e10  // GJ of fossil energy per GtC emitted
	climateDamage    = 8.57e-5 // output loss per unit of excess carbon
	learningExponent = 2.0     // renewable learning-curve exponent
	carbonDecay      = 50.0    // natural carbon uptake timescale [yr]
	knowledgeDecay   = 50.0    // renewable knowledge decay timescale [yr]
	breakEven        = 4e12    // knowledge where renewables break even

	// normalization midpoints: the current state maps to (0.5, 0.5, 0.5)
	aMid = 240.0
	yMid = 7e13
	sMid = 5e11

	// planetary boundary on excess carbon and the social foundation on
	// output, in model units
	carbonPB         = 345.0
	socialFoundation = 4e13
)

// management options
const (
	ActionDefault = iota
	ActionDG
	ActionET
	ActionDGET
	numActions
)

// ActionNames labels the management options in action order.
var ActionNames = []string{"default", "DG", "ET", "DG+ET"}

// degrowth halves the growth rate; the energy transition lowers the
// break-even knowledge by the learning-curve factor
var (
	dgGrowthRate = growthRate / 2
	etBreakEven  = breakEven * math.Pow(0.5, 1/learningExponent)
)

// Config holds the integration and reset parameters.
type Config struct {
	// Dt is the simulated time per environment step, in years
	Dt float64
	// Substeps is the number of RK4 substeps per environment step
	Substeps int
	// Jitter is the half-width of the uniform noise applied to the
	// normalized start state
	Jitter float64
}

func DefaultConfig() Config {
	return Config{
		Dt:       1,
		Substeps: 4,
		Jitter:   0.005,
	}
}

// Env integrates the AYS dynamics. It implements rl.Environment; the
// raw state is kept in model units and exposed normalized to [0, 1).
type Env struct {
	config Config
	rng    *rand.Rand

	a, y, s float64
	basin   Basin
}

var _ rl.Environment = &Env{}

// NewEnv creates an environment. src may be nil for a time-seeded reset
// jitter.
func NewEnv(config Config, src rand.Source) *Env {
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	e := &Env{
		config: config,
		rng:    rand.New(src),
	}
	e.Reset()
	return e
}

// Reset starts an episode from the current-state point with uniform
// jitter in normalized coordinates.
func (e *Env) Reset() []float64 {
	obs := make([]float64, 3)
	for i := range obs {
		obs[i] = 0.5 + e.config.Jitter*(2*e.rng.Float64()-1)
	}
	return e.ResetTo(obs)
}

// ResetTo starts an episode from the given normalized state. Used by
// basin scans and trajectory replays.
func (e *Env) ResetTo(obs []float64) []float64 {
	if len(obs) != 3 {
		panic(fmt.Sprintf("ays: observation of width %d, want 3", len(obs)))
	}
	e.a = denormalize(obs[0], aMid)
	e.y = denormalize(obs[1], yMid)
	e.s = denormalize(obs[2], sMid)
	e.basin = None
	return e.observe()
}

// Step advances the model by Dt years under the chosen management
// option.
func (e *Env) Step(action int) ([]float64, float64, bool) {
	if action < 0 || action >= numActions {
		panic(fmt.Sprintf("ays: action %d out of range [0, %d)", action, numActions))
	}
	h := e.config.Dt / float64(e.config.Substeps)
	for i := 0; i < e.config.Substeps; i++ {
		e.a, e.y, e.s = rk4Step(e.a, e.y, e.s, action, h)
	}
	e.basin = e.classify()
	return e.observe(), e.reward(), e.basin.Terminal()
}

func (e *Env) StateDim() int {
	return 3
}

func (e *Env) NumActions() int {
	return numActions
}

// Basin returns the basin the episode ended in, or OutOfTime while the
// trajectory is still undecided.
func (e *Env) Basin() Basin {
	if e.basin == None {
		return OutOfTime
	}
	return e.basin
}

func (e *Env) observe() []float64 {
	return []float64{
		normalize(e.a, aMid),
		normalize(e.y, yMid),
		normalize(e.s, sMid),
	}
}

// classify checks the boundaries first, then convergence to one of the
// fixed points.
func (e *Env) classify() Basin {
	switch {
	case e.a >= carbonPB:
		return CarbonBoundary
	case e.y <= socialFoundation:
		return SocialFoundation
	case normalize(e.s, sMid) >= 0.995:
		// renewables dominate irreversibly
		return GreenFP
	case normalize(e.s, sMid) <= 0.005:
		return BlackFP
	}
	return None
}

// reward is the normalized distance from the boundary corner while the
// state is inside the safe operating space, 0 once a boundary is
// crossed.
func (e *Env) reward() float64 {
	a := normalize(e.a, aMid)
	y := normalize(e.y, yMid)
	aPB := normalize(carbonPB, aMid)
	ySF := normalize(socialFoundation, yMid)
	if a >= aPB || y <= ySF {
		return 0
	}
	return math.Hypot(a-aPB, y-ySF)
}

func normalize(x, mid float64) float64 {
	return x / (x + mid)
}

func denormalize(o, mid float64) float64 {
	return mid * o / (1 - o)
}
