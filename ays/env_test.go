package ays

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestEnvResetJitter(t *testing.T) {
	e := NewEnv(DefaultConfig(), rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		obs := e.Reset()
		require.Len(t, obs, 3)
		for _, o := range obs {
			assert.InDelta(t, 0.5, o, DefaultConfig().Jitter+1e-9)
		}
	}
}

func TestEnvResetToRoundTrip(t *testing.T) {
	e := NewEnv(DefaultConfig(), rand.NewSource(1))
	want := []float64{0.52, 0.48, 0.55}
	obs := e.ResetTo(want)
	for i := range want {
		assert.InDelta(t, want[i], obs[i], 1e-12)
	}
	assert.Equal(t, OutOfTime, e.Basin())
}

func TestEnvDegrowthSlowsOutput(t *testing.T) {
	def := NewEnv(DefaultConfig(), rand.NewSource(1))
	dg := NewEnv(DefaultConfig(), rand.NewSource(1))
	start := []float64{0.5, 0.5, 0.5}
	def.ResetTo(start)
	dg.ResetTo(start)

	for i := 0; i < 5; i++ {
		def.Step(ActionDefault)
		dg.Step(ActionDG)
	}
	assert.Greater(t, def.y, dg.y)
}

func TestEnvEnergyTransitionGrowsKnowledge(t *testing.T) {
	def := NewEnv(DefaultConfig(), rand.NewSource(1))
	et := NewEnv(DefaultConfig(), rand.NewSource(1))
	start := []float64{0.5, 0.5, 0.5}
	def.ResetTo(start)
	et.ResetTo(start)

	for i := 0; i < 5; i++ {
		def.Step(ActionDefault)
		et.Step(ActionET)
	}
	assert.Greater(t, et.s, def.s)
}

func TestEnvCarbonBoundary(t *testing.T) {
	e := NewEnv(DefaultConfig(), rand.NewSource(1))
	e.ResetTo([]float64{0.9, 0.5, 0.5})

	_, reward, done := e.Step(ActionDefault)
	assert.True(t, done)
	assert.Equal(t, 0.0, reward)
	assert.Equal(t, CarbonBoundary, e.Basin())
}

func TestEnvRewardInsideBoundaries(t *testing.T) {
	e := NewEnv(DefaultConfig(), rand.NewSource(1))
	e.ResetTo([]float64{0.5, 0.5, 0.5})

	obs, reward, done := e.Step(ActionDGET)
	require.Len(t, obs, 3)
	assert.False(t, done)
	assert.Greater(t, reward, 0.0)
	for _, o := range obs {
		assert.GreaterOrEqual(t, o, 0.0)
		assert.Less(t, o, 1.0)
	}
}

func TestEnvStepPanicsOnBadAction(t *testing.T) {
	e := NewEnv(DefaultConfig(), rand.NewSource(1))
	assert.Panics(t, func() { e.Step(numActions) })
	assert.Panics(t, func() { e.Step(-1) })
}

func TestBasinLabels(t *testing.T) {
	assert.Equal(t, "green", GreenFP.String())
	assert.True(t, GreenFP.Terminal())
	assert.False(t, OutOfTime.Terminal())
	assert.False(t, None.Terminal())
}
