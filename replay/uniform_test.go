package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestUniformBufferSampleDistinct(t *testing.T) {
	u := NewUniform(8, 3, rand.NewSource(2))
	for i := 0; i < 6; i++ {
		u.Push(obsFor(float64(i)), i, float64(i), obsFor(float64(i+1)), false)
	}
	assert.Equal(t, 6, u.Len())
	assert.False(t, u.IsFull())

	batch := u.Sample(4)
	require.Equal(t, 4, batch.Size())
	seen := make(map[int]bool)
	for i, idx := range batch.Indices {
		assert.False(t, seen[idx], "duplicate slot %d", idx)
		seen[idx] = true
		assert.Equal(t, float64(idx), batch.Rewards[i])
	}
}

func TestUniformBufferOverwrite(t *testing.T) {
	u := NewUniform(4, 3, rand.NewSource(2))
	for i := 0; i < 7; i++ {
		u.Push(obsFor(float64(i)), i, float64(i), obsFor(float64(i+1)), false)
	}
	assert.True(t, u.IsFull())
	assert.Equal(t, []float64{4, 5, 6, 3}, u.store.rewards)
}

func TestUniformBufferSampleTooLarge(t *testing.T) {
	u := NewUniform(4, 3, rand.NewSource(2))
	u.Push(obsFor(0), 0, 0, obsFor(1), false)
	assert.Panics(t, func() { u.Sample(2) })
}
