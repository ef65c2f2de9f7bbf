package replay

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// UniformBuffer is the plain ring replay buffer: transitions are drawn
// uniformly without replacement and carry no correction weights.
type UniformBuffer struct {
	store *ringStore
	rng   *rand.Rand
}

// NewUniform creates a uniform buffer. src may be nil for a time-seeded
// sampler.
func NewUniform(capacity, stateDim int, src rand.Source) *UniformBuffer {
	if capacity <= 0 {
		panic(fmt.Sprintf("replay: capacity must be positive, got %d", capacity))
	}
	if stateDim <= 0 {
		panic(fmt.Sprintf("replay: stateDim must be positive, got %d", stateDim))
	}
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return &UniformBuffer{
		store: newRingStore(capacity, stateDim),
		rng:   rand.New(src),
	}
}

// Push stores a transition and returns the slot it was written to.
func (u *UniformBuffer) Push(obs []float64, action int, reward float64, nextObs []float64, done bool) int {
	return u.store.push(obs, action, reward, nextObs, done)
}

// Sample draws batchSize distinct transitions uniformly at random.
// batchSize must not exceed Len.
func (u *UniformBuffer) Sample(batchSize int) *Batch {
	if batchSize > u.store.size {
		panic(fmt.Sprintf("replay: batch of %d from buffer of %d", batchSize, u.store.size))
	}
	indices := u.rng.Perm(u.store.size)[:batchSize]
	batch := u.store.gather(indices)
	batch.Indices = indices
	return batch
}

// IsFull reports whether the buffer has wrapped at least once.
func (u *UniformBuffer) IsFull() bool {
	return u.store.size == u.store.capacity
}

// Len returns the number of occupied slots.
func (u *UniformBuffer) Len() int {
	return u.store.size
}
