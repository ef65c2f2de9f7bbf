// Package replay implements experience replay for off-policy learners:
// a plain uniform ring buffer and a prioritized buffer with
// importance-sampling correction in the style of Schaul et al.
// (proportional variant). Both are single-threaded; callers that share
// a buffer across goroutines must serialize access themselves, and the
// two priority trees have to be mutated together with the store for the
// tree invariant to hold.
package replay

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
)

// Buffer is a fixed-capacity prioritized experience buffer. Transitions
// are sampled with probability proportional to priority^alpha via a sum
// tree, and each sample carries a bias-correction weight computed from
// a parallel min tree. Once full, new pushes overwrite the oldest slot.
type Buffer struct {
	alpha       float64
	maxPriority float64

	store *ringStore
	sums  *segmentTree
	mins  *segmentTree
	rng   *rand.Rand
}

// New creates a buffer for capacity transitions with stateDim-wide
// observations. alpha controls priority sharpness: 0 collapses sampling
// to uniform. src may be nil, in which case the sampler is time-seeded.
func New(capacity int, alpha float64, stateDim int, src rand.Source) *Buffer {
	if capacity <= 0 {
		panic(fmt.Sprintf("replay: capacity must be positive, got %d", capacity))
	}
	if stateDim <= 0 {
		panic(fmt.Sprintf("replay: stateDim must be positive, got %d", stateDim))
	}
	if alpha < 0 {
		panic(fmt.Sprintf("replay: alpha must be non-negative, got %f", alpha))
	}
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return &Buffer{
		alpha:       alpha,
		maxPriority: 1,
		store:       newRingStore(capacity, stateDim),
		sums:        newSegmentTree(capacity, func(a, b float64) float64 { return a + b }, 0),
		mins:        newSegmentTree(capacity, math.Min, math.Inf(1)),
		rng:         rand.New(src),
	}
}

// Push stores a transition and returns the slot it was written to. The
// new item enters at the running maximum priority so that it is sampled
// at least once before its true priority is known.
func (b *Buffer) Push(obs []float64, action int, reward float64, nextObs []float64, done bool) int {
	idx := b.store.push(obs, action, reward, nextObs, done)
	b.setPriority(idx, math.Pow(b.maxPriority, b.alpha))
	return idx
}

// setPriority writes priority^alpha for a slot into both trees. The
// trees must always be updated as a pair.
func (b *Buffer) setPriority(idx int, priorityAlpha float64) {
	b.sums.set(idx, priorityAlpha)
	b.mins.set(idx, priorityAlpha)
}

// Sample draws batchSize transitions with replacement, each by an
// independent uniform draw over the cumulative priority mass, and
// computes importance-sampling weights in (0, 1] normalized so that the
// minimum-priority item would receive weight 1. beta interpolates the
// bias correction: 0 disables it, 1 corrects fully. The buffer must be
// non-empty. batchSize may exceed Len; duplicates are expected.
func (b *Buffer) Sample(batchSize int, beta float64) *Batch {
	if b.store.size == 0 {
		panic("replay: sample from empty buffer")
	}

	total := b.sums.root()
	indices := make([]int, batchSize)
	for i := range indices {
		indices[i] = b.sums.locate(b.rng.Float64() * total)
	}

	size := float64(b.store.size)
	probMin := b.mins.root() / total
	maxWeight := math.Pow(probMin*size, -beta)

	weights := make([]float64, batchSize)
	for i, idx := range indices {
		prob := b.sums.leaf(idx) / total
		weights[i] = math.Pow(prob*size, -beta) / maxWeight
	}

	batch := b.store.gather(indices)
	batch.Indices = indices
	batch.Weights = weights
	return batch
}

// UpdatePriorities replaces the priorities of previously sampled slots,
// typically with TD-error magnitudes. Priorities must be non-negative
// and indices must refer to occupied slots. The maximum-priority
// ratchet only ever moves up, even after the item that set it has been
// overwritten.
func (b *Buffer) UpdatePriorities(indices []int, priorities []float64) {
	if len(indices) != len(priorities) {
		panic(fmt.Sprintf("replay: %d indices but %d priorities", len(indices), len(priorities)))
	}
	for i, idx := range indices {
		priority := priorities[i]
		if priority < 0 {
			panic(fmt.Sprintf("replay: negative priority %f for slot %d", priority, idx))
		}
		if idx < 0 || idx >= b.store.size {
			panic(fmt.Sprintf("replay: slot %d out of range [0, %d)", idx, b.store.size))
		}
		if priority > b.maxPriority {
			b.maxPriority = priority
		}
		b.setPriority(idx, math.Pow(priority, b.alpha))
	}
}

// IsFull reports whether the buffer has wrapped at least once.
func (b *Buffer) IsFull() bool {
	return b.store.size == b.store.capacity
}

// Len returns the number of occupied slots.
func (b *Buffer) Len() int {
	return b.store.size
}
