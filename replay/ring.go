package replay

import "gonum.org/v1/gonum/mat"

// Batch is a columnar view over a set of sampled transitions. Rows of
// Obs and NextObs line up with Actions, Rewards and Dones. Indices and
// Weights are populated by the prioritized buffer; the indices identify
// the ring slots so that priorities can be refreshed once the learner
// has computed an error signal for the batch.
type Batch struct {
	Obs     *mat.Dense
	Actions []int
	Rewards []float64
	NextObs *mat.Dense
	Dones   []bool

	Indices []int
	Weights []float64
}

// Size returns the number of transitions in the batch.
func (b *Batch) Size() int {
	return len(b.Actions)
}

// ringStore holds transitions column-wise in fixed-capacity storage.
// The write cursor advances modulo capacity, silently overwriting the
// oldest slot once the store is full.
type ringStore struct {
	capacity int
	stateDim int

	obs     *mat.Dense // capacity x stateDim
	actions []int
	rewards []float64
	nextObs *mat.Dense // capacity x stateDim
	dones   []bool

	nextIdx int
	size    int
}

func newRingStore(capacity, stateDim int) *ringStore {
	return &ringStore{
		capacity: capacity,
		stateDim: stateDim,
		obs:      mat.NewDense(capacity, stateDim, nil),
		actions:  make([]int, capacity),
		rewards:  make([]float64, capacity),
		nextObs:  mat.NewDense(capacity, stateDim, nil),
		dones:    make([]bool, capacity),
	}
}

// push writes a transition at the cursor and returns the slot it landed
// in. Overwriting is intentional and raises no signal.
func (r *ringStore) push(obs []float64, action int, reward float64, nextObs []float64, done bool) int {
	idx := r.nextIdx
	r.obs.SetRow(idx, obs)
	r.actions[idx] = action
	r.rewards[idx] = reward
	r.nextObs.SetRow(idx, nextObs)
	r.dones[idx] = done

	r.nextIdx = (idx + 1) % r.capacity
	if r.size < r.capacity {
		r.size++
	}
	return idx
}

// gather copies the transitions at the given slots, in order, into a
// fresh columnar batch. Slots must be < size.
func (r *ringStore) gather(indices []int) *Batch {
	n := len(indices)
	b := &Batch{
		Obs:     mat.NewDense(n, r.stateDim, nil),
		Actions: make([]int, n),
		Rewards: make([]float64, n),
		NextObs: mat.NewDense(n, r.stateDim, nil),
		Dones:   make([]bool, n),
	}
	for i, idx := range indices {
		b.Obs.SetRow(i, r.obs.RawRowView(idx))
		b.Actions[i] = r.actions[idx]
		b.Rewards[i] = r.rewards[idx]
		b.NextObs.SetRow(i, r.nextObs.RawRowView(idx))
		b.Dones[i] = r.dones[idx]
	}
	return b
}
