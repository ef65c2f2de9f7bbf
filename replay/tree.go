package replay

// segmentTree is an implicit complete binary tree over a fixed number of
// leaf slots, stored in a flat array of length 2*capacity. The leaf for
// slot i lives at nodes[i+capacity], the root at nodes[1], and node n
// holds combine(nodes[2n], nodes[2n+1]). The same structure serves as a
// sum tree (combine = +, identity 0) and a min tree (combine = min,
// identity +Inf); leaves that were never written keep the identity so
// they contribute nothing to the aggregate.
type segmentTree struct {
	capacity int
	nodes    []float64
	combine  func(a, b float64) float64
}

func newSegmentTree(capacity int, combine func(a, b float64) float64, identity float64) *segmentTree {
	nodes := make([]float64, 2*capacity)
	for i := range nodes {
		nodes[i] = identity
	}
	return &segmentTree{
		capacity: capacity,
		nodes:    nodes,
		combine:  combine,
	}
}

// set writes v into the leaf for slot i and recomputes every ancestor up
// to the root.
func (t *segmentTree) set(i int, v float64) {
	idx := i + t.capacity
	t.nodes[idx] = v
	for idx >= 2 {
		idx /= 2
		t.nodes[idx] = t.combine(t.nodes[2*idx], t.nodes[2*idx+1])
	}
}

// root returns the aggregate over all leaves.
func (t *segmentTree) root() float64 {
	return t.nodes[1]
}

// leaf returns the value stored for slot i.
func (t *segmentTree) leaf(i int) float64 {
	return t.nodes[i+t.capacity]
}

// locate descends to the leaf whose cumulative range contains the prefix
// sum p and returns its slot. Only meaningful on the sum instance, for
// 0 <= p < root(). A value equal to the left subtree's mass falls into
// the right subtree.
func (t *segmentTree) locate(p float64) int {
	idx := 1
	for idx < t.capacity {
		if t.nodes[2*idx] > p {
			idx = 2 * idx
		} else {
			p -= t.nodes[2*idx]
			idx = 2*idx + 1
		}
	}
	return idx - t.capacity
}
