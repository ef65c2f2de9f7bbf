package rl

// Trace of an episode as transition records
type Trace struct {
	Episode int         `json:"episode"`
	Obs     [][]float64 `json:"obs"`
	Actions []int       `json:"actions"`
	Rewards []float64   `json:"rewards"`
	Dones   []bool      `json:"dones"`
}

func NewTrace(episode int) *Trace {
	return &Trace{
		Episode: episode,
		Obs:     make([][]float64, 0),
		Actions: make([]int, 0),
		Rewards: make([]float64, 0),
		Dones:   make([]bool, 0),
	}
}

func (t *Trace) Append(obs []float64, action int, reward float64, done bool) {
	snapshot := make([]float64, len(obs))
	copy(snapshot, obs)
	t.Obs = append(t.Obs, snapshot)
	t.Actions = append(t.Actions, action)
	t.Rewards = append(t.Rewards, reward)
	t.Dones = append(t.Dones, done)
}

func (t *Trace) Len() int {
	return len(t.Actions)
}

func (t *Trace) Get(i int) ([]float64, int, float64, bool, bool) {
	if i >= len(t.Actions) {
		return nil, 0, 0, false, false
	}
	return t.Obs[i], t.Actions[i], t.Rewards[i], t.Dones[i], true
}

// TotalReward sums the rewards collected over the episode.
func (t *Trace) TotalReward() float64 {
	total := 0.0
	for _, r := range t.Rewards {
		total += r
	}
	return total
}
