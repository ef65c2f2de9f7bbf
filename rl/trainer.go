package rl

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path"
	"strconv"

	"github.com/pbrl/climate-rl/replay"
	"github.com/pbrl/climate-rl/util"
)

// TrainerConfig bundles the training-loop parameters.
type TrainerConfig struct {
	Episodes  int
	Horizon   int
	BatchSize int
	// WarmUp is the number of stored transitions before learning starts
	WarmUp int
	// SyncEvery is the number of environment steps between target syncs
	SyncEvery int
	// BetaStart is annealed linearly to 1 over BetaFrames steps
	BetaStart  float64
	BetaFrames int

	// RecordTraces writes one JSON line per episode under RecordPath
	RecordTraces bool
	RecordPath   string
	// CurrentRun tags the trace file when an experiment is repeated
	CurrentRun int
}

// EpisodeStats summarizes one episode of a run.
type EpisodeStats struct {
	Episode int     `json:"episode"`
	Reward  float64 `json:"reward"`
	Steps   int     `json:"steps"`
	Done    bool    `json:"done"`
}

// Trainer glues an environment, a learner and a prioritized buffer into
// the usual off-policy loop: act, store, sample, learn, refresh
// priorities with the learner's TD errors.
type Trainer struct {
	name    string
	config  *TrainerConfig
	env     Environment
	learner Learner
	buffer  *replay.Buffer

	frame int
	stats []EpisodeStats
}

func NewTrainer(name string, config *TrainerConfig, env Environment, learner Learner, buffer *replay.Buffer) *Trainer {
	return &Trainer{
		name:    name,
		config:  config,
		env:     env,
		learner: learner,
		buffer:  buffer,
		stats:   make([]EpisodeStats, 0, config.Episodes),
	}
}

// beta anneals the importance-correction exponent from BetaStart to 1.
func (t *Trainer) beta() float64 {
	if t.config.BetaFrames <= 0 {
		return t.config.BetaStart
	}
	b := t.config.BetaStart + float64(t.frame)*(1-t.config.BetaStart)/float64(t.config.BetaFrames)
	return math.Min(1, b)
}

// Run executes the configured number of episodes and returns the
// per-episode statistics.
func (t *Trainer) Run() []EpisodeStats {
	tracesFile := ""
	if t.config.RecordTraces {
		tracesFolder := path.Join(t.config.RecordPath, "traces")
		if _, err := os.Stat(tracesFolder); err != nil {
			os.MkdirAll(tracesFolder, os.ModePerm)
		}
		tracesFile = path.Join(tracesFolder, t.name+"_"+strconv.Itoa(t.config.CurrentRun)+".jsonl")
	}

	for episode := 0; episode < t.config.Episodes; episode++ {
		stats := t.runEpisode(episode, tracesFile)
		t.stats = append(t.stats, stats)
		fmt.Printf("\rExperiment: %s, Episode: %d/%d, Reward: %8.3f", t.name, episode+1, t.config.Episodes, stats.Reward)
	}
	fmt.Println("")
	return t.stats
}

func (t *Trainer) runEpisode(episode int, tracesFile string) EpisodeStats {
	obs := t.env.Reset()
	trace := NewTrace(episode)
	total := 0.0
	steps := 0
	done := false

	for step := 0; step < t.config.Horizon; step++ {
		action := t.learner.Act(obs, true)
		next, reward, finished := t.env.Step(action)

		t.buffer.Push(obs, action, reward, next, finished)
		trace.Append(obs, action, reward, finished)

		t.frame++
		steps++
		total += reward
		obs = next
		done = finished

		if t.buffer.Len() >= t.config.WarmUp {
			batch := t.buffer.Sample(t.config.BatchSize, t.beta())
			errs := t.learner.Learn(batch)
			t.buffer.UpdatePriorities(batch.Indices, errs)
		}
		if t.config.SyncEvery > 0 && t.frame%t.config.SyncEvery == 0 {
			t.learner.Sync()
		}
		if finished {
			break
		}
	}

	if tracesFile != "" {
		if bs, err := json.Marshal(trace); err == nil {
			util.AppendLines(tracesFile, string(bs))
		}
	}
	return EpisodeStats{Episode: episode, Reward: total, Steps: steps, Done: done}
}
