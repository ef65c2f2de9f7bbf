package rl

import "fmt"

type DataSet interface{}

type Analyzer func([]EpisodeStats) DataSet

type Comparator func([]string, []DataSet)

// Experiment is one named trainer configuration.
type Experiment struct {
	Name    string
	Trainer *Trainer
	Result  []EpisodeStats
}

func NewExperiment(name string, trainer *Trainer) *Experiment {
	return &Experiment{
		Name:    name,
		Trainer: trainer,
		Result:  make([]EpisodeStats, 0),
	}
}

func (e *Experiment) Run() {
	fmt.Printf("Running Experiment: %s\n", e.Name)
	e.Result = e.Trainer.Run()
}

// Comparison runs several experiments, feeds their episode statistics
// through the analyzer and hands the named datasets to the comparator.
type Comparison struct {
	Experiments []*Experiment
	analyzer    Analyzer
	comparator  Comparator
}

func NewComparison(analyzer Analyzer, comparator Comparator) *Comparison {
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		analyzer:    analyzer,
		comparator:  comparator,
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

func (c *Comparison) Run() {
	datasets := make([]DataSet, len(c.Experiments))
	names := make([]string, len(c.Experiments))
	for i, e := range c.Experiments {
		e.Run()
		datasets[i] = c.analyzer(e.Result)
		names[i] = e.Name
	}
	c.comparator(names, datasets)
}
