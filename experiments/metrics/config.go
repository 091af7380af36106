package metrics

import (
	"reversi/game"
	"time"
)

const (
	KindMCTS   = "mcts"
	KindRandom = "random"
	KindGreedy = "greedy"
)

// AgentConfig describes one competitor of an experiment.
type AgentConfig struct {
	ID         int           `yaml:"id" json:"id" validate:"gte=0"`
	Kind       string        `yaml:"kind" json:"kind" validate:"omitempty,oneof=mcts random greedy"`
	Goroutines int           `yaml:"goroutines" json:"goroutines" validate:"gte=0"`
	Duration   time.Duration `yaml:"duration" json:"duration" validate:"gte=0"`
	Episodes   int           `yaml:"episodes" json:"episodes" validate:"gte=0"`
	Cutoff     int           `yaml:"cutoff" json:"cutoff" validate:"gte=0"`
	Evaluation string        `yaml:"evaluation" json:"evaluation" validate:"omitempty,oneof=discs mobility corners weighted combined"`
	Seed       uint64        `yaml:"seed" json:"seed"`
}

// IsSearch reports whether the agent runs a tree search. An empty kind means MCTS.
func (c AgentConfig) IsSearch() bool {
	return c.Kind == "" || c.Kind == KindMCTS
}

// Evaluate returns the configured evaluation function, nil when unset or unknown.
func (c AgentConfig) Evaluate() game.Evaluate {
	return game.Evaluations[c.Evaluation]
}
