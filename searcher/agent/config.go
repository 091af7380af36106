package agent

import (
	"reversi/experiments/metrics"
	"reversi/meta"
	"reversi/searcher"
	"time"
)

// DefaultBudget is the search time of an MCTS config without episodes or duration.
const DefaultBudget = 10 * time.Millisecond

// FromConfig builds a fresh agent, since search trees are not shared between
// games. offset varies the seed of randomised agents between games.
func FromConfig(config metrics.AgentConfig, offset uint64) Agent {
	switch config.Kind {
	case metrics.KindRandom:
		return NewRandomAgent(config.Seed + offset)
	case metrics.KindGreedy:
		return NewGreedyAgent(config.Evaluate())
	default:
		return NewEvaluationAgent(NewMCTS(config))
	}
}

// NewMCTS builds a searcher from config, filling unset fields from meta defaults.
func NewMCTS(config metrics.AgentConfig) *searcher.MCTS {
	options := []searcher.Option{}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Episodes <= 0 && config.Duration <= 0 {
		options = append(options, searcher.WithDuration(DefaultBudget))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	if evaluate := config.Evaluate(); evaluate != nil {
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}
	if config.Seed != 0 {
		options = append(options, searcher.WithSeed(config.Seed))
	}

	goroutines := config.Goroutines
	if goroutines <= 0 {
		goroutines = meta.GO_ROUTINES
	}
	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(goroutines, options...)
}
