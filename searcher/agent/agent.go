package agent

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

type Agent interface {
	// FindMove returns a move and performance metrics (if collected) from the simulation process.
	// updates holds the moves played since the agent's previous call.
	FindMove(state game.State, updates []searcher.Segment) (game.Move, metrics.SearchMetric)
}
