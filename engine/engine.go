package engine

import (
	"reversi/experiments/metrics"
	"reversi/meta"
)

const MaxMoves = meta.MAX_TURNS

type Engine interface {
	// Run plays a game till it ends or a max number of moves is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
