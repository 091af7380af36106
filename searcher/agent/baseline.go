package agent

import (
	"math"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State, _ []searcher.Segment) (game.Move, metrics.SearchMetric) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}

type greedyAgent struct {
	evaluate game.Evaluate
}

// NewGreedyAgent returns an agent playing the move whose resulting state
// evaluates best for the mover. It defaults to counting discs.
func NewGreedyAgent(evaluate game.Evaluate) Agent {
	if evaluate == nil {
		evaluate = game.EvaluateDiscs
	}
	return greedyAgent{evaluate: evaluate}
}

func (a greedyAgent) FindMove(state game.State, _ []searcher.Segment) (game.Move, metrics.SearchMetric) {
	var best game.Move
	bestScore := math.Inf(-1)
	for _, move := range state.LegalMoves() {
		// Evaluations score the side to move, which is the opponent after the move
		score := -a.evaluate(state.Play(move))
		if score > bestScore {
			bestScore = score
			best = move
		}
	}
	return best, metrics.SearchMetric{}
}
