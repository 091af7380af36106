package agent

import (
	"math"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play during training. It samples
// moves in proportion to their visits raised to 1/temperature.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &trainingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) FindMove(state game.State, updates []searcher.Segment) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state, updates)
	moves := state.LegalMoves()
	probs := adjustTemperature(policy, moves, a.temperature)
	return sample(moves, probs, a.rng.Float64()), metric
}

// adjustTemperature returns the move probabilities in the order of moves.
func adjustTemperature(policy map[game.Move]float64, moves []game.Move, temperature float64) []float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]float64, len(moves))
	for i, move := range moves {
		prob := math.Pow(policy[move], exponent)
		sum += prob
		adjusted[i] = prob
	}
	if sum == 0 {
		return adjusted
	}
	// Normalize
	for i := range adjusted {
		adjusted[i] /= sum
	}
	return adjusted
}

func sample(moves []game.Move, probs []float64, sampled float64) game.Move {
	cumulative := 0.0
	var lastMove game.Move
	for i, move := range moves {
		if probs[i] == 0 {
			continue
		}
		lastMove = move
		cumulative += probs[i]
		if sampled < cumulative {
			return move
		}
	}
	if lastMove == nil && len(moves) > 0 {
		return moves[0]
	}
	return lastMove // Fallback in case of rounding errors
}
