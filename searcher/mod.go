package searcher

import (
	"math"
	"reversi/game"
)

// MaxCutoff disables the rollout cutoff: rollouts play until the game ends.
const MaxCutoff = math.MaxInt32

// Segment is one played move and the hash of the state it produced. A lineage
// of segments lets a searcher walk its previous tree to the current state.
type Segment struct {
	Move      game.Move
	StateHash game.StateHash
}

// computeReward converts a playout outcome, scored from player's perspective,
// to the perspective of mover.
func computeReward(player string, score float64, mover string) float64 {
	if player == mover {
		return score
	}
	return -score
}
