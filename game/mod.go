package game

// TODO: State and Move belong in the searcher package so that any game can be searched without importing this one.

type Move interface {
	IsPass() bool
}

type StateHash uint64

// Draw is the winner reported by a finished game with equal tile counts.
const Draw = "draw"

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() string
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	Winner() string
}

// Evaluates the game state to a score between -1 and 1 indicating how
// favorable the current player's position is to a winning (positive) outcome.
type Evaluate func(State) float64
