package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState pairs a board with the side to move. It implements State for the
// searcher and the game loops; the board itself stays turn-agnostic.
type GameState struct {
	Board    *Board // Immutable position
	Turn     Piece  // The side to move
	LastMove Move   // The move that produced this state, nil at the start
}

// NewGameState returns the starting position with black to move.
func NewGameState() *GameState {
	return &GameState{
		Board: NewBoard(),
		Turn:  Black,
	}
}

func (gs *GameState) Player() string {
	return gs.Turn.String()
}

// LegalMoves returns the placements available to the side to move in
// row-major order. A blocked side whose opponent can still move gets a single
// pass; a finished game has no moves.
func (gs *GameState) LegalMoves() []Move {
	coordinates := gs.Board.PotentialMoves(gs.Turn)
	if len(coordinates) == 0 {
		if gs.Board.IsEnd() {
			return nil
		}
		return []Move{PassMove}
	}

	moves := make([]Move, len(coordinates))
	for i, coordinate := range coordinates {
		moves[i] = Placement{Coordinate: coordinate}
	}
	return moves
}

// Play returns the state after move. It panics on a move that LegalMoves
// would not have produced.
func (gs *GameState) Play(move Move) State {
	placement, ok := move.(Placement)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", move))
	}

	if placement.Pass {
		if len(gs.Board.PotentialMoves(gs.Turn)) > 0 {
			panic(fmt.Sprintf("%v cannot pass with legal moves available", gs.Turn))
		}
		return &GameState{Board: gs.Board, Turn: gs.Turn.Opposite(), LastMove: placement}
	}

	board, ok := gs.Board.PlacePiece(placement.Coordinate, gs.Turn)
	if !ok {
		panic(fmt.Sprintf("illegal move %v for %v", placement, gs.Turn))
	}
	return &GameState{Board: board, Turn: gs.Turn.Opposite(), LastMove: placement}
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash side to move
	_ = binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))

	// Hash position
	_ = binary.Write(hasher, binary.LittleEndian, gs.Board.Hash())

	return StateHash(hasher.Sum64())
}

// Winner decides a finished game by tile count: the colour name of the side
// with more tiles, or Draw. It is "" while the game is in progress.
func (gs *GameState) Winner() string {
	if !gs.Board.IsEnd() {
		return ""
	}
	black, white := gs.Score()
	switch {
	case black > white:
		return Black.String()
	case white > black:
		return White.String()
	default:
		return Draw
	}
}

// Score returns the tile counts of both colours.
func (gs *GameState) Score() (black, white int) {
	return gs.Board.Count(Black), gs.Board.Count(White)
}

func (gs *GameState) Copy() *GameState {
	return &GameState{
		Board:    gs.Board, // Boards are immutable
		Turn:     gs.Turn,
		LastMove: gs.LastMove,
	}
}
