package searcher

import "reversi/game"

type mockMove struct {
	id   int
	pass bool
}

func (m mockMove) IsPass() bool {
	return m.pass
}

type mockState struct {
	player string
	moves  []game.Move
	played []game.Move
	hash   game.StateHash
	winner string
}

func (m mockState) Player() string {
	return m.player
}

func (m mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m mockState) Play(move game.Move) game.State {
	played := make([]game.Move, len(m.played), len(m.played)+1)
	copy(played, m.played)
	return mockState{played: append(played, move)}
}

func (m mockState) Hash() game.StateHash {
	return m.hash
}

func (m mockState) Winner() string {
	return m.winner
}
