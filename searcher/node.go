package searcher

import "reversi/game"

type Node interface {
	// SelectOrExpand descends one level: it either selects the best explored
	// child (selected=true), expands an unexplored move, or returns itself on a
	// terminal node.
	SelectOrExpand(state game.State) (child Node, childState game.State, selected bool)
	// Backup records a playout outcome and returns the parent, nil at the root.
	Backup(player string, score float64) Node
	Visits() float64
	applyLoss()
	score(policy *uct) float64
}
