package searcher

import (
	"math"
	"reversi/game"
	"reversi/utils"
	"sync"
)

// decision is a node whose state has a side to move. Rewards are stored from
// the perspective of mover, the player whose move led to this node, so a
// parent always maximises over its children.
type decision struct {
	sync.RWMutex
	parent     *decision
	mover      string
	player     string
	hash       game.StateHash
	unexplored []game.Move
	explored   []game.Move
	children   []Node
	rewards    float64
	visits     float64
}

func newDecision(parent *decision, state game.State) *decision {
	mover := ""
	if parent != nil {
		mover = parent.player
	}
	return &decision{
		parent:     parent,
		mover:      mover,
		player:     state.Player(),
		hash:       state.Hash(),
		unexplored: state.LegalMoves(),
	}
}

func (d *decision) SelectOrExpand(state game.State) (Node, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) == 0 && len(d.explored) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.unexplored) > 0 { // Expandable node
		child, childState := d.addChild(state)
		child.applyLoss()
		return child, childState, false
	}

	// Fully expanded node
	ith := d.pickChild()
	child := d.children[ith]
	move := d.explored[ith]
	child.applyLoss()
	return child, state.Play(move), true
}

func (d *decision) addChild(state game.State) (Node, game.State) {
	move := d.unexplored[0]
	d.unexplored = d.unexplored[1:]

	childState := state.Play(move)
	child := newDecision(d, childState)
	d.explored = append(d.explored, move)
	d.children = append(d.children, child)
	return child, childState
}

func (d *decision) pickChild() int {
	if len(d.children) == 0 {
		panic("node has no children")
	}

	// Virtual losses count as visits, so N > 0 whenever children exist
	total := 0.0
	for _, child := range d.children {
		total += child.Visits()
	}
	if total == 0 {
		return 0
	}
	policy := newUCT(CSquared, total)

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		if score := child.score(policy); score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) score(policy *uct) float64 {
	d.RLock()
	defer d.RUnlock()

	if d.visits == 0 {
		return math.Inf(1)
	}
	return policy.evaluate(d.rewards, d.visits)
}

func (d *decision) Backup(player string, score float64) Node {
	d.Lock()
	defer d.Unlock()

	if d.parent == nil { // Root node
		d.visits++
		return nil
	}

	d.reverseLoss()
	d.rewards += computeReward(player, score, d.mover)
	d.visits++
	return d.parent
}

func (d *decision) Visits() float64 {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// child returns the explored child reached by move, if any.
func (d *decision) child(move game.Move) (*decision, bool) {
	d.RLock()
	defer d.RUnlock()

	i := utils.FindIndex(d.explored, move)
	if i < 0 {
		return nil, false
	}
	return d.children[i].(*decision), true
}

// Policy returns the visit count of every explored move.
func (d *decision) Policy() map[game.Move]float64 {
	d.RLock()
	defer d.RUnlock()

	policy := make(map[game.Move]float64, len(d.explored))
	for i, move := range d.explored {
		policy[move] = d.children[i].Visits()
	}
	return policy
}
