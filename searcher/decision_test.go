package searcher

import (
	"reversi/game"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Tests parallel MCTS (tree parallelization with virtual loss) on decision nodes
sequential:
- selection:
	- happy path: fully expanded node -> max UCT child + loss, child state
	- edge case: terminal node -> same node, same state
- expansion:
	- happy path: expandable node -> first unexplored move as new child + loss, child state
- backup:
	- happy path: [new added child, selected children]: reverse loss, visits++, rewards from mover's perspective; [root] visits++
concurrent: 3 race conditions
- shared expansion
- shared backup
- shared selection + backup
*/

func TestDecisionSelectOrExpand(t *testing.T) {
	t.Run("selecting fully expanded node", func(t *testing.T) {
		maxMove := mockMove{id: 1}
		maxChild := &decision{mover: "player1", rewards: 1, visits: 1}
		otherChild := &decision{mover: "player1", rewards: 0, visits: 1}
		node := &decision{
			player:     "player1",
			unexplored: []game.Move{},
			explored:   []game.Move{mockMove{id: 0}, maxMove},
			children:   []Node{otherChild, maxChild},
			rewards:    1,
			visits:     2,
		}
		state := mockState{}

		gotChild, gotState, gotSelected := node.SelectOrExpand(state)

		require.Equal(t, maxChild, gotChild, "Node should select child with max policy value")
		require.Equal(t, 1+Loss, gotChild.(*decision).rewards, "Child should apply a temporary loss")
		require.Equal(t, 2.0, gotChild.(*decision).visits, "Child should apply a temporary loss")
		require.Equal(t, []game.Move{maxMove}, gotState.(mockState).played, "State should update by the move to the max policy child")
		require.True(t, gotSelected, "Node should perform selection")
		require.Equal(t, 1.0, node.rewards, "Node stats should not change")
		require.Equal(t, 2.0, node.visits, "Node stats should not change")
	})

	t.Run("selecting the less visited child among equal rewards", func(t *testing.T) {
		rareMove := mockMove{id: 1}
		rareChild := &decision{mover: "player1", rewards: 0, visits: 1}
		commonChild := &decision{mover: "player1", rewards: 0, visits: 9}
		node := &decision{
			player:   "player1",
			explored: []game.Move{mockMove{id: 0}, rareMove},
			children: []Node{commonChild, rareChild},
			visits:   10,
		}

		gotChild, gotState, _ := node.SelectOrExpand(mockState{})

		require.Equal(t, rareChild, gotChild, "Node should explore the less visited child")
		require.Equal(t, []game.Move{rareMove}, gotState.(mockState).played)
	})

	t.Run("expanding node with unexplored moves", func(t *testing.T) {
		unexploredMove := mockMove{id: 1}
		laterMove := mockMove{id: 2}
		node := &decision{
			player:     "player1",
			unexplored: []game.Move{unexploredMove, laterMove},
			explored:   []game.Move{mockMove{id: 0}},
			children:   []Node{&decision{rewards: 1, visits: 1}},
			visits:     1,
		}
		state := mockState{moves: []game.Move{}}

		gotChild, gotState, gotSelected := node.SelectOrExpand(state)

		require.IsType(t, &decision{}, gotChild, "Child should be a decision node")
		require.Equal(t, Loss, gotChild.(*decision).rewards, "Child should apply a temporary loss")
		require.Equal(t, 1.0, gotChild.(*decision).visits, "Child should apply a temporary loss")
		require.Equal(t, "player1", gotChild.(*decision).mover, "Child should record the player who moved")
		require.Equal(t, node, gotChild.(*decision).parent, "Child should link to its parent")
		require.Equal(t, 2, len(node.children), "Node should add a new child")
		require.Equal(t, []game.Move{mockMove{id: 0}, unexploredMove}, node.explored, "Node should expand moves in order")
		require.Equal(t, []game.Move{laterMove}, node.unexplored, "Node should keep the remaining moves")
		require.Equal(t, []game.Move{unexploredMove}, gotState.(mockState).played, "State should update by the move to the unexplored child")
		require.False(t, gotSelected, "Node should perform expansion")
	})

	t.Run("stagnating on terminal node", func(t *testing.T) {
		node := &decision{}
		state := mockState{}

		gotChild, gotState, gotSelected := node.SelectOrExpand(state)

		require.Equal(t, node, gotChild, "Should return the same node")
		require.Equal(t, mockState{}, gotState, "Should return the same state")
		require.False(t, gotSelected, "Should not select any child or expand")
	})
}

func TestDecisionBackup(t *testing.T) {
	t.Run("recording visit on root node", func(t *testing.T) {
		node := &decision{
			parent: nil,
			player: "player1",
		}

		got := node.Backup("player1", Win)

		require.Nil(t, got, "Should return no parent")
		require.Equal(t, 1.0, node.visits, "Should add a visit")
	})

	t.Run("recording win for the mover", func(t *testing.T) {
		parent := &decision{player: "player1"}
		node := &decision{
			parent:  parent,
			mover:   "player1",
			player:  "player2",
			rewards: Loss,
			visits:  1,
		}

		got := node.Backup("player1", Win)

		require.Equal(t, parent, got, "Should return the parent node")
		require.Equal(t, Win, node.rewards, "Should reverse virtual loss and add a win")
		require.Equal(t, 1.0, node.visits, "Should reverse virtual loss and add a visit")
	})

	t.Run("recording loss for the mover", func(t *testing.T) {
		parent := &decision{player: "player1"}
		node := &decision{
			parent:  parent,
			mover:   "player1",
			player:  "player2",
			rewards: Loss,
			visits:  1,
		}

		got := node.Backup("player2", Win)

		require.Equal(t, parent, got, "Should return the parent node")
		require.Equal(t, Loss, node.rewards, "Should reverse virtual loss and add a loss")
		require.Equal(t, 1.0, node.visits, "Should reverse virtual loss and add a visit")
	})

	t.Run("recording a cutoff evaluation", func(t *testing.T) {
		parent := &decision{player: "player1"}
		node := &decision{
			parent:  parent,
			mover:   "player1",
			rewards: Loss,
			visits:  1,
		}

		node.Backup("player2", 0.5)

		require.Equal(t, -0.5, node.rewards, "Opponent's evaluation should be negated")
	})
}

func TestDecisionPolicy(t *testing.T) {
	node := &decision{
		explored: []game.Move{mockMove{id: 0}, mockMove{id: 1}},
		children: []Node{&decision{visits: 3}, &decision{visits: 7}},
	}

	require.Equal(t, map[game.Move]float64{
		mockMove{id: 0}: 3,
		mockMove{id: 1}: 7,
	}, node.Policy())

	child, ok := node.child(mockMove{id: 1})
	require.True(t, ok)
	require.Equal(t, 7.0, child.visits)
	_, ok = node.child(mockMove{id: 2})
	require.False(t, ok, "Unexplored move should have no child")
}

func TestDecisionRaceConditions(t *testing.T) {
	t.Run("concurrent expansion", func(t *testing.T) {
		// Setup a node with 2 unexplored moves
		node := &decision{
			unexplored: []game.Move{mockMove{id: 0}, mockMove{id: 1}},
			explored:   []game.Move{},
			children:   []Node{},
		}

		var wg sync.WaitGroup
		type result struct {
			child    Node
			state    mockState
			selected bool
		}
		var got [2]result

		for i := 0; i < 2; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				// Each goroutine gets its own copy of state
				state := mockState{moves: []game.Move{}}
				gotChild, gotState, gotSelected := node.SelectOrExpand(state)
				got[i] = result{gotChild, gotState.(mockState), gotSelected}
			}()
		}
		wg.Wait()

		require.Equal(t, 2, len(node.children), "Node should have two children")
		for i := 0; i < 2; i++ {
			require.Equal(t, Loss, got[i].child.(*decision).rewards, "Child should apply a temporary loss")
			require.Equal(t, 1.0, got[i].child.(*decision).visits, "Child should apply a temporary loss")
			require.False(t, got[i].selected, "Node should be expanded")
		}
		require.NotEqual(t, got[0].state.played[0], got[1].state.played[0],
			"Node should expand with different moves")
	})

	t.Run("concurrent backup", func(t *testing.T) {
		parent := &decision{}
		node := &decision{
			parent:  parent,
			mover:   "player1",
			rewards: Loss * 2, // 2 virtual losses
			visits:  2,
		}

		var wg sync.WaitGroup
		var got [2]Node
		for i := 0; i < 2; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				got[i] = node.Backup("player1", Win)
			}()
		}
		wg.Wait()

		for i := 0; i < 2; i++ {
			require.Equal(t, parent, got[i], "Should return the parent node")
		}
		require.Equal(t, Win*2, node.rewards, "Node should reverse virtual losses and add two wins")
		require.Equal(t, 2.0, node.visits, "Node should reverse virtual losses and add two visits")
	})

	t.Run("concurrent selection and backup", func(t *testing.T) {
		parent := &decision{}
		node := &decision{
			parent:  parent,
			mover:   "player1",
			player:  "player2",
			rewards: Loss, // Virtual loss
			visits:  3,
		}
		child := &decision{
			parent:  node,
			mover:   "player2",
			rewards: 0,
			visits:  1,
		}
		move := mockMove{id: 0}
		node.explored = []game.Move{move}
		node.children = []Node{child}
		state := mockState{moves: []game.Move{}}

		var wg sync.WaitGroup
		wg.Add(2)

		var (
			gotChild    Node
			gotState    game.State
			gotSelected bool
			gotParent   Node
		)
		go func() {
			defer wg.Done()
			gotChild, gotState, gotSelected = node.SelectOrExpand(state)
		}()
		go func() {
			defer wg.Done()
			gotParent = node.Backup("player1", Win)
		}()
		wg.Wait()

		require.Equal(t, child, gotChild, "Node should select the child")
		require.Equal(t, move, gotState.(mockState).played[0], "State should update by the move to the child")
		require.True(t, gotSelected, "Node should perform selection")
		require.Equal(t, parent, gotParent, "Node should return its parent")
		require.Equal(t, Loss, child.rewards, "Child should apply a temporary loss")
		require.Equal(t, 2.0, child.visits, "Child should apply a temporary loss")
		require.Equal(t, Win, node.rewards, "Node should reverse virtual loss and add a win")
		require.Equal(t, 3.0, node.visits, "Node should reverse virtual loss and add a visit")
	})
}
