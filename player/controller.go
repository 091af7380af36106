package player

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/gamemaster"
	"reversi/searcher"
	"reversi/searcher/agent"

	"github.com/pkg/errors"
)

// Controller plays one colour of a refereed game with an agent. It keeps the
// lineage of moves observed since its last turn so the agent can reuse its tree.
type Controller struct {
	piece   game.Piece
	agent   agent.Agent
	engine  gamemaster.Engine
	updates []searcher.Segment
}

func NewController(piece game.Piece, a agent.Agent, engine gamemaster.Engine) *Controller {
	return &Controller{
		piece:   piece,
		agent:   a,
		engine:  engine,
		updates: []searcher.Segment{},
	}
}

func (c *Controller) Piece() game.Piece {
	return c.piece
}

// Observe records a move played by either side.
func (c *Controller) Observe(move game.Move, state game.State) {
	c.updates = append(c.updates, searcher.Segment{Move: move, StateHash: state.Hash()})
}

// TakeTurn asks the agent for a move and submits it to the engine.
func (c *Controller) TakeTurn(state game.State) (game.Move, metrics.SearchMetric, error) {
	if state.Player() != c.piece.String() {
		return nil, metrics.SearchMetric{}, errors.Errorf("not %s's turn", c.piece)
	}

	move, metric := c.agent.FindMove(state, c.updates)
	c.updates = []searcher.Segment{}
	if err := c.engine.Play(move); err != nil {
		return nil, metric, errors.WithMessagef(err, "%s agent", c.piece)
	}
	return move, metric, nil
}
