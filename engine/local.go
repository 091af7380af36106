package engine

import (
	"fmt"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
	"reversi/searcher/agent"
	"reversi/utils"
	"time"

	"github.com/rs/zerolog/log"
)

// LocalEngine plays two in-process agents against each other.
type LocalEngine struct {
	id       string
	state    *game.GameState
	agents   map[game.Piece]agent.Agent
	maxMoves int
}

type Option func(e *LocalEngine)

// WithState starts the game from state instead of the opening position.
func WithState(state *game.GameState) Option {
	return func(e *LocalEngine) {
		if state != nil {
			e.state = state
		}
	}
}

func WithMaxMoves(maxMoves int) Option {
	return func(e *LocalEngine) {
		if maxMoves > 0 {
			e.maxMoves = maxMoves
		}
	}
}

func NewLocalEngine(id string, black, white agent.Agent, options ...Option) *LocalEngine {
	if black == nil || white == nil {
		panic("need an agent for each colour")
	}
	e := &LocalEngine{
		id:       id,
		state:    game.NewGameState(),
		agents:   map[game.Piece]agent.Agent{game.Black: black, game.White: white},
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// State returns the current game state.
func (e *LocalEngine) State() *game.GameState {
	return e.state
}

// Run executes the entire game loop until the game ends. Each agent receives
// the lineage of moves played since its previous turn so that it can reuse its
// search tree.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	updates := map[game.Piece][]searcher.Segment{game.Black: {}, game.White: {}}
	gameMetric := metrics.GameMetric{
		ID:             e.id,
		StartingPlayer: e.state.Player(),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Debug().Msgf("game %s: %s is starting", e.id, e.state.Player())

	step := 1
	for ; e.state.Winner() == "" && step <= e.maxMoves; step++ {
		mover := e.state.Turn
		move, searchMetric := e.agents[mover].FindMove(e.state, updates[mover])
		updates[mover] = nil

		move = e.checkMove(move)
		e.state = e.state.Play(move).(*game.GameState)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mover.String(),
			Move:         fmt.Sprint(move),
			SearchMetric: searchMetric,
		})

		segment := searcher.Segment{Move: move, StateHash: e.state.Hash()}
		for piece := range updates {
			updates[piece] = append(updates[piece], segment)
		}
	}

	winner := e.state.Winner()
	if winner == "" {
		log.Warn().Msgf("game %s: stopped after %d moves without a winner", e.id, e.maxMoves)
	} else {
		log.Debug().Msgf("game %s: ended with winner %s", e.id, winner)
	}

	gameMetric.Winner = winner
	gameMetric.BlackCount, gameMetric.WhiteCount = e.state.Score()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step - 1
	return winner, gameMetric, moveMetrics
}

// checkMove replaces a move the rules reject with the first legal move.
func (e *LocalEngine) checkMove(move game.Move) game.Move {
	legalMoves := e.state.LegalMoves()
	if len(legalMoves) == 0 {
		panic("no legal moves in an unfinished game")
	}
	if move != nil && utils.FindIndex(legalMoves, move) >= 0 {
		return move
	}
	log.Warn().Msgf("game %s: %s returned illegal move %v, playing %v instead", e.id, e.state.Player(), move, legalMoves[0])
	return legalMoves[0]
}
