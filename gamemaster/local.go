package gamemaster

import (
	"reversi/game"
	"reversi/meta"
	"reversi/utils"
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrNotStarted  = errors.New("game has not started")
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
)

// UpdateGetter returns the next played move and the state it produced. It
// returns nils when no update is pending or the game is over and drained.
type UpdateGetter func() (game.Move, game.State)

type Engine interface {
	Init() (game.State, UpdateGetter)
	Play(game.Move) error
}

type update struct {
	move  game.Move
	state game.State
}

// LocalEngine referees a single game move by move, for callers that drive
// the turns themselves such as an interactive terminal.
type LocalEngine struct {
	mu       sync.Mutex
	start    *game.GameState
	state    *game.GameState
	updateCh chan update
	gameOver bool
}

func NewLocalEngine() *LocalEngine {
	return &LocalEngine{start: game.NewGameState()}
}

// NewLocalEngineFrom starts games from state instead of the opening position.
func NewLocalEngineFrom(state *game.GameState) *LocalEngine {
	return &LocalEngine{start: state.Copy()}
}

func (e *LocalEngine) Init() (game.State, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = e.start.Copy()
	e.gameOver = e.state.Winner() != ""
	// Room for every update of a game so Play never blocks on a slow reader
	e.updateCh = make(chan update, meta.MAX_TURNS)
	if e.gameOver {
		close(e.updateCh)
	}

	updateCh := e.updateCh
	return e.state.Copy(), func() (game.Move, game.State) {
		select {
		case u, ok := <-updateCh:
			if !ok { // Game over
				return nil, nil
			}
			return u.move, u.state
		default:
			// No updates yet, return nil immediately
			return nil, nil
		}
	}
}

func (e *LocalEngine) Play(move game.Move) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return ErrNotStarted
	}
	if e.gameOver {
		return ErrGameOver
	}

	legalMoves := e.state.LegalMoves()
	if move == nil || utils.FindIndex(legalMoves, move) < 0 {
		return errors.Wrapf(ErrIllegalMove, "%v for %s", move, e.state.Player())
	}

	e.state = e.state.Play(move).(*game.GameState)
	e.updateCh <- update{move: move, state: e.state.Copy()}

	if e.state.Winner() != "" {
		e.gameOver = true
		close(e.updateCh)
	}
	return nil
}

// State returns a copy of the current state, nil before Init.
func (e *LocalEngine) State() *game.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return nil
	}
	return e.state.Copy()
}

func (e *LocalEngine) IsOver() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.gameOver
}
