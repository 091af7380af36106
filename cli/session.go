package cli

import (
	"fmt"
	"io"
	"reversi/game"
	"reversi/gamemaster"
	"reversi/player"
	"reversi/searcher/agent"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const helpText = `Commands:
  <coordinate>  place a tile, e.g. d3
  pass          pass when you have no legal move
  moves         list your legal moves
  board         show the board
  score         show the tile counts
  new           start a new game
  quit          leave
`

// Session is a game between a human at the terminal and an agent.
type Session struct {
	human     game.Piece
	opponent  agent.Agent
	engine    *gamemaster.LocalEngine
	agentSide *player.Controller
	state     *game.GameState
	getUpdate gamemaster.UpdateGetter
	out       io.Writer
	color     bool
}

func NewSession(human game.Piece, opponent agent.Agent, out io.Writer, color bool) *Session {
	return &Session{
		human:    human,
		opponent: opponent,
		engine:   gamemaster.NewLocalEngine(),
		out:      out,
		color:    color,
	}
}

// Start begins a new game, letting the agent open when it plays black.
func (s *Session) Start() {
	state, getUpdate := s.engine.Init()
	s.state = state.(*game.GameState)
	s.getUpdate = getUpdate
	s.agentSide = player.NewController(s.human.Opposite(), s.opponent, s.engine)

	fmt.Fprintf(s.out, "New game: you play %s\n", s.human)
	s.advance()
}

// State returns the current game state.
func (s *Session) State() *game.GameState {
	return s.state
}

// Prompt describes the current turn.
func (s *Session) Prompt() string {
	p := palette{enabled: s.color}
	switch {
	case s.state == nil:
		return "reversi> "
	case s.state.Winner() != "":
		return "reversi [game over]> "
	default:
		return fmt.Sprintf("reversi [%s]> ", p.piece(s.state.Turn))
	}
}

// Execute handles one line of input and reports whether the user wants to quit.
func (s *Session) Execute(line string) bool {
	line = strings.ToLower(strings.TrimSpace(line))
	switch line {
	case "":
	case "quit", "exit", "x":
		return true
	case "help", "?":
		fmt.Fprint(s.out, helpText)
	case "board":
		s.showBoard()
	case "moves":
		s.showMoves()
	case "score":
		fmt.Fprintln(s.out, formatScore(s.state, s.color))
	case "new":
		s.Start()
	case "pass":
		s.play(game.PassMove)
	default:
		coordinate, err := game.ParseCoordinate(line)
		if err != nil {
			fmt.Fprintf(s.out, "unknown command %q, type 'help' for commands\n", line)
			return false
		}
		s.play(game.Placement{Coordinate: coordinate})
	}
	return false
}

func (s *Session) play(move game.Move) {
	if s.state.Winner() == "" && s.state.Turn != s.human {
		fmt.Fprintln(s.out, "wait for your turn")
		return
	}
	err := s.engine.Play(move)
	switch {
	case errors.Is(err, gamemaster.ErrGameOver):
		fmt.Fprintln(s.out, "the game is over, type 'new' to play again")
		return
	case errors.Is(err, gamemaster.ErrIllegalMove):
		fmt.Fprintf(s.out, "%v is not a legal move\n", move)
		return
	case err != nil:
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	s.drain()
	s.advance()
}

// advance lets the agent move until it is the human's turn or the game ends.
func (s *Session) advance() {
	for s.state.Winner() == "" && s.state.Turn != s.human {
		move, metric, err := s.agentSide.TakeTurn(s.state)
		if err != nil {
			log.Error().Err(err).Msg("agent failed to move")
			fmt.Fprintf(s.out, "error: %v\n", err)
			return
		}
		log.Debug().Msgf("agent searched %d episodes in %v", metric.Episodes, metric.Duration)
		s.drain()
		fmt.Fprintf(s.out, "%s plays %v\n", s.human.Opposite(), move)
	}

	s.showBoard()
	if winner := s.state.Winner(); winner != "" {
		switch winner {
		case game.Draw:
			fmt.Fprintf(s.out, "Game over: draw (%s)\n", formatScore(s.state, s.color))
		case s.human.String():
			fmt.Fprintf(s.out, "Game over: you win (%s)\n", formatScore(s.state, s.color))
		default:
			fmt.Fprintf(s.out, "Game over: you lose (%s)\n", formatScore(s.state, s.color))
		}
		return
	}
	if moves := s.state.LegalMoves(); len(moves) == 1 && moves[0].IsPass() {
		fmt.Fprintln(s.out, "You have no legal move, type 'pass'")
	}
}

func (s *Session) drain() {
	for move, next := s.getUpdate(); move != nil; move, next = s.getUpdate() {
		s.agentSide.Observe(move, next)
		s.state = next.(*game.GameState)
	}
}

func (s *Session) showBoard() {
	var hints []game.Coordinate
	if s.state.Winner() == "" && s.state.Turn == s.human {
		hints = s.state.Board.PotentialMoves(s.human)
	}
	fmt.Fprint(s.out, RenderBoard(s.state.Board, hints, s.color))
}

func (s *Session) showMoves() {
	moves := s.state.LegalMoves()
	if s.state.Turn != s.human || len(moves) == 0 {
		fmt.Fprintln(s.out, "no moves available")
		return
	}
	names := make([]string, len(moves))
	for i, move := range moves {
		names[i] = fmt.Sprint(move)
	}
	fmt.Fprintln(s.out, strings.Join(names, " "))
}
