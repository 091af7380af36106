package cli

import (
	"fmt"
	"io"
	"os"
	"reversi/config"
	"reversi/game"
	"reversi/searcher/agent"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Run plays interactive games against the configured opponent until the user quits.
func Run(cfg config.PlayConfig) error {
	human, err := game.ParsePiece(cfg.Human)
	if err != nil {
		return errors.WithMessage(err, "human colour")
	}
	color := term.IsTerminal(int(os.Stdout.Fd()))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "reversi> ",
		HistoryFile:     ".reversi_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return errors.WithMessage(err, "init readline")
	}
	defer rl.Close()

	session := NewSession(human, agent.FromConfig(cfg.Opponent, 0), rl.Stdout(), color)
	fmt.Fprintln(rl.Stdout(), "Reversi. Type 'help' for commands")
	session.Start()

	for {
		rl.SetPrompt(session.Prompt())
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			continue
		}
		if session.Execute(line) {
			return nil
		}
	}
}
