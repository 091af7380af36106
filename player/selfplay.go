package player

import (
	"reversi/game"
	"reversi/gamemaster"
	"reversi/searcher/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// SelfPlay drives a game between two agents through engine, delivering every
// update to both controllers. It returns the final state.
func SelfPlay(engine gamemaster.Engine, black, white agent.Agent) (game.State, error) {
	state, getUpdate := engine.Init()
	controllers := map[string]*Controller{
		game.Black.String(): NewController(game.Black, black, engine),
		game.White.String(): NewController(game.White, white, engine),
	}

	for turn := 1; state.Winner() == ""; turn++ {
		current := controllers[state.Player()]
		if _, _, err := current.TakeTurn(state); err != nil {
			return state, err
		}

		played := false
		for move, next := getUpdate(); move != nil; move, next = getUpdate() {
			for _, c := range controllers {
				c.Observe(move, next)
			}
			log.Debug().Msgf("turn %d: %s played %v", turn, state.Player(), move)
			state = next
			played = true
		}
		if !played {
			return state, errors.New("engine accepted a move without an update")
		}
	}
	return state, nil
}
