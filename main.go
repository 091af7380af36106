package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"reversi/cli"
	"reversi/config"
	"reversi/experiments"
	"reversi/game"
	"reversi/gamemaster"
	"reversi/meta"
	"reversi/player"
	"reversi/searcher/agent"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "One of play, experiment, selfplay")
	cfgPath := flag.String("config", "", "Path to a YAML config file")
	flag.Parse()

	cfg, err := config.New(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "play":
		err = cli.Run(cfg.Play)
	case "experiment":
		err = runExperiment(ctx, cfg.Experiment)
	case "selfplay":
		err = runSelfPlay(cfg)
	default:
		err = errors.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func setupLogger(cfg config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func runExperiment(ctx context.Context, cfg config.ExperimentConfig) error {
	exp, err := experiments.FromConfig(cfg)
	if err != nil {
		return err
	}
	result, err := experiments.Run(ctx, exp)
	if err != nil {
		return err
	}
	log.Info().Msgf("stored %d games in %s", len(result.GameRecords), result.Dir)
	return nil
}

// runSelfPlay plays the configured opponent against itself with training agents.
func runSelfPlay(cfg config.Config) error {
	black := agent.NewTrainingAgent(agent.NewMCTS(cfg.Play.Opponent), meta.TEMPERATURE, 1)
	white := agent.NewTrainingAgent(agent.NewMCTS(cfg.Play.Opponent), meta.TEMPERATURE, 2)
	final, err := player.SelfPlay(gamemaster.NewLocalEngine(), black, white)
	if err != nil {
		return err
	}
	fmt.Print(cli.RenderBoard(final.(*game.GameState).Board, nil, false))
	log.Info().Msgf("self-play finished with winner: %s", final.Winner())
	return nil
}
