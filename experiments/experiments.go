package experiments

import (
	"context"
	"reversi/config"
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/meta"
	"reversi/searcher/agent"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const TimeBudget = 10 * time.Millisecond

// Experiment pits pairs of agent configs against each other and records every game.
type Experiment struct {
	Name     string
	Agents   []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
	Games    int // Per match up
	Parallel int // Games played at once
	MaxMoves int
	OutDir   string
}

// Result holds the records of a finished experiment.
type Result struct {
	Dir         string
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
}

// ParallelizationExperiment pairs agents with more goroutines against the sequential baseline.
func ParallelizationExperiment(budget time.Duration) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: 1, Duration: budget}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, goroutines := range []int{2, 4, 8, 16} {
		config := metrics.AgentConfig{ID: i + 1, Goroutines: goroutines, Duration: budget}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{Name: "parallelization", Agents: configs, MatchUps: matchUps}
}

// CutoffExperiment pairs agents evaluating after a few rollout moves against full playouts.
func CutoffExperiment(budget time.Duration) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: meta.GO_ROUTINES, Duration: budget} // Full playout
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, cutoff := range []int{5, 10, 20, 40} {
		config := metrics.AgentConfig{ID: i + 1, Goroutines: baseline.Goroutines, Duration: budget, Cutoff: cutoff}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{Name: "cutoff", Agents: configs, MatchUps: matchUps}
}

// ThroughputExperiment mirrors each config against itself, for the same
// playing strength and similar game length, to measure episodes per move.
func ThroughputExperiment(budget time.Duration) Experiment {
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	for i, goroutines := range []int{1, 2, 4, 8, 16, 32} {
		config := metrics.AgentConfig{ID: i + 1, Goroutines: goroutines, Duration: budget}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}
	return Experiment{Name: "throughput", Agents: configs, MatchUps: matchUps}
}

// FromConfig builds the configured experiment. Explicit match_ups take
// precedence over the preset.
func FromConfig(cfg config.ExperimentConfig) (Experiment, error) {
	var exp Experiment
	if len(cfg.MatchUps) > 0 {
		byID := make(map[int]metrics.AgentConfig, len(cfg.Agents))
		for _, ac := range cfg.Agents {
			byID[ac.ID] = ac
		}
		for _, ids := range cfg.MatchUps {
			agent1, ok1 := byID[ids[0]]
			agent2, ok2 := byID[ids[1]]
			if !ok1 || !ok2 {
				return Experiment{}, errors.Wrapf(config.ErrUnknownAgent, "matchup %v", ids)
			}
			exp.MatchUps = append(exp.MatchUps, [2]metrics.AgentConfig{agent1, agent2})
		}
		exp.Agents = cfg.Agents
	} else {
		budget := cfg.Budget
		if budget <= 0 {
			budget = TimeBudget
		}
		switch cfg.Preset {
		case "parallelization":
			exp = ParallelizationExperiment(budget)
		case "cutoff":
			exp = CutoffExperiment(budget)
		case "throughput":
			exp = ThroughputExperiment(budget)
		default:
			return Experiment{}, errors.Errorf("unknown experiment preset %q", cfg.Preset)
		}
	}

	exp.Name = cfg.Name
	exp.Games = cfg.Games
	exp.Parallel = cfg.Parallel
	exp.MaxMoves = cfg.MaxMoves
	exp.OutDir = cfg.OutDir
	return exp, nil
}

// Run plays every matchup and writes the records under exp.OutDir.
func Run(ctx context.Context, exp Experiment) (Result, error) {
	if exp.Games <= 0 {
		exp.Games = meta.NUM_GAMES
	}
	if exp.Parallel <= 0 {
		exp.Parallel = meta.PARALLEL_GAMES
	}
	if exp.MaxMoves <= 0 {
		exp.MaxMoves = engine.MaxMoves
	}
	if exp.OutDir == "" {
		exp.OutDir = meta.EXPERIMENTS_DIR
	}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for mi, matchUp := range exp.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(exp.MatchUps), matchUp[0], matchUp[1])

		games, moves, err := runMatchUp(ctx, exp, matchUp)
		if err != nil {
			return Result{}, errors.WithMessagef(err, "matchup %d", mi+1)
		}
		gameRecords = append(gameRecords, games...)
		moveRecords = append(moveRecords, moves...)

		log.Info().Msgf("completed matchup %d of %d", mi+1, len(exp.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	dir, err := store(exp, gameRecords, moveRecords)
	if err != nil {
		return Result{}, err
	}
	return Result{Dir: dir, GameRecords: gameRecords, MoveRecords: moveRecords}, nil
}

// runMatchUp plays the games of a matchup concurrently, alternating the
// colours so that each config starts half of the games.
func runMatchUp(ctx context.Context, exp Experiment, matchUp [2]metrics.AgentConfig) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	games := make([]metrics.GameRecord, exp.Games)
	moves := make([][]metrics.MoveRecord, exp.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(exp.Parallel)
	for i := 0; i < exp.Games; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			black, white := matchUp[0], matchUp[1]
			if i%2 == 1 {
				black, white = white, black
			}

			id := uuid.NewString()
			e := engine.NewLocalEngine(id, agent.FromConfig(black, uint64(2*i)), agent.FromConfig(white, uint64(2*i+1)), engine.WithMaxMoves(exp.MaxMoves))
			winner, gameMetric, moveMetrics := e.Run()

			games[i] = metrics.GameRecord{Agent1: black.ID, Agent2: white.ID, GameMetric: gameMetric}
			moves[i] = make([]metrics.MoveRecord, len(moveMetrics))
			for j, mm := range moveMetrics {
				moves[i][j] = metrics.MoveRecord{Game: id, MoveMetric: mm}
			}

			log.Info().Msgf("completed game %d of %d with winner: %s", i+1, exp.Games, winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	flat := []metrics.MoveRecord{}
	for _, records := range moves {
		flat = append(flat, records...)
	}
	return games, flat, nil
}

func store(exp Experiment, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(exp.OutDir, exp.Name)
	if err != nil {
		return "", errors.WithMessage(err, "create experiment writer")
	}

	setup := metrics.Setup{
		Name:     exp.Name,
		Games:    exp.Games,
		Parallel: exp.Parallel,
		MaxMoves: exp.MaxMoves,
		Agents:   exp.Agents,
	}
	for _, matchUp := range exp.MatchUps {
		setup.MatchUps = append(setup.MatchUps, [2]int{matchUp[0].ID, matchUp[1].ID})
	}
	if err := writer.WriteSetup(setup); err != nil {
		return "", err
	}
	if err := writer.WriteAgentConfigs(exp.Agents); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
