package config

import (
	"fmt"
	"os"
	"reversi/experiments/metrics"
	"reversi/meta"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrUnknownAgent  = errors.New("matchup refers to an unknown agent")
)

var validate = validator.New()

type PlayConfig struct {
	Human    string              `yaml:"human" validate:"oneof=black white"`
	Opponent metrics.AgentConfig `yaml:"opponent"`
}

type ExperimentConfig struct {
	Name     string                `yaml:"name" validate:"required"`
	Preset   string                `yaml:"preset" validate:"omitempty,oneof=parallelization cutoff throughput"`
	Budget   time.Duration         `yaml:"budget" validate:"gte=0"`
	Games    int                   `yaml:"games" validate:"gte=1"`
	Parallel int                   `yaml:"parallel" validate:"gte=1"`
	MaxMoves int                   `yaml:"max_moves" validate:"gte=1"`
	OutDir   string                `yaml:"out_dir" validate:"required"`
	Agents   []metrics.AgentConfig `yaml:"agents" validate:"dive"`
	MatchUps [][2]int              `yaml:"match_ups"`
}

type Config struct {
	LogLevel   string           `yaml:"log_level" validate:"oneof=trace debug info warn error disabled"`
	Pretty     bool             `yaml:"pretty"`
	Play       PlayConfig       `yaml:"play"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Pretty:   true,
		Play: PlayConfig{
			Human: "black",
			Opponent: metrics.AgentConfig{
				Goroutines: meta.GO_ROUTINES,
				Episodes:   meta.EPISODES,
				Cutoff:     meta.WITH_CUTOFF,
				Evaluation: "combined",
			},
		},
		Experiment: ExperimentConfig{
			Name:     "parallelization",
			Preset:   "parallelization",
			Budget:   10 * time.Millisecond,
			Games:    meta.NUM_GAMES,
			Parallel: meta.PARALLEL_GAMES,
			MaxMoves: meta.MAX_TURNS,
			OutDir:   meta.EXPERIMENTS_DIR,
		},
	}
}

// New reads the YAML file at cfgPath over the defaults. An empty path yields the defaults.
func New(cfgPath string) (Config, error) {
	cfg := Default()
	if cfgPath != "" {
		file, err := os.Open(cfgPath)
		if err != nil {
			return Config{}, errors.WithMessage(err, "open config")
		}
		defer func() {
			_ = file.Close()
		}()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return Config{}, errors.WithMessage(err, "decode config")
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return errors.Wrap(err, "validate config")
		}
		details := make([]string, 0, len(verrs))
		for _, verr := range verrs {
			details = append(details, fmt.Sprintf("%s fails %q", verr.Namespace(), verr.Tag()))
		}
		return errors.Wrap(ErrInvalidConfig, strings.Join(details, "; "))
	}

	ids := make(map[int]bool, len(c.Experiment.Agents))
	for _, agent := range c.Experiment.Agents {
		ids[agent.ID] = true
	}
	for _, matchUp := range c.Experiment.MatchUps {
		for _, id := range matchUp {
			if !ids[id] {
				return errors.Wrapf(ErrUnknownAgent, "agent %d", id)
			}
		}
	}
	if c.Experiment.Preset == "" && len(c.Experiment.MatchUps) == 0 {
		return errors.Wrap(ErrInvalidConfig, "experiment needs a preset or match_ups")
	}
	return nil
}
