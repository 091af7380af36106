package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNew(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		cfg, err := New("")
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
log_level: debug
play:
  human: white
  opponent:
    kind: greedy
    evaluation: corners
experiment:
  name: custom
  budget: 5ms
  games: 2
  agents:
    - id: 1
      goroutines: 2
      duration: 20ms
    - id: 2
      kind: random
  match_ups:
    - [1, 2]
`)
		cfg, err := New(path)
		require.NoError(t, err)

		require.Equal(t, "debug", cfg.LogLevel)
		require.True(t, cfg.Pretty, "Unset keys should keep their defaults")
		require.Equal(t, "white", cfg.Play.Human)
		require.Equal(t, "greedy", cfg.Play.Opponent.Kind)
		require.Equal(t, 5*time.Millisecond, cfg.Experiment.Budget)
		require.Equal(t, 2, cfg.Experiment.Games)
		require.Len(t, cfg.Experiment.Agents, 2)
		require.Equal(t, 20*time.Millisecond, cfg.Experiment.Agents[0].Duration)
		require.Equal(t, [][2]int{{1, 2}}, cfg.Experiment.MatchUps)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := New(writeConfig(t, "play: [unclosed"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejecting an unknown colour", func(t *testing.T) {
		cfg := Default()
		cfg.Play.Human = "red"
		require.True(t, errors.Is(cfg.Validate(), ErrInvalidConfig))
	})

	t.Run("rejecting an unknown evaluation", func(t *testing.T) {
		cfg := Default()
		cfg.Play.Opponent.Evaluation = "vibes"
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("rejecting invalid experiment agents", func(t *testing.T) {
		cfg := Default()
		cfg.Experiment.Agents = append(cfg.Experiment.Agents, cfg.Play.Opponent)
		cfg.Experiment.Agents[0].Kind = "oracle"
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("rejecting matchups with unknown agents", func(t *testing.T) {
		cfg := Default()
		cfg.Experiment.MatchUps = [][2]int{{0, 7}}
		require.ErrorIs(t, cfg.Validate(), ErrUnknownAgent)
	})

	t.Run("requiring something to run", func(t *testing.T) {
		cfg := Default()
		cfg.Experiment.Preset = ""
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("rejecting an unknown log level", func(t *testing.T) {
		cfg := Default()
		cfg.LogLevel = "loud"
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})
}
