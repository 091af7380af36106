package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "cutoff")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "cutoff"), filepath.Dir(w.Dir()), "Should nest runs under the experiment name")

	t.Run("writing agent configs", func(t *testing.T) {
		configs := []AgentConfig{
			{ID: 1, Goroutines: 4, Duration: 10 * time.Millisecond, Cutoff: 20, Evaluation: "discs"},
			{ID: 2, Kind: KindRandom},
		}
		require.NoError(t, w.WriteAgentConfigs(configs))

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 3, "Should write a header and one row per config")
		require.Equal(t, []string{"1", "", "4", "10ms", "0", "20", "discs"}, rows[1])
		require.Equal(t, "random", rows[2][1])
	})

	t.Run("writing game and move records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		games := []GameRecord{{
			Agent1: 1,
			Agent2: 2,
			GameMetric: GameMetric{
				ID:             "game-1",
				StartingPlayer: "black",
				Winner:         "white",
				BlackCount:     20,
				WhiteCount:     44,
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     60,
			},
		}}
		moves := []MoveRecord{{
			Game: "game-1",
			MoveMetric: MoveMetric{
				Step:   1,
				Player: "black",
				Move:   "d3",
				SearchMetric: SearchMetric{
					Goroutines:   2,
					Episodes:     100,
					FullPlayouts: 7,
					IsTreeReset:  true,
				},
			},
		}}
		require.NoError(t, w.WriteGameRecords(games))
		require.NoError(t, w.WriteMoveRecords(moves))

		gameRows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, gameRows, 2)
		require.Equal(t, []string{"game-1", "1", "2", "black", "white", "20", "44", "60",
			"2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, gameRows[1])

		moveRows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, moveRows, 2)
		require.Equal(t, []string{"game-1", "1", "black", "d3", "2", "0s", "100", "7", "true"}, moveRows[1])
	})

	t.Run("writing setup", func(t *testing.T) {
		setup := Setup{
			Name:     "cutoff",
			Games:    2,
			Parallel: 1,
			MaxMoves: 100,
			Agents:   []AgentConfig{{ID: 1, Goroutines: 1, Episodes: 10}},
			MatchUps: [][2]int{{1, 1}},
		}
		require.NoError(t, w.WriteSetup(setup))

		data, err := os.ReadFile(filepath.Join(w.Dir(), "setup.json"))
		require.NoError(t, err)
		var got Setup
		require.NoError(t, jsoniter.Unmarshal(data, &got))
		require.Equal(t, setup, got)
	})
}
