package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mcts/engine"
	"mcts/searcher"
	"mcts/tictactoe"

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

func sampleRecords() []GameRecord {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return []GameRecord{
		{ID: 1, Agent1: 0, Agent2: 1, Agent1Seat: tictactoe.Red, WinnerAgent: 0, GameMetric: engine.GameMetric{
			StartingPlayer: tictactoe.Red, Winner: tictactoe.Red, StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 7,
		}},
		{ID: 2, Agent1: 0, Agent2: 1, Agent1Seat: tictactoe.Blue, WinnerAgent: NoWinner, GameMetric: engine.GameMetric{
			StartingPlayer: tictactoe.Red, StartTime: start, EndTime: start, TotalMoves: 9,
		}},
		{ID: 3, Agent1: 0, Agent2: 2, Agent1Seat: tictactoe.Red, WinnerAgent: 2, GameMetric: engine.GameMetric{
			StartingPlayer: tictactoe.Red, Winner: tictactoe.Blue, StartTime: start, EndTime: start, TotalMoves: 6,
		}},
	}
}

func TestWriter(t *testing.T) {
	writer, err := NewWriter(t.TempDir(), "sample")
	require.NoError(t, err)
	require.DirExists(t, writer.Dir())

	t.Run("agent configs", func(t *testing.T) {
		err := writer.WriteAgentConfigs([]AgentConfig{
			{ID: 0, Simulations: 1000, Exploration: 2, Policy: searcher.WinRate},
			{ID: 1, Duration: 50 * time.Millisecond, Exploration: 0.5, Policy: searcher.MostVisits},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(writer.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "simulations", "duration", "exploration", "policy"},
			{"0", "1000", "0s", "2", "winrate"},
			{"1", "0", "50ms", "0.5", "visits"},
		}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		require.NoError(t, writer.WriteGameRecords(sampleRecords()))

		rows := readCSV(t, filepath.Join(writer.Dir(), "game_records.csv"))
		require.Len(t, rows, 4, "Should write a header and one row per game")
		require.Equal(t, []string{"1", "0", "1", "red", "red", "red", "0", "2024-05-01T12:00:00Z", "2024-05-01T12:00:01Z", "1s", "7"}, rows[1])
		require.Equal(t, "", rows[2][5], "Draw should have an empty winner")
		require.Equal(t, "-1", rows[2][6])
	})

	t.Run("move records", func(t *testing.T) {
		err := writer.WriteMoveRecords([]MoveRecord{
			{Game: 1, MoveMetric: engine.MoveMetric{Step: 1, Player: tictactoe.Red, SearchMetrics: searcher.SearchMetrics{
				Duration: time.Millisecond, Simulations: 100, FullPlayouts: 100, TreeSize: 101, MaxDepth: 4,
			}}},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(writer.Dir(), "move_records.csv"))
		require.Equal(t, []string{"1", "1", "red", "1ms", "100", "100", "0", "101", "4"}, rows[1])
	})
}

func TestAgentConfigOptions(t *testing.T) {
	t.Run("unset budgets are left to the searcher defaults", func(t *testing.T) {
		options := AgentConfig{Exploration: 1}.Options()
		require.Len(t, options, 3)
	})

	t.Run("both budgets", func(t *testing.T) {
		options := AgentConfig{Simulations: 10, Duration: time.Second}.Options()
		require.Len(t, options, 5)
	})
}
