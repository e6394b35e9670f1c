package experiments

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"qirkat/agent"
	"qirkat/experiments/metrics"
	"qirkat/game"
	"qirkat/meta"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err, "%s should exist", path)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunExperiment(t *testing.T) {
	configs := []metrics.AgentConfig{
		{ID: 0, Kind: agent.Random, Seed: 5},
		{ID: 1, Kind: agent.AI, Depth: 2},
	}
	matchUps := [][]metrics.AgentConfig{{configs[0], configs[1]}}

	dir := runExperiment("test", configs, matchUps, 2, t.TempDir())

	agents := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, agents, 3, "Header plus one row per agent")
	require.Equal(t, []string{"1", "ai", "2", "0", "0", "0", "0s"}, agents[2])

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 3, "Header plus one row per game")
	require.Equal(t, []string{"1", "0", "1"}, games[1][:3], "First game: agent 0 plays White")
	require.Equal(t, []string{"2", "1", "0"}, games[2][:3], "Second game: colors are swapped")

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Greater(t, len(moves), 1, "Move records should be written")
	require.Equal(t, "game", moves[0][0])

	data, err := os.ReadFile(filepath.Join(dir, "setup.json"))
	require.NoError(t, err)
	var setup metrics.Setup
	require.NoError(t, json.Unmarshal(data, &setup))
	require.Equal(t, "test", setup.Name)
	require.Equal(t, 2, setup.NumGames)
	require.Equal(t, matchUps, setup.Matchups)
}

func TestOpeningBoard(t *testing.T) {
	b := openingBoard(9)

	require.Equal(t, meta.OPENING_PLIES, b.HistoryLen())
	require.Equal(t, openingBoard(9).Layout(), b.Layout(), "The same seed should give the same opening")
	require.Equal(t, game.White, b.WhoseMove(), "An even number of plies leaves White to move")
}

func TestCreateAgentPanics(t *testing.T) {
	require.Panics(t, func() { createAgent(metrics.AgentConfig{ID: 7, Kind: "oracle"}, game.White) })
}
