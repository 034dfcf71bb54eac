package sim_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hewlli/UNO-strategic-game/config"
	"github.com/Hewlli/UNO-strategic-game/sim"
	"github.com/Hewlli/UNO-strategic-game/store"
)

func runConfig(t *testing.T, games int, seed int64) config.Config {
	t.Helper()
	return config.Config{
		Players:    3,
		Strategies: []string{"rule", "predictive", "random"},
		Seed:       seed,
		Games:      games,
		LogDir:     t.TempDir(),
	}
}

func TestRunnerPlaysConfiguredGames(t *testing.T) {
	store.Reset()
	cfg := runConfig(t, 2, 11)

	r, err := sim.NewRunner(cfg)
	require.NoError(t, err)

	results, err := r.Run()
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, result := range results {
		assert.NotEmpty(t, result.ID)
		assert.GreaterOrEqual(t, result.Winner, 0)
		assert.Less(t, result.Winner, cfg.Players)
		assert.Greater(t, result.TotalTurns, 0)
		require.Len(t, result.HandSizes, cfg.Players)
		assert.Equal(t, 0, result.HandSizes[result.Winner], "the winner went out")
	}

	assert.Len(t, store.All(), 2)
}

func TestRunnerIsDeterministicForASeed(t *testing.T) {
	store.Reset()

	first, err := sim.NewRunner(runConfig(t, 3, 77))
	require.NoError(t, err)
	firstResults, err := first.Run()
	require.NoError(t, err)

	second, err := sim.NewRunner(runConfig(t, 3, 77))
	require.NoError(t, err)
	secondResults, err := second.Run()
	require.NoError(t, err)

	require.Len(t, secondResults, len(firstResults))
	for i := range firstResults {
		assert.Equal(t, firstResults[i].Winner, secondResults[i].Winner)
		assert.Equal(t, firstResults[i].TotalTurns, secondResults[i].TotalTurns)
		assert.Equal(t, firstResults[i].HandSizes, secondResults[i].HandSizes)
	}
}

func TestRunnerWritesTurnLog(t *testing.T) {
	store.Reset()
	cfg := runConfig(t, 1, 5)

	r, err := sim.NewRunner(cfg)
	require.NoError(t, err)
	results, err := r.Run()
	require.NoError(t, err)
	require.Len(t, results, 1)

	entries, err := os.ReadDir(cfg.LogDir)
	require.NoError(t, err)

	var turnPath, gamePath string
	for _, e := range entries {
		switch {
		case len(e.Name()) > 9 && e.Name()[:9] == "turn_log_":
			turnPath = filepath.Join(cfg.LogDir, e.Name())
		case len(e.Name()) > 9 && e.Name()[:9] == "game_log_":
			gamePath = filepath.Join(cfg.LogDir, e.Name())
		}
	}
	require.NotEmpty(t, turnPath)
	require.NotEmpty(t, gamePath)

	turnFile, err := os.Open(turnPath)
	require.NoError(t, err)
	defer turnFile.Close()
	turnRows, err := csv.NewReader(turnFile).ReadAll()
	require.NoError(t, err)
	assert.Greater(t, len(turnRows), 1, "header plus at least one turn")

	gameFile, err := os.Open(gamePath)
	require.NoError(t, err)
	defer gameFile.Close()
	gameRows, err := csv.NewReader(gameFile).ReadAll()
	require.NoError(t, err)
	require.Len(t, gameRows, 2)
}

func TestRunnerRejectsUnknownStrategy(t *testing.T) {
	cfg := runConfig(t, 1, 1)
	cfg.Strategies = []string{"rule", "alphazero", "random"}

	_, err := sim.NewRunner(cfg)
	assert.Error(t, err)
}
