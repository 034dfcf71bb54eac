package gamelog_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hewlli/UNO-strategic-game/gamelog"
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

func logFiles(t *testing.T, dir string, l *gamelog.Logger) (string, string) {
	t.Helper()
	id := strconv.FormatInt(l.GameID, 10)
	return filepath.Join(dir, "turn_log_"+id+".csv"),
		filepath.Join(dir, "game_log_"+id+".csv")
}

func TestLoggerCreatesFilesWithHeaders(t *testing.T) {
	dir := t.TempDir()
	l, err := gamelog.New(dir)
	require.NoError(t, err)
	defer l.Close()

	turnPath, gamePath := logFiles(t, dir, l)

	turnRows := readCSV(t, turnPath)
	require.Len(t, turnRows, 1)
	assert.Equal(t, []string{"game_id", "turn", "player", "action", "card", "hand_size", "deck_size"}, turnRows[0])

	gameRows := readCSV(t, gamePath)
	require.Len(t, gameRows, 1)
	assert.Equal(t, []string{"game_id", "winner", "total_turns"}, gameRows[0])
}

func TestLoggerTurnRows(t *testing.T) {
	dir := t.TempDir()
	l, err := gamelog.New(dir)
	require.NoError(t, err)
	defer l.Close()

	require.NoError(t, l.LogTurn(0, "PLAY", "R5", 6, 80))
	require.NoError(t, l.LogTurn(1, "DRAW", "DRAW", 8, 79))

	turnPath, _ := logFiles(t, dir, l)
	rows := readCSV(t, turnPath)
	require.Len(t, rows, 3)

	id := strconv.FormatInt(l.GameID, 10)
	assert.Equal(t, []string{id, "1", "0", "PLAY", "R5", "6", "80"}, rows[1])
	assert.Equal(t, []string{id, "2", "1", "DRAW", "DRAW", "8", "79"}, rows[2])
}

func TestLoggerGameRowResetsTurnCounter(t *testing.T) {
	dir := t.TempDir()
	l, err := gamelog.New(dir)
	require.NoError(t, err)
	defer l.Close()

	require.NoError(t, l.LogTurn(0, "PLAY", "B3", 6, 80))
	require.NoError(t, l.LogGame(0, 1))
	require.NoError(t, l.LogTurn(1, "PLAY", "G7", 6, 81))

	turnPath, gamePath := logFiles(t, dir, l)

	gameRows := readCSV(t, gamePath)
	require.Len(t, gameRows, 2)
	id := strconv.FormatInt(l.GameID, 10)
	assert.Equal(t, []string{id, "0", "1"}, gameRows[1])

	turnRows := readCSV(t, turnPath)
	require.Len(t, turnRows, 3)
	assert.Equal(t, "1", turnRows[2][1], "turn numbering restarts for each game")
}

func TestLoggerCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	l, err := gamelog.New(dir)
	require.NoError(t, err)
	require.NoError(t, l.Close())

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}
