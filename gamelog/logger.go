package gamelog

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

var turnHeader = []string{"game_id", "turn", "player", "action", "card", "hand_size", "deck_size"}

var gameHeader = []string{"game_id", "winner", "total_turns"}

// Logger persists per-turn and per-game CSV records. Files are keyed by a
// process-start timestamp, which doubles as the base game identifier.
type Logger struct {
	GameID int64

	turnFile *os.File
	gameFile *os.File
	turnW    *csv.Writer
	gameW    *csv.Writer

	turns int
}

func New(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	timestamp := time.Now().Unix()

	turnFile, err := os.Create(filepath.Join(dir, "turn_log_"+strconv.FormatInt(timestamp, 10)+".csv"))
	if err != nil {
		return nil, err
	}
	gameFile, err := os.Create(filepath.Join(dir, "game_log_"+strconv.FormatInt(timestamp, 10)+".csv"))
	if err != nil {
		turnFile.Close()
		return nil, err
	}

	l := &Logger{
		GameID:   timestamp,
		turnFile: turnFile,
		gameFile: gameFile,
		turnW:    csv.NewWriter(turnFile),
		gameW:    csv.NewWriter(gameFile),
	}
	if err := l.writeHeaders(); err != nil {
		l.Close()
		return nil, err
	}
	return l, nil
}

func (l *Logger) writeHeaders() error {
	if err := l.turnW.Write(turnHeader); err != nil {
		return err
	}
	if err := l.gameW.Write(gameHeader); err != nil {
		return err
	}
	l.turnW.Flush()
	l.gameW.Flush()
	if err := l.turnW.Error(); err != nil {
		return err
	}
	return l.gameW.Error()
}

// LogTurn appends one turn record. The card column is "DRAW" for draws and
// the played card's display string otherwise.
func (l *Logger) LogTurn(player int, action string, cardLabel string, handSize, deckSize int) error {
	l.turns++
	err := l.turnW.Write([]string{
		strconv.FormatInt(l.GameID, 10),
		strconv.Itoa(l.turns),
		strconv.Itoa(player),
		action,
		cardLabel,
		strconv.Itoa(handSize),
		strconv.Itoa(deckSize),
	})
	if err != nil {
		return err
	}
	l.turnW.Flush()
	return l.turnW.Error()
}

// LogGame appends the per-game summary row and resets the turn counter for
// the next game in the run.
func (l *Logger) LogGame(winner, totalTurns int) error {
	err := l.gameW.Write([]string{
		strconv.FormatInt(l.GameID, 10),
		strconv.Itoa(winner),
		strconv.Itoa(totalTurns),
	})
	if err != nil {
		return err
	}
	l.gameW.Flush()
	l.turns = 0
	return l.gameW.Error()
}

func (l *Logger) Close() error {
	l.turnW.Flush()
	l.gameW.Flush()
	if err := l.turnFile.Close(); err != nil {
		l.gameFile.Close()
		return err
	}
	return l.gameFile.Close()
}
