package store

import (
	"sort"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/core/util/json"
)

// Result is the outcome of one finished game.
type Result struct {
	ID         string    `json:"id"`
	GameID     int64     `json:"game_id"`
	Winner     int       `json:"winner"`
	TotalTurns int       `json:"total_turns"`
	HandSizes  []int     `json:"hand_sizes"`
	FinishedAt time.Time `json:"finished_at"`
}

var results = hashmap.New()

// Save registers a finished game and returns its id, assigning one when
// the caller left it empty.
func Save(r Result) string {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	results.Set(r.ID, r)
	return r.ID
}

func Get(id string) (Result, bool) {
	if v, ok := results.Get(id); ok {
		return v.(Result), true
	}
	return Result{}, false
}

// All returns every saved result, oldest first.
func All() []Result {
	list := make([]Result, 0)
	results.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(Result))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].FinishedAt.Before(list[j].FinishedAt)
	})
	return list
}

// Standings counts wins per seat across all saved results. Seats beyond
// numPlayers and unfinished games (winner -1) are ignored.
func Standings(numPlayers int) []int {
	wins := make([]int, numPlayers)
	results.Foreach(func(e *hashmap.Entry) {
		r := e.Value().(Result)
		if r.Winner >= 0 && r.Winner < numPlayers {
			wins[r.Winner]++
		}
	})
	return wins
}

// Dump serializes all results to JSON.
func Dump() []byte {
	return json.Marshal(All())
}

// Reset empties the store, used between test runs.
func Reset() {
	results = hashmap.New()
}
