package bot

import (
	"math/rand"

	"github.com/Hewlli/UNO-strategic-game/uno/card"
	"github.com/Hewlli/UNO-strategic-game/uno/card/color"
	"github.com/Hewlli/UNO-strategic-game/uno/event"
	"github.com/Hewlli/UNO-strategic-game/uno/game"
)

// Decision is a strategy's answer for one turn. Card is meaningful only
// when Kind is game.Play; Color must be a real color when that card is a
// wild and is color.None otherwise.
type Decision struct {
	Kind  game.ActionKind
	Card  card.Card
	Color color.Color
}

// Bot is a pluggable strategy. ChooseAction receives the public info for
// the bot's own seat and must return one of the listed legal actions.
// Observe is a per-turn hook for opponent-modeling strategies; simple
// strategies ignore it.
type Bot interface {
	Name() string
	ChooseAction(info game.PublicInfo) Decision
	Observe(ev event.TurnPlayedPayload)
}

// DrawDecider is an optional extension: strategies implementing it are
// driven through the two-phase draw protocol and get to decide whether a
// playable drawn card is played. The returned color is used when the
// drawn card is a wild. Strategies without it go through the one-shot
// draw path, which forfeits the play-after-draw opportunity.
type DrawDecider interface {
	PlayDrawn(drawn card.Card, info game.PublicInfo) (bool, color.Color)
}

// basicBot carries what every strategy needs: a seat, a name and a seeded
// random source.
type basicBot struct {
	name     string
	playerID int
	rng      *rand.Rand
}

func (b basicBot) Name() string {
	return b.name
}

func (b basicBot) Observe(ev event.TurnPlayedPayload) {}

// pickMostCommonColor returns the real color the hand holds most of,
// falling back to a random color for a hand of nothing but wilds.
func (b basicBot) pickMostCommonColor(hand []card.Card) color.Color {
	counts := make(map[color.Color]int)
	for _, c := range hand {
		if c.Color.Real() {
			counts[c.Color]++
		}
	}
	if len(counts) == 0 {
		return color.Reals[b.rng.Intn(len(color.Reals))]
	}
	best := color.None
	bestCount := 0
	for _, candidate := range color.Reals {
		if counts[candidate] > bestCount {
			bestCount = counts[candidate]
			best = candidate
		}
	}
	return best
}

// nextPlayer computes the seat that acts after the current one.
func nextPlayer(info game.PublicInfo) int {
	return (info.CurrentPlayer + info.Direction + info.NumPlayers) % info.NumPlayers
}
