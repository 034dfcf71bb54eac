package bot

import (
	"math/rand"

	"github.com/Hewlli/UNO-strategic-game/uno/card"
	"github.com/Hewlli/UNO-strategic-game/uno/card/color"
	"github.com/Hewlli/UNO-strategic-game/uno/event"
	"github.com/Hewlli/UNO-strategic-game/uno/game"
)

// predictiveBot tracks which colors each opponent plays and avoids handing
// the next player their preferred color. Preferences use Laplace smoothing
// over the four colors: P(color|opp) = (count+1) / (total+4).
type predictiveBot struct {
	basicBot
	colorPlays map[int]map[color.Color]int
	totalPlays map[int]int
}

func NewPredictiveBot(name string, playerID int, seed int64) Bot {
	return &predictiveBot{
		basicBot: basicBot{
			name:     name,
			playerID: playerID,
			rng:      rand.New(rand.NewSource(seed)),
		},
		colorPlays: make(map[int]map[color.Color]int),
		totalPlays: make(map[int]int),
	}
}

// Observe learns color preferences from opponents' plays. Draws reveal
// nothing; a wild play counts for its chosen color.
func (b *predictiveBot) Observe(ev event.TurnPlayedPayload) {
	if ev.Kind != "play" || ev.Player == b.playerID || ev.Card == nil {
		return
	}
	observed := ev.Card.Color
	if observed == color.Wild {
		observed = ev.ChosenColor
	}
	if !observed.Real() {
		return
	}
	if b.colorPlays[ev.Player] == nil {
		b.colorPlays[ev.Player] = make(map[color.Color]int)
	}
	b.colorPlays[ev.Player][observed]++
	b.totalPlays[ev.Player]++
}

func (b *predictiveBot) preference(opponent int, c color.Color) float64 {
	return float64(b.colorPlays[opponent][c]+1) / float64(b.totalPlays[opponent]+4)
}

func (b *predictiveBot) ChooseAction(info game.PublicInfo) Decision {
	next := nextPlayer(info)
	nextSize := info.HandSizes[next]

	myColorCounts := make(map[color.Color]int)
	for _, c := range info.MyHand {
		if c.Color.Real() {
			myColorCounts[c.Color]++
		}
	}

	best := info.LegalActions[0]
	bestScore := b.score(best, myColorCounts, next, nextSize)
	for _, action := range info.LegalActions[1:] {
		if s := b.score(action, myColorCounts, next, nextSize); s > bestScore {
			best, bestScore = action, s
		}
	}

	decision := Decision{Kind: best.Kind, Card: best.Card, Color: color.None}
	if best.Kind == game.Play && best.Card.IsWild() {
		decision.Color = b.pickWildColor(myColorCounts, next)
	}
	return decision
}

func (b *predictiveBot) score(action game.Action, myColorCounts map[color.Color]int, next, nextSize int) float64 {
	if action.Kind == game.Draw {
		return -999
	}
	c := action.Card
	s := 100.0

	if nextSize <= 3 && c.Type != card.Number {
		s += 35
	}
	switch c.Type {
	case card.DrawTwo:
		s += 10
	case card.Skip:
		s += 8
	case card.Reverse:
		s += 5
	case card.WildDrawFour:
		s += 14
	case card.Wild:
		s += 10
	}

	if c.Color.Real() {
		// A colored play sets the color context; avoid the next
		// player's favorite and keep our own flexibility.
		s -= b.preference(next, c.Color) * 40
		s += float64(myColorCounts[c.Color]) * 2
	} else {
		// A wild lets us choose an anti-opponent color afterwards.
		s += 8
	}
	return s
}

// pickWildColor balances holding the color ourselves against the next
// player's modeled preference for it.
func (b *predictiveBot) pickWildColor(myColorCounts map[color.Color]int, next int) color.Color {
	best := color.None
	bestScore := 0.0
	for _, candidate := range color.Reals {
		s := float64(myColorCounts[candidate])*3 - b.preference(next, candidate)*10
		if best == color.None || s > bestScore {
			best, bestScore = candidate, s
		}
	}
	return best
}

func (b *predictiveBot) PlayDrawn(drawn card.Card, info game.PublicInfo) (bool, color.Color) {
	if drawn.IsWild() {
		myColorCounts := make(map[color.Color]int)
		for _, c := range info.MyHand {
			if c.Color.Real() {
				myColorCounts[c.Color]++
			}
		}
		return true, b.pickWildColor(myColorCounts, nextPlayer(info))
	}
	return true, color.None
}
