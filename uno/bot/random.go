package bot

import (
	"math/rand"

	"github.com/Hewlli/UNO-strategic-game/uno/card/color"
	"github.com/Hewlli/UNO-strategic-game/uno/game"
)

// randomBot picks a uniformly random legal action. Wild colors follow the
// most common color in hand so the pick is at least coherent.
type randomBot struct {
	basicBot
}

func NewRandomBot(name string, playerID int, seed int64) Bot {
	return &randomBot{basicBot: basicBot{
		name:     name,
		playerID: playerID,
		rng:      rand.New(rand.NewSource(seed)),
	}}
}

func (b *randomBot) ChooseAction(info game.PublicInfo) Decision {
	action := info.LegalActions[b.rng.Intn(len(info.LegalActions))]
	decision := Decision{Kind: action.Kind, Card: action.Card, Color: color.None}
	if action.Kind == game.Play && action.Card.IsWild() {
		decision.Color = b.pickMostCommonColor(info.MyHand)
	}
	return decision
}
