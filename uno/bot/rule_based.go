package bot

import (
	"math/rand"

	"github.com/Hewlli/UNO-strategic-game/uno/card"
	"github.com/Hewlli/UNO-strategic-game/uno/card/color"
	"github.com/Hewlli/UNO-strategic-game/uno/game"
)

// ruleBot plays scored heuristics: prefer playing over drawing, punish an
// opponent who is close to going out, shed action cards, and stay in the
// color it holds most of.
type ruleBot struct {
	basicBot
}

func NewRuleBot(name string, playerID int, seed int64) Bot {
	return &ruleBot{basicBot: basicBot{
		name:     name,
		playerID: playerID,
		rng:      rand.New(rand.NewSource(seed)),
	}}
}

func (b *ruleBot) ChooseAction(info game.PublicInfo) Decision {
	nextSize := info.HandSizes[nextPlayer(info)]

	best := info.LegalActions[0]
	bestScore := b.score(best, info, nextSize)
	for _, action := range info.LegalActions[1:] {
		if s := b.score(action, info, nextSize); s > bestScore {
			best, bestScore = action, s
		}
	}

	decision := Decision{Kind: best.Kind, Card: best.Card, Color: color.None}
	if best.Kind == game.Play && best.Card.IsWild() {
		decision.Color = b.pickMostCommonColor(info.MyHand)
	}
	return decision
}

func (b *ruleBot) score(action game.Action, info game.PublicInfo, nextSize int) int {
	if action.Kind == game.Draw {
		return -999
	}
	c := action.Card
	s := 100

	if c.IsWild() {
		s += 10
	}
	if nextSize <= 3 && c.Type != card.Number {
		s += 25
	}
	if c.Color.Real() {
		colorCount := 0
		for _, inHand := range info.MyHand {
			if inHand.Color == c.Color {
				colorCount++
			}
		}
		s += colorCount * 2
	}
	switch c.Type {
	case card.DrawTwo:
		s += 8
	case card.WildDrawFour:
		s += 12
	case card.Skip:
		s += 6
	case card.Reverse:
		s += 4
	}
	return s
}

// PlayDrawn opts into the two-phase draw: a playable drawn card is always
// worth playing under these heuristics.
func (b *ruleBot) PlayDrawn(drawn card.Card, info game.PublicInfo) (bool, color.Color) {
	if drawn.IsWild() {
		return true, b.pickMostCommonColor(info.MyHand)
	}
	return true, color.None
}
