package game

import (
	"github.com/Hewlli/UNO-strategic-game/uno/card"
	"github.com/Hewlli/UNO-strategic-game/uno/card/color"
)

// Summary is a render-ready snapshot of the whole game for display and
// logging. Winner is -1 while the game is running; string fields are empty
// when the value is absent.
type Summary struct {
	CurrentPlayer    int    `json:"current_player"`
	TopCard          string `json:"top_card"`
	Direction        string `json:"direction"`
	HandSizes        []int  `json:"hand_sizes"`
	GameOver         bool   `json:"game_over"`
	Winner           int    `json:"winner"`
	TurnCount        int    `json:"turn_count"`
	DeckRemaining    int    `json:"deck_remaining"`
	DrawPileCount    int    `json:"draw_pile_count"`
	SkipNext         bool   `json:"skip_next"`
	PendingColor     string `json:"pending_color"`
	CanPlayDrawnCard bool   `json:"can_play_drawn_card"`
	LastDrawnCard    string `json:"last_drawn_card"`
}

// PublicInfo is everything a single player may see when deciding a move.
// The drawn-card fields are redacted unless the player is the current one.
type PublicInfo struct {
	MyHand           []card.Card
	MyHandSize       int
	TopCard          *card.Card
	CurrentPlayer    int
	NumPlayers       int
	HandSizes        []int
	Direction        int
	LegalActions     []Action
	DrawPileCount    int
	SkipNext         bool
	PendingColor     color.Color
	CanPlayDrawnCard bool
	LastDrawnCard    *card.Card
}

func (g *Game) Summary() Summary {
	s := Summary{
		CurrentPlayer: g.turns.Current(),
		Direction:     directionName(g.turns.Direction()),
		HandSizes:     g.handSizes(),
		GameOver:      g.gameOver,
		Winner:        g.winner,
		TurnCount:     g.turnCount,
		DeckRemaining: g.deck.Size(),
		DrawPileCount: g.drawPileCount,
		SkipNext:      g.skipNext,
	}
	if top, ok := g.TopCard(); ok {
		s.TopCard = top.String()
	}
	if g.pendingColor.Real() {
		s.PendingColor = g.pendingColor.String()
	}
	s.CanPlayDrawnCard = g.canPlayDrawnCard
	if g.lastDrawnCard != nil {
		s.LastDrawnCard = g.lastDrawnCard.String()
	}
	return s
}

func (g *Game) PublicInfo(player int) PublicInfo {
	info := PublicInfo{
		MyHand:        g.hands[player].Cards(),
		MyHandSize:    g.hands[player].Size(),
		CurrentPlayer: g.turns.Current(),
		NumPlayers:    g.numPlayers,
		HandSizes:     g.handSizes(),
		Direction:     g.turns.Direction(),
		LegalActions:  g.LegalActions(player),
		DrawPileCount: g.drawPileCount,
		SkipNext:      g.skipNext,
		PendingColor:  g.pendingColor,
	}
	if top, ok := g.TopCard(); ok {
		topCopy := top
		info.TopCard = &topCopy
	}
	if player == g.turns.Current() {
		info.CanPlayDrawnCard = g.canPlayDrawnCard
		if g.lastDrawnCard != nil {
			drawnCopy := *g.lastDrawnCard
			info.LastDrawnCard = &drawnCopy
		}
	}
	return info
}

func (g *Game) handSizes() []int {
	sizes := make([]int, g.numPlayers)
	for i, hand := range g.hands {
		sizes[i] = hand.Size()
	}
	return sizes
}

func directionName(direction int) string {
	if direction == -1 {
		return "counter-clockwise"
	}
	return "clockwise"
}
