package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Hewlli/UNO-strategic-game/uno/card"
	"github.com/Hewlli/UNO-strategic-game/uno/card/color"
)

const (
	MinPlayers = 2
	MaxPlayers = 4

	startingHandSize = 7
)

// Game is the rules engine for one round of UNO. It owns the deck, the
// discard pile and every hand; collaborators act only through its query
// and mutation methods. Rule violations are reported as failure results,
// never as panics. The engine is single-threaded: one mutation completes
// before the next query is issued.
type Game struct {
	numPlayers int
	rng        *rand.Rand

	deck  *Deck
	pile  *Pile
	hands []*Hand
	turns *cycler

	turnCount     int
	drawPileCount int
	skipNext      bool
	pendingColor  color.Color

	lastDrawnCard    *card.Card
	canPlayDrawnCard bool

	playersUno []bool
	gameOver   bool
	winner     int
}

// NewGame creates an uninitialized game. A player count outside [2,4] is
// the one fatal construction error; everything after construction reports
// failure instead of erroring.
func NewGame(numPlayers int) (*Game, error) {
	return NewSeededGame(numPlayers, time.Now().UnixNano())
}

// NewSeededGame is NewGame with a deterministic shuffle seed.
func NewSeededGame(numPlayers int, seed int64) (*Game, error) {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return nil, fmt.Errorf("number of players must be between %d and %d, got %d", MinPlayers, MaxPlayers, numPlayers)
	}
	return &Game{
		numPlayers: numPlayers,
		rng:        rand.New(rand.NewSource(seed)),
		winner:     -1,
	}, nil
}

// Initialize shuffles a fresh deck, deals 7 cards to each player in
// round-robin order and seeds the discard pile with a starting card.
// Wild and action cards are cycled back under the deck so the opening
// card is always a plain number while more than one card remains.
func (g *Game) Initialize() {
	g.deck = NewDeck(g.rng)
	g.pile = NewPile()
	g.turns = newCycler(g.numPlayers)

	g.hands = make([]*Hand, g.numPlayers)
	for i := range g.hands {
		g.hands[i] = NewHand()
	}
	for i := 0; i < startingHandSize; i++ {
		for p := 0; p < g.numPlayers; p++ {
			if c, ok := g.deck.DrawOne(); ok {
				g.hands[p].Add(c)
			}
		}
	}

	if top, ok := g.deck.DrawOne(); ok {
		for (top.IsWild() || top.Type == card.Skip || top.Type == card.Reverse || top.Type == card.DrawTwo) && g.deck.Size() > 1 {
			g.deck.PushFront(top)
			top, _ = g.deck.DrawOne()
		}
		g.pile.Add(top)
	}

	g.turnCount = 0
	g.drawPileCount = 0
	g.skipNext = false
	g.pendingColor = color.None
	g.lastDrawnCard = nil
	g.canPlayDrawnCard = false
	g.playersUno = make([]bool, g.numPlayers)
	g.gameOver = false
	g.winner = -1
}

func (g *Game) NumPlayers() int {
	return g.numPlayers
}

func (g *Game) CurrentPlayer() int {
	return g.turns.Current()
}

// Direction is +1 for clockwise play, -1 for counter-clockwise.
func (g *Game) Direction() int {
	return g.turns.Direction()
}

func (g *Game) TurnCount() int {
	return g.turnCount
}

func (g *Game) GameOver() bool {
	return g.gameOver
}

// Winner returns the winning seat, or -1 while the game is running.
func (g *Game) Winner() int {
	return g.winner
}

func (g *Game) DeckRemaining() int {
	return g.deck.Size()
}

func (g *Game) DrawPileCount() int {
	return g.drawPileCount
}

func (g *Game) PendingColor() color.Color {
	return g.pendingColor
}

// CalledUno reports whether a player's hand has reached exactly one card.
// Purely informational; there is no missed-call penalty.
func (g *Game) CalledUno(player int) bool {
	return g.playersUno[player]
}

// PlayerHand returns a defensive copy of a player's cards.
func (g *Game) PlayerHand(player int) []card.Card {
	return g.hands[player].Cards()
}

// TopCard resolves the effective top card. When the nominal top is a wild
// with a chosen color, the returned card carries that color instead, so
// legality checks downstream never special-case wild resolution.
func (g *Game) TopCard() (card.Card, bool) {
	top, ok := g.pile.Top()
	if !ok {
		return card.Card{}, false
	}
	if top.Color == color.Wild && g.pendingColor.Real() {
		return card.Card{Color: g.pendingColor, Value: top.Value, Type: top.Type}, true
	}
	return top, true
}

// LegalActions enumerates what a player could do right now. During an
// active draw chain only chain continuations are playable; otherwise any
// matching card is, further restricted to the pending color (or wilds)
// when one is set. Drawing is always available.
func (g *Game) LegalActions(player int) []Action {
	hand := g.hands[player].Cards()
	actions := make([]Action, 0, len(hand)+1)
	top, hasTop := g.TopCard()

	for _, c := range hand {
		if !hasTop || g.canPlay(c, top) {
			actions = append(actions, Action{Kind: Play, Card: c})
		}
	}
	return append(actions, Action{Kind: Draw})
}

// canPlay decides legality of a single card against the effective top.
// A draw chain narrows play to chain continuations: same-type cards that
// keep the accumulation going. Outside a chain wilds are always legal,
// a pending color restricts plays to that color, and otherwise the basic
// matching relation applies.
func (g *Game) canPlay(c card.Card, top card.Card) bool {
	if g.drawPileCount > 0 {
		switch top.Type {
		case card.DrawTwo:
			return c.Type == card.DrawTwo && (c.Color == top.Color || c.Color == color.Wild)
		case card.WildDrawFour:
			return c.Type == card.WildDrawFour
		}
		return false
	}
	if c.IsWild() {
		return true
	}
	if g.pendingColor.Real() {
		return c.Color == g.pendingColor
	}
	return c.Matches(top)
}

// DrawWithOption is the turn-initiated draw. Under an active draw chain
// the player draws the whole accumulated count and the turn advances with
// no play opportunity. Otherwise one card is drawn: if it is playable the
// turn is left open and the caller must resolve it with PlayDrawnCard or
// EndTurnAfterDraw; if not, the turn advances immediately.
//
// Returns the drawn card (nil for a chain draw, an exhausted deck or a
// failed call) and whether it is playable.
func (g *Game) DrawWithOption(player int) (*card.Card, bool) {
	if g.gameOver || player != g.turns.Current() {
		return nil, false
	}

	if g.drawPileCount > 0 {
		for i := 0; i < g.drawPileCount; i++ {
			g.drawCard(player)
		}
		g.drawPileCount = 0
		g.advance()
		return nil, false
	}

	drawn := g.drawCard(player)
	if drawn == nil {
		// Deck and discard both exhausted: a degenerate no-op draw.
		g.clearDrawnCard()
		g.advance()
		return nil, false
	}

	top, hasTop := g.TopCard()
	if !hasTop || g.canPlay(*drawn, top) {
		g.lastDrawnCard = drawn
		g.canPlayDrawnCard = true
		return drawn, true
	}

	g.clearDrawnCard()
	g.advance()
	return drawn, false
}

// PlayDrawnCard plays the card recorded by the last DrawWithOption call.
// Wild cards require one of the four real colors.
func (g *Game) PlayDrawnCard(player int, chosen color.Color) bool {
	if g.gameOver || player != g.turns.Current() {
		return false
	}
	if !g.canPlayDrawnCard || g.lastDrawnCard == nil {
		return false
	}

	c := *g.lastDrawnCard
	if c.IsWild() {
		if !chosen.Real() {
			return false
		}
		g.pendingColor = chosen
	}

	g.hands[player].Remove(c)
	g.pile.Add(c)
	g.applyEffect(c)

	if g.checkWin(player) {
		g.clearDrawnCard()
		return true
	}
	g.advanceWithSkip()
	g.clearDrawnCard()
	return true
}

// EndTurnAfterDraw declines to play a playable drawn card and passes the
// turn along.
func (g *Game) EndTurnAfterDraw(player int) bool {
	if g.gameOver || player != g.turns.Current() {
		return false
	}
	g.clearDrawnCard()
	g.advance()
	return true
}

// ApplyAction is the general entry point. For Play it revalidates the card
// against the current legal actions, so a stale snapshot cannot slip an
// illegal card through. For Draw it wraps DrawWithOption and, when the
// drawn card turns out playable, ends the turn automatically: callers of
// this one-shot path forfeit the play-after-draw opportunity.
func (g *Game) ApplyAction(player int, kind ActionKind, c *card.Card, chosen color.Color) bool {
	if g.gameOver || player != g.turns.Current() {
		return false
	}

	switch kind {
	case Draw:
		_, playable := g.DrawWithOption(player)
		if playable {
			g.EndTurnAfterDraw(player)
		}
		return true

	case Play:
		if c == nil {
			return false
		}
		if !g.isLegalPlay(player, *c) {
			return false
		}
		if c.IsWild() {
			if !chosen.Real() {
				return false
			}
			g.pendingColor = chosen
		}

		g.hands[player].Remove(*c)
		g.pile.Add(*c)
		g.applyEffect(*c)

		if g.checkWin(player) {
			return true
		}
		g.advanceWithSkip()
		return true
	}
	return false
}

func (g *Game) isLegalPlay(player int, c card.Card) bool {
	for _, a := range g.LegalActions(player) {
		if a.Kind == Play && a.Card == c {
			return true
		}
	}
	return false
}

// applyEffect resolves a just-played card before the turn advances.
// Reverse in a two-player game behaves as a skip: flipping direction
// between two players has no distinct effect of its own.
func (g *Game) applyEffect(c card.Card) {
	switch c.Type {
	case card.Skip:
		g.skipNext = true
	case card.Reverse:
		g.turns.Reverse()
		if g.numPlayers == 2 {
			g.skipNext = true
		}
	case card.DrawTwo:
		g.drawPileCount += 2
	case card.WildDrawFour:
		g.drawPileCount += 4
	}
}

// checkWin updates the UNO flag and terminal state after a card left the
// player's hand. Once won, the game accepts no further mutation.
func (g *Game) checkWin(player int) bool {
	if g.hands[player].Size() == 1 {
		g.playersUno[player] = true
	}
	if g.hands[player].Empty() {
		g.gameOver = true
		g.winner = player
		return true
	}
	return false
}

// advanceWithSkip moves the turn after a play, consuming a pending skip by
// stepping twice. The pending color is cleared once a non-wild card sits
// on top of the pile; a wild's chosen color stays until overwritten.
func (g *Game) advanceWithSkip() {
	if g.skipNext {
		g.turns.Next()
		g.skipNext = false
	}
	g.turns.Next()
	g.turnCount++

	if g.pendingColor.Real() {
		if top, ok := g.pile.Top(); ok && !top.IsWild() {
			g.pendingColor = color.None
		}
	}
}

// advance is the plain advancement used when no card was played.
func (g *Game) advance() {
	g.turnCount++
	g.turns.Next()
}

func (g *Game) clearDrawnCard() {
	g.lastDrawnCard = nil
	g.canPlayDrawnCard = false
}

// drawCard moves one card from the deck into a hand, reshuffling the
// discard pile (minus its top card) into an exhausted deck first. It
// returns nil when there is genuinely nothing left to draw.
func (g *Game) drawCard(player int) *card.Card {
	if g.deck.Empty() {
		if reclaimed := g.pile.TakeAllButTop(); len(reclaimed) > 0 {
			g.deck.Refill(reclaimed)
		}
	}
	c, ok := g.deck.DrawOne()
	if !ok {
		return nil
	}
	g.hands[player].Add(c)
	return &c
}
