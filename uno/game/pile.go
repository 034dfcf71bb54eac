package game

import (
	"github.com/Hewlli/UNO-strategic-game/uno/card"
)

// Pile is the discard pile; the most recently added card sets the legality
// context for the next play.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(c card.Card) {
	p.cards = append(p.cards, c)
}

func (p *Pile) Top() (card.Card, bool) {
	if len(p.cards) == 0 {
		return card.Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// TakeAllButTop removes and returns every card except the top one, for
// reshuffling into an exhausted deck. With one card or fewer there is
// nothing to reclaim and it returns nil.
func (p *Pile) TakeAllButTop() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	taken := make([]card.Card, len(p.cards)-1)
	copy(taken, p.cards[:len(p.cards)-1])
	p.cards[0] = p.cards[len(p.cards)-1]
	p.cards = p.cards[:1]
	return taken
}

func (p *Pile) Size() int {
	return len(p.cards)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}
