package game

import (
	"github.com/Hewlli/UNO-strategic-game/uno/card"
)

// Hand is one player's ordered cards. Draws append, plays remove by value.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) Add(cards ...card.Card) {
	h.cards = append(h.cards, cards...)
}

// Cards returns a defensive copy.
func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Remove deletes the first card equal to c, preserving the order of the
// rest. It reports whether a card was removed.
func (h *Hand) Remove(c card.Card) bool {
	for i, inHand := range h.cards {
		if inHand == c {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}
