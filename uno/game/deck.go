package game

import (
	"math/rand"

	"github.com/Hewlli/UNO-strategic-game/uno/card"
	"github.com/Hewlli/UNO-strategic-game/uno/card/color"
)

// Deck is the draw pile. It is owned by a single Game and is not safe for
// concurrent use; the engine is strictly single-threaded.
type Deck struct {
	rng   *rand.Rand
	cards []card.Card
}

// NewDeck builds and shuffles the standard 108-card deck.
func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{rng: rng, cards: standardCards()}
	deck.shuffle()
	return deck
}

// DrawOne pops the top card off the deck. It reports false when the deck
// is empty; refilling from the discard pile is the Game's job.
func (d *Deck) DrawOne() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

// PushFront slides a card under the deck, used when cycling an unsuitable
// starting card back in.
func (d *Deck) PushFront(c card.Card) {
	d.cards = append([]card.Card{c}, d.cards...)
}

// Refill shuffles the given cards into the deck.
func (d *Deck) Refill(cards []card.Card) {
	d.cards = append(d.cards, cards...)
	d.shuffle()
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func standardCards() []card.Card {
	cards := make([]card.Card, 0, 108)
	cards = append(cards, wildCards()...)
	for _, c := range color.Reals {
		cards = append(cards, colorCards(c)...)
	}
	return cards
}

// colorCards builds the 25 cards of one color: a single zero, two each of
// 1..9 and two of each action card.
func colorCards(c color.Color) []card.Card {
	skip := card.NewSkip(c)
	reverse := card.NewReverse(c)
	drawTwo := card.NewDrawTwo(c)

	cards := []card.Card{
		card.NewNumber(c, 0),
		skip, skip,
		reverse, reverse,
		drawTwo, drawTwo,
	}
	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumber(c, number)
		cards = append(cards, numberCard, numberCard)
	}
	return cards
}

func wildCards() []card.Card {
	wild := card.NewWild()
	wildDrawFour := card.NewWildDrawFour()
	return []card.Card{
		wild, wild, wild, wild,
		wildDrawFour, wildDrawFour, wildDrawFour, wildDrawFour,
	}
}
