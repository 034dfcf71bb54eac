package card

import (
	"strconv"

	"github.com/Hewlli/UNO-strategic-game/uno/card/color"
)

// Type classifies a card's effect.
type Type uint8

const (
	Number Type = iota
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

// Card is an immutable card value. Two cards are the same card exactly when
// all three fields are equal, so cards compare with == and can be re-added
// to collections freely.
//
// A card has color.Wild if and only if its type is Wild or WildDrawFour.
// The constructors below maintain that; building an inconsistent Card by
// hand is a caller bug.
type Card struct {
	Color color.Color
	Value string
	Type  Type
}

func NewNumber(c color.Color, number int) Card {
	return Card{Color: c, Value: strconv.Itoa(number), Type: Number}
}

func NewSkip(c color.Color) Card {
	return Card{Color: c, Value: "SK", Type: Skip}
}

func NewReverse(c color.Color) Card {
	return Card{Color: c, Value: "RV", Type: Reverse}
}

func NewDrawTwo(c color.Color) Card {
	return Card{Color: c, Value: "+2", Type: DrawTwo}
}

func NewWild() Card {
	return Card{Color: color.Wild, Value: "W", Type: Wild}
}

func NewWildDrawFour() Card {
	return Card{Color: color.Wild, Value: "+4", Type: WildDrawFour}
}

// Matches reports whether c may be played on top of other under the basic
// matching rule: a wild on either side matches anything, otherwise colors
// or values must agree. Chain and pending-color restrictions live in the
// game package on top of this relation.
func (c Card) Matches(other Card) bool {
	if c.Color == color.Wild || other.Color == color.Wild {
		return true
	}
	return c.Color == other.Color || c.Value == other.Value
}

// IsWild reports whether the card needs a color choice when played.
func (c Card) IsWild() bool {
	return c.Type == Wild || c.Type == WildDrawFour
}

func (c Card) String() string {
	switch c.Type {
	case Wild:
		return "WILD"
	case WildDrawFour:
		return "WILD+4"
	default:
		return c.Color.Code() + c.Value
	}
}
