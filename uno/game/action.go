package game

import (
	"github.com/Hewlli/UNO-strategic-game/uno/card"
)

// ActionKind is what a player may do on their turn.
type ActionKind string

const (
	Play ActionKind = "play"
	Draw ActionKind = "draw"
)

// Action is one entry of a legal-action enumeration. Card is meaningful
// only for Play actions; a Draw action's Card is the zero value.
type Action struct {
	Kind ActionKind
	Card card.Card
}

func (a Action) String() string {
	if a.Kind == Draw {
		return "DRAW"
	}
	return "PLAY-" + a.Card.String()
}
