package event

import (
	"github.com/Hewlli/UNO-strategic-game/uno/card"
	"github.com/Hewlli/UNO-strategic-game/uno/card/color"
)

var TurnPlayed = &turnPlayedEmitter{}

// TurnPlayedPayload is the post-turn record handed to observers once per
// resolved turn. Card is nil for draws; ChosenColor is color.None unless a
// wild was played.
type TurnPlayedPayload struct {
	Kind         string // "play" or "draw"
	Player       int
	Card         *card.Card
	ChosenColor  color.Color
	TopCardAfter *card.Card
	Turn         int
}

type TurnPlayedListener interface {
	OnTurnPlayed(TurnPlayedPayload)
}

type turnPlayedEmitter struct {
	listeners []TurnPlayedListener
}

func (e *turnPlayedEmitter) AddListener(listener TurnPlayedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *turnPlayedEmitter) Emit(payload TurnPlayedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnPlayed(payload)
	}
}

// Reset drops all listeners, used between simulated games.
func (e *turnPlayedEmitter) Reset() {
	e.listeners = nil
}
