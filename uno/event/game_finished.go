package event

var GameFinished = &gameFinishedEmitter{}

type GameFinishedPayload struct {
	GameID     int64
	Winner     int
	TotalTurns int
}

type GameFinishedListener interface {
	OnGameFinished(GameFinishedPayload)
}

type gameFinishedEmitter struct {
	listeners []GameFinishedListener
}

func (e *gameFinishedEmitter) AddListener(listener GameFinishedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *gameFinishedEmitter) Emit(payload GameFinishedPayload) {
	for _, listener := range e.listeners {
		listener.OnGameFinished(payload)
	}
}

func (e *gameFinishedEmitter) Reset() {
	e.listeners = nil
}
