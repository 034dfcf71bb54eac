package sim

import (
	"fmt"
	"time"

	"github.com/ratel-online/core/log"

	"github.com/Hewlli/UNO-strategic-game/config"
	"github.com/Hewlli/UNO-strategic-game/gamelog"
	"github.com/Hewlli/UNO-strategic-game/store"
	"github.com/Hewlli/UNO-strategic-game/uno/bot"
	"github.com/Hewlli/UNO-strategic-game/uno/card/color"
	"github.com/Hewlli/UNO-strategic-game/uno/event"
	"github.com/Hewlli/UNO-strategic-game/uno/game"
)

// maxTurns caps a single game so a degenerate strategy cannot loop the
// simulation forever.
const maxTurns = 5000

// Runner plays games between the configured agents, feeding the CSV
// logger, the results store and the event bus. It touches the engine only
// through its public query and mutation surface.
type Runner struct {
	cfg    config.Config
	logger *gamelog.Logger
	agents []bot.Bot
}

func NewRunner(cfg config.Config) (*Runner, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger, err := gamelog.New(cfg.LogDir)
	if err != nil {
		return nil, err
	}
	agents := make([]bot.Bot, cfg.Players)
	for seat, strategy := range cfg.Strategies {
		if strategy == "human" {
			agents[seat] = NewHumanAgent(seat)
			continue
		}
		agents[seat], err = bot.New(strategy, seat, cfg.Seed+int64(seat))
		if err != nil {
			logger.Close()
			return nil, err
		}
	}
	return &Runner{cfg: cfg, logger: logger, agents: agents}, nil
}

// Run plays the configured number of games and returns the saved results.
func (r *Runner) Run() ([]store.Result, error) {
	defer r.logger.Close()

	results := make([]store.Result, 0, r.cfg.Games)
	for i := 0; i < r.cfg.Games; i++ {
		result, err := r.RunGame(r.cfg.Seed + int64(i))
		if err != nil {
			return results, err
		}
		results = append(results, result)
		log.Infof("game %d finished: winner=%d turns=%d\n", i+1, result.Winner, result.TotalTurns)
	}
	return results, nil
}

// RunGame plays one game to completion (or the turn cap) and records it.
func (r *Runner) RunGame(seed int64) (store.Result, error) {
	g, err := game.NewSeededGame(r.cfg.Players, seed)
	if err != nil {
		return store.Result{}, err
	}
	g.Initialize()

	event.TurnPlayed.Reset()
	for _, agent := range r.agents {
		event.TurnPlayed.AddListener(observerFunc(agent.Observe))
	}

	for !g.GameOver() && g.TurnCount() < maxTurns {
		if err := r.playTurn(g); err != nil {
			return store.Result{}, err
		}
	}

	summary := g.Summary()
	result := store.Result{
		GameID:     r.logger.GameID,
		Winner:     summary.Winner,
		TotalTurns: summary.TurnCount,
		HandSizes:  summary.HandSizes,
	}
	result.ID = store.Save(result)

	if err := r.logger.LogGame(result.Winner, result.TotalTurns); err != nil {
		return result, err
	}
	event.GameFinished.Emit(event.GameFinishedPayload{
		GameID:     result.GameID,
		Winner:     result.Winner,
		TotalTurns: result.TotalTurns,
	})
	return result, nil
}

func (r *Runner) playTurn(g *game.Game) error {
	seat := g.CurrentPlayer()
	agent := r.agents[seat]
	info := g.PublicInfo(seat)
	decision := agent.ChooseAction(info)

	payload := event.TurnPlayedPayload{
		Kind:   string(decision.Kind),
		Player: seat,
	}
	actionLabel := "DRAW"
	cardLabel := "DRAW"

	switch decision.Kind {
	case game.Play:
		played := decision.Card
		if !g.ApplyAction(seat, game.Play, &played, decision.Color) {
			// A misbehaving agent returned an illegal play; fall
			// back to drawing so the game keeps moving.
			log.Errorf("agent %s returned illegal play %s, drawing instead\n", agent.Name(), played)
			g.ApplyAction(seat, game.Draw, nil, color.None)
			payload.Kind = string(game.Draw)
			break
		}
		payload.Card = &played
		payload.ChosenColor = decision.Color
		actionLabel = "PLAY"
		cardLabel = played.String()

	case game.Draw:
		if decider, ok := agent.(bot.DrawDecider); ok {
			drawn, playable := g.DrawWithOption(seat)
			if playable {
				if play, chosen := decider.PlayDrawn(*drawn, g.PublicInfo(seat)); play {
					if g.PlayDrawnCard(seat, chosen) {
						payload.Kind = string(game.Play)
						payload.Card = drawn
						payload.ChosenColor = chosen
						actionLabel = "PLAY"
						cardLabel = drawn.String()
						break
					}
				}
				g.EndTurnAfterDraw(seat)
			}
			break
		}
		// One-shot path: a playable drawn card is auto-declined.
		g.ApplyAction(seat, game.Draw, nil, color.None)

	default:
		return fmt.Errorf("agent %s returned unknown action kind '%s'", agent.Name(), decision.Kind)
	}

	if top, ok := g.TopCard(); ok {
		topCopy := top
		payload.TopCardAfter = &topCopy
	}
	payload.Turn = g.TurnCount()
	event.TurnPlayed.Emit(payload)

	summary := g.Summary()
	return r.logger.LogTurn(seat, actionLabel, cardLabel, len(g.PlayerHand(seat)), summary.DeckRemaining)
}

// observerFunc adapts a bot's Observe method to the listener interface.
type observerFunc func(event.TurnPlayedPayload)

func (f observerFunc) OnTurnPlayed(payload event.TurnPlayedPayload) {
	f(payload)
}
