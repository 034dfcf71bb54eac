package sim

import (
	"fmt"

	"github.com/Hewlli/UNO-strategic-game/uno/bot"
	"github.com/Hewlli/UNO-strategic-game/uno/card"
	"github.com/Hewlli/UNO-strategic-game/uno/card/color"
	"github.com/Hewlli/UNO-strategic-game/uno/event"
	"github.com/Hewlli/UNO-strategic-game/uno/game"
	"github.com/Hewlli/UNO-strategic-game/uno/ui"
)

// humanAgent drives an interactive seat through console prompts. It
// implements the two-phase draw so a person gets the play-after-draw
// choice the one-shot path would forfeit.
type humanAgent struct {
	name     string
	playerID int
}

func NewHumanAgent(playerID int) bot.Bot {
	return &humanAgent{
		name:     fmt.Sprintf("You(P%d)", playerID),
		playerID: playerID,
	}
}

func (h *humanAgent) Name() string {
	return h.name
}

func (h *humanAgent) ChooseAction(info game.PublicInfo) bot.Decision {
	ui.Printfln("\nIt's your turn, %s!", h.name)
	if info.TopCard != nil {
		ui.Printfln("Top card: %s", ui.Render(*info.TopCard))
	}
	if info.PendingColor.Real() {
		ui.Printfln("Current color: %s", info.PendingColor)
	}
	if info.DrawPileCount > 0 {
		ui.Printfln("Draw pile: %d cards pending!", info.DrawPileCount)
	}
	ui.Printfln("Your hand: %s", ui.RenderCards(info.MyHand))

	playable := make([]card.Card, 0, len(info.LegalActions))
	for _, action := range info.LegalActions {
		if action.Kind == game.Play {
			playable = append(playable, action.Card)
		}
	}
	if len(playable) == 0 {
		ui.Println("None of your cards match; drawing.")
		return bot.Decision{Kind: game.Draw}
	}

	chosen, play := ui.PromptCardSelection(playable, true)
	if !play {
		return bot.Decision{Kind: game.Draw}
	}
	decision := bot.Decision{Kind: game.Play, Card: chosen, Color: color.None}
	if chosen.IsWild() {
		decision.Color = ui.PromptColor()
	}
	return decision
}

// PlayDrawn asks whether to play a just-drawn playable card.
func (h *humanAgent) PlayDrawn(drawn card.Card, info game.PublicInfo) (bool, color.Color) {
	ui.Printfln("You drew %s and it is playable!", ui.Render(drawn))
	if !ui.PromptYesNo("Play the drawn card?") {
		return false, color.None
	}
	if drawn.IsWild() {
		return true, ui.PromptColor()
	}
	return true, color.None
}

// Observe narrates the other seats' moves.
func (h *humanAgent) Observe(ev event.TurnPlayedPayload) {
	if ev.Player == h.playerID {
		return
	}
	switch {
	case ev.Kind == "play" && ev.Card != nil:
		line := fmt.Sprintf("P%d played %s", ev.Player, ui.Render(*ev.Card))
		if ev.ChosenColor.Real() {
			line += fmt.Sprintf(" and picked %s", ev.ChosenColor)
		}
		ui.Println(line)
	default:
		ui.Printfln("P%d drew", ev.Player)
	}
}
