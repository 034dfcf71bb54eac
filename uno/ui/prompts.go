package ui

import (
	"fmt"
	"strings"

	"github.com/Hewlli/UNO-strategic-game/uno/card"
	"github.com/Hewlli/UNO-strategic-game/uno/card/color"
)

const initialRune = 'A'

// runeSequence hands out A, B, C... labels for card selection menus,
// skipping D to keep it free for the draw command.
type runeSequence struct {
	currentRune rune
}

func (s *runeSequence) next() rune {
	if s.currentRune == 0 {
		s.currentRune = initialRune
	}
	if s.currentRune == 'D' {
		s.currentRune++
	}
	currentRune := s.currentRune
	s.currentRune++
	return currentRune
}

func PromptString(message string) string {
	for {
		Println(message)
		var input string
		if _, err := fmt.Scanln(&input); err != nil {
			Println("Invalid text input")
			continue
		}
		return input
	}
}

// PromptCardSelection labels each card with a rune and reads one back.
// An empty selection (entering the draw label) is signalled by false.
func PromptCardSelection(cards []card.Card, allowDraw bool) (card.Card, bool) {
	sequence := runeSequence{}
	options := make(map[string]card.Card)
	lines := []string{"Select a card to play:"}
	for _, c := range cards {
		label := string(sequence.next())
		options[label] = c
		lines = append(lines, fmt.Sprintf("  %s (enter %s)", Render(c), label))
	}
	if allowDraw {
		lines = append(lines, "  draw a card (enter D)")
	}
	message := strings.Join(lines, "\n")

	for {
		selected := strings.ToUpper(PromptString(message))
		if allowDraw && selected == "D" {
			return card.Card{}, false
		}
		c, found := options[selected]
		if !found {
			Printfln("No card assigned to '%s'", selected)
			continue
		}
		return c, true
	}
}

func PromptColor() color.Color {
	message := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red, color.Yellow, color.Green, color.Blue,
	)
	for {
		name := PromptString(message)
		chosen, err := color.ByName(name)
		if err != nil || !chosen.Real() {
			Printfln("Unknown color '%s'", name)
			continue
		}
		return chosen
	}
}

func PromptYesNo(message string) bool {
	for {
		input := strings.ToUpper(PromptString(message + " (Y/N)"))
		switch input {
		case "Y":
			return true
		case "N":
			return false
		}
		Println("Please enter Y or N")
	}
}
