package ui

import (
	"fmt"
	"io"
	"strings"

	fatih "github.com/fatih/color"

	"github.com/Hewlli/UNO-strategic-game/uno/card"
	"github.com/Hewlli/UNO-strategic-game/uno/card/color"
	"github.com/Hewlli/UNO-strategic-game/uno/game"
)

// Stdout is the colored console writer; tests may swap it out.
var Stdout io.Writer = fatih.Output

var paints = map[color.Color]func(format string, a ...interface{}) string{
	color.Red:    fatih.New(fatih.FgHiRed).SprintfFunc(),
	color.Blue:   fatih.New(fatih.FgHiCyan).SprintfFunc(),
	color.Green:  fatih.New(fatih.FgHiGreen).SprintfFunc(),
	color.Yellow: fatih.New(fatih.FgHiYellow).SprintfFunc(),
	color.Wild:   fatih.New(fatih.FgHiMagenta).SprintfFunc(),
}

func Println(args ...interface{}) {
	fmt.Fprintln(Stdout, args...)
}

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

// Render paints a card's short form in its color.
func Render(c card.Card) string {
	if paint, ok := paints[c.Color]; ok {
		return paint("%s", c.String())
	}
	return c.String()
}

func RenderCards(cards []card.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = Render(c)
	}
	return strings.Join(parts, " ")
}

// RenderSummary lays out the table state ahead of an interactive turn.
func RenderSummary(s game.Summary) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Top card: %s", s.TopCard))
	if s.PendingColor != "" {
		lines = append(lines, fmt.Sprintf("Current color: %s", s.PendingColor))
	}
	if s.DrawPileCount > 0 {
		lines = append(lines, fmt.Sprintf("Draw pile: %d cards pending!", s.DrawPileCount))
	}
	if s.SkipNext {
		lines = append(lines, "Next player will be skipped!")
	}
	lines = append(lines, fmt.Sprintf("Direction: %s", s.Direction))

	var seats []string
	for seat, size := range s.HandSizes {
		seats = append(seats, fmt.Sprintf("P%d (%d card(s))", seat, size))
	}
	lines = append(lines, fmt.Sprintf("Hands: %s", strings.Join(seats, ", ")))
	return strings.Join(lines, "\n")
}
