package color

import (
	"fmt"
	"strings"
)

// Color is a card color. None is the zero value and means "no color chosen";
// it is never a card's own color. Wild marks colorless cards before a color
// has been picked for them.
type Color uint8

const (
	None Color = iota
	Red
	Blue
	Green
	Yellow
	Wild
)

var names = map[Color]string{
	Red:    "RED",
	Blue:   "BLUE",
	Green:  "GREEN",
	Yellow: "YELLOW",
	Wild:   "WILD",
}

var codes = map[Color]string{
	Red:    "R",
	Blue:   "B",
	Green:  "G",
	Yellow: "Y",
	Wild:   "W",
}

// Reals are the four colors a wild card may be resolved to.
var Reals = []Color{Red, Blue, Green, Yellow}

func (c Color) String() string {
	return names[c]
}

// Code is the single-letter form used in card display strings.
func (c Color) Code() string {
	return codes[c]
}

// Real reports whether c is one of the four playable colors.
func (c Color) Real() bool {
	return c >= Red && c <= Yellow
}

func ByName(name string) (Color, error) {
	for c, n := range names {
		if strings.ToUpper(name) == n {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
