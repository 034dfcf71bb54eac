package bot

import (
	"fmt"
)

var botNames = []string{
	"Ada", "Bastion", "Cleo", "Dorian",
	"Elowen", "Farrow", "Greta", "Halcyon",
	"Imara", "Jasper", "Kestrel", "Lyra",
	"Milo", "Nadia", "Orrin", "Petra",
}

// Strategy names accepted by New.
const (
	StrategyRandom     = "random"
	StrategyRule       = "rule"
	StrategyPredictive = "predictive"
)

// New builds a bot for a seat. The name is picked from a fixed pool so
// transcripts of multi-bot games stay readable.
func New(strategy string, playerID int, seed int64) (Bot, error) {
	name := fmt.Sprintf("%s(P%d)", botNames[playerID%len(botNames)], playerID)
	switch strategy {
	case StrategyRandom:
		return NewRandomBot(name, playerID, seed), nil
	case StrategyRule:
		return NewRuleBot(name, playerID, seed), nil
	case StrategyPredictive:
		return NewPredictiveBot(name, playerID, seed), nil
	}
	return nil, fmt.Errorf("unknown bot strategy '%s'", strategy)
}
