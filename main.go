package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"

	"github.com/Hewlli/UNO-strategic-game/config"
	"github.com/Hewlli/UNO-strategic-game/sim"
	"github.com/Hewlli/UNO-strategic-game/store"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	runner, err := sim.NewRunner(cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	results, err := runner.Run()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	wins := store.Standings(cfg.Players)
	log.Infof("played %d game(s)\n", len(results))
	for seat, count := range wins {
		log.Infof("seat %d (%s): %d win(s)\n", seat, cfg.Strategies[seat], count)
	}
}
