package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-swarm-nonreciprocal/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "JSON or TOML configuration file, defaults apply when empty")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile); err != nil {
			log.Fatal(err)
		}
	}

	ctx := context.Background()
	system, err := actor.NewActorSystem("SwarmViewer",
		actor.WithLogger(golog.New(golog.InfoLevel, os.Stdout)),
	)
	if err != nil {
		log.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer system.Stop(ctx)

	game, err := NewGame(ctx, cfg, system)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Non-reciprocal swarm")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
