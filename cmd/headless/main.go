package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/dungeon-crawler/assets"
	"github.com/automoto/dungeon-crawler/components"
	"github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/headless"
	"github.com/automoto/dungeon-crawler/systems"
)

func main() {
	room := flag.String("room", "dungeon", "Room to simulate")
	ticks := flag.Int("ticks", 600, "Frames to run (0 = until interrupted)")
	tickRate := flag.Int("tickrate", 60, "Frames per second")
	configPath := flag.String("config", "", "YAML file overriding built-in settings")
	every := flag.Int("every", 60, "Log statistics every N frames")
	flag.Parse()

	if *configPath != "" {
		o, err := config.LoadOverrides(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		o.Apply()
	}

	travel := &systems.Travel{Hub: "hub", Dungeon: "dungeon", Load: assets.LoadRoom}
	sim, err := headless.NewSimulation(travel, *room)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	loop := headless.NewGameLoop(sim, *tickRate, *ticks, func(frame int, s components.StatsData) {
		if *every > 0 && frame%*every == 0 {
			c := s.Collision
			log.Printf("frame %d: %d collidables, %d dropped, %d pairs, depth %d, %d nodes, %d missed",
				frame, c.Collidables, c.Dropped, c.Pairs, c.Depth, c.Nodes, s.Missed)
		}
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	log.Printf("Simulating room %q (tick rate: %d/s, capacity: %d, max depth: %d)",
		*room, *tickRate, config.World.CollisionCapacity, config.World.MaxDepth)
	loop.Run()
}
