// Package headless runs the simulation without a window, for tuning the
// collision index against real rooms.
package headless

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/dungeon-crawler/components"
	"github.com/automoto/dungeon-crawler/systems"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Simulation is one world stepped by hand or by a GameLoop.
type Simulation struct {
	ECS    *ecs.ECS
	Travel *systems.Travel
	frames int
}

// NewSimulation builds a world with the gameplay systems and enters start.
func NewSimulation(travel *systems.Travel, start string) (*Simulation, error) {
	e := ecs.NewECS(donburi.NewWorld())
	systems.AddGameplaySystems(e)

	factory.CreateCamera(e)
	factory.CreateInput(e)
	factory.CreateStats(e)

	if err := travel.Enter(e, start); err != nil {
		return nil, err
	}
	return &Simulation{ECS: e, Travel: travel}, nil
}

// Step advances one frame and returns its statistics.
func (s *Simulation) Step() components.StatsData {
	s.ECS.Update()
	if err := s.Travel.Apply(s.ECS); err != nil {
		log.Printf("Warning: %v", err)
	}
	s.frames++
	return s.Stats()
}

// Frames returns the number of frames stepped.
func (s *Simulation) Frames() int {
	return s.frames
}

// Stats returns the latest frame statistics.
func (s *Simulation) Stats() components.StatsData {
	entry, ok := components.Stats.First(s.ECS.World)
	if !ok {
		return components.StatsData{}
	}
	return *components.Stats.Get(entry)
}

type GameLoop struct {
	sim      *Simulation
	tickRate int
	maxTicks int
	onTick   func(frame int, stats components.StatsData)

	stopOnce sync.Once
	stopChan chan struct{}
}

// NewGameLoop steps sim tickRate times per second. maxTicks <= 0 runs
// until Stop. onTick, when set, sees every frame's statistics.
func NewGameLoop(sim *Simulation, tickRate, maxTicks int, onTick func(int, components.StatsData)) *GameLoop {
	return &GameLoop{
		sim:      sim,
		tickRate: max(tickRate, 1),
		maxTicks: maxTicks,
		onTick:   onTick,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
			if g.maxTicks > 0 && g.sim.Frames() >= g.maxTicks {
				log.Printf("Game loop finished after %d ticks", g.sim.Frames())
				return
			}
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() {
	stats := g.sim.Step()
	if g.onTick != nil {
		g.onTick(g.sim.Frames(), stats)
	}
}
