package headless

import (
	"testing"
	"time"

	"github.com/automoto/dungeon-crawler/assets"
	"github.com/automoto/dungeon-crawler/components"
	"github.com/automoto/dungeon-crawler/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTravel() *systems.Travel {
	return &systems.Travel{Hub: "hub", Dungeon: "dungeon", Load: assets.LoadRoom}
}

func TestSimulationStep(t *testing.T) {
	sim, err := NewSimulation(newTravel(), "dungeon")
	require.NoError(t, err)

	stats := sim.Step()

	assert.Equal(t, 1, sim.Frames())
	// 7 walls, 3 enemies and the player.
	assert.Equal(t, 11, stats.Collision.Collidables)
	assert.Zero(t, stats.Collision.Dropped)
	assert.Equal(t, stats, sim.Stats())
}

func TestSimulationUnknownRoom(t *testing.T) {
	_, err := NewSimulation(newTravel(), "attic")
	assert.Error(t, err)
}

func TestGameLoopStopsAfterMaxTicks(t *testing.T) {
	sim, err := NewSimulation(newTravel(), "hub")
	require.NoError(t, err)

	var seen []int
	loop := NewGameLoop(sim, 1000, 5, func(frame int, _ components.StatsData) {
		seen = append(seen, frame)
	})

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		loop.Stop()
		t.Fatal("loop did not finish")
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seen)
}

func TestGameLoopStop(t *testing.T) {
	sim, err := NewSimulation(newTravel(), "hub")
	require.NoError(t, err)

	loop := NewGameLoop(sim, 1000, 0, nil)
	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()

	loop.Stop()
	loop.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
}
