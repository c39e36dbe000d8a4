package systems

import (
	"fmt"
	"log"

	"github.com/automoto/dungeon-crawler/components"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/automoto/dungeon-crawler/shared/leveldata"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RoomLoader returns the room with the given name.
type RoomLoader func(name string) (*leveldata.RoomData, error)

// Travel tracks the loaded room and the room a portal asked for. Portals
// only record the request; Apply performs the switch between frames so no
// entity is removed while a system is iterating.
type Travel struct {
	Hub     string
	Dungeon string
	Load    RoomLoader

	current string
	pending string
}

// Current returns the name of the loaded room.
func (t *Travel) Current() string {
	return t.current
}

// PortalAction is the action every portal runs: go to the other room.
func (t *Travel) PortalAction() components.InteractAction {
	return func(donburi.World, *donburi.Entry) {
		if t.current == t.Hub {
			t.pending = t.Dungeon
		} else {
			t.pending = t.Hub
		}
	}
}

// Enter replaces the current room with the named one.
func (t *Travel) Enter(ecs *ecs.ECS, name string) error {
	room, err := t.Load(name)
	if err != nil {
		return fmt.Errorf("enter room: %w", err)
	}
	SwitchRoom(ecs, room, name == t.Hub, t.PortalAction())
	t.current = name
	t.pending = ""
	return nil
}

// Apply performs a pending portal request, if any.
func (t *Travel) Apply(ecs *ecs.ECS) error {
	if t.pending == "" {
		return nil
	}
	return t.Enter(ecs, t.pending)
}

// SwitchRoom clears every room entity, keeping the player, and spawns
// room in its place. The player is moved to the room's first spawn.
func SwitchRoom(ecs *ecs.ECS, room *leveldata.RoomData, hub bool, onPortal components.InteractAction) {
	var stale []donburi.Entity
	collidables.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(tags.Player) {
			stale = append(stale, e.Entity())
		}
	})
	components.Level.Each(ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e.Entity())
	})
	for _, e := range stale {
		ecs.World.Remove(e)
	}

	factory.CreateLevel(ecs, room, hub, onPortal)

	player, ok := tags.Player.First(ecs.World)
	if !ok || len(room.PlayerSpawns) == 0 {
		return
	}
	spawn := room.PlayerSpawns[0]
	TeleportCharacter(player, gamemath.Vec(spawn.X, spawn.Y))
	components.Collision.Get(player).Collided = false
	log.Printf("Player entered %s at (%v, %v)", room.Name, spawn.X, spawn.Y)
}
