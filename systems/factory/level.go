package factory

import (
	"log"

	"github.com/automoto/dungeon-crawler/archetypes"
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/automoto/dungeon-crawler/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity for room and everything placed in
// it. The player is created at the first spawn point unless one already
// exists. Portals run onPortal when used.
func CreateLevel(ecs *ecs.ECS, room *leveldata.RoomData, hub bool, onPortal components.InteractAction) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:   room.Name,
		Bounds: gamemath.Rect{W: room.Width, H: room.Height},
		Hub:    hub,
	})

	for _, w := range room.Walls {
		CreateWall(ecs, w.X, w.Y, w.W, w.H)
	}

	for _, s := range room.EnemySpawns {
		CreateEnemy(ecs, s.X, s.Y, s.Type)
	}

	for _, s := range room.Interactives {
		switch s.Kind {
		case "portal":
			CreatePortal(ecs, s.X, s.Y, onPortal)
		case "coin":
			CreateCoin(ecs, s.X, s.Y, cfg.Interaction.CoinMin)
		default:
			log.Printf("Warning: room %s: unknown interactive %q", room.Name, s.Kind)
		}
	}

	if len(room.PlayerSpawns) > 0 {
		if _, ok := components.Wallet.First(ecs.World); !ok {
			spawn := room.PlayerSpawns[0]
			CreatePlayer(ecs, spawn.X, spawn.Y)
		}
	}

	log.Printf("Loaded room %s (%vx%v, %d walls, %d enemies)",
		room.Name, room.Width, room.Height, len(room.Walls), len(room.EnemySpawns))

	return level
}
