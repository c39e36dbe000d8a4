package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/dungeon-crawler/assets"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/systems"
	"github.com/automoto/dungeon-crawler/systems/client"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Room names shipped in assets.
const (
	HubRoom     = "hub"
	DungeonRoom = "dungeon"
)

// DungeonScene runs the game starting in the hub. Portals move the player
// between the hub and the dungeon.
type DungeonScene struct {
	ecs    *ecs.ECS
	travel *systems.Travel
	start  string
	once   sync.Once
	over   bool
}

// NewDungeonScene creates a scene that starts in the named room.
func NewDungeonScene(start string) *DungeonScene {
	return &DungeonScene{start: start}
}

func (ds *DungeonScene) Update() {
	ds.once.Do(ds.configure)
	if ds.over {
		return
	}
	ds.ecs.Update()

	if err := ds.travel.Apply(ds.ecs); err != nil {
		log.Printf("Warning: %v", err)
	}

	if _, ok := tags.Player.First(ds.ecs.World); !ok {
		log.Println("Player died")
		ds.over = true
	}
}

func (ds *DungeonScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DungeonScene) configure() {
	ds.ecs = ecs.NewECS(donburi.NewWorld())

	ds.ecs.AddSystem(client.UpdateInput)
	systems.AddGameplaySystems(ds.ecs)

	ds.ecs.AddRenderer(cfg.Default, client.DrawLevel)
	ds.ecs.AddRenderer(cfg.Default, client.DrawEntities)
	ds.ecs.AddRenderer(cfg.Default, client.DrawHealthBars)
	ds.ecs.AddRenderer(cfg.Default, client.DrawHUD)
	ds.ecs.AddRenderer(cfg.Default, client.DrawDebug)

	factory.CreateCamera(ds.ecs)
	factory.CreateInput(ds.ecs)
	factory.CreateStats(ds.ecs)

	ds.travel = &systems.Travel{
		Hub:     HubRoom,
		Dungeon: DungeonRoom,
		Load:    assets.LoadRoom,
	}
	if err := ds.travel.Enter(ds.ecs, ds.start); err != nil {
		panic(err)
	}
}
