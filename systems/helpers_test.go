package systems

import (
	"testing"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func newECS(t *testing.T) *ecs.ECS {
	t.Helper()
	t.Cleanup(cfg.Reset)
	return ecs.NewECS(donburi.NewWorld())
}

func arena() gamemath.Rect {
	return gamemath.Rect{W: 1000, H: 1000}
}

// newLevel adds the level and stats singletons the systems read.
func newLevel(e *ecs.ECS, bounds gamemath.Rect) {
	level := e.World.Entry(e.World.Create(components.Level))
	components.Level.SetValue(level, components.LevelData{Name: "test", Bounds: bounds})
	factory.CreateStats(e)
}

func handgun() *cfg.WeaponConfig {
	w := cfg.Bullet.Weapons["Handgun"]
	return &w
}

func count(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

func collided(e *donburi.Entry) bool {
	return components.Collision.Get(e).Collided
}
