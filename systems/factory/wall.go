package factory

import (
	"github.com/automoto/dungeon-crawler/archetypes"
	"github.com/automoto/dungeon-crawler/components"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall spawns a solid block with its top-left corner at (x, y).
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	poly := gamemath.RectPolygon(x, y, w, h)
	components.Position.SetValue(wall, poly.Center())
	components.HitBox.SetValue(wall, components.HitBoxData{Polygon: poly})
	components.Category.SetValue(wall, components.CategoryData{Kind: components.KindWall})

	return wall
}
