package systems

import (
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/automoto/dungeon-crawler/spatial"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// VisibleEntities returns the collidables whose hit boxes overlap view.
// It builds its own tree with the render capacity and changes nothing.
// bounds is the room rectangle used as the tree root.
func VisibleEntities(w donburi.World, bounds, view gamemath.Rect) []donburi.Entity {
	tree := spatial.NewWithMaxDepth(bounds, cfg.Render.Capacity, cfg.World.MaxDepth)
	collidables.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.HitBox) || !e.HasComponent(components.Position) {
			return
		}
		tree.Insert(itemOf(e))
	})
	return tree.Query(view.Polygon(), false, donburi.Null, nil)
}

// CameraView returns the world rectangle seen by a camera centred on
// center for a screen of the given size, grown by the render margin.
func CameraView(center dmath.Vec2, width, height int) gamemath.Rect {
	m := cfg.Render.Margin
	w, h := float64(width), float64(height)
	return gamemath.Rect{
		X: center.X - w/2 - m,
		Y: center.Y - h/2 - m,
		W: w + 2*m,
		H: h + 2*m,
	}
}
