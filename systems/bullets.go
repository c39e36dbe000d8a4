package systems

import (
	"github.com/automoto/dungeon-crawler/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets moves every bullet along its direction by one frame of
// travel.
func UpdateBullets(ecs *ecs.ECS) {
	AdvanceBullets(ecs.World, float64(frameSeconds()))
}

// AdvanceBullets moves every bullet by speed * dt along its direction.
func AdvanceBullets(w donburi.World, dt float64) {
	components.Bullet.Each(w, func(e *donburi.Entry) {
		b := components.Bullet.Get(e)
		step := b.Speed * dt
		delta := b.Direction
		delta.X *= step
		delta.Y *= step

		pos := components.Position.Get(e)
		pos.X += delta.X
		pos.Y += delta.Y
		components.HitBox.Get(e).Translate(delta)
	})
}
