package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type BulletData struct {
	Damage    int
	Speed     float64   // Pixels per second
	Direction math.Vec2 // Unit vector
	Angle     float64   // Radians, for drawing

	// Exists is cleared once the bullet hits something; the lifecycle pass
	// removes spent bullets.
	Exists bool
}

var Bullet = donburi.NewComponentType[BulletData]()
