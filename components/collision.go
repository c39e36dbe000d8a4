package components

import "github.com/yohamta/donburi"

// CollisionData is the per-frame hand-off between the collision pass and
// the lifecycle pass. The collision pass flips it once per matched pair;
// the lifecycle pass reacts and flips it back.
type CollisionData struct {
	Collided bool
}

// Toggle flips the flag.
func (c *CollisionData) Toggle() {
	c.Collided = !c.Collided
}

var Collision = donburi.NewComponentType[CollisionData]()
