package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Position is the entity's anchor point. For characters, walls and
// interactives it is the hit-box centre; for bullets it is the rotation
// pivot half a length behind the muzzle.
var Position = donburi.NewComponentType[math.Vec2]()
