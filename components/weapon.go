package components

import (
	"github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type WeaponData struct {
	Config   *config.WeaponConfig
	Muzzle   math.Vec2 // World position bullets leave from
	Cooldown int       // Frames until the next shot
}

// ActiveHandData holds the two hand anchors a weapon is drawn at.
type ActiveHandData struct {
	Left, Right math.Vec2
}

// Translate moves both hands by delta.
func (a *ActiveHandData) Translate(delta math.Vec2) {
	a.Left = gamemath.Add(a.Left, delta)
	a.Right = gamemath.Add(a.Right, delta)
}

var Weapon = donburi.NewComponentType[WeaponData]()
var ActiveHand = donburi.NewComponentType[ActiveHandData]()
