package systems

import (
	"github.com/automoto/dungeon-crawler/components"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// MoveCharacter shifts everything attached to e's body by delta: position,
// hit box and, when present, weapon muzzle and hands.
func MoveCharacter(e *donburi.Entry, delta dmath.Vec2) {
	pos := components.Position.Get(e)
	pos.X += delta.X
	pos.Y += delta.Y

	components.HitBox.Get(e).Translate(delta)

	if e.HasComponent(components.Weapon) {
		w := components.Weapon.Get(e)
		w.Muzzle.X += delta.X
		w.Muzzle.Y += delta.Y
	}
	if e.HasComponent(components.ActiveHand) {
		components.ActiveHand.Get(e).Translate(delta)
	}
}

// TeleportCharacter moves e so that its position lands on to.
func TeleportCharacter(e *donburi.Entry, to dmath.Vec2) {
	pos := components.Position.Get(e)
	MoveCharacter(e, dmath.Vec2{X: to.X - pos.X, Y: to.Y - pos.Y})
}
