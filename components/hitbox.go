package components

import (
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type HitBoxData struct {
	Polygon gamemath.Polygon
	Rotated bool // Tested with the separating axis test instead of AABB
}

// Translate moves all four vertices by delta.
func (h *HitBoxData) Translate(delta math.Vec2) {
	h.Polygon = h.Polygon.Translate(delta)
}

var HitBox = donburi.NewComponentType[HitBoxData]()
