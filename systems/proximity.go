package systems

import (
	"github.com/automoto/dungeon-crawler/components"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/yohamta/donburi"
)

// CheckNearby reports whether any of others, other than entity itself,
// has its position within radius of entity's position. The distance is
// Euclidean between anchors; hit boxes are ignored.
func CheckNearby(entity *donburi.Entry, others []*donburi.Entry, radius float64) bool {
	at := *components.Position.Get(entity)
	for _, o := range others {
		if o.Entity() == entity.Entity() {
			continue
		}
		if gamemath.Distance(at, *components.Position.Get(o)) <= radius {
			return true
		}
	}
	return false
}

// ActivateNearby is the interact key. Every interactive within radius of
// the player is marked ready, and both collision flags of each such pair
// are toggled so the lifecycle pass picks the object up. It returns the
// number of objects activated.
func ActivateNearby(w donburi.World, radius float64) int {
	player, ok := tags.Player.First(w)
	if !ok {
		return 0
	}

	var candidates []*donburi.Entry
	tags.Interactive.Each(w, func(e *donburi.Entry) {
		candidates = append(candidates, e)
	})

	activated := 0
	for _, obj := range candidates {
		if !CheckNearby(player, []*donburi.Entry{obj}, radius) {
			continue
		}
		components.Collision.Get(player).Toggle()
		components.Collision.Get(obj).Toggle()
		components.Interactive.Get(obj).Ready = true
		activated++
	}
	return activated
}
