package systems

import (
	"log"
	"math"
	"slices"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/automoto/dungeon-crawler/spatial"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MissedPair is an overlapping pair the collision index did not report
// from either side.
type MissedPair struct {
	A, B donburi.Entity
}

// UpdateAudit cross-checks the collision index when config.Debug.Audit is
// on. It must run before UpdateCollisions so both see the same frame.
func UpdateAudit(ecs *ecs.ECS) {
	if !cfg.Debug.Audit {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	missed := AuditBroadPhase(ecs.World, components.Level.Get(levelEntry).Bounds)

	if statsEntry, ok := components.Stats.First(ecs.World); ok {
		components.Stats.Get(statsEntry).Missed = len(missed)
	}
	for _, m := range missed {
		log.Printf("Warning: index missed overlapping pair %v / %v", m.A, m.B)
	}
}

// AuditBroadPhase compares the quadtree against a resolv cell grid over
// bounds. Candidate pairs come from the grid, are confirmed with the
// narrow phase, and must then appear in the quadtree query of at least one
// of the two entities. Wall/wall pairs are skipped since rooms are built
// from touching walls. Flags are ignored and nothing is mutated.
func AuditBroadPhase(w donburi.World, bounds gamemath.Rect) []MissedPair {
	cell := max(int(cfg.World.BlockSize), 1)
	space := resolv.NewSpace(
		int(math.Ceil(bounds.W))+cell,
		int(math.Ceil(bounds.H))+cell,
		cell, cell,
	)

	tree := spatial.NewWithMaxDepth(bounds, cfg.World.CollisionCapacity, cfg.World.MaxDepth)
	objects := map[donburi.Entity]*resolv.Object{}

	collidables.Each(w, func(e *donburi.Entry) {
		mustHave(e, "collidable", collidableComponents...)
		if !tree.Insert(itemOf(e)) {
			return
		}
		box := components.HitBox.Get(e).Polygon.Bounds()
		kind := components.Category.Get(e).Kind
		obj := resolv.NewObject(box.X-bounds.X, box.Y-bounds.Y, box.W, box.H, resolvTags[kind])
		obj.Data = e.Entity()
		space.Add(obj)
		objects[e.Entity()] = obj
	})

	reported := func(from, to donburi.Entity) bool {
		hb := components.HitBox.Get(w.Entry(from))
		for _, found := range tree.Query(hb.Polygon, hb.Rotated, from, nil) {
			if found == to {
				return true
			}
		}
		return false
	}

	seen := map[MissedPair]bool{}
	var missed []MissedPair
	for _, e := range sortedEntities(objects) {
		check := objects[e].Check(0, 0)
		if check == nil {
			continue
		}
		bothWalls := objects[e].HasTags(tags.ResolvWall)
		for _, o := range check.Objects {
			if bothWalls && o.HasTags(tags.ResolvWall) {
				continue
			}
			other := o.Data.(donburi.Entity)
			pair := orderedPair(e, other)
			if seen[pair] {
				continue
			}
			seen[pair] = true

			a := components.HitBox.Get(w.Entry(e))
			b := components.HitBox.Get(w.Entry(other))
			if !gamemath.Overlap(a.Polygon, a.Rotated, b.Polygon, b.Rotated) {
				continue
			}
			if !reported(e, other) && !reported(other, e) {
				missed = append(missed, pair)
			}
		}
	}
	return missed
}

var resolvTags = map[components.Kind]string{
	components.KindWall:        tags.ResolvWall,
	components.KindCharacter:   tags.ResolvCharacter,
	components.KindBullet:      tags.ResolvBullet,
	components.KindInteractive: tags.ResolvInteractive,
}

func orderedPair(a, b donburi.Entity) MissedPair {
	if b < a {
		a, b = b, a
	}
	return MissedPair{A: a, B: b}
}

func sortedEntities(m map[donburi.Entity]*resolv.Object) []donburi.Entity {
	out := make([]donburi.Entity, 0, len(m))
	for e := range m {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}
