package systems

import (
	"fmt"
	"log"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/automoto/dungeon-crawler/spatial"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var collidables = donburi.NewQuery(filter.Contains(tags.Collidable))

// Components every collidable must carry.
var collidableComponents = []donburi.IComponentType{
	components.Position,
	components.HitBox,
	components.Category,
	components.Collision,
}

// UpdateCollisions runs one collision pass over the current level.
func UpdateCollisions(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	bounds := components.Level.Get(levelEntry).Bounds

	stats := ResolveCollisions(ecs.World, bounds)

	if statsEntry, ok := components.Stats.First(ecs.World); ok {
		components.Stats.Get(statsEntry).Collision = stats
	}
	if cfg.Debug.LogCollisions {
		log.Printf("collisions: %d collidables, %d inserted, %d dropped, %d pairs, depth %d, %d nodes",
			stats.Collidables, stats.Inserted, stats.Dropped, stats.Pairs, stats.Depth, stats.Nodes)
	}
}

// ResolveCollisions indexes every collidable in w into a fresh quadtree
// covering bounds, then queries the tree once per collidable with its own
// hit box and applies the matching category rule to each candidate. Both
// collision flags of a matched pair are toggled. An entity whose flag is
// already set when its turn comes does not query at all.
//
// It panics if a collidable lacks a position, hit box, category or
// collision flag.
func ResolveCollisions(w donburi.World, bounds gamemath.Rect) components.CollisionStats {
	var entries []*donburi.Entry
	collidables.Each(w, func(e *donburi.Entry) {
		mustHave(e, "collidable", collidableComponents...)
		entries = append(entries, e)
	})

	stats := components.CollisionStats{Collidables: len(entries)}

	tree := spatial.NewWithMaxDepth(bounds, cfg.World.CollisionCapacity, cfg.World.MaxDepth)
	for _, e := range entries {
		if tree.Insert(itemOf(e)) {
			stats.Inserted++
		} else {
			stats.Dropped++
		}
	}

	for _, e := range entries {
		flag := components.Collision.Get(e)
		hb := components.HitBox.Get(e)
		skip := func(donburi.Entity) bool { return flag.Collided }

		for _, other := range tree.Query(hb.Polygon, hb.Rotated, e.Entity(), skip) {
			oe := w.Entry(other)
			if !applyRule(e, oe) {
				continue
			}
			flag.Toggle()
			components.Collision.Get(oe).Toggle()
			stats.Pairs++
		}
	}

	stats.Depth = tree.Depth()
	stats.Nodes = tree.Nodes()
	return stats
}

func itemOf(e *donburi.Entry) spatial.Item {
	hb := components.HitBox.Get(e)
	return spatial.Item{
		Anchor:  *components.Position.Get(e),
		Entity:  e.Entity(),
		Bounds:  hb.Polygon,
		Rotated: hb.Rotated,
	}
}

func mustHave(e *donburi.Entry, role string, cs ...donburi.IComponentType) {
	for _, c := range cs {
		if !e.HasComponent(c) {
			panic(fmt.Sprintf("%s entity %v has no %s component", role, e.Entity(), c.Name()))
		}
	}
}
