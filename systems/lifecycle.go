package systems

import (
	"math/rand/v2"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateEntityConditions consumes the collision flags left by the
// collision pass. Spent bullets, dead characters and exploded enemies are
// removed whatever their flag says, since an even number of hits in one
// frame leaves it off. A killed enemy drops a coin. Flagged interactives
// that are Ready run their action. Every surviving flagged entity has its
// flag cleared.
//
// Removals, coin drops and actions are applied after the scan.
func UpdateEntityConditions(ecs *ecs.ECS) {
	var (
		removals []donburi.Entity
		coins    []dmath.Vec2
		actions  []components.InteractAction
	)

	collidables.Each(ecs.World, func(e *donburi.Entry) {
		kind := components.Category.Get(e).Kind
		switch kind {
		case components.KindBullet:
			if !components.Bullet.Get(e).Exists {
				removals = append(removals, e.Entity())
				return
			}

		case components.KindCharacter:
			if characterGone(e) {
				removals = append(removals, e.Entity())
				if e.HasComponent(tags.Enemy) {
					coins = append(coins, *components.Position.Get(e))
				}
				return
			}
		}

		flag := components.Collision.Get(e)
		if !flag.Collided {
			return
		}

		if kind == components.KindInteractive {
			obj := components.Interactive.Get(e)
			if obj.Ready {
				if obj.Action != nil {
					actions = append(actions, obj.Action)
				}
				if obj.DisappearAfterUse {
					removals = append(removals, e.Entity())
				}
				obj.Ready = false
			}
		}

		flag.Toggle()
	})

	var user *donburi.Entry
	if p, ok := tags.Player.First(ecs.World); ok {
		user = p
	}
	for _, act := range actions {
		act(ecs.World, user)
	}

	for _, e := range removals {
		if ecs.World.Valid(e) {
			ecs.World.Remove(e)
		}
	}

	for _, at := range coins {
		factory.CreateCoin(ecs, at.X, at.Y, coinValue())
	}
}

func characterGone(e *donburi.Entry) bool {
	if !components.Health.Get(e).Alive() {
		return true
	}
	if e.HasComponent(components.Enemy) {
		return components.Enemy.Get(e).Exploded
	}
	return false
}

func coinValue() int {
	lo, hi := cfg.Interaction.CoinMin, cfg.Interaction.CoinMax
	if hi <= lo {
		return lo
	}
	return lo + rand.IntN(hi-lo+1)
}
