package systems

import (
	"math"

	"github.com/automoto/dungeon-crawler/components"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateEnemies drives hostile enemies towards the player. An enemy turns
// hostile once the player comes within its anger range, or when shot, and
// stays hostile. Melee enemies always close in; ranged enemies close in
// until the player is in range and then fire on their interval. Hostile
// enemies wake the calm ones within their alert range.
func UpdateEnemies(ecs *ecs.ECS) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	target := *components.Position.Get(player)
	dt := float64(frameSeconds())

	var hostile, shooters []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		t := enemy.TypeConfig
		if t == nil {
			return
		}

		pos := *components.Position.Get(e)
		dist := gamemath.Distance(pos, target)
		if dist <= t.AngerRange {
			enemy.Angry = true
		}
		if !enemy.Angry {
			return
		}
		hostile = append(hostile, e)

		if enemy.Melee || dist > t.AngerRange {
			dir, _ := gamemath.Normalize(gamemath.Sub(target, pos))
			MoveCharacter(e, gamemath.Scale(dir, t.Speed*dt))
			return
		}
		if e.HasComponent(components.Weapon) {
			shooters = append(shooters, e)
		}
	})

	for _, e := range shooters {
		fireAt(ecs, e, target)
	}
	alertNearby(ecs.World, hostile)
}

func fireAt(ecs *ecs.ECS, e *donburi.Entry, target dmath.Vec2) {
	weapon := components.Weapon.Get(e)
	if weapon.Cooldown > 0 {
		weapon.Cooldown--
		return
	}
	if weapon.Config == nil {
		return
	}
	aim := gamemath.Sub(target, weapon.Muzzle)
	factory.CreateBullet(ecs, components.SideEnemy, weapon.Config, weapon.Muzzle, math.Atan2(aim.Y, aim.X))
	weapon.Cooldown = components.Enemy.Get(e).TypeConfig.FireInterval
}

func alertNearby(w donburi.World, hostile []*donburi.Entry) {
	for _, h := range hostile {
		from := *components.Position.Get(h)
		radius := components.Enemy.Get(h).TypeConfig.AlertRange
		tags.Enemy.Each(w, func(e *donburi.Entry) {
			enemy := components.Enemy.Get(e)
			if enemy.Angry {
				return
			}
			if gamemath.Distance(from, *components.Position.Get(e)) <= radius {
				enemy.Angry = true
			}
		})
	}
}
