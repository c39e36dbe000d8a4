package archetypes

import (
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Wall = newArchetype(
		tags.Wall,
		tags.Collidable,
		components.Position,
		components.HitBox,
		components.Category,
		components.Collision,
	)
	Player = newArchetype(
		tags.Player,
		tags.Collidable,
		components.Position,
		components.HitBox,
		components.Category,
		components.Collision,
		components.Health,
		components.Weapon,
		components.ActiveHand,
		components.Wallet,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		tags.Collidable,
		components.Position,
		components.HitBox,
		components.Category,
		components.Collision,
		components.Health,
		components.HealthBar,
		components.Enemy,
		components.Flash,
	)
	Bullet = newArchetype(
		tags.Bullet,
		tags.Collidable,
		components.Position,
		components.HitBox,
		components.Category,
		components.Collision,
		components.Bullet,
	)
	Interactive = newArchetype(
		tags.Interactive,
		tags.Collidable,
		components.Position,
		components.HitBox,
		components.Category,
		components.Collision,
		components.Interactive,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	Stats = newArchetype(
		components.Stats,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
