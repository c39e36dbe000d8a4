package factory

import (
	"math"

	"github.com/automoto/dungeon-crawler/archetypes"
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateBullet fires one bullet from muzzle along angle (radians). The hit
// box is a rotated rectangle whose mid-left edge starts at the muzzle.
func CreateBullet(ecs *ecs.ECS, side components.Side, weapon *cfg.WeaponConfig, muzzle dmath.Vec2, angle float64) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(ecs)

	poly, pivot := gamemath.RotatedRect(muzzle, weapon.BulletWidth, weapon.BulletHeight, angle)
	components.Position.SetValue(bullet, pivot)
	components.HitBox.SetValue(bullet, components.HitBoxData{Polygon: poly, Rotated: true})
	components.Category.SetValue(bullet, components.CategoryData{
		Kind: components.KindBullet,
		Side: side,
	})
	components.Bullet.SetValue(bullet, components.BulletData{
		Damage:    weapon.Damage,
		Speed:     weapon.BulletSpeed,
		Direction: gamemath.Vec(math.Cos(angle), math.Sin(angle)),
		Angle:     angle,
		Exists:    true,
	})

	return bullet
}
