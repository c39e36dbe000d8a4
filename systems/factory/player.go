package factory

import (
	"github.com/automoto/dungeon-crawler/archetypes"
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centred on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	poly := gamemath.CenteredRect(x, y, cfg.Player.Width, cfg.Player.Height)
	components.Position.SetValue(player, gamemath.Vec(x, y))
	components.HitBox.SetValue(player, components.HitBoxData{Polygon: poly})
	components.Category.SetValue(player, components.CategoryData{
		Kind: components.KindCharacter,
		Side: components.SidePlayer,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	hands := characterHands(poly)
	components.ActiveHand.SetValue(player, hands)

	weapon := cfg.Bullet.Weapons[cfg.Bullet.DefaultWeapon]
	components.Weapon.SetValue(player, components.WeaponData{
		Config: &weapon,
		Muzzle: hands.Right,
	})

	return player
}

func characterHands(poly gamemath.Polygon) components.ActiveHandData {
	tl := poly[gamemath.TopLeft]
	return components.ActiveHandData{
		Left:  gamemath.Add(tl, gamemath.Vec(cfg.Player.LeftHandX, cfg.Player.LeftHandY)),
		Right: gamemath.Add(tl, gamemath.Vec(cfg.Player.RightHandX, cfg.Player.RightHandY)),
	}
}
