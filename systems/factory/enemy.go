package factory

import (
	"log"

	"github.com/automoto/dungeon-crawler/archetypes"
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DefaultEnemyType is used when a room names an unknown type.
const DefaultEnemyType = "Gunner"

// CreateEnemy spawns an enemy of the named type centred on (x, y). Ranged
// types carry a weapon; melee types carry their contact damage.
func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyTypeName string) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[enemyTypeName]
	if !exists {
		log.Printf("Warning: unknown enemy type %q, using %s", enemyTypeName, DefaultEnemyType)
		enemyTypeName = DefaultEnemyType
		enemyType = cfg.Enemy.Types[enemyTypeName]
	}

	var enemy *donburi.Entry
	if enemyType.Melee {
		enemy = archetypes.Enemy.Spawn(ecs)
	} else {
		enemy = archetypes.Enemy.Spawn(ecs, components.Weapon, components.ActiveHand)
	}

	poly := gamemath.CenteredRect(x, y, enemyType.Width, enemyType.Height)
	components.Position.SetValue(enemy, gamemath.Vec(x, y))
	components.HitBox.SetValue(enemy, components.HitBoxData{Polygon: poly})
	components.Category.SetValue(enemy, components.CategoryData{
		Kind: components.KindCharacter,
		Side: components.SideEnemy,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:   enemyTypeName,
		TypeConfig: &enemyType,
		Melee:      enemyType.Melee,
		OwnDamage:  enemyType.OwnDamage,
	})

	if !enemyType.Melee {
		hands := characterHands(poly)
		components.ActiveHand.SetValue(enemy, hands)
		weapon := cfg.Bullet.Weapons[cfg.Bullet.DefaultWeapon]
		components.Weapon.SetValue(enemy, components.WeaponData{
			Config: &weapon,
			Muzzle: hands.Right,
		})
	}

	return enemy
}
