package systems

import (
	"github.com/automoto/dungeon-crawler/components"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/yohamta/donburi"
)

// pairRule resolves one overlapping pair, given in the orientation of its
// table key. It reports whether the pair counts as a collision.
type pairRule func(a, b *donburi.Entry) bool

type kindPair [2]components.Kind

var collisionRules = map[kindPair]pairRule{
	{components.KindCharacter, components.KindWall}:        pushOutOfWall,
	{components.KindCharacter, components.KindBullet}:      bulletHitsCharacter,
	{components.KindBullet, components.KindWall}:           bulletHitsWall,
	{components.KindCharacter, components.KindCharacter}:   charactersTouch,
	{components.KindCharacter, components.KindInteractive}: playerTouchesInteractive,
}

// applyRule looks the pair up in both orientations. Pairs with no rule are
// not collisions.
func applyRule(a, b *donburi.Entry) bool {
	ka := components.Category.Get(a).Kind
	kb := components.Category.Get(b).Kind
	if rule, ok := collisionRules[kindPair{ka, kb}]; ok {
		return rule(a, b)
	}
	if rule, ok := collisionRules[kindPair{kb, ka}]; ok {
		return rule(b, a)
	}
	return false
}

// pushOutOfWall moves the character out of the wall along the shallower
// axis. The wall never moves.
func pushOutOfWall(character, wall *donburi.Entry) bool {
	mtv := gamemath.MinimumTranslation(
		components.HitBox.Get(character).Polygon, *components.Position.Get(character),
		components.HitBox.Get(wall).Polygon, *components.Position.Get(wall),
	)
	MoveCharacter(character, mtv)
	return true
}

// bulletHitsCharacter damages a character hit by a live bullet from the
// other side. Same-side hits do nothing but still count.
func bulletHitsCharacter(character, bullet *donburi.Entry) bool {
	mustHave(character, "character", components.Health)
	mustHave(bullet, "bullet", components.Bullet)

	target := components.Category.Get(character)
	shooter := components.Category.Get(bullet).Side
	if target.Side == shooter {
		return true
	}

	b := components.Bullet.Get(bullet)
	if !b.Exists {
		return true
	}

	components.Health.Get(character).Damage(b.Damage)
	b.Exists = false
	onDamaged(character)

	if target.IsEnemy() && shooter == components.SidePlayer {
		components.Enemy.Get(character).Angry = true
	}
	return true
}

func bulletHitsWall(bullet, _ *donburi.Entry) bool {
	mustHave(bullet, "bullet", components.Bullet)
	components.Bullet.Get(bullet).Exists = false
	return true
}

// charactersTouch applies a melee enemy's contact damage to the player,
// once. Any other character pair only counts as a collision.
func charactersTouch(a, b *donburi.Entry) bool {
	ca := components.Category.Get(a)
	cb := components.Category.Get(b)
	switch {
	case ca.IsPlayer() && cb.IsEnemy():
		explode(b, a)
	case ca.IsEnemy() && cb.IsPlayer():
		explode(a, b)
	}
	return true
}

func explode(enemy, player *donburi.Entry) {
	mustHave(enemy, "enemy", components.Enemy)
	e := components.Enemy.Get(enemy)
	if !e.Melee || e.Exploded {
		return
	}
	mustHave(player, "player", components.Health)
	components.Health.Get(player).Damage(e.OwnDamage)
	e.Exploded = true
	onDamaged(player)
}

// playerTouchesInteractive only marks the contact. Using the object is
// gated by the interact key and handled by the lifecycle pass.
func playerTouchesInteractive(character, _ *donburi.Entry) bool {
	return components.Category.Get(character).IsPlayer()
}
