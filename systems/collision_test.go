package systems

import (
	"testing"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestCharacterPushedOutOfWall(t *testing.T) {
	e := newECS(t)
	wall := factory.CreateWall(e, 100, 0, 30, 300)
	// Right edge at 110: ten pixels into the wall.
	player := factory.CreatePlayer(e, 83.5, 150)
	muzzleBefore := components.Weapon.Get(player).Muzzle

	stats := ResolveCollisions(e.World, arena())

	assert.Equal(t, 1, stats.Pairs)
	assert.Equal(t, gamemath.Vec(73.5, 150), *components.Position.Get(player))
	assert.InDelta(t, 100, components.HitBox.Get(player).Polygon[gamemath.TopRight].X, 1e-9)
	assert.InDelta(t, muzzleBefore.X-10, components.Weapon.Get(player).Muzzle.X, 1e-9)
	assert.True(t, collided(player))
	assert.True(t, collided(wall))

	// Wall untouched.
	assert.Equal(t, gamemath.RectPolygon(100, 0, 30, 300), components.HitBox.Get(wall).Polygon)

	residual := gamemath.MinimumTranslation(
		components.HitBox.Get(player).Polygon, *components.Position.Get(player),
		components.HitBox.Get(wall).Polygon, *components.Position.Get(wall),
	)
	assert.InDelta(t, 0, residual.X, 1e-9)
	assert.InDelta(t, 0, residual.Y, 1e-9)
}

func TestSeparatedWallDoesNotPullCharacter(t *testing.T) {
	e := newECS(t)
	// Box spans x 473.5..526.5; the wall starts 13.5 pixels to the right.
	player := factory.CreatePlayer(e, 500, 500)
	wall := factory.CreateWall(e, 540, 450, 50, 100)

	assert.True(t, pushOutOfWall(player, wall))
	assert.Equal(t, gamemath.Vec(500, 500), *components.Position.Get(player))
	assert.InDelta(t, 526.5, components.HitBox.Get(player).Polygon[gamemath.TopRight].X, 1e-9)
}

func TestCornerPushOutStaysOutOfBothWalls(t *testing.T) {
	e := newECS(t)
	// Player box 473.5..526.5 x 450..550. The side wall overlaps it by 6.5
	// on x, the corner wall by 3.5 on x and 2 on y. Pushing out of the side
	// wall first separates the player from the corner wall.
	player := factory.CreatePlayer(e, 500, 500)
	side := factory.CreateWall(e, 520, 450, 50, 100)
	corner := factory.CreateWall(e, 523, 548, 50, 100)

	ResolveCollisions(e.World, arena())

	box := components.HitBox.Get(player).Polygon
	assert.InDelta(t, 520, box[gamemath.TopRight].X, 1e-9)
	for _, wall := range []*donburi.Entry{side, corner} {
		residual := gamemath.MinimumTranslation(
			box, *components.Position.Get(player),
			components.HitBox.Get(wall).Polygon, *components.Position.Get(wall),
		)
		assert.InDelta(t, 0, residual.X, 1e-9)
		assert.InDelta(t, 0, residual.Y, 1e-9)
	}
}

func TestEnemyBulletDamagesPlayer(t *testing.T) {
	e := newECS(t)
	player := factory.CreatePlayer(e, 500, 500)
	bullet := factory.CreateBullet(e, components.SideEnemy, handgun(), gamemath.Vec(490, 500), 0)

	stats := ResolveCollisions(e.World, arena())

	assert.Equal(t, 1, stats.Pairs)
	assert.Equal(t, 65, components.Health.Get(player).Current)
	assert.False(t, components.Bullet.Get(bullet).Exists)
	assert.True(t, components.Flash.Get(player).Active())
	assert.True(t, collided(player))
	assert.True(t, collided(bullet))
}

func TestOwnBulletDoesNoDamage(t *testing.T) {
	e := newECS(t)
	player := factory.CreatePlayer(e, 500, 500)
	bullet := factory.CreateBullet(e, components.SidePlayer, handgun(), gamemath.Vec(490, 500), 0)

	stats := ResolveCollisions(e.World, arena())

	assert.Equal(t, 1, stats.Pairs)
	assert.Equal(t, 100, components.Health.Get(player).Current)
	assert.True(t, components.Bullet.Get(bullet).Exists)
}

func TestPlayerBulletAngersEnemy(t *testing.T) {
	e := newECS(t)
	enemy := factory.CreateEnemy(e, 500, 500, "Gunner")
	factory.CreateBullet(e, components.SidePlayer, handgun(), gamemath.Vec(490, 500), 0)

	ResolveCollisions(e.World, arena())

	assert.Equal(t, 115, components.Health.Get(enemy).Current)
	assert.True(t, components.Enemy.Get(enemy).Angry)
	assert.Equal(t, cfg.Combat.HealthBarDuration, components.HealthBar.Get(enemy).TimeToLive)
}

func TestPlayerBulletDamagesEnemy(t *testing.T) {
	e := newECS(t)
	enemy := factory.CreateEnemy(e, 500, 500, "Gunner")
	components.Health.SetValue(enemy, components.HealthData{Current: 100, Max: 100})
	bullet := factory.CreateBullet(e, components.SidePlayer, handgun(), gamemath.Vec(490, 500), 0)

	stats := ResolveCollisions(e.World, arena())

	assert.Equal(t, 1, stats.Pairs)
	assert.Equal(t, 65, components.Health.Get(enemy).Current)
	assert.False(t, components.Bullet.Get(bullet).Exists)
	assert.True(t, collided(enemy))
	assert.True(t, collided(bullet))
}

func TestRebuildWithoutResetDealsNoExtraDamage(t *testing.T) {
	e := newECS(t)
	player := factory.CreatePlayer(e, 500, 500)
	factory.CreateBullet(e, components.SideEnemy, handgun(), gamemath.Vec(490, 500), 0)

	ResolveCollisions(e.World, arena())
	stats := ResolveCollisions(e.World, arena())

	assert.Zero(t, stats.Pairs)
	assert.Equal(t, 65, components.Health.Get(player).Current)
}

func TestSpentBulletDoesNoDamage(t *testing.T) {
	e := newECS(t)
	player := factory.CreatePlayer(e, 500, 500)
	bullet := factory.CreateBullet(e, components.SideEnemy, handgun(), gamemath.Vec(490, 500), 0)
	components.Bullet.Get(bullet).Exists = false

	stats := ResolveCollisions(e.World, arena())

	assert.Equal(t, 1, stats.Pairs)
	assert.Equal(t, 100, components.Health.Get(player).Current)
}

func TestBulletStopsAtWall(t *testing.T) {
	e := newECS(t)
	factory.CreateWall(e, 500, 400, 30, 200)
	bullet := factory.CreateBullet(e, components.SidePlayer, handgun(), gamemath.Vec(490, 500), 0)

	stats := ResolveCollisions(e.World, arena())

	assert.Equal(t, 1, stats.Pairs)
	assert.False(t, components.Bullet.Get(bullet).Exists)
}

func TestMeleeEnemyExplodesOnce(t *testing.T) {
	e := newECS(t)
	player := factory.CreatePlayer(e, 500, 500)
	enemy := factory.CreateEnemy(e, 520, 500, "Grenadier")

	ResolveCollisions(e.World, arena())
	assert.Equal(t, 75, components.Health.Get(player).Current)
	assert.True(t, components.Enemy.Get(enemy).Exploded)

	// Clear the flags by hand and run again: no second explosion.
	components.Collision.Get(player).Collided = false
	components.Collision.Get(enemy).Collided = false
	stats := ResolveCollisions(e.World, arena())

	assert.Equal(t, 1, stats.Pairs)
	assert.Equal(t, 75, components.Health.Get(player).Current)
}

func TestRangedEnemyContactOnlyToggles(t *testing.T) {
	e := newECS(t)
	player := factory.CreatePlayer(e, 500, 500)
	enemy := factory.CreateEnemy(e, 520, 500, "Gunner")

	stats := ResolveCollisions(e.World, arena())

	assert.Equal(t, 1, stats.Pairs)
	assert.Equal(t, 100, components.Health.Get(player).Current)
	assert.False(t, components.Enemy.Get(enemy).Exploded)
	assert.True(t, collided(player))
	assert.True(t, collided(enemy))
}

func TestInteractiveOnlyCollidesWithPlayer(t *testing.T) {
	e := newECS(t)
	enemy := factory.CreateEnemy(e, 200, 200, "Gunner")
	coinA := factory.CreateCoin(e, 200, 200, 10)
	player := factory.CreatePlayer(e, 700, 700)
	coinB := factory.CreateCoin(e, 700, 700, 10)

	stats := ResolveCollisions(e.World, arena())

	assert.Equal(t, 1, stats.Pairs)
	assert.False(t, collided(enemy))
	assert.False(t, collided(coinA))
	assert.True(t, collided(player))
	assert.True(t, collided(coinB))
}

func TestWallsDoNotCollideWithEachOther(t *testing.T) {
	e := newECS(t)
	a := factory.CreateWall(e, 100, 100, 60, 60)
	b := factory.CreateWall(e, 130, 130, 60, 60)

	stats := ResolveCollisions(e.World, arena())

	assert.Zero(t, stats.Pairs)
	assert.False(t, collided(a))
	assert.False(t, collided(b))
}

func TestOutOfBoundsAnchorsAreDropped(t *testing.T) {
	e := newECS(t)
	factory.CreateWall(e, 100, 100, 30, 30)
	factory.CreateWall(e, 2000, 2000, 30, 30)

	stats := ResolveCollisions(e.World, arena())

	assert.Equal(t, 2, stats.Collidables)
	assert.Equal(t, 1, stats.Inserted)
	assert.Equal(t, 1, stats.Dropped)
}

func TestMissingComponentPanics(t *testing.T) {
	e := newECS(t)
	e.World.Create(tags.Collidable, components.Position)

	assert.Panics(t, func() { ResolveCollisions(e.World, arena()) })
}

func TestUpdateCollisionsStoresStats(t *testing.T) {
	e := newECS(t)
	newLevel(e, arena())
	factory.CreatePlayer(e, 500, 500)
	factory.CreateBullet(e, components.SideEnemy, handgun(), gamemath.Vec(490, 500), 0)

	UpdateCollisions(e)

	entry, ok := components.Stats.First(e.World)
	require.True(t, ok)
	s := components.Stats.Get(entry).Collision
	assert.Equal(t, 2, s.Collidables)
	assert.Equal(t, 1, s.Pairs)
	assert.GreaterOrEqual(t, s.Nodes, 1)
}
