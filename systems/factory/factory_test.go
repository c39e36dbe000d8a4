package factory

import (
	"math"
	"testing"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/automoto/dungeon-crawler/shared/leveldata"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func newECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestCreateWallCentresAnchor(t *testing.T) {
	e := newECS()
	wall := CreateWall(e, 30, 60, 90, 30)

	assert.Equal(t, gamemath.Vec(75, 75), *components.Position.Get(wall))
	hb := components.HitBox.Get(wall)
	assert.False(t, hb.Rotated)
	assert.Equal(t, gamemath.RectPolygon(30, 60, 90, 30), hb.Polygon)
	assert.Equal(t, components.KindWall, components.Category.Get(wall).Kind)
	assert.True(t, wall.HasComponent(tags.Collidable))
}

func TestCreatePlayer(t *testing.T) {
	e := newECS()
	p := CreatePlayer(e, 100, 200)

	cat := components.Category.Get(p)
	assert.True(t, cat.IsPlayer())
	assert.Equal(t, cfg.Player.Health, components.Health.Get(p).Current)

	hb := components.HitBox.Get(p).Polygon
	assert.InDelta(t, 100-cfg.Player.Width/2, hb[gamemath.TopLeft].X, 1e-9)
	assert.InDelta(t, 200-cfg.Player.Height/2, hb[gamemath.TopLeft].Y, 1e-9)

	weapon := components.Weapon.Get(p)
	assert.Equal(t, components.ActiveHand.Get(p).Right, weapon.Muzzle)
	assert.Equal(t, cfg.Bullet.DefaultWeapon, weapon.Config.Name)
}

func TestCreateEnemyTypes(t *testing.T) {
	e := newECS()

	melee := CreateEnemy(e, 0, 0, "Grenadier")
	assert.True(t, components.Enemy.Get(melee).Melee)
	assert.Equal(t, 25, components.Enemy.Get(melee).OwnDamage)
	assert.False(t, melee.HasComponent(components.Weapon))

	ranged := CreateEnemy(e, 0, 0, "Gunner")
	assert.False(t, components.Enemy.Get(ranged).Melee)
	assert.True(t, ranged.HasComponent(components.Weapon))
	assert.True(t, components.Category.Get(ranged).IsEnemy())

	unknown := CreateEnemy(e, 0, 0, "Dragon")
	assert.Equal(t, DefaultEnemyType, components.Enemy.Get(unknown).TypeName)
}

func TestCreateBulletRotatedHitBox(t *testing.T) {
	e := newECS()
	weapon := cfg.Bullet.Weapons["Handgun"]
	b := CreateBullet(e, components.SidePlayer, &weapon, gamemath.Vec(100, 50), math.Pi/2)

	hb := components.HitBox.Get(b)
	assert.True(t, hb.Rotated)
	assert.Equal(t, gamemath.Vec(100-weapon.BulletWidth/2, 50), *components.Position.Get(b))

	data := components.Bullet.Get(b)
	assert.True(t, data.Exists)
	assert.Equal(t, weapon.Damage, data.Damage)
	assert.InDelta(t, 0, data.Direction.X, 1e-9)
	assert.InDelta(t, 1, data.Direction.Y, 1e-9)
	assert.Equal(t, components.SidePlayer, components.Category.Get(b).Side)
}

func TestCoinActionPaysUser(t *testing.T) {
	e := newECS()
	p := CreatePlayer(e, 0, 0)
	coin := CreateCoin(e, 10, 10, 42)

	data := components.Interactive.Get(coin)
	assert.True(t, data.DisappearAfterUse)
	data.Action(e.World, p)
	assert.Equal(t, 42, components.Wallet.Get(p).Money)

	// A user without a wallet is ignored.
	data.Action(e.World, nil)
}

func TestCreateLevel(t *testing.T) {
	e := newECS()
	room := &leveldata.RoomData{
		Name:         "test",
		Width:        600,
		Height:       300,
		Walls:        []leveldata.WallRect{{X: 0, Y: 0, W: 600, H: 30}},
		PlayerSpawns: []leveldata.SpawnPoint{{X: 300, Y: 150}},
		EnemySpawns:  []leveldata.EnemySpawn{{X: 100, Y: 150, Type: "Grenadier"}},
		Interactives: []leveldata.InteractiveSpawn{{X: 500, Y: 150, Kind: "portal"}},
	}

	used := 0
	level := CreateLevel(e, room, true, func(w donburi.World, user *donburi.Entry) { used++ })

	data := components.Level.Get(level)
	assert.Equal(t, gamemath.Rect{W: 600, H: 300}, data.Bounds)
	assert.True(t, data.Hub)

	count := func(tag donburi.IComponentType) int {
		return donburi.NewQuery(filter.Contains(tag)).Count(e.World)
	}
	assert.Equal(t, 1, count(tags.Wall))
	assert.Equal(t, 1, count(tags.Enemy))
	assert.Equal(t, 1, count(tags.Player))
	assert.Equal(t, 1, count(tags.Interactive))

	portal, ok := tags.Interactive.First(e.World)
	require.True(t, ok)
	components.Interactive.Get(portal).Action(e.World, nil)
	assert.Equal(t, 1, used)

	// A second room keeps the existing player.
	CreateLevel(e, room, false, nil)
	assert.Equal(t, 1, count(tags.Player))
}
