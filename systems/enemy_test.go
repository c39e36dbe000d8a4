package systems

import (
	"testing"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeleeEnemyChargesWhenPlayerNear(t *testing.T) {
	e := newECS(t)
	factory.CreatePlayer(e, 500, 500)
	grenadier := factory.CreateEnemy(e, 800, 500, "Grenadier")

	UpdateEnemies(e)

	assert.True(t, components.Enemy.Get(grenadier).Angry)
	step := cfg.Enemy.Types["Grenadier"].Speed * float64(frameSeconds())
	assert.InDelta(t, 800-step, components.Position.Get(grenadier).X, 1e-6)
	assert.InDelta(t, 500, components.Position.Get(grenadier).Y, 1e-6)
}

func TestCalmEnemyStaysPut(t *testing.T) {
	e := newECS(t)
	factory.CreatePlayer(e, 100, 100)
	gunner := factory.CreateEnemy(e, 900, 900, "Gunner")

	UpdateEnemies(e)

	assert.False(t, components.Enemy.Get(gunner).Angry)
	assert.InDelta(t, 900, components.Position.Get(gunner).X, 1e-9)
	assert.Zero(t, count(e.World, tags.Bullet))
}

func TestRangedEnemyFiresOnInterval(t *testing.T) {
	e := newECS(t)
	factory.CreatePlayer(e, 500, 500)
	gunner := factory.CreateEnemy(e, 500, 800, "Gunner")

	UpdateEnemies(e)

	require.Equal(t, 1, count(e.World, tags.Bullet))
	bullet, _ := tags.Bullet.First(e.World)
	assert.Equal(t, components.SideEnemy, components.Category.Get(bullet).Side)
	assert.Equal(t, cfg.Enemy.Types["Gunner"].FireInterval, components.Weapon.Get(gunner).Cooldown)
	assert.InDelta(t, 800, components.Position.Get(gunner).Y, 1e-9, "in range, holds position")

	UpdateEnemies(e)
	assert.Equal(t, 1, count(e.World, tags.Bullet))
}

func TestHostileEnemyAlertsNeighbours(t *testing.T) {
	e := newECS(t)
	factory.CreatePlayer(e, 500, 500)
	factory.CreateEnemy(e, 500, 800, "Gunner")
	neighbour := factory.CreateEnemy(e, 500, 1050, "Gunner")
	distant := factory.CreateEnemy(e, 2000, 2000, "Gunner")

	UpdateEnemies(e)

	assert.True(t, components.Enemy.Get(neighbour).Angry)
	assert.False(t, components.Enemy.Get(distant).Angry)
}
