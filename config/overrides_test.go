package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverrides(t *testing.T) {
	t.Cleanup(Reset)

	content := `
world:
  collisionCapacity: 4
  maxDepth: 0
render:
  capacity: 32
interaction:
  radius: 150
weapon: Rifle
debug:
  logCollisions: true
`
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	o, err := LoadOverrides(path)
	require.NoError(t, err)
	o.Apply()

	assert.Equal(t, 4, World.CollisionCapacity)
	assert.Equal(t, 0, World.MaxDepth)
	assert.Equal(t, 32, Render.Capacity)
	assert.Equal(t, 150.0, Interaction.Radius)
	assert.Equal(t, "Rifle", Bullet.DefaultWeapon)
	assert.True(t, Debug.LogCollisions)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, 100, Player.Health)
	assert.Equal(t, 64.0, Render.Margin)
	assert.False(t, Debug.Audit)
}

func TestParseOverridesRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero capacity", "world:\n  collisionCapacity: 0\n"},
		{"negative depth", "world:\n  maxDepth: -1\n"},
		{"zero render capacity", "render:\n  capacity: 0\n"},
		{"negative radius", "interaction:\n  radius: -5\n"},
		{"dead player", "player:\n  health: 0\n"},
		{"unknown weapon", "weapon: Bazooka\n"},
		{"malformed", "world: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOverrides([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	_, err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRoomBounds(t *testing.T) {
	t.Cleanup(Reset)

	d := World.DungeonBounds()
	assert.Equal(t, 3000.0, d.W)
	assert.Equal(t, 3000.0, d.H)

	h := World.HubBounds()
	assert.Equal(t, 1200.0, h.W)
	assert.Equal(t, 750.0, h.H)
}
