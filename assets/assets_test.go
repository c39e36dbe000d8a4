package assets

import (
	"testing"

	"github.com/automoto/dungeon-crawler/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedRooms(t *testing.T) {
	rooms, names, err := leveldata.LoadAllRooms(FS, RoomsDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"dungeon", "hub"}, names)

	hub := rooms["hub"]
	assert.Equal(t, 1200.0, hub.Width)
	assert.Equal(t, 750.0, hub.Height)
	assert.Len(t, hub.Walls, 4)
	assert.Equal(t, "portal", hub.Interactives[0].Kind)

	dungeon := rooms["dungeon"]
	assert.Equal(t, 3000.0, dungeon.Width)
	assert.Len(t, dungeon.EnemySpawns, 3)
}

func TestLoadRoomUnknown(t *testing.T) {
	_, err := LoadRoom("attic")
	assert.Error(t, err)
	assert.Panics(t, func() { MustLoadRoom("attic") })
}
