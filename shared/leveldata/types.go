// Package leveldata provides TMX room parsing.
// It has no dependencies on ebitengine or donburi — pure data only.
package leveldata

// RoomData holds everything the game needs from a TMX room file.
type RoomData struct {
	Name         string
	Width        float64
	Height       float64
	Walls        []WallRect
	PlayerSpawns []SpawnPoint
	EnemySpawns  []EnemySpawn
	Interactives []InteractiveSpawn
}

// WallRect is a solid rectangle, top-left corner plus size.
type WallRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y float64
}

// EnemySpawn places one enemy by type name.
type EnemySpawn struct {
	X, Y float64
	Type string
}

// InteractiveSpawn places an interactive object. Kind is "coin" or "portal".
type InteractiveSpawn struct {
	X, Y float64
	Kind string
}
