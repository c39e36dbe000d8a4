package config

import (
	"image/color"

	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// Default is the layer every entity and renderer is registered on.
const Default ecs.LayerID = 0

// WorldConfig contains world sizing and spatial index tuning
type WorldConfig struct {
	BlockSize       float64 // Pixels per block
	DungeonBlocks   int     // Side of the square dungeon world, in blocks
	HubWidthBlocks  int
	HubHeightBlocks int

	// Spatial index
	CollisionCapacity int // Items per node before a split, collision pass
	MaxDepth          int // Deepest node level (0 = unbounded)
}

// DungeonBounds returns the square dungeon world rectangle.
func (w WorldConfig) DungeonBounds() gamemath.Rect {
	side := float64(w.DungeonBlocks) * w.BlockSize
	return gamemath.Rect{W: side, H: side}
}

// HubBounds returns the hub world rectangle.
func (w WorldConfig) HubBounds() gamemath.Rect {
	return gamemath.Rect{
		W: float64(w.HubWidthBlocks) * w.BlockSize,
		H: float64(w.HubHeightBlocks) * w.BlockSize,
	}
}

// PlayerConfig contains player-related configuration values
type PlayerConfig struct {
	Health int
	Speed  float64 // Pixels per second

	// Dimensions
	Width  float64
	Height float64

	// Hand offsets from the hit-box top-left corner
	LeftHandX, LeftHandY   float64
	RightHandX, RightHandY float64
}

// EnemyTypeConfig contains configuration for one enemy type
type EnemyTypeConfig struct {
	Name      string
	Health    int
	Speed     float64
	Melee     bool
	OwnDamage int // Damage dealt on contact by melee enemies

	AngerRange   float64 // Player distance that turns the enemy hostile
	AlertRange   float64 // Hostile enemies wake others within this distance
	FireInterval int     // Frames between shots, ranged only

	Width  float64
	Height float64

	TintColor color.RGBA
}

// EnemyConfig contains enemy configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig
}

// WeaponConfig contains the numbers for one firearm
type WeaponConfig struct {
	Name         string
	Damage       int
	BulletSpeed  float64 // Pixels per second
	BulletWidth  float64
	BulletHeight float64
	Cooldown     int // Frames between shots
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	Weapons       map[string]WeaponConfig
	DefaultWeapon string
}

// CombatConfig contains combat feedback configuration
type CombatConfig struct {
	HealthBarDuration   int     // Frames an enemy health bar stays visible after a hit
	DamageFlashDuration float32 // Seconds the damage tint takes to fade
}

// InteractionConfig contains interactive object configuration
type InteractionConfig struct {
	Radius   float64 // Max distance for the interact key
	CoinSize float64
	CoinMin  int
	CoinMax  int

	PortalSize float64
}

// RenderConfig contains render culling configuration
type RenderConfig struct {
	Capacity int     // Items per node before a split, culling pass
	Margin   float64 // Extra pixels around the view when culling
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	LogCollisions bool // Log per-frame collision statistics
	Audit         bool // Cross-check the quadtree against a uniform grid
	ShowHitboxes  bool
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var World WorldConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Bullet BulletConfig
var Combat CombatConfig
var Interaction InteractionConfig
var Render RenderConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	World = WorldConfig{
		BlockSize:       30,
		DungeonBlocks:   100,
		HubWidthBlocks:  40,
		HubHeightBlocks: 25,

		CollisionCapacity: 6,
		MaxDepth:          10,
	}

	Player = PlayerConfig{
		Health: 100,
		Speed:  500,
		Width:  53,
		Height: 100,

		LeftHandX:  5,
		LeftHandY:  50,
		RightHandX: 50,
		RightHandY: 50,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Grenadier": {
				Name:      "Grenadier",
				Health:    100,
				Speed:     380,
				Melee:     true,
				OwnDamage: 25,
				Width:     53,
				Height:    100,
				TintColor: color.RGBA{R: 255, G: 180, B: 120, A: 255},

				AngerRange: 450,
				AlertRange: 150,
			},
			"Gunner": {
				Name:      "Gunner",
				Health:    150,
				Speed:     300,
				Width:     53,
				Height:    100,
				TintColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},

				AngerRange:   400,
				AlertRange:   300,
				FireInterval: 60,
			},
		},
	}

	Bullet = BulletConfig{
		DefaultWeapon: "Handgun",
		Weapons: map[string]WeaponConfig{
			"Handgun": {
				Name:         "Handgun",
				Damage:       35,
				BulletSpeed:  700,
				BulletWidth:  22,
				BulletHeight: 11,
				Cooldown:     15,
			},
			"Rifle": {
				Name:         "Rifle",
				Damage:       80,
				BulletSpeed:  1200,
				BulletWidth:  35,
				BulletHeight: 8,
				Cooldown:     40,
			},
		},
	}

	Combat = CombatConfig{
		HealthBarDuration:   90,
		DamageFlashDuration: 0.3,
	}

	Interaction = InteractionConfig{
		Radius:     100,
		CoinSize:   64,
		CoinMin:    10,
		CoinMax:    50,
		PortalSize: 200,
	}

	Render = RenderConfig{
		Capacity: 40,
		Margin:   64,
	}

	Debug = DebugConfig{}
}
