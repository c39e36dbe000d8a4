package systems

import (
	"math"

	"github.com/automoto/dungeon-crawler/components"
	"github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centres the camera on the player, kept inside the room.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player (could be dead), skip camera update
	}
	target := *components.Position.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	bounds := components.Level.Get(levelEntry).Bounds

	halfW := float64(config.C.Width) / 2
	halfH := float64(config.C.Height) / 2

	camera.Position.X = clampAxis(target.X, bounds.X+halfW, bounds.X+bounds.W-halfW)
	camera.Position.Y = clampAxis(target.Y, bounds.Y+halfH, bounds.Y+bounds.H-halfH)
}

// clampAxis keeps v in [lo, hi]. A room smaller than the screen is centred.
func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
