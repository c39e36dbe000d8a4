package client

import (
	"image/color"

	"github.com/automoto/dungeon-crawler/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	floorColor = color.RGBA{R: 34, G: 30, B: 40, A: 255}
	hubColor   = color.RGBA{R: 30, G: 44, B: 38, A: 255}
)

// DrawLevel fills the room floor.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := level.Bounds.X + float64(width)/2 - camera.Position.X
	y := level.Bounds.Y + float64(height)/2 - camera.Position.Y

	c := floorColor
	if level.Hub {
		c = hubColor
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(level.Bounds.W), float32(level.Bounds.H), c, false)
}
