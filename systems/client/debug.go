package client

import (
	"fmt"
	"image/color"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/fonts"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every hit box and prints the frame statistics.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offset := gamemath.Vec(float64(width)/2-camera.Position.X, float64(height)/2-camera.Position.Y)

	tags.Collidable.Each(ecs.World, func(e *donburi.Entry) {
		hb := components.HitBox.Get(e)
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if components.Collision.Get(e).Collided {
			c = color.RGBA{255, 0, 255, 255}
		}
		strokePolygon(screen, hb.Polygon.Translate(offset), 1, c)
	})

	statsEntry, ok := components.Stats.First(ecs.World)
	if !ok {
		return
	}
	s := components.Stats.Get(statsEntry)
	lines := []string{
		fmt.Sprintf("collidables %d  dropped %d", s.Collision.Collidables, s.Collision.Dropped),
		fmt.Sprintf("pairs %d  depth %d  nodes %d", s.Collision.Pairs, s.Collision.Depth, s.Collision.Nodes),
		fmt.Sprintf("visible %d  missed %d", s.Visible, s.Missed),
	}
	face := fonts.Small.Get()
	for i, l := range lines {
		text.Draw(screen, l, face, width-260, 20+i*16, color.White)
	}
}
