package client

import (
	"image/color"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/automoto/dungeon-crawler/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	healthBarWidth  = 48.0
	healthBarHeight = 5.0
)

// DrawEntities renders every collidable inside the camera view. Culling
// goes through the render index; the visible count lands in the stats.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	bounds := components.Level.Get(levelEntry).Bounds

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	visible := systems.VisibleEntities(ecs.World, bounds, systems.CameraView(camera.Position, width, height))

	if statsEntry, ok := components.Stats.First(ecs.World); ok {
		components.Stats.Get(statsEntry).Visible = len(visible)
	}

	offset := gamemath.Vec(float64(width)/2-camera.Position.X, float64(height)/2-camera.Position.Y)
	for _, entity := range visible {
		e := ecs.World.Entry(entity)
		hb := components.HitBox.Get(e)
		poly := hb.Polygon.Translate(offset)
		c := entityColor(e)

		if hb.Rotated {
			strokePolygon(screen, poly, 3, c)
			continue
		}
		r := poly.Bounds()
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
	}
}

// DrawHealthBars draws a bar above the player and above recently hit
// enemies.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := systems.CameraView(camera.Position, width, height)

	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.HealthBar) && components.HealthBar.Get(e).TimeToLive <= 0 {
			return
		}
		box := components.HitBox.Get(e).Polygon.Bounds()
		if !gamemath.AABBOverlap(box.Polygon(), view.Polygon()) {
			return
		}

		hp := components.Health.Get(e)
		ratio := 0.0
		if hp.Max > 0 {
			ratio = float64(hp.Current) / float64(hp.Max)
		}

		x := box.X + (box.W-healthBarWidth)/2 + float64(width)/2 - camera.Position.X
		y := box.Y - healthBarHeight - 4 + float64(height)/2 - camera.Position.Y

		vector.DrawFilledRect(screen, float32(x), float32(y), healthBarWidth, healthBarHeight, cfg.Red, false)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(healthBarWidth*ratio), healthBarHeight, cfg.Green, false)
	})
}

func entityColor(e *donburi.Entry) color.RGBA {
	var c color.RGBA
	cat := components.Category.Get(e)
	switch {
	case cat.Kind == components.KindWall:
		c = cfg.Grey
	case cat.IsPlayer():
		c = cfg.Blue
	case cat.IsEnemy():
		c = cfg.LightRed
		if e.HasComponent(components.Enemy) {
			if t := components.Enemy.Get(e).TypeConfig; t != nil {
				c = multiply(c, t.TintColor)
			}
		}
	case cat.Kind == components.KindBullet:
		c = cfg.Yellow
	case cat.Kind == components.KindInteractive:
		c = cfg.Purple
		if e.HasComponent(components.Interactive) && components.Interactive.Get(e).DisappearAfterUse {
			c = cfg.Yellow
		}
	default:
		c = cfg.White
	}

	if e.HasComponent(components.Flash) {
		if f := components.Flash.Get(e); f.Active() {
			c = blend(c, cfg.Red, f.Intensity)
		}
	}
	return c
}

func multiply(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(a.R) * uint16(b.R) / 255),
		G: uint8(uint16(a.G) * uint16(b.G) / 255),
		B: uint8(uint16(a.B) * uint16(b.B) / 255),
		A: a.A,
	}
}

// blend moves a towards b by t in [0, 1].
func blend(a, b color.RGBA, t float32) color.RGBA {
	t = max(0, min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: a.A}
}

func strokePolygon(screen *ebiten.Image, p gamemath.Polygon, width float32, c color.Color) {
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, c, false)
	}
}
