package systems

import (
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances damage flashes and health bar timers.
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs.World, frameSeconds())
	updateHealthBars(ecs.World)
}

// onDamaged starts the feedback for a character that just lost health.
func onDamaged(e *donburi.Entry) {
	if e.HasComponent(components.Flash) {
		flash := components.Flash.Get(e)
		flash.Tween = gween.New(1, 0, cfg.Combat.DamageFlashDuration, ease.OutQuad)
		flash.Intensity = 1
	}
	if e.HasComponent(components.HealthBar) {
		components.HealthBar.Get(e).TimeToLive = cfg.Combat.HealthBarDuration
	}
}

func updateFlashEffects(w donburi.World, dt float32) {
	components.Flash.Each(w, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		v, done := flash.Tween.Update(dt)
		flash.Intensity = v
		if done {
			flash.Tween = nil
			flash.Intensity = 0
		}
	})
}

func updateHealthBars(w donburi.World) {
	components.HealthBar.Each(w, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		if bar.TimeToLive > 0 {
			bar.TimeToLive--
		}
	})
}

func frameSeconds() float32 {
	return 1 / float32(cfg.C.TPS)
}
