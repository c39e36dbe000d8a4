package systems

import (
	"math"

	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/automoto/dungeon-crawler/systems/factory"
	"github.com/automoto/dungeon-crawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePlayer turns the current input into player movement, shots and
// interactions.
func UpdatePlayer(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	if input.JustPressed(cfg.ActionToggleDebug) {
		cfg.Debug.ShowHitboxes = !cfg.Debug.ShowHitboxes
	}

	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	MoveCharacter(player, movementDelta(input, cfg.Player.Speed*float64(frameSeconds())))

	if player.HasComponent(components.Weapon) {
		handleShootInput(ecs, player, input)
	}

	if input.JustPressed(cfg.ActionInteract) {
		ActivateNearby(ecs.World, cfg.Interaction.Radius)
	}
}

// movementDelta returns the step for one frame. Diagonals are normalised
// so every direction moves at the same speed.
func movementDelta(input *components.InputData, step float64) dmath.Vec2 {
	var dir dmath.Vec2
	if input.Pressed(cfg.ActionMoveLeft) {
		dir.X--
	}
	if input.Pressed(cfg.ActionMoveRight) {
		dir.X++
	}
	if input.Pressed(cfg.ActionMoveUp) {
		dir.Y--
	}
	if input.Pressed(cfg.ActionMoveDown) {
		dir.Y++
	}
	n, ok := gamemath.Normalize(dir)
	if !ok {
		return dmath.Vec2{}
	}
	return gamemath.Scale(n, step)
}

func handleShootInput(ecs *ecs.ECS, player *donburi.Entry, input *components.InputData) {
	weapon := components.Weapon.Get(player)
	if weapon.Cooldown > 0 {
		weapon.Cooldown--
		return
	}
	if !input.Pressed(cfg.ActionShoot) || weapon.Config == nil {
		return
	}

	aim := gamemath.Sub(input.Cursor, weapon.Muzzle)
	angle := math.Atan2(aim.Y, aim.X)
	factory.CreateBullet(ecs, components.SidePlayer, weapon.Config, weapon.Muzzle, angle)
	weapon.Cooldown = weapon.Config.Cooldown
}
