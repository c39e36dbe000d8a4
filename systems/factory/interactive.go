package factory

import (
	"github.com/automoto/dungeon-crawler/archetypes"
	"github.com/automoto/dungeon-crawler/components"
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateInteractive spawns a size x size interactive object centred on (x, y).
func CreateInteractive(ecs *ecs.ECS, x, y, size float64, data components.InteractiveData) *donburi.Entry {
	obj := archetypes.Interactive.Spawn(ecs)

	components.Position.SetValue(obj, gamemath.Vec(x, y))
	components.HitBox.SetValue(obj, components.HitBoxData{
		Polygon: gamemath.CenteredRect(x, y, size, size),
	})
	components.Category.SetValue(obj, components.CategoryData{Kind: components.KindInteractive})
	components.Interactive.SetValue(obj, data)

	return obj
}

// CreateCoin drops a coin worth value. Using it adds the value to the
// user's wallet and removes the coin.
func CreateCoin(ecs *ecs.ECS, x, y float64, value int) *donburi.Entry {
	return CreateInteractive(ecs, x, y, cfg.Interaction.CoinSize, components.InteractiveData{
		Name:              "coin",
		DisappearAfterUse: true,
		Action: func(w donburi.World, user *donburi.Entry) {
			if user == nil || !user.HasComponent(components.Wallet) {
				return
			}
			components.Wallet.Get(user).Money += value
		},
	})
}

// CreatePortal spawns a portal that runs action each time it is used.
func CreatePortal(ecs *ecs.ECS, x, y float64, action components.InteractAction) *donburi.Entry {
	return CreateInteractive(ecs, x, y, cfg.Interaction.PortalSize, components.InteractiveData{
		Name:   "portal",
		Action: action,
	})
}
