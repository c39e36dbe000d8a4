package client

import (
	cfg "github.com/automoto/dungeon-crawler/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding represents the keys and buttons that trigger one action
type Binding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// Bindings maps every action to its keyboard and mouse inputs.
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
	},
	cfg.ActionMoveRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
	},
	cfg.ActionMoveUp: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
	},
	cfg.ActionMoveDown: {
		Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
	},
	cfg.ActionShoot: {
		Keys:         []ebiten.Key{ebiten.KeySpace},
		MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
	},
	cfg.ActionInteract: {
		Keys: []ebiten.Key{ebiten.KeyE},
	},
	cfg.ActionToggleDebug: {
		Keys: []ebiten.Key{ebiten.KeyF3},
	},
}
