package components

import (
	"github.com/automoto/dungeon-crawler/shared/gamemath"
	"github.com/yohamta/donburi"
)

// LevelData describes the room currently loaded. Bounds is the root of
// every spatial index built for it; anchors outside it are dropped.
type LevelData struct {
	Name   string
	Bounds gamemath.Rect
	Hub    bool
}

var Level = donburi.NewComponentType[LevelData]()
