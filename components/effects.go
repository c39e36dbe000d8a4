package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks the damage tint of a character. Intensity runs from 1
// (full red) back to 0 as the tween plays.
type FlashData struct {
	Tween     *gween.Tween
	Intensity float32
}

// Active reports whether a flash is still playing.
func (f *FlashData) Active() bool {
	return f.Tween != nil
}

var Flash = donburi.NewComponentType[FlashData]()
