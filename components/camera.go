package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // World point at the centre of the screen
}

var Camera = donburi.NewComponentType[CameraData]()
