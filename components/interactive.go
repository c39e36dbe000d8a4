package components

import "github.com/yohamta/donburi"

// InteractAction runs when the player uses an interactive object.
type InteractAction func(w donburi.World, user *donburi.Entry)

type InteractiveData struct {
	Name   string
	Action InteractAction

	// Ready is set when the player presses the interact key nearby and
	// consumed by the lifecycle pass.
	Ready bool

	// DisappearAfterUse removes the object once its action fires.
	DisappearAfterUse bool
}

var Interactive = donburi.NewComponentType[InteractiveData]()
