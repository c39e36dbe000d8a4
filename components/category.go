package components

import "github.com/yohamta/donburi"

// Kind is the collision category of an entity. Exactly one applies.
type Kind int

const (
	KindWall Kind = iota
	KindCharacter
	KindBullet
	KindInteractive
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindCharacter:
		return "character"
	case KindBullet:
		return "bullet"
	case KindInteractive:
		return "interactive"
	}
	return "unknown"
}

// Side is the faction of a character, or the faction a bullet was fired by.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideEnemy
)

type CategoryData struct {
	Kind Kind
	Side Side
}

// IsPlayer reports whether this is the player character.
func (c CategoryData) IsPlayer() bool {
	return c.Kind == KindCharacter && c.Side == SidePlayer
}

// IsEnemy reports whether this is an enemy character.
func (c CategoryData) IsEnemy() bool {
	return c.Kind == KindCharacter && c.Side == SideEnemy
}

var Category = donburi.NewComponentType[CategoryData]()
