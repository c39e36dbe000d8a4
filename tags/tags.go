package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Wall        = donburi.NewTag().SetName("Wall")
	Bullet      = donburi.NewTag().SetName("Bullet")
	Interactive = donburi.NewTag().SetName("Interactive")

	// Collidable marks every entity the collision pass indexes.
	Collidable = donburi.NewTag().SetName("Collidable")
)

// Resolv tags for the grid audit
const (
	ResolvWall        = "wall"
	ResolvCharacter   = "character"
	ResolvBullet      = "bullet"
	ResolvInteractive = "interactive"
)
