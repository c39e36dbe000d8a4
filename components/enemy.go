package components

import (
	"github.com/automoto/dungeon-crawler/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "Grenadier", "Gunner"
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration

	Melee bool // Explodes on contact with the player
	Angry bool // Set when hit by a player bullet

	// Melee contact
	OwnDamage int
	Exploded  bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
