package systems

import "github.com/yohamta/donburi/ecs"

// AddGameplaySystems registers the simulation in frame order. Input
// polling, when there is any, must be registered before it.
func AddGameplaySystems(e *ecs.ECS) {
	e.AddSystem(UpdatePlayer)
	e.AddSystem(UpdateEnemies)
	e.AddSystem(UpdateBullets)
	e.AddSystem(UpdateAudit)
	e.AddSystem(UpdateCollisions)
	e.AddSystem(UpdateEntityConditions)
	e.AddSystem(UpdateEffects)
	e.AddSystem(UpdateCamera)
}
