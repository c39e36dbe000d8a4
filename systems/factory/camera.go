package factory

import (
	"github.com/automoto/dungeon-crawler/archetypes"
	"github.com/automoto/dungeon-crawler/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}

// CreateInput spawns the singleton input state.
func CreateInput(ecs *ecs.ECS) {
	archetypes.Input.Spawn(ecs)
}

// CreateStats spawns the singleton frame statistics.
func CreateStats(ecs *ecs.ECS) {
	archetypes.Stats.Spawn(ecs)
}
