package components

import "github.com/yohamta/donburi"

// CollisionStats summarises one collision pass.
type CollisionStats struct {
	Collidables int // Entities considered
	Inserted    int // Accepted by the index
	Dropped     int // Anchors outside the room bounds
	Pairs       int // Rule matches, each toggling two flags
	Depth       int // Deepest index node
	Nodes       int // Index nodes allocated
}

// StatsData is the frame summary shown by the debug overlay.
type StatsData struct {
	Collision CollisionStats
	Visible   int // Entities drawn after culling
	Missed    int // Overlapping pairs the index did not report, last audit
}

var Stats = donburi.NewComponentType[StatsData]()
