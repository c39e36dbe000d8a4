package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage subtracts amount, never going below zero.
func (h *HealthData) Damage(amount int) {
	h.Current = max(h.Current-amount, 0)
}

// Alive reports whether any health is left.
func (h *HealthData) Alive() bool {
	return h.Current > 0
}

type HealthBarData struct {
	// TimeToLive is the number of frames the health bar should be visible.
	TimeToLive int
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
