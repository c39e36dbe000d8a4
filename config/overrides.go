package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the on-disk tuning file. Every field is optional; only the
// keys present in the file replace the built-in defaults.
type Overrides struct {
	World struct {
		CollisionCapacity *int `yaml:"collisionCapacity"`
		MaxDepth          *int `yaml:"maxDepth"`
	} `yaml:"world"`

	Render struct {
		Capacity *int     `yaml:"capacity"`
		Margin   *float64 `yaml:"margin"`
	} `yaml:"render"`

	Interaction struct {
		Radius *float64 `yaml:"radius"`
	} `yaml:"interaction"`

	Player struct {
		Health *int     `yaml:"health"`
		Speed  *float64 `yaml:"speed"`
	} `yaml:"player"`

	Weapon *string `yaml:"weapon"`

	Debug struct {
		LogCollisions *bool `yaml:"logCollisions"`
		Audit         *bool `yaml:"audit"`
		ShowHitboxes  *bool `yaml:"showHitboxes"`
	} `yaml:"debug"`
}

// LoadOverrides reads and validates a YAML overrides file.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file %s: %w", path, err)
	}
	return ParseOverrides(data)
}

// ParseOverrides decodes and validates overrides from raw YAML.
func ParseOverrides(data []byte) (*Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse overrides YAML: %w", err)
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("invalid overrides: %w", err)
	}
	return &o, nil
}

// Validate rejects values the engine cannot run with.
func (o *Overrides) Validate() error {
	if v := o.World.CollisionCapacity; v != nil && *v < 1 {
		return fmt.Errorf("world.collisionCapacity must be at least 1, got %d", *v)
	}
	if v := o.World.MaxDepth; v != nil && *v < 0 {
		return fmt.Errorf("world.maxDepth must not be negative, got %d", *v)
	}
	if v := o.Render.Capacity; v != nil && *v < 1 {
		return fmt.Errorf("render.capacity must be at least 1, got %d", *v)
	}
	if v := o.Render.Margin; v != nil && *v < 0 {
		return fmt.Errorf("render.margin must not be negative, got %v", *v)
	}
	if v := o.Interaction.Radius; v != nil && *v < 0 {
		return fmt.Errorf("interaction.radius must not be negative, got %v", *v)
	}
	if v := o.Player.Health; v != nil && *v < 1 {
		return fmt.Errorf("player.health must be at least 1, got %d", *v)
	}
	if v := o.Player.Speed; v != nil && *v < 0 {
		return fmt.Errorf("player.speed must not be negative, got %v", *v)
	}
	if v := o.Weapon; v != nil {
		if _, ok := Bullet.Weapons[*v]; !ok {
			return fmt.Errorf("weapon %q is not defined", *v)
		}
	}
	return nil
}

// Apply copies every present override into the global configuration.
func (o *Overrides) Apply() {
	setInt(&World.CollisionCapacity, o.World.CollisionCapacity)
	setInt(&World.MaxDepth, o.World.MaxDepth)
	setInt(&Render.Capacity, o.Render.Capacity)
	setFloat(&Render.Margin, o.Render.Margin)
	setFloat(&Interaction.Radius, o.Interaction.Radius)
	setInt(&Player.Health, o.Player.Health)
	setFloat(&Player.Speed, o.Player.Speed)
	if o.Weapon != nil {
		Bullet.DefaultWeapon = *o.Weapon
	}
	setBool(&Debug.LogCollisions, o.Debug.LogCollisions)
	setBool(&Debug.Audit, o.Debug.Audit)
	setBool(&Debug.ShowHitboxes, o.Debug.ShowHitboxes)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
