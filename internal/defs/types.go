// internal/defs/types.go
package defs

import (
	"errors"
	"time"
)

// ErrInvalidDefinition is returned when a loaded definition fails validation.
var ErrInvalidDefinition = errors.New("invalid definition")

// Library holds every gameplay definition the simulation reads.
type Library struct {
	Player     PlayerDefinition     `yaml:"player"`
	Enemy      EnemyDefinition      `yaml:"enemy"`
	Projectile ProjectileDefinition `yaml:"projectile"`
	Spawn      SpawnDefinition      `yaml:"spawn"`
}

// PlayerDefinition holds the static data for the player entity.
type PlayerDefinition struct {
	Health              int           `yaml:"health"`
	Speed               float64       `yaml:"speed"`
	Sprite              string        `yaml:"sprite"`
	SpriteWidth         float64       `yaml:"sprite_width"`
	SpriteHeight        float64       `yaml:"sprite_height"`
	Scale               float64       `yaml:"scale"`
	DodgeSpeed          float64       `yaml:"dodge_speed"`
	DodgeDuration       time.Duration `yaml:"dodge_duration"`
	FireCooldown        time.Duration `yaml:"fire_cooldown"`
	InvincibilityWindow time.Duration `yaml:"invincibility_window"`
}

// HalfExtents returns the player's AABB half size: sprite size scaled by the
// player's scale, halved.
func (p PlayerDefinition) HalfExtents() (float64, float64) {
	return p.SpriteWidth * p.Scale / 2, p.SpriteHeight * p.Scale / 2
}

// ProjectileDefinition holds the static data for player projectiles.
type ProjectileDefinition struct {
	Speed           float64 `yaml:"speed"`
	Damage          int     `yaml:"damage"`
	HalfExtent      float64 `yaml:"half_extent"`
	AutoDespawn     bool    `yaml:"auto_despawn"`
	DespawnDistance float64 `yaml:"despawn_distance"`
	Sprite          string  `yaml:"sprite"`
}

// SpawnDefinition describes the fixed enemy spawn cadence around the player.
type SpawnDefinition struct {
	Period            time.Duration `yaml:"period"`
	Radius            float64       `yaml:"radius"`
	MinRadiusFraction float64       `yaml:"min_radius_fraction"`
}
