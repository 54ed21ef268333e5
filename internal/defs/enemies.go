// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Health        int     `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	ContactDamage int     `yaml:"contact_damage"`
	ExpReward     int     `yaml:"exp_reward"`
	// ContactHalfExtent is the half size of the box tested against the player.
	ContactHalfExtent float64 `yaml:"contact_half_extent"`
	// HitHalfExtent is the half size of the box projectiles are tested against.
	HitHalfExtent float64 `yaml:"hit_half_extent"`
	Sprite        string  `yaml:"sprite"`
	Scale         float64 `yaml:"scale"`
}
