// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultDefinitions []byte

// Default returns the built-in definitions.
func Default() *Library {
	lib, err := parse(defaultDefinitions, &Library{})
	if err != nil {
		panic(fmt.Sprintf("built-in definitions are broken: %v", err))
	}
	return lib
}

// LoadDefinitions reads a YAML file and overlays it onto the built-in
// definitions. An empty path returns the defaults.
func LoadDefinitions(path string) (*Library, error) {
	lib := Default()
	if path == "" {
		return lib, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	return parse(file, lib)
}

func parse(data []byte, into *Library) (*Library, error) {
	if err := yaml.Unmarshal(data, into); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	if err := into.Validate(); err != nil {
		return nil, err
	}
	return into, nil
}

// Validate checks the values the simulation relies on.
func (l *Library) Validate() error {
	switch {
	case l.Player.Health <= 0:
		return fmt.Errorf("%w: player.health must be positive", ErrInvalidDefinition)
	case l.Player.Scale <= 0:
		return fmt.Errorf("%w: player.scale must be positive", ErrInvalidDefinition)
	case l.Player.InvincibilityWindow <= 0:
		return fmt.Errorf("%w: player.invincibility_window must be positive", ErrInvalidDefinition)
	case l.Enemy.Health <= 0:
		return fmt.Errorf("%w: enemy.health must be positive", ErrInvalidDefinition)
	case l.Enemy.ExpReward < 0:
		return fmt.Errorf("%w: enemy.exp_reward must not be negative", ErrInvalidDefinition)
	case l.Projectile.DespawnDistance <= 0:
		return fmt.Errorf("%w: projectile.despawn_distance must be positive", ErrInvalidDefinition)
	case l.Spawn.Period <= 0:
		return fmt.Errorf("%w: spawn.period must be positive", ErrInvalidDefinition)
	case l.Spawn.Radius <= 0:
		return fmt.Errorf("%w: spawn.radius must be positive", ErrInvalidDefinition)
	case l.Spawn.MinRadiusFraction <= 0 || l.Spawn.MinRadiusFraction > 1:
		return fmt.Errorf("%w: spawn.min_radius_fraction must be in (0, 1]", ErrInvalidDefinition)
	}
	return nil
}
