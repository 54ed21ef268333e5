// internal/component/projectile.go
package component

// Origin — кто выпустил снаряд.
type Origin int

const (
	FromPlayer Origin = iota
)

// Projectile представляет летящий снаряд. Направление и скорость лежат в Velocity.
type Projectile struct {
	Damage int
	Origin Origin
}
