// component/movement.go
package component

import "go-survivor/pkg/geom"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Vec возвращает позицию как вектор.
func (p *Position) Vec() geom.Vec2 {
	return geom.Vec2{X: p.X, Y: p.Y}
}

// Velocity — направление (единичный вектор) и скалярная скорость.
// Для врагов направление пересчитывается каждый тик, для снарядов задаётся при выстреле.
type Velocity struct {
	X, Y  float64
	Speed float64
}

// Movable — политика жизни летящих сущностей.
type Movable struct {
	AutoDespawn bool // Удалять при удалении от игрока дальше порога
}

// Facing — поворот спрайта в радианах.
type Facing struct {
	Rotation float64
}

// DodgeRoll — активный перекат игрока.
type DodgeRoll struct {
	Timer     Timer
	Direction geom.Vec2
}
