// pkg/geom/vec.go
package geom

import "math"

// Vec2 — двумерный вектор мировых координат.
type Vec2 struct {
	X, Y float64
}

// Add складывает два вектора
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub вычитает вектор
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul умножает вектор на скаляр
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length возвращает длину вектора
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero сообщает, что вектор нулевой.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize возвращает единичный вектор. Для нулевого (или вырожденного)
// вектора возвращает (Vec2{}, false), NaN наружу не выходит.
func (v Vec2) Normalize() (Vec2, bool) {
	length := v.Length()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Vec2{}, false
	}
	return Vec2{X: v.X / length, Y: v.Y / length}, true
}

// Distance — евклидово расстояние между точками.
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// FromAngle строит единичный вектор по углу в радианах.
func FromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}
