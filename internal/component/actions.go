package component

import "go-survivor/pkg/geom"

// Actions — нормализованные намерения игрока, пересчитываются раз в тик
// коллаборатором ввода.
type Actions struct {
	Movement   *geom.Vec2 // nil — нет ввода; иначе единичный вектор
	Fire       bool
	SecondFire bool
	Dodge      bool
}

// Pointer — последняя известная мировая позиция указателя.
// Один писатель (ввод) и много читателей внутри тика.
type Pointer struct {
	X, Y float64
}

// Vec возвращает позицию указателя как вектор.
func (p Pointer) Vec() geom.Vec2 {
	return geom.Vec2{X: p.X, Y: p.Y}
}
