package component

// Health — компонент здоровья (Killable).
// При GodMode носитель не получает урона вне зависимости от таймеров.
type Health struct {
	Value   int
	Max     int
	GodMode bool
}

// Hit вычитает урон. Возвращает false, если урон не применён.
func (h *Health) Hit(damage int) bool {
	if h.GodMode {
		return false
	}
	h.Value -= damage
	return true
}

// IsDead — здоровье опустилось до нуля или ниже.
func (h *Health) IsDead() bool {
	return h.Value <= 0
}

// Display возвращает здоровье для отображения, никогда не отрицательное.
func (h *Health) Display() int {
	if h.Value < 0 {
		return 0
	}
	return h.Value
}

// Collider — половинные размеры AABB сущности.
type Collider struct {
	HalfWidth  float64
	HalfHeight float64
}
