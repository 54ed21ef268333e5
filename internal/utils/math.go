// internal/utils/math.go
package utils

import "math"

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// FacingAngle — поворот спрайта, смотрящего "вверх", в сторону (dx, dy).
func FacingAngle(dx, dy float64) float64 {
	return NormalizeAngle(math.Atan2(dy, dx) - math.Pi/2)
}
