// pkg/geom/aabb.go
package geom

import "math"

// Overlaps проверяет пересечение двух AABB, заданных центром и половинными
// размерами. Касание гранями считается пересечением.
func Overlaps(centerA, halfA, centerB, halfB Vec2) bool {
	return math.Abs(centerA.X-centerB.X) <= halfA.X+halfB.X &&
		math.Abs(centerA.Y-centerB.Y) <= halfA.Y+halfB.Y
}
