package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	half := Vec2{X: 5, Y: 5}

	tests := []struct {
		name string
		a, b Vec2
		want bool
	}{
		{"same center", Vec2{}, Vec2{}, true},
		{"partial", Vec2{}, Vec2{X: 7, Y: 3}, true},
		{"touching edge", Vec2{}, Vec2{X: 10, Y: 0}, true},
		{"touching corner", Vec2{}, Vec2{X: 10, Y: -10}, true},
		{"apart on x", Vec2{}, Vec2{X: 10.001, Y: 0}, false},
		{"apart on y", Vec2{X: 3}, Vec2{X: 3, Y: -11}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, half, tt.b, half))
			assert.Equal(t, tt.want, Overlaps(tt.b, half, tt.a, half), "пересечение должно быть симметричным")
		})
	}
}

func TestOverlapsDifferentExtents(t *testing.T) {
	assert.True(t, Overlaps(Vec2{X: 30}, Vec2{X: 10, Y: 10}, Vec2{}, Vec2{X: 25, Y: 25}))
	assert.False(t, Overlaps(Vec2{X: 36}, Vec2{X: 10, Y: 10}, Vec2{}, Vec2{X: 25, Y: 25}))
}

func TestNormalize(t *testing.T) {
	n, ok := Vec2{X: 3, Y: 4}.Normalize()
	assert.True(t, ok)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)

	z, ok := Vec2{}.Normalize()
	assert.False(t, ok)
	assert.Equal(t, Vec2{}, z)

	_, ok = Vec2{X: math.NaN()}.Normalize()
	assert.False(t, ok)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Vec2{X: 1, Y: 1}, Vec2{X: 4, Y: 5}))
	assert.Equal(t, 0.0, Distance(Vec2{X: 2, Y: 2}, Vec2{X: 2, Y: 2}))
}
