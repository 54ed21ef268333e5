package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	assert.Equal(t, int64(7), a.Seed())
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestPRNGRange(t *testing.T) {
	s := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		v := s.Range(0.2, 1.0)
		assert.GreaterOrEqual(t, v, 0.2)
		assert.Less(t, v, 1.0)
	}
}

func TestAngles(t *testing.T) {
	assert.InDelta(t, 0.0, NormalizeAngle(2*math.Pi), 1e-9)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-9)
	// Указатель справа: спрайт "вверх" поворачивается на -90°.
	assert.InDelta(t, -math.Pi/2, FacingAngle(1, 0), 1e-9)
	assert.InDelta(t, 0.0, FacingAngle(0, 1), 1e-9)
}
