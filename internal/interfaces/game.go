package interfaces

import (
	"time"

	"go-survivor/internal/component"
)

// Game — то, что фронтенды (ebiten, терминал) видят от симуляции.
type Game interface {
	Update(dt time.Duration, actions component.Actions, pointer component.Pointer)
	State() component.Phase
	SetState(phase component.Phase) error
	IsPlayerMoving() bool
}
