// internal/system/player_control.go
package system

import (
	"time"

	"go-survivor/internal/component"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/types"
	"go-survivor/internal/utils"
)

// PlayerControlSystem двигает игрока по намерениям ввода, запускает перекат
// и поворачивает спрайт к указателю.
type PlayerControlSystem struct {
	ecs    *entity.ECS
	lib    *defs.Library
	moving bool
}

func NewPlayerControlSystem(ecs *entity.ECS, lib *defs.Library) *PlayerControlSystem {
	return &PlayerControlSystem{ecs: ecs, lib: lib}
}

// IsMoving — был ли вектор движения на последнем тике.
func (s *PlayerControlSystem) IsMoving() bool {
	return s.moving
}

func (s *PlayerControlSystem) Update(deltaTime time.Duration, actions component.Actions, pointer component.Pointer) {
	s.moving = actions.Movement != nil

	id, pos, ok := playerPosition(s.ecs)
	if !ok {
		return
	}
	dt := deltaTime.Seconds()

	roll, rolling := s.ecs.DodgeRolls[id]
	if !rolling && actions.Dodge && actions.Movement != nil {
		if dir, ok := actions.Movement.Normalize(); ok {
			roll = &component.DodgeRoll{
				Timer:     component.NewTimer(s.lib.Player.DodgeDuration, component.TimerOnce),
				Direction: dir,
			}
			s.ecs.DodgeRolls[id] = roll
			rolling = true
		}
	}

	switch {
	case rolling:
		// Перекат заменяет обычное движение на всё своё время.
		roll.Timer.Tick(deltaTime)
		pos.X += roll.Direction.X * s.lib.Player.DodgeSpeed * dt
		pos.Y += roll.Direction.Y * s.lib.Player.DodgeSpeed * dt
		if roll.Timer.Finished() {
			delete(s.ecs.DodgeRolls, id)
		}
	case actions.Movement != nil:
		if dir, ok := actions.Movement.Normalize(); ok {
			pos.X += dir.X * s.lib.Player.Speed * dt
			pos.Y += dir.Y * s.lib.Player.Speed * dt
		}
	}

	s.turn(id, pos, pointer)
}

// turn поворачивает игрока к указателю; совпадающий указатель поворот не меняет.
func (s *PlayerControlSystem) turn(id types.EntityID, pos *component.Position, pointer component.Pointer) {
	d := pointer.Vec().Sub(pos.Vec())
	if d.IsZero() {
		return
	}
	facing, ok := s.ecs.Facings[id]
	if !ok {
		facing = &component.Facing{}
		s.ecs.Facings[id] = facing
	}
	facing.Rotation = utils.FacingAngle(d.X, d.Y)
}
