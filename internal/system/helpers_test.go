package system

import (
	"testing"

	"go-survivor/internal/component"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/types"
	"go-survivor/pkg/geom"
)

type world struct {
	ecs        *entity.ECS
	lib        *defs.Library
	queues     *Queues
	dispatcher *event.Dispatcher
	events     *eventRecorder
}

type eventRecorder struct {
	got []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.got = append(r.got, e)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.got {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newWorld(t *testing.T) *world {
	t.Helper()
	lib := defs.Default()
	w := &world{
		ecs: entity.NewECS(component.NewCooldowns(
			lib.Spawn.Period, lib.Player.FireCooldown, lib.Player.InvincibilityWindow)),
		lib:        lib,
		queues:     &Queues{},
		dispatcher: event.NewDispatcher(),
		events:     &eventRecorder{},
	}
	w.ecs.GameState.Current = component.PlayingPhase
	for _, et := range []event.EventType{
		event.EnemySpawned, event.ProjectileFired, event.EnemyKilled,
		event.PlayerDamaged, event.LevelUp, event.GameOver, event.StateChanged,
	} {
		w.dispatcher.Subscribe(et, w.events)
	}
	return w
}

func (w *world) addPlayer(at geom.Vec2) types.EntityID {
	id := w.ecs.NewEntity()
	hp := w.lib.Player.Health
	w.ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	w.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	w.ecs.Facings[id] = &component.Facing{}
	w.ecs.PlayerState[id] = &component.PlayerStateComponent{
		Level:         1,
		XPToNextLevel: defs.ExpForLevel(1),
	}
	return id
}

func (w *world) addEnemy(at geom.Vec2) types.EntityID {
	return NewSpawnSystem(w.ecs, w.lib, nil, w.dispatcher).SpawnEnemy(at)
}

func (w *world) addProjectile(at, dir geom.Vec2) types.EntityID {
	return NewFireSystem(w.ecs, w.lib, w.dispatcher).SpawnProjectile(at, dir)
}
