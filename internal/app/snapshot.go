// internal/app/snapshot.go
package app

import (
	"time"

	"go-survivor/internal/component"
	"go-survivor/internal/types"

	"github.com/google/uuid"
)

// EntityView — то, что рендер знает о сущности.
type EntityView struct {
	ID        types.EntityID
	X, Y      float64
	Rotation  float64
	Health    int
	MaxHealth int
	Sprite    component.AssetHandle
	Scale     float64
	Flashing  bool
}

// PlayerView добавляет к EntityView прогресс игрока.
type PlayerView struct {
	EntityView
	Level      int
	XP         int
	XPToNext   int
	Invincible bool
	Rolling    bool
}

// Snapshot — копия состояния для рендера и UI. Изменения снимка на игру не влияют.
type Snapshot struct {
	Phase       component.Phase
	RunID       uuid.UUID
	GameTime    time.Duration
	Player      *PlayerView
	Enemies     []EntityView
	Projectiles []EntityView
}

// Snapshot собирает снимок; враги и снаряды идут в порядке создания.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:    g.State(),
		RunID:    g.runID,
		GameTime: g.ECS.GameTime,
	}

	if id, ok := g.ECS.PlayerID(); ok {
		player := &PlayerView{
			EntityView: g.view(id),
			Invincible: !g.ECS.Cooldowns.Invincibility.Finished(),
		}
		if ps, ok := g.ECS.PlayerState[id]; ok {
			player.Level = ps.Level
			player.XP = ps.CurrentXP
			player.XPToNext = ps.XPToNextLevel
		}
		_, player.Rolling = g.ECS.DodgeRolls[id]
		snap.Player = player
	}

	for _, id := range g.ECS.EnemyIDs() {
		snap.Enemies = append(snap.Enemies, g.view(id))
	}
	for _, id := range g.ECS.ProjectileIDs() {
		snap.Projectiles = append(snap.Projectiles, g.view(id))
	}
	return snap
}

func (g *Game) view(id types.EntityID) EntityView {
	v := EntityView{ID: id}
	if pos, ok := g.ECS.Positions[id]; ok {
		v.X, v.Y = pos.X, pos.Y
	}
	if f, ok := g.ECS.Facings[id]; ok {
		v.Rotation = f.Rotation
	}
	if h, ok := g.ECS.Healths[id]; ok {
		v.Health = h.Display()
		v.MaxHealth = h.Max
	}
	if r, ok := g.ECS.Renderables[id]; ok {
		v.Sprite = r.Sprite
		v.Scale = r.Scale
	}
	_, v.Flashing = g.ECS.DamageFlashes[id]
	return v
}
