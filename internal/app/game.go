// internal/app/game.go
package app

import (
	"time"

	"go-survivor/internal/component"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/logging"
	"go-survivor/internal/system"
	"go-survivor/internal/types"
	"go-survivor/internal/utils"

	"github.com/google/uuid"
)

// ErrInvalidTransition возвращается SetState для запрещённого перехода.
var ErrInvalidTransition = system.ErrInvalidTransition

// Game holds the simulation state and runs one tick per Update.
type Game struct {
	ECS                 *entity.ECS
	Lib                 *defs.Library
	Rng                 *utils.PRNGService
	EventDispatcher     *event.Dispatcher
	SpawnSystem         *system.SpawnSystem
	PlayerControlSystem *system.PlayerControlSystem
	FireSystem          *system.FireSystem
	MovementSystem      *system.MovementSystem
	ProjectileSystem    *system.ProjectileSystem
	CombatSystem        *system.CombatSystem
	PlayerSystem        *system.PlayerSystem
	DespawnSystem       *system.DespawnSystem
	VisualEffectSystem  *system.VisualEffectSystem
	StateSystem         *system.StateSystem

	queues *system.Queues
	runID  uuid.UUID
}

// NewGame initializes a new game instance in the Loading state.
// A nil dispatcher gets replaced by a fresh one.
func NewGame(lib *defs.Library, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *Game {
	if lib == nil {
		panic("lib cannot be nil")
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	if eventDispatcher == nil {
		eventDispatcher = event.NewDispatcher()
	}

	ecs := entity.NewECS(newCooldowns(lib))
	queues := &system.Queues{}
	g := &Game{
		ECS:                 ecs,
		Lib:                 lib,
		Rng:                 rng,
		EventDispatcher:     eventDispatcher,
		SpawnSystem:         system.NewSpawnSystem(ecs, lib, rng, eventDispatcher),
		PlayerControlSystem: system.NewPlayerControlSystem(ecs, lib),
		FireSystem:          system.NewFireSystem(ecs, lib, eventDispatcher),
		MovementSystem:      system.NewMovementSystem(ecs),
		ProjectileSystem:    system.NewProjectileSystem(ecs),
		CombatSystem:        system.NewCombatSystem(ecs, lib, queues),
		PlayerSystem:        system.NewPlayerSystem(ecs, queues, eventDispatcher),
		DespawnSystem:       system.NewDespawnSystem(ecs, lib, queues, eventDispatcher),
		VisualEffectSystem:  system.NewVisualEffectSystem(ecs),
		queues:              queues,
		runID:               uuid.New(),
	}
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)
	return g
}

func newCooldowns(lib *defs.Library) *component.Cooldowns {
	return component.NewCooldowns(lib.Spawn.Period, lib.Player.FireCooldown, lib.Player.InvincibilityWindow)
}

// Update выполняет один тик. Системы работают только в состоянии Playing.
func (g *Game) Update(deltaTime time.Duration, actions component.Actions, pointer component.Pointer) {
	if g.ECS.GameState.Current != component.PlayingPhase {
		return
	}
	g.ECS.GameTime += deltaTime

	g.VisualEffectSystem.Update(deltaTime)
	g.SpawnSystem.Update(deltaTime)
	g.PlayerControlSystem.Update(deltaTime, actions, pointer)
	g.FireSystem.Update(deltaTime, actions, pointer)
	g.MovementSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.PlayerSystem.ApplyDamageQueue()
	g.DespawnSystem.Update()
	g.PlayerSystem.ApplyExperienceQueue()

	g.ECS.FlushDestroyed()
	g.queues.EndTick()
	if err := g.StateSystem.ApplyPending(); err != nil {
		logging.Warn("run %s: %v", g.runID, err)
	}
}

// State возвращает текущее состояние игры.
func (g *Game) State() component.Phase {
	return g.StateSystem.Current()
}

// SetState запрашивает переход от внешнего коллаборатора (меню, экран проигрыша).
func (g *Game) SetState(phase component.Phase) error {
	return g.StateSystem.Switch(phase)
}

// IsPlayerMoving — сигнал для звука шагов.
func (g *Game) IsPlayerMoving() bool {
	return g.State() == component.PlayingPhase && g.PlayerControlSystem.IsMoving()
}

// RunID идентифицирует текущую игровую сессию; меняется с каждым новым игроком.
func (g *Game) RunID() uuid.UUID {
	return g.runID
}

// DrainHints забирает накопленные подсказки урона.
func (g *Game) DrainHints() []event.DamageHint {
	return g.queues.Hints.Drain()
}

// ClearScene удаляет все сущности и возвращает таймеры к началу игры.
func (g *Game) ClearScene() {
	g.ECS.Clear()
	*g.ECS.Cooldowns = *newCooldowns(g.Lib)
	g.queues.EndTick()
	g.queues.Hints.Reset()
}

// HasPlayer — есть ли живой игрок.
func (g *Game) HasPlayer() bool {
	_, ok := g.ECS.PlayerID()
	return ok
}

// SpawnPlayer создаёт игрока в начале координат и начинает новую сессию.
func (g *Game) SpawnPlayer() {
	g.createPlayerEntity()
	g.runID = uuid.New()
	logging.Info("run %s started", g.runID)
}

func (g *Game) createPlayerEntity() types.EntityID {
	def := g.Lib.Player
	hx, hy := def.HalfExtents()

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{}
	g.ECS.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	g.ECS.Colliders[id] = &component.Collider{HalfWidth: hx, HalfHeight: hy}
	g.ECS.Facings[id] = &component.Facing{}
	g.ECS.Renderables[id] = &component.Renderable{
		Sprite: component.AssetHandle(def.Sprite),
		Scale:  def.Scale,
	}
	initialLevel := 1
	g.ECS.PlayerState[id] = &component.PlayerStateComponent{
		Level:         initialLevel,
		CurrentXP:     0,
		XPToNextLevel: defs.ExpForLevel(initialLevel),
	}
	return id
}
