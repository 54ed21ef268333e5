// internal/interfaces/game_context.go
package interfaces

// GameContext — операции над сценой, которые нужны системе состояний.
type GameContext interface {
	ClearScene()
	SpawnPlayer()
	HasPlayer() bool
}
