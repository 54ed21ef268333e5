// internal/event/types.go
package event

import "go-survivor/internal/types"

const (
	EnemySpawned    EventType = "EnemySpawned"    // Враг появился
	ProjectileFired EventType = "ProjectileFired" // Игрок выстрелил
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен
	PlayerDamaged   EventType = "PlayerDamaged"   // Игрок получил урон
	LevelUp         EventType = "LevelUp"         // Новый уровень
	GameOver        EventType = "GameOver"
	StateChanged    EventType = "StateChanged"
)

// Данные событий диспетчера.

type EnemySpawnedData struct {
	ID   types.EntityID
	X, Y float64
}

type EnemyKilledData struct {
	ID        types.EntityID
	ExpReward int
}

type PlayerDamagedData struct {
	Amount     int
	HealthLeft int
}

type LevelUpData struct {
	Level int
}

type StateChangedData struct {
	From, To string
}

// Сообщения очередей тика.

// PlayerDamage — урон игроку от касания врага.
type PlayerDamage struct {
	Amount int
}

// ExpGain — опыт за убитого врага.
type ExpGain struct {
	Amount int
}

// DamageHint — всплывающее число урона в мировых координатах.
type DamageHint struct {
	Amount int
	X, Y   float64
}
