// internal/component/player.go
package component

// PlayerStateComponent хранит информацию, специфичную для игрока,
// такую как его текущий уровень и опыт.
type PlayerStateComponent struct {
	Level         int // Текущий уровень игрока, не меньше 1
	CurrentXP     int // Текущее количество очков опыта
	XPToNextLevel int // Количество опыта, необходимое для следующего уровня
}
