package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID         string // ID определения врага
	ContactDamage int    // Урон игроку при касании
	ExpReward     int    // Опыт за убийство
}
