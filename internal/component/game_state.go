package component

// Phase — высокоуровневое состояние игры.
type Phase int

const (
	LoadingPhase Phase = iota
	MenuPhase
	PlayingPhase
	UpgradePhase
	GameoverPhase
)

func (p Phase) String() string {
	switch p {
	case LoadingPhase:
		return "Loading"
	case MenuPhase:
		return "Menu"
	case PlayingPhase:
		return "Playing"
	case UpgradePhase:
		return "Upgrade"
	case GameoverPhase:
		return "Gameover"
	default:
		return "Unknown"
	}
}

// GameState — компонент для хранения состояния игры.
// Next заполняется ядром, когда оно запрашивает переход (например, в Gameover).
type GameState struct {
	Current Phase
	Next    *Phase
}

// Request запоминает запрошенный переход; применяется в конце тика.
func (s *GameState) Request(p Phase) {
	s.Next = &p
}
