package enums

// Phase - стадия игровой сессии
type Phase uint8

const (
	PhaseUnknown Phase = iota
	PhasePreparing
	PhaseWave
	PhaseGameOver
)

var phaseToString = map[Phase]string{
	PhasePreparing: "PREPARING",
	PhaseWave:      "WAVE",
	PhaseGameOver:  "GAME_OVER",
}

func (p Phase) String() string {
	if s, ok := phaseToString[p]; ok {
		return s
	}
	return "UNKNOWN"
}

// Terminal - из GAME_OVER выходит только перезапуск сессии.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver
}
