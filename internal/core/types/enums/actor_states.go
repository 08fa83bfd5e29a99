package enums

// ActorState - поведенческое состояние актора (для анимации на клиенте)
type ActorState uint8

const (
	ActorStateIdle ActorState = iota
	ActorStateWalk
	ActorStateSlash
)

func (s ActorState) String() string {
	switch s {
	case ActorStateIdle:
		return "IDLE"
	case ActorStateWalk:
		return "WALK"
	case ActorStateSlash:
		return "SLASH"
	}
	return "UNKNOWN"
}
