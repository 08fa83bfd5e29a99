package domain

import (
	"time"

	"github.com/thoxyHub/JavIsland/internal/core/types"
	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
)

// Cooldown - таймер обратного отсчёта. Действие разрешено, когда Remaining ≤ 0.
type Cooldown struct {
	Interval  time.Duration `json:"interval"`
	Remaining time.Duration `json:"remaining"`
}

// NewCooldown создаёт готовый к действию таймер.
func NewCooldown(interval time.Duration) Cooldown {
	return Cooldown{Interval: interval}
}

// Tick уменьшает остаток на прошедшее время.
func (c *Cooldown) Tick(dt time.Duration) {
	c.Remaining -= dt
}

func (c *Cooldown) Ready() bool {
	return c.Remaining <= 0
}

// Reset заводит таймер на полный интервал.
func (c *Cooldown) Reset() {
	c.Remaining = c.Interval
}

// ActorComponent - подвижная сущность с направлением и кулдауном шага.
type ActorComponent struct {
	Orientation Orientation      `json:"orientation"`
	Move        Cooldown         `json:"move"`
	State       enums.ActorState `json:"state"`
	// Damage - урон ближней атаки (игрок - кулак, моб - удар)
	Damage int `json:"damage"`
	// Target - цель преследования (для мобов - игрок)
	Target types.EntityID `json:"target,omitempty"`
}

// Wait откладывает следующий шаг на полный интервал.
func (a *ActorComponent) Wait() {
	a.Move.Reset()
}

// PlayerComponent - таймеры, которые есть только у игрока.
type PlayerComponent struct {
	Shoot Cooldown `json:"shoot"`
	// Slash - сколько ещё длится анимация удара мечом
	Slash   Cooldown `json:"slash"`
	Walking bool     `json:"walking"`
}

// ElementComponent - статичный объект. Yield == 0 - добычи нет (блоки).
type ElementComponent struct {
	Resource enums.ResourceType `json:"resource,omitempty"`
	Yield    int                `json:"yield,omitempty"`
}

// Farmable - элемент даёт ресурсы при разрушении мечом.
func (e *ElementComponent) Farmable() bool {
	return e != nil && e.Yield > 0 && e.Resource != enums.ResourceUnknown
}

// ProjectileComponent - снаряд с фиксированным направлением.
type ProjectileComponent struct {
	Orientation Orientation    `json:"orientation"`
	Step        Cooldown       `json:"step"`
	Damage      int            `json:"damage"`
	Owner       types.EntityID `json:"owner,omitempty"`
}
