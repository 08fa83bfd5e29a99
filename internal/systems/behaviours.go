package systems

import (
	"math/rand"
	"time"

	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/domain"
)

// Behaviours раздаёт покадровое поведение по видам сущностей.
// Реализует domain.Updater.
type Behaviours struct {
	Rng *rand.Rand
}

func NewBehaviours(rng *rand.Rand) *Behaviours {
	return &Behaviours{Rng: rng}
}

func (b *Behaviours) UpdateEntity(w *domain.Island, e *domain.Entity, dt time.Duration) {
	switch e.Kind {
	case enums.EntityKindPlayer:
		UpdatePlayer(w, e, dt)
	case enums.EntityKindMob:
		UpdateMob(w, e, dt, b.Rng)
	case enums.EntityKindBullet:
		UpdateBullet(w, e, dt)
	}
}

var _ domain.Updater = (*Behaviours)(nil)
