package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thoxyHub/JavIsland/internal/core/types"
	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/pkg/islandgen"
)

func TestUpdateBullet_Flies(t *testing.T) {
	w := createTestIsland(t, 6, 3)
	b := putBullet(w, 1, 1, domain.East)

	// Первый шаг - только через полный интервал
	UpdateBullet(w, b, domain.BulletMoveInterval/2)
	assert.Equal(t, [2]int{1, 1}, cellOf(b))

	UpdateBullet(w, b, domain.BulletMoveInterval/2)
	assert.Equal(t, [2]int{2, 1}, cellOf(b))
	assert.Equal(t, b, w.Occupant(2, 1))
	assert.Nil(t, w.Occupant(1, 1))
	assert.Equal(t, domain.BulletMoveInterval, b.Projectile.Step.Remaining)
}

func TestUpdateBullet_OutOfBounds(t *testing.T) {
	w := createTestIsland(t, 3, 3)
	b := putBullet(w, 2, 1, domain.East)

	UpdateBullet(w, b, domain.BulletMoveInterval)
	assert.True(t, b.IsDead())

	// Мёртвая пуля убирается следующим обновлением острова
	w.Update(0, nil)
	assert.Nil(t, w.Occupant(2, 1))
	assert.Nil(t, w.Entity(b.ID))
}

func TestUpdateBullet_HitsActor(t *testing.T) {
	w := createTestIsland(t, 5, 3)
	b := putBullet(w, 1, 1, domain.East)
	m := putMob(w, 2, 1, types.NilEntityID)

	UpdateBullet(w, b, domain.BulletMoveInterval)
	assert.True(t, b.IsDead())
	assert.Equal(t, domain.MobMaxHealth-domain.GunDamage, m.Health())
	assert.Nil(t, w.Occupant(1, 1), "bullet tile is released")
}

func TestUpdateBullet_HitsBullet(t *testing.T) {
	w := createTestIsland(t, 5, 3)
	a := putBullet(w, 1, 1, domain.East)
	b := putBullet(w, 2, 1, domain.West)

	UpdateBullet(w, a, domain.BulletMoveInterval)
	assert.True(t, a.IsDead())
	assert.True(t, b.IsDead())
}

func TestUpdateBullet_StoppedByElement(t *testing.T) {
	w := createTestIsland(t, 5, 3)
	b := putBullet(w, 1, 1, domain.East)
	rock := putTemplate(w, islandgen.RockTemplate, 2, 1)

	UpdateBullet(w, b, domain.BulletMoveInterval)
	assert.True(t, b.IsDead())
	assert.Equal(t, domain.RockHealth, rock.Health(), "elements take no bullet damage")
}

func TestUpdateBullet_PlayerTakesNoBulletDamage(t *testing.T) {
	w := createTestIsland(t, 5, 3)
	b := putBullet(w, 1, 1, domain.East)
	p := putPlayer(w, 2, 1)

	UpdateBullet(w, b, domain.BulletMoveInterval)
	assert.True(t, b.IsDead())
	assert.Equal(t, domain.PlayerMaxHealth, p.Health())
}
