package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/pkg/islandgen"
	"github.com/thoxyHub/JavIsland/pkg/logger"
)

// BulletPlacer решает судьбу только что выпущенной пули.
type BulletPlacer interface {
	PlaceBullet(w *domain.Island, bullet *domain.Entity)
}

// BulletPlacerFunc позволяет передать функцию как BulletPlacer.
type BulletPlacerFunc func(w *domain.Island, bullet *domain.Entity)

func (f BulletPlacerFunc) PlaceBullet(w *domain.Island, bullet *domain.Entity) {
	f(w, bullet)
}

// DefaultPlacer - стандартная постановка пули на остров.
var DefaultPlacer BulletPlacer = BulletPlacerFunc(PlaceBullet)

// PlaceBullet: за картой - пуля пропадает; клетка пуста - пуля регистрируется
// и занимает клетку; клетка занята - пуля сразу бьёт обитателя.
func PlaceBullet(w *domain.Island, bullet *domain.Entity) {
	x, y := bullet.Cell()
	tile, err := w.Tile(x, y)
	if err != nil {
		return
	}

	if tile.IsEmpty() {
		w.Add(bullet)
		w.Place(bullet)
		return
	}

	if occ := w.Entity(tile.Occupant()); occ != nil {
		InteractWith(w, SourceOf(bullet), EntityTarget(occ), true)
	}
}

// UseSword бьёт клетку перед владельцем. Если удар разрушил элемент,
// добыча уходит в инвентарь владельца. false - бить некого.
func UseSword(w *domain.Island, wielder *domain.Entity, sword domain.Item) bool {
	tx, ty := wielder.Ahead().Cell()

	log := logger.Log.WithFields(logrus.Fields{
		"component": "weapon_system",
		"weapon":    sword.Kind.String(),
		"wielder":   wielder.ID.String(),
	})

	if !w.InBounds(tx, ty) {
		log.Debug("Sword swing out of bounds.")
		return false
	}
	target := w.Occupant(tx, ty)
	if target == nil {
		log.Debug("Sword swing hit nothing.")
		return false
	}

	alive := !target.IsDead()
	InteractWith(w, SwordSource(wielder, sword), EntityTarget(target), true)

	if alive && target.IsDead() && Farm(target, wielder.Inventory) {
		log.WithFields(logrus.Fields{
			"resource": target.Element.Resource.String(),
			"yield":    target.Element.Yield,
		}).Debug("Element farmed.")
	}
	return true
}

// UseGun тратит патрон и выпускает пулю из клетки перед стрелком.
// false - патронов нет.
func UseGun(w *domain.Island, shooter *domain.Entity, gun domain.Item, placer BulletPlacer) bool {
	inv := shooter.Inventory
	if inv == nil || inv.Count(enums.ResourceAmmo) <= 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "weapon_system",
			"shooter":   shooter.ID.String(),
		}).Debug("Out of ammo.")
		return false
	}
	inv.Remove(domain.Resource(enums.ResourceAmmo, 1))

	if placer == nil {
		placer = DefaultPlacer
	}
	bullet := islandgen.CreateBullet(shooter.Ahead(), shooter.Facing(), gun.Damage, shooter.ID)
	placer.PlaceBullet(w, bullet)
	return true
}
