package systems

import (
	"time"

	"github.com/thoxyHub/JavIsland/internal/domain"
)

// UpdateBullet - один тик пули. Когда таймер шага истёк, пуля смотрит на
// следующую клетку: за картой - гибнет; актор или снаряд - получает удар,
// пуля гибнет; элемент - пуля гибнет без урона; иначе летит дальше.
func UpdateBullet(w *domain.Island, bullet *domain.Entity, dt time.Duration) {
	p := bullet.Projectile
	if p == nil || bullet.IsDead() {
		return
	}

	x, y := bullet.Cell()

	// в клетку пули зашёл актор
	if occ := w.Occupant(x, y); occ != nil && occ != bullet && occ.Actor != nil {
		InteractWith(w, SourceOf(bullet), EntityTarget(occ), true)
		w.SetHealth(bullet, 0)
		return
	}

	p.Step.Tick(dt)
	if !p.Step.Ready() {
		return
	}

	dx, dy := p.Orientation.Delta()
	tx, ty := x+dx, y+dy

	if !w.InBounds(tx, ty) {
		w.SetHealth(bullet, 0)
		return
	}

	if occ := w.Occupant(tx, ty); occ != nil {
		if occ.Element == nil {
			InteractWith(w, SourceOf(bullet), EntityTarget(occ), true)
			w.Vacate(bullet)
		}
		w.SetHealth(bullet, 0)
		return
	}

	w.Vacate(bullet)
	w.SetPosition(bullet, domain.CellVector(tx, ty))
	w.Place(bullet)
	p.Step.Reset()
}
