package systems

import (
	"github.com/thoxyHub/JavIsland/internal/domain"
)

// Move поворачивает актора в направлении o и делает шаг, если клетка впереди
// в границах и проходима. Кулдаун проверяет вызывающий.
// Возвращает true, если актор сдвинулся.
func Move(w *domain.Island, e *domain.Entity, o domain.Orientation) bool {
	if e.Actor == nil || o == domain.OrientationNone {
		return false
	}
	w.Turn(e, o)

	x, y := e.Cell()
	dx, dy := o.Delta()
	tx, ty := x+dx, y+dy

	if !w.IsWalkable(tx, ty) {
		return false
	}

	w.Vacate(e)
	w.SetPosition(e, domain.CellVector(tx, ty))
	w.Place(e)
	return true
}
