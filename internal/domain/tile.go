package domain

import (
	"github.com/thoxyHub/JavIsland/internal/core/types"
	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
)

// Tile - клетка острова. Хранит хэндл обитателя, а не указатель:
// владельцем сущностей остаётся Island.
type Tile struct {
	X, Y int
	Type enums.TileType

	occupant types.EntityID
	// blocking - обитатель занимает клетку целиком (всё, кроме снарядов)
	blocking bool
	walkable bool
}

func newTile(x, y int, t enums.TileType) Tile {
	return Tile{X: x, Y: y, Type: t, walkable: t.Walkable()}
}

// Occupant возвращает хэндл обитателя или NilEntityID.
func (t *Tile) Occupant() types.EntityID {
	return t.occupant
}

func (t *Tile) IsEmpty() bool {
	return t.occupant.IsNil()
}

// IsWalkable - базовая проходимость типа и отсутствие занимающего место обитателя.
func (t *Tile) IsWalkable() bool {
	return t.walkable
}

// place занимает клетку. Пустую клетку занимает кто угодно; клетку со снарядом
// может перехватить сущность, занимающая место. В остальных случаях ничего не происходит.
func (t *Tile) place(id types.EntityID, occupiesSpace bool) bool {
	switch {
	case t.occupant.IsNil():
	case !t.blocking && occupiesSpace:
	default:
		return false
	}

	t.occupant = id
	t.blocking = occupiesSpace
	t.walkable = t.Type.Walkable() && !occupiesSpace
	return true
}

// clear освобождает клетку и возвращает базовую проходимость.
func (t *Tile) clear() {
	t.occupant = types.NilEntityID
	t.blocking = false
	t.walkable = t.Type.Walkable()
}

// release освобождает клетку, только если в ней записан именно id.
func (t *Tile) release(id types.EntityID) bool {
	if t.occupant != id || id.IsNil() {
		return false
	}
	t.clear()
	return true
}
