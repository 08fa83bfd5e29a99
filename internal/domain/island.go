package domain

import (
	"fmt"
	"time"

	"github.com/thoxyHub/JavIsland/internal/core/types"
	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
)

// ChangeType - последнее структурное изменение острова
type ChangeType uint8

const (
	ChangeAdd ChangeType = iota + 1
	ChangeRemove
)

// Change - запись о последнем добавлении/удалении сущности.
type Change struct {
	Type   ChangeType
	Entity types.EntityID
	Kind   enums.EntityKind
}

// Updater - покадровое поведение сущностей (ИИ мобов, таймеры игрока, полёт пуль).
// Реализуется в пакете systems.
type Updater interface {
	UpdateEntity(w *Island, e *Entity, dt time.Duration)
}

// UpdaterFunc позволяет передать функцию как Updater.
type UpdaterFunc func(w *Island, e *Entity, dt time.Duration)

func (f UpdaterFunc) UpdateEntity(w *Island, e *Entity, dt time.Duration) {
	f(w, e, dt)
}

type slot struct {
	gen    uint16
	entity *Entity
}

// Island - сетка клеток и арена сущностей. Единственный владелец сущностей:
// тайлы и компоненты ссылаются на них через types.EntityID.
type Island struct {
	width, height int
	border        int
	epoch         uint8

	tiles []Tile // row-major

	slots []slot
	free  []uint32
	// live - авторитетный упорядоченный список живых сущностей
	live []types.EntityID

	lastChange *Change
	mobsAlive  bool

	events EventQueue
}

// NewIsland строит остров из прямоугольной сетки типов клеток.
// border - ширина водной рамки, уже включённой в grid.
func NewIsland(grid [][]enums.TileType, border int, epoch uint8) (*Island, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	height, width := len(grid), len(grid[0])
	w := &Island{
		width:  width,
		height: height,
		border: border,
		epoch:  epoch,
		tiles:  make([]Tile, 0, width*height),
		slots:  make([]slot, 0, 64),
		live:   make([]types.EntityID, 0, 64),
	}

	for y, row := range grid {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), width, ErrEmptyGrid)
		}
		for x, t := range row {
			w.tiles = append(w.tiles, newTile(x, y, t))
		}
	}

	return w, nil
}

func (w *Island) Width() int   { return w.width }
func (w *Island) Height() int  { return w.height }
func (w *Island) Border() int  { return w.border }
func (w *Island) Epoch() uint8 { return w.epoch }

// InBounds - клетка внутри сетки (включая водную рамку).
func (w *Island) InBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

// InPlayableArea - клетка внутри рамки.
func (w *Island) InPlayableArea(x, y int) bool {
	return x >= w.border && x < w.width-w.border && y >= w.border && y < w.height-w.border
}

// Tile возвращает клетку или ErrOutOfBounds. Вызывающий обязан проверять границы:
// ошибка здесь - нарушение предусловия, а не игровая ситуация.
func (w *Island) Tile(x, y int) (*Tile, error) {
	if !w.InBounds(x, y) {
		return nil, fmt.Errorf("tile (%d,%d) outside %dx%d: %w", x, y, w.width, w.height, ErrOutOfBounds)
	}
	return &w.tiles[y*w.width+x], nil
}

// TileAt - клетка под точкой.
func (w *Island) TileAt(v Vector) (*Tile, error) {
	x, y := v.Cell()
	return w.Tile(x, y)
}

// tileAt - без проверки границ, только после InBounds.
func (w *Island) tileAt(x, y int) *Tile {
	return &w.tiles[y*w.width+x]
}

// IsWalkable - клетка в границах и проходима.
func (w *Island) IsWalkable(x, y int) bool {
	return w.InBounds(x, y) && w.tileAt(x, y).IsWalkable()
}

// --- Арена ---

// Add регистрирует сущность: выделяет слот, выдаёт хэндл, записывает изменение
// и публикует ENTITY_ADDED. Клетку не занимает - это делает вызывающий (Place).
func (w *Island) Add(e *Entity) types.EntityID {
	var index uint32
	if n := len(w.free); n > 0 {
		index = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		index = uint32(len(w.slots))
		w.slots = append(w.slots, slot{})
	}

	s := &w.slots[index]
	s.entity = e
	e.ID = types.PackEntityID(w.epoch, e.Kind, s.gen, index)
	w.live = append(w.live, e.ID)

	if e.Inventory != nil {
		owner := e
		e.Inventory.onChange = func() { w.emit(EventInventoryChanged, owner) }
	}

	w.lastChange = &Change{Type: ChangeAdd, Entity: e.ID, Kind: e.Kind}
	w.emit(EventEntityAdded, e)
	return e.ID
}

// Remove убирает сущность из списка и освобождает слот (поколение растёт,
// старые хэндлы перестают разрешаться). Клетку не трогает.
func (w *Island) Remove(e *Entity) bool {
	if w.Entity(e.ID) != e {
		return false
	}

	for i, id := range w.live {
		if id == e.ID {
			w.live = append(w.live[:i], w.live[i+1:]...)
			break
		}
	}

	index := e.ID.Index()
	w.slots[index].entity = nil
	w.slots[index].gen++
	w.free = append(w.free, index)

	if e.Inventory != nil {
		e.Inventory.onChange = nil
	}

	w.lastChange = &Change{Type: ChangeRemove, Entity: e.ID, Kind: e.Kind}
	w.emit(EventEntityRemoved, e)
	return true
}

// Entity разрешает хэндл. Устаревший или чужой хэндл даёт nil.
func (w *Island) Entity(id types.EntityID) *Entity {
	if !id.BelongsTo(w.epoch) {
		return nil
	}
	index := id.Index()
	if int(index) >= len(w.slots) {
		return nil
	}
	s := w.slots[index]
	if s.entity == nil || s.gen != id.Generation() {
		return nil
	}
	return s.entity
}

// Entities - снимок живых сущностей в порядке добавления.
func (w *Island) Entities() []*Entity {
	out := make([]*Entity, 0, len(w.live))
	for _, id := range w.live {
		if e := w.Entity(id); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Count - число зарегистрированных сущностей данного вида.
func (w *Island) Count(kind enums.EntityKind) int {
	n := 0
	for _, id := range w.live {
		if id.Kind() == kind {
			n++
		}
	}
	return n
}

// Len - размер списка живых сущностей.
func (w *Island) Len() int {
	return len(w.live)
}

// Occupant возвращает обитателя клетки или nil (пусто или вне сетки).
func (w *Island) Occupant(x, y int) *Entity {
	if !w.InBounds(x, y) {
		return nil
	}
	return w.Entity(w.tileAt(x, y).Occupant())
}

// --- Клетки ---

// Place занимает клетку под сущностью. Вне сетки или занятая клетка - false.
func (w *Island) Place(e *Entity) bool {
	x, y := e.Cell()
	if !w.InBounds(x, y) {
		return false
	}
	return w.tileAt(x, y).place(e.ID, e.OccupiesSpace())
}

// Vacate освобождает клетку под сущностью, если она записана именно там.
func (w *Island) Vacate(e *Entity) bool {
	x, y := e.Cell()
	if !w.InBounds(x, y) {
		return false
	}
	return w.tileAt(x, y).release(e.ID)
}

// --- Изменение значений ---

// SetPosition меняет позицию и публикует POSITION_CHANGED. Клетки не трогает.
func (w *Island) SetPosition(e *Entity, pos Vector) {
	if e.pos == pos {
		return
	}
	e.pos = pos
	w.emit(EventPositionChanged, e)
}

// Turn поворачивает актора. Поворот публикуется как POSITION_CHANGED.
func (w *Island) Turn(e *Entity, o Orientation) {
	if e.Actor == nil || e.Actor.Orientation == o {
		return
	}
	e.Actor.Orientation = o
	w.emit(EventPositionChanged, e)
}

// SetHealth задаёт здоровье и публикует HEALTH_CHANGED.
func (w *Island) SetHealth(e *Entity, hp int) {
	if e.health == hp {
		return
	}
	e.health = hp
	w.emit(EventHealthChanged, e)
}

// Damage наносит урон. Возвращает true, если этот удар убил сущность.
func (w *Island) Damage(e *Entity, amount int) bool {
	if e.IsDead() {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	hp := e.health - amount
	if hp < 0 {
		hp = 0
	}
	w.SetHealth(e, hp)
	return e.IsDead()
}

// --- Тик ---

// Update проходит по снимку списка: мёртвые освобождают клетку и удаляются,
// остальные обновляются через u. Флаг живых мобов пересчитывается заново.
func (w *Island) Update(dt time.Duration, u Updater) {
	snapshot := make([]types.EntityID, len(w.live))
	copy(snapshot, w.live)

	mobsAlive := false
	for _, id := range snapshot {
		e := w.Entity(id)
		if e == nil {
			// удалён раньше в этом же тике
			continue
		}

		if e.IsDead() {
			w.Vacate(e)
			w.Remove(e)
			continue
		}

		if e.Updatable() && u != nil {
			u.UpdateEntity(w, e, dt)
		}
		if e.Kind == enums.EntityKindMob && !e.IsDead() {
			mobsAlive = true
		}
	}
	w.mobsAlive = mobsAlive
}

// StillMobsAlive - результат последнего Update (на тик запаздывает).
func (w *Island) StillMobsAlive() bool {
	return w.mobsAlive
}

// SyncOccupancy заново занимает клетки под всеми сущностями, кроме игрока.
// Вызывается при смене раунда; занятые клетки не перезаписываются.
func (w *Island) SyncOccupancy() {
	for _, id := range w.live {
		e := w.Entity(id)
		if e == nil || e.Kind == enums.EntityKindPlayer {
			continue
		}
		w.Place(e)
	}
}

// --- Уведомления ---

// LastChange - последнее добавление/удаление, пока его не сбросили.
func (w *Island) LastChange() (Change, bool) {
	if w.lastChange == nil {
		return Change{}, false
	}
	return *w.lastChange, true
}

func (w *Island) ClearLastChange() {
	w.lastChange = nil
}

// DrainEvents отдаёт накопленные уведомления острова.
func (w *Island) DrainEvents() []Event {
	return w.events.Drain()
}

func (w *Island) emit(t EventType, e *Entity) {
	w.events.Publish(Event{
		Type:   t,
		Entity: e.ID,
		Kind:   e.Kind,
		Pos:    e.pos,
		Facing: e.Facing(),
		Health: e.health,
	})
}
