package domain

import (
	"github.com/thoxyHub/JavIsland/internal/core/types"
	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
)

// Entity - любой объект симуляции. Набор компонентов определяет вариант:
// Actor (игрок, моб), Element (дерево, камень, блоки), Projectile (пуля).
//
// Позиция и здоровье меняются только через Island (SetPosition, Damage, SetHealth),
// который публикует уведомления об изменениях.
type Entity struct {
	ID   types.EntityID   `json:"id"`
	Kind enums.EntityKind `json:"kind"`
	Name string           `json:"name"`

	pos       Vector
	health    int
	MaxHealth int `json:"maxHealth"`

	// Компоненты (nil - свойства нет)
	Actor      *ActorComponent      `json:"actor,omitempty"`
	Player     *PlayerComponent     `json:"player,omitempty"`
	Element    *ElementComponent    `json:"element,omitempty"`
	Projectile *ProjectileComponent `json:"projectile,omitempty"`
	Inventory  *Inventory           `json:"-"`
}

// NewEntity создаёт сущность до регистрации на острове.
func NewEntity(kind enums.EntityKind, name string, pos Vector, health int) *Entity {
	return &Entity{
		Kind:      kind,
		Name:      name,
		pos:       pos,
		health:    health,
		MaxHealth: health,
	}
}

func (e *Entity) Pos() Vector {
	return e.pos
}

// Cell - клетка, в которой стоит сущность.
func (e *Entity) Cell() (int, int) {
	return e.pos.Cell()
}

func (e *Entity) Health() int {
	return e.health
}

// IsDead - здоровье ≤ 0, сущность будет убрана ближайшим Island.Update.
func (e *Entity) IsDead() bool {
	return e.health <= 0
}

// OccupiesSpace - снаряды не занимают клетку целиком.
func (e *Entity) OccupiesSpace() bool {
	return e.Projectile == nil
}

// Updatable - сущность обновляется каждый тик (акторы и снаряды).
func (e *Entity) Updatable() bool {
	return e.Actor != nil || e.Projectile != nil
}

// Ahead - вектор клетки перед актором или снарядом.
func (e *Entity) Ahead() Vector {
	return e.pos.Add(e.Facing().Vector())
}

// Facing - текущее направление. У элементов направления нет.
func (e *Entity) Facing() Orientation {
	switch {
	case e.Actor != nil:
		return e.Actor.Orientation
	case e.Projectile != nil:
		return e.Projectile.Orientation
	}
	return OrientationNone
}
