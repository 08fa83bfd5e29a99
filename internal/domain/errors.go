package domain

import "errors"

var (
	// ErrOutOfBounds - обращение к клетке за пределами сетки (включая водную рамку).
	ErrOutOfBounds = errors.New("tile out of bounds")
	// ErrInvalidPocket - индекс кармана вне [0, PocketCount).
	ErrInvalidPocket = errors.New("invalid pocket index")
	// ErrNotInInventory - предмета нет в инвентаре.
	ErrNotInInventory = errors.New("item is not in inventory")
	// ErrNotUsable - в карман кладётся только оружие.
	ErrNotUsable = errors.New("item is not usable")
	// ErrEmptyGrid - сетка без клеток или с рваными строками.
	ErrEmptyGrid = errors.New("grid must be a non-empty rectangle")
)
