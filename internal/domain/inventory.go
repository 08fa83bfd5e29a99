package domain

import (
	"fmt"

	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
)

// Item - стопка предметов: ресурс с количеством или оружие (всегда 1 шт.).
type Item struct {
	Kind     enums.ItemKind     `json:"kind"`
	Resource enums.ResourceType `json:"resource,omitempty"`
	Quantity int                `json:"quantity"`
	Damage   int                `json:"damage,omitempty"`
}

// Resource создаёт стопку ресурса.
func Resource(rt enums.ResourceType, qty int) Item {
	return Item{Kind: enums.ItemKindResource, Resource: rt, Quantity: qty}
}

func Sword(damage int) Item {
	return Item{Kind: enums.ItemKindSword, Quantity: 1, Damage: damage}
}

func Gun(damage int) Item {
	return Item{Kind: enums.ItemKindGun, Quantity: 1, Damage: damage}
}

// SameAs - тождество стопок: ресурсы одного вида или оружие одного типа.
func (i Item) SameAs(o Item) bool {
	if i.Kind != o.Kind {
		return false
	}
	if i.Kind == enums.ItemKindResource {
		return i.Resource == o.Resource
	}
	return true
}

// Usable - предмет можно положить в карман и применить.
func (i Item) Usable() bool {
	return i.Kind.IsWeapon()
}

func (i Item) String() string {
	if i.Kind == enums.ItemKindResource {
		return fmt.Sprintf("%s x%d", i.Resource, i.Quantity)
	}
	return i.Kind.String()
}

// Inventory - упорядоченный набор различных стопок, флаг открытия и два кармана.
// Карман всегда ссылается на стопку, которая есть в инвентаре.
type Inventory struct {
	stacks  []*Item
	open    bool
	pockets [PocketCount]*Item

	// onChange подключает Island при регистрации владельца
	onChange func()
}

func NewInventory() *Inventory {
	return &Inventory{stacks: make([]*Item, 0, 4)}
}

func (inv *Inventory) changed() {
	if inv.onChange != nil {
		inv.onChange()
	}
}

func (inv *Inventory) find(item Item) (int, *Item) {
	for i, s := range inv.stacks {
		if s.SameAs(item) {
			return i, s
		}
	}
	return -1, nil
}

// Add кладёт предмет: ресурсы складываются в существующую стопку,
// повторное оружие не дублируется.
func (inv *Inventory) Add(item Item) {
	if item.Quantity <= 0 {
		return
	}

	if _, existing := inv.find(item); existing != nil {
		if item.Kind != enums.ItemKindResource {
			return
		}
		existing.Quantity += item.Quantity
		inv.changed()
		return
	}

	if item.Usable() {
		item.Quantity = 1
	}
	stack := item
	inv.stacks = append(inv.stacks, &stack)
	inv.changed()
}

// Remove забирает item.Quantity единиц. Стопка исчезает, когда опустела,
// вместе со ссылками на неё из карманов. Возвращает false, если такой стопки нет.
func (inv *Inventory) Remove(item Item) bool {
	idx, existing := inv.find(item)
	if existing == nil {
		return false
	}

	existing.Quantity -= item.Quantity
	if existing.Quantity <= 0 {
		inv.stacks = append(inv.stacks[:idx], inv.stacks[idx+1:]...)
		for i, p := range inv.pockets {
			if p == existing {
				inv.pockets[i] = nil
			}
		}
	}
	inv.changed()
	return true
}

// Count - количество ресурса данного вида.
func (inv *Inventory) Count(rt enums.ResourceType) int {
	if _, s := inv.find(Resource(rt, 0)); s != nil {
		return s.Quantity
	}
	return 0
}

// Has - есть ли стопка с таким тождеством.
func (inv *Inventory) Has(item Item) bool {
	_, s := inv.find(item)
	return s != nil
}

// Items возвращает копию содержимого в порядке добавления.
func (inv *Inventory) Items() []Item {
	out := make([]Item, 0, len(inv.stacks))
	for _, s := range inv.stacks {
		out = append(out, *s)
	}
	return out
}

func (inv *Inventory) IsOpen() bool {
	return inv.open
}

// Toggle открывает/закрывает инвентарь.
func (inv *Inventory) Toggle() {
	inv.open = !inv.open
	inv.changed()
}

// SetPocket кладёт в карман ссылку на стопку из инвентаря.
func (inv *Inventory) SetPocket(index int, item Item) error {
	if index < 0 || index >= PocketCount {
		return fmt.Errorf("set pocket %d: %w", index, ErrInvalidPocket)
	}
	if !item.Usable() {
		return fmt.Errorf("set pocket %d with %s: %w", index, item, ErrNotUsable)
	}
	_, stack := inv.find(item)
	if stack == nil {
		return fmt.Errorf("set pocket %d with %s: %w", index, item, ErrNotInInventory)
	}

	inv.pockets[index] = stack
	inv.changed()
	return nil
}

// Pocket возвращает содержимое кармана; ok == false - карман пуст.
func (inv *Inventory) Pocket(index int) (item Item, ok bool, err error) {
	if index < 0 || index >= PocketCount {
		return Item{}, false, fmt.Errorf("pocket %d: %w", index, ErrInvalidPocket)
	}
	if p := inv.pockets[index]; p != nil {
		return *p, true, nil
	}
	return Item{}, false, nil
}

// PocketOf ищет первый карман с оружием данного типа.
func (inv *Inventory) PocketOf(kind enums.ItemKind) (Item, bool) {
	for _, p := range inv.pockets {
		if p != nil && p.Kind == kind {
			return *p, true
		}
	}
	return Item{}, false
}
