package systems

import (
	"fmt"

	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/domain"
)

// --- TOGGLE ---

// ToggleInventory открывает или закрывает инвентарь и откладывает следующий шаг.
func ToggleInventory(p *domain.Entity) error {
	if p.Inventory == nil {
		return fmt.Errorf("%s не может иметь инвентарь", p.Name)
	}

	p.Inventory.Toggle()
	if p.Actor != nil {
		p.Actor.Wait()
	}
	return nil
}

// --- GRANT ---

// Grant кладёт ресурс в инвентарь (награда за волну, админ-команды).
func Grant(p *domain.Entity, rt enums.ResourceType, qty int) error {
	if p.Inventory == nil {
		return fmt.Errorf("%s не может иметь инвентарь", p.Name)
	}
	if rt == enums.ResourceUnknown {
		return fmt.Errorf("неизвестный ресурс")
	}
	if qty <= 0 {
		return fmt.Errorf("количество должно быть положительным: %d", qty)
	}

	p.Inventory.Add(domain.Resource(rt, qty))
	return nil
}

// --- POCKETS ---

// AssignPocket кладёт оружие из инвентаря в карман.
func AssignPocket(p *domain.Entity, index int, kind enums.ItemKind) error {
	if p.Inventory == nil {
		return fmt.Errorf("%s не может иметь инвентарь", p.Name)
	}

	for _, it := range p.Inventory.Items() {
		if it.Kind == kind {
			return p.Inventory.SetPocket(index, it)
		}
	}
	return fmt.Errorf("pocket %d with %s: %w", index, kind, domain.ErrNotInInventory)
}
