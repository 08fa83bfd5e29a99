package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/pkg/islandgen"
	"github.com/thoxyHub/JavIsland/pkg/logger"
)

// Interactor - инициатор воздействия: сущность или оружие в руках.
type Interactor interface {
	Interaction(cell bool) domain.Interaction
}

// Interactable - получатель воздействия: сущность или клетка.
// Возвращает true, если воздействие что-то изменило.
type Interactable interface {
	AcceptInteraction(w *domain.Island, in domain.Interaction) bool
}

// InteractWith передаёт воздействие источника получателю.
func InteractWith(w *domain.Island, src Interactor, dst Interactable, cell bool) bool {
	return dst.AcceptInteraction(w, src.Interaction(cell))
}

// --- Источники ---

type entitySource struct {
	e *domain.Entity
}

// SourceOf - сущность как источник: игрок бьёт кулаком, моб кусает, пуля попадает.
func SourceOf(e *domain.Entity) Interactor {
	return entitySource{e: e}
}

func (s entitySource) Interaction(cell bool) domain.Interaction {
	in := domain.Interaction{Origin: s.e.ID, Cell: cell}

	switch {
	case s.e.Projectile != nil:
		in.Source = domain.SourceProjectileHit
		in.Damage = s.e.Projectile.Damage
	case s.e.Kind == enums.EntityKindPlayer:
		in.Source = domain.SourcePlayerMelee
		in.Damage = s.e.Actor.Damage
	case s.e.Kind == enums.EntityKindMob:
		in.Source = domain.SourceMobHit
		in.Damage = s.e.Actor.Damage
	}
	return in
}

type swordSource struct {
	wielder *domain.Entity
	damage  int
}

// SwordSource - удар мечом от имени владельца.
func SwordSource(wielder *domain.Entity, sword domain.Item) Interactor {
	return swordSource{wielder: wielder, damage: sword.Damage}
}

func (s swordSource) Interaction(cell bool) domain.Interaction {
	return domain.Interaction{
		Source: domain.SourceSwordHit,
		Damage: s.damage,
		Origin: s.wielder.ID,
		Cell:   cell,
	}
}

// --- Получатели ---

type entityTarget struct {
	e *domain.Entity
}

// EntityTarget - сущность как получатель.
func EntityTarget(e *domain.Entity) Interactable {
	return entityTarget{e: e}
}

func (t entityTarget) AcceptInteraction(w *domain.Island, in domain.Interaction) bool {
	e := t.e
	if e.IsDead() {
		return false
	}

	log := logger.Log.WithFields(logrus.Fields{
		"component": "interaction_system",
		"source":    in.Source.String(),
		"origin":    in.Origin.String(),
		"target":    e.ID.String(),
		"damage":    in.Damage,
	})

	switch {
	case e.Projectile != nil:
		// пулю сбивает любое воздействие с уроном
		if in.Damage <= 0 {
			return false
		}
		w.SetHealth(e, 0)

	case e.Element != nil:
		if in.Source != domain.SourceSwordHit {
			return false
		}
		w.Damage(e, in.Damage)

	case e.Kind == enums.EntityKindMob:
		switch in.Source {
		case domain.SourcePlayerMelee, domain.SourceSwordHit, domain.SourceProjectileHit:
			w.Damage(e, in.Damage)
		default:
			return false
		}

	case e.Kind == enums.EntityKindPlayer:
		if in.Source != domain.SourceMobHit {
			return false
		}
		if died := w.Damage(e, in.Damage); died {
			w.Vacate(e)
			log.Info("Player died.")
		}

	default:
		return false
	}

	log.WithField("hp_after", e.Health()).Debug("Interaction resolved.")
	return true
}

type tileTarget struct {
	x, y int
}

// TileTarget - клетка как получатель: на неё можно построить блок.
func TileTarget(x, y int) Interactable {
	return tileTarget{x: x, y: y}
}

// AcceptInteraction строит блок на пустой сухой клетке. Строит только игрок;
// Cell выбирает материал: true - дерево, false - камень.
func (t tileTarget) AcceptInteraction(w *domain.Island, in domain.Interaction) bool {
	log := logger.Log.WithFields(logrus.Fields{
		"component": "build_system",
		"x":         t.x,
		"y":         t.y,
	})

	builder := w.Entity(in.Origin)
	if builder == nil || builder.Kind != enums.EntityKindPlayer || builder.Inventory == nil {
		return false
	}

	tile, err := w.Tile(t.x, t.y)
	if err != nil {
		log.Debug("Build refused: out of bounds.")
		return false
	}
	if tile.Type == enums.TileWater || !tile.IsEmpty() {
		log.Debug("Build refused: tile is water or occupied.")
		return false
	}

	rt := enums.ResourceStone
	if in.Cell {
		rt = enums.ResourceWood
	}
	if builder.Inventory.Count(rt) < 1 {
		log.WithField("resource", rt.String()).Debug("Build refused: not enough resources.")
		return false
	}

	block := islandgen.CreateBlock(rt, domain.CellVector(t.x, t.y))
	w.Add(block)
	w.Place(block)
	builder.Inventory.Remove(domain.Resource(rt, 1))

	log.WithField("block", block.ID.String()).Debug("Block built.")
	return true
}

// Farm отдаёт добычу элемента в инвентарь.
func Farm(element *domain.Entity, inv *domain.Inventory) bool {
	if inv == nil || !element.Element.Farmable() {
		return false
	}
	inv.Add(domain.Resource(element.Element.Resource, element.Element.Yield))
	return true
}
