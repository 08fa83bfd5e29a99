package islandgen

import (
	"strings"
	"time"

	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/domain"
)

// EntityTemplate определяет шаблон для создания сущности
type EntityTemplate struct {
	Kind   enums.EntityKind
	Name   string
	Health int

	// Акторы и снаряды
	Damage       int
	MoveInterval time.Duration

	// Элементы
	Resource enums.ResourceType
	Yield    int
}

// SpawnEntity создает сущность из шаблона на заданной позиции.
// Сущность ещё не зарегистрирована на острове.
func (t EntityTemplate) SpawnEntity(pos domain.Vector) *domain.Entity {
	e := domain.NewEntity(t.Kind, t.Name, pos, t.Health)

	switch {
	case t.Kind.IsActor():
		e.Actor = &domain.ActorComponent{
			Orientation: domain.South,
			Move:        domain.NewCooldown(t.MoveInterval),
			State:       enums.ActorStateIdle,
			Damage:      t.Damage,
		}

	case t.Kind.IsElement():
		e.Element = &domain.ElementComponent{
			Resource: t.Resource,
			Yield:    t.Yield,
		}

	case t.Kind.IsProjectile():
		// первый шаг пули - через полный интервал
		e.Projectile = &domain.ProjectileComponent{
			Orientation: domain.South,
			Step:        domain.Cooldown{Interval: t.MoveInterval, Remaining: t.MoveInterval},
			Damage:      t.Damage,
		}
	}

	return e
}

// --- АКТОРЫ ---

var PlayerTemplate = EntityTemplate{
	Kind:         enums.EntityKindPlayer,
	Name:         "Игрок",
	Health:       domain.PlayerMaxHealth,
	Damage:       domain.PlayerMeleeDamage,
	MoveInterval: domain.PlayerMoveInterval,
}

var MobTemplate = EntityTemplate{
	Kind:         enums.EntityKindMob,
	Name:         "Моб",
	Health:       domain.MobMaxHealth,
	Damage:       domain.MobDamage,
	MoveInterval: domain.MobMoveInterval,
}

// --- ЭЛЕМЕНТЫ ---

var TreeTemplate = EntityTemplate{
	Kind:     enums.EntityKindTree,
	Name:     "Дерево",
	Health:   domain.TreeHealth,
	Resource: enums.ResourceWood,
	Yield:    domain.TreeYield,
}

var RockTemplate = EntityTemplate{
	Kind:     enums.EntityKindRock,
	Name:     "Камень",
	Health:   domain.RockHealth,
	Resource: enums.ResourceStone,
	Yield:    domain.RockYield,
}

var WoodBlockTemplate = EntityTemplate{
	Kind:   enums.EntityKindWoodBlock,
	Name:   "Деревянный блок",
	Health: domain.WoodBlockHealth,
}

var StoneBlockTemplate = EntityTemplate{
	Kind:   enums.EntityKindStoneBlock,
	Name:   "Каменный блок",
	Health: domain.StoneBlockHealth,
}

// --- СНАРЯДЫ ---

var BulletTemplate = EntityTemplate{
	Kind:         enums.EntityKindBullet,
	Name:         "Пуля",
	Health:       domain.BulletHealth,
	MoveInterval: domain.BulletMoveInterval,
}

// SpawnTemplates - шаблоны, которые можно ставить на карту админ-командой
var SpawnTemplates = map[string]EntityTemplate{
	"mob":         MobTemplate,
	"tree":        TreeTemplate,
	"rock":        RockTemplate,
	"wood_block":  WoodBlockTemplate,
	"stone_block": StoneBlockTemplate,
}

// LookupTemplate ищет шаблон по имени без учёта регистра.
func LookupTemplate(name string) (EntityTemplate, bool) {
	t, ok := SpawnTemplates[strings.ToLower(name)]
	return t, ok
}
