package enums

import "strings"

// EntityKind - вид сущности на острове. Нулевое значение зарезервировано,
// чтобы ни один валидный хэндл не совпадал с NilEntityID.
type EntityKind uint8

const (
	EntityKindUnknown EntityKind = iota
	EntityKindPlayer
	EntityKindMob
	EntityKindTree
	EntityKindRock
	EntityKindWoodBlock
	EntityKindStoneBlock
	EntityKindBullet
)

var entityKindToString = map[EntityKind]string{
	EntityKindPlayer:     "PLAYER",
	EntityKindMob:        "MOB",
	EntityKindTree:       "TREE",
	EntityKindRock:       "ROCK",
	EntityKindWoodBlock:  "WOOD_BLOCK",
	EntityKindStoneBlock: "STONE_BLOCK",
	EntityKindBullet:     "BULLET",
}

var entityKindStringToType = map[string]EntityKind{
	"PLAYER":      EntityKindPlayer,
	"MOB":         EntityKindMob,
	"TREE":        EntityKindTree,
	"ROCK":        EntityKindRock,
	"WOOD_BLOCK":  EntityKindWoodBlock,
	"STONE_BLOCK": EntityKindStoneBlock,
	"BULLET":      EntityKindBullet,
}

// String возвращает строковое представление (для логов и DTO)
func (k EntityKind) String() string {
	if val, ok := entityKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityKind конвертирует строку в Enum (админ-команды, конфиги)
func ParseEntityKind(s string) EntityKind {
	upper := strings.ToUpper(s)
	if val, ok := entityKindStringToType[upper]; ok {
		return val
	}
	return EntityKindUnknown
}

// IsActor - подвижные участники взаимодействий.
func (k EntityKind) IsActor() bool {
	return k == EntityKindPlayer || k == EntityKindMob
}

// IsElement - статичные объекты мира.
func (k EntityKind) IsElement() bool {
	switch k {
	case EntityKindTree, EntityKindRock, EntityKindWoodBlock, EntityKindStoneBlock:
		return true
	}
	return false
}

func (k EntityKind) IsProjectile() bool {
	return k == EntityKindBullet
}
