package domain

import "github.com/thoxyHub/JavIsland/internal/core/types"

// DamageSource - замкнутый список источников воздействия.
// Получатель сам решает, какие источники на него действуют.
type DamageSource uint8

const (
	SourceUnknown DamageSource = iota
	SourcePlayerMelee
	SourceSwordHit
	SourceProjectileHit
	SourceMobHit
)

var damageSourceToString = map[DamageSource]string{
	SourcePlayerMelee:   "PLAYER_MELEE",
	SourceSwordHit:      "SWORD_HIT",
	SourceProjectileHit: "PROJECTILE_HIT",
	SourceMobHit:        "MOB_HIT",
}

func (s DamageSource) String() string {
	if val, ok := damageSourceToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// Interaction - одно воздействие инициатора на цель.
type Interaction struct {
	Source DamageSource
	Damage int
	// Origin - сущность-инициатор (игрок для меча и стройки, моб, пуля).
	Origin types.EntityID
	// Cell - ближнее действие (true) или дальнее/строительное (false).
	// Стройка трактует флаг как выбор блока: true - дерево, false - камень.
	Cell bool
}
