package domain

import "time"

// Геометрия острова
const (
	// MapBorder - ширина водной рамки, которой генератор окружает карту.
	MapBorder = 7
	// PocketCount - число карманов быстрого доступа в инвентаре.
	PocketCount = 2
)

// Игрок
const (
	PlayerMaxHealth      = 300
	PlayerMeleeDamage    = 50
	PlayerMoveInterval   = 5 * time.Microsecond
	PlayerShootCooldown  = 300 * time.Millisecond
	PlayerAttackDuration = 200 * time.Millisecond

	SwordDamage = 50
	GunDamage   = 50

	StartAmmo  = 10
	StartWood  = 5
	StartStone = 5
)

// Мобы
const (
	MobMaxHealth    = 150
	MobDamage       = 10
	MobMoveInterval = 400 * time.Millisecond
)

// Элементы: прочность и добыча
const (
	TreeHealth       = 100
	TreeYield        = 2
	RockHealth       = 150
	RockYield        = 1
	WoodBlockHealth  = 50
	StoneBlockHealth = 70
)

// Снаряды
const (
	BulletHealth       = 1
	BulletMoveInterval = 100 * time.Millisecond
)

// Волны и подготовка
const (
	PreparationDuration = 30 * time.Second
	WaveBannerDuration  = 2 * time.Second

	BaseMobCount        = 4
	BaseResourceFactor  = 15
	BaseResourceOffset  = 5
	TreeSpawnChance     = 0.8
	AmmoPerWave         = 5
	DefaultTicksPerSec  = 20
	DefaultPlayerStartX = 10
	DefaultPlayerStartY = 10
)
