package engine

import (
	"time"

	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/pkg/islandgen"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. Сиды сессий выводятся из него через utils.DeriveSeed.
	Seed int64
	// TicksPerSec - частота симуляции
	TicksPerSec int

	// MapPath - файл карты. Пусто - процедурный остров Width x Height.
	MapPath string
	Width   int
	Height  int
	Border  int

	PlayerStartX int
	PlayerStartY int

	// Debug включает админ-команды
	Debug bool
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:         time.Now().UnixNano(),
		TicksPerSec:  domain.DefaultTicksPerSec,
		Width:        islandgen.ProceduralWidth,
		Height:       islandgen.ProceduralHeight,
		Border:       domain.MapBorder,
		PlayerStartX: domain.DefaultPlayerStartX,
		PlayerStartY: domain.DefaultPlayerStartY,
	}
}

// TickInterval - длительность одного тика.
func (c Config) TickInterval() time.Duration {
	if c.TicksPerSec <= 0 {
		return time.Second / domain.DefaultTicksPerSec
	}
	return time.Second / time.Duration(c.TicksPerSec)
}
