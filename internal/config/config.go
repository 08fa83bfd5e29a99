package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/internal/engine"
	"github.com/thoxyHub/JavIsland/pkg/islandgen"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config - файл configs/island.yaml. Порядок применения: значения по умолчанию,
// файл, переменные окружения, флаги (в main).
type Config struct {
	Server ServerConfig `yaml:"server"`
	Game   GameConfig   `yaml:"game"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Host  string `yaml:"host"`
	Port  int    `yaml:"port"`
	Debug bool   `yaml:"debug"`
}

type GameConfig struct {
	// Seed 0 - случайный при старте
	Seed        int64  `yaml:"seed"`
	TicksPerSec int    `yaml:"ticks_per_sec"`
	MapPath     string `yaml:"map"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Border      int    `yaml:"border"`
	StartX      int    `yaml:"start_x"`
	StartY      int    `yaml:"start_y"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Game: GameConfig{
			TicksPerSec: domain.DefaultTicksPerSec,
			Width:       islandgen.ProceduralWidth,
			Height:      islandgen.ProceduralHeight,
			Border:      domain.MapBorder,
			StartX:      domain.DefaultPlayerStartX,
			StartY:      domain.DefaultPlayerStartY,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load читает YAML поверх значений по умолчанию. Пустой path - только умолчания и окружение.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		if err := Decode(f, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Decode накладывает YAML на cfg. Незаданные ключи сохраняют прежние значения.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

// ApplyEnv: ISLAND_PORT, ISLAND_SEED, ISLAND_MAP, ISLAND_DEBUG, LOG_LEVEL, LOG_FORMAT.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("ISLAND_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: ISLAND_PORT=%q", ErrInvalidConfig, v)
		}
		c.Server.Port = port
	}
	if v, ok := lookup("ISLAND_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: ISLAND_SEED=%q", ErrInvalidConfig, v)
		}
		c.Game.Seed = seed
	}
	if v, ok := lookup("ISLAND_MAP"); ok {
		c.Game.MapPath = v
	}
	if v, ok := lookup("ISLAND_DEBUG"); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: ISLAND_DEBUG=%q", ErrInvalidConfig, v)
		}
		c.Server.Debug = debug
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	return nil
}

func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidConfig, c.Server.Port)
	}
	if c.Game.TicksPerSec <= 0 {
		return fmt.Errorf("%w: ticks_per_sec %d", ErrInvalidConfig, c.Game.TicksPerSec)
	}
	if c.Game.Border < 0 {
		return fmt.Errorf("%w: negative border", ErrInvalidConfig)
	}
	if c.Game.MapPath != "" {
		return nil
	}
	// Процедурный остров: старт должен попасть внутрь суши
	if c.Game.Width <= 0 || c.Game.Height <= 0 {
		return fmt.Errorf("%w: island size %dx%d", ErrInvalidConfig, c.Game.Width, c.Game.Height)
	}
	if c.Game.StartX < 0 || c.Game.StartX >= c.Game.Width || c.Game.StartY < 0 || c.Game.StartY >= c.Game.Height {
		return fmt.Errorf("%w: start (%d, %d) outside %dx%d island",
			ErrInvalidConfig, c.Game.StartX, c.Game.StartY, c.Game.Width, c.Game.Height)
	}
	return nil
}

// Addr - адрес для http.Server
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// EngineConfig - часть конфига, нужная движку. Seed 0 заменяется временем.
func (c Config) EngineConfig() engine.Config {
	ec := engine.NewConfig()
	if c.Game.Seed != 0 {
		ec.Seed = c.Game.Seed
	} else {
		ec.Seed = time.Now().UnixNano()
	}
	ec.TicksPerSec = c.Game.TicksPerSec
	ec.MapPath = c.Game.MapPath
	ec.Width = c.Game.Width
	ec.Height = c.Game.Height
	ec.Border = c.Game.Border
	ec.PlayerStartX = c.Game.StartX
	ec.PlayerStartY = c.Game.StartY
	ec.Debug = c.Server.Debug
	return ec
}
