package engine

import (
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/internal/systems"
	"github.com/thoxyHub/JavIsland/pkg/islandgen"
	"github.com/thoxyHub/JavIsland/pkg/logger"
)

// logEps гасит погрешность логарифма на точных степенях (log₃9 = 1.999…).
const logEps = 1e-9

// MobCount - размер волны с номером wave (нумерация с 1).
func MobCount(wave int) int {
	return int(domain.BaseMobCount*math.Log2(float64(wave+1)) + logEps)
}

// ResourceCount - сколько ресурсов выращивается после completed пройденных волн.
func ResourceCount(completed int) int {
	return int(domain.BaseResourceFactor*math.Log(float64(completed+1))/math.Log(3) + domain.BaseResourceOffset + logEps)
}

// AmmoBonus - патроны, которые игрок получает в начале волны wave.
func AmmoBonus(wave int) int {
	return (wave + 1) * domain.AmmoPerWave
}

// GameLogic - машина состояний подготовка/волна/конец игры поверх острова.
type GameLogic struct {
	island *domain.Island
	player *domain.Entity
	rng    *rand.Rand

	phase enums.Phase
	wave  int

	prepTimer   time.Duration
	bannerTimer time.Duration

	events domain.EventQueue
	log    *logrus.Entry
}

func NewGameLogic(island *domain.Island, player *domain.Entity, rng *rand.Rand) *GameLogic {
	return &GameLogic{
		island: island,
		player: player,
		rng:    rng,
		log:    logger.Log.WithFields(logrus.Fields{"component": "game_logic"}),
	}
}

// Start переводит игру в подготовку к первой волне.
func (g *GameLogic) Start() {
	if g.phase != enums.PhaseUnknown {
		return
	}
	g.startPreparation()
}

// Update - один тик. Порядок: баннер, проверка смерти игрока, таймер подготовки,
// обновление сущностей острова, проверка конца волны.
func (g *GameLogic) Update(dt time.Duration, u domain.Updater) {
	if g.bannerTimer > 0 {
		g.bannerTimer -= dt
		if g.bannerTimer < 0 {
			g.bannerTimer = 0
		}
	}

	if g.phase.Terminal() {
		return
	}

	if g.player.IsDead() {
		g.log.WithField("wave", g.wave).Info("Player died, game over")
		g.setPhase(enums.PhaseGameOver)
		return
	}

	if g.phase == enums.PhasePreparing {
		g.prepTimer -= dt
		if g.prepTimer <= 0 {
			g.startWave()
		}
	}

	g.island.Update(dt, u)

	if g.phase == enums.PhaseWave && !g.island.StillMobsAlive() {
		g.startPreparation()
	}
}

// SkipPreparation обнуляет таймер: волна начнётся на следующем тике.
func (g *GameLogic) SkipPreparation() bool {
	if g.phase != enums.PhasePreparing {
		return false
	}
	g.prepTimer = 0
	return true
}

func (g *GameLogic) startPreparation() {
	g.prepTimer = domain.PreparationDuration

	want := ResourceCount(g.wave)
	placed := islandgen.SpawnResources(g.island, g.rng, want)
	if placed < want {
		g.log.WithFields(logrus.Fields{"want": want, "placed": placed}).Warn("Not enough free cells for resources")
	}
	g.island.SyncOccupancy()

	g.log.WithFields(logrus.Fields{"wave": g.wave, "resources": placed}).Info("Preparation started")
	g.setPhase(enums.PhasePreparing)
}

func (g *GameLogic) startWave() {
	g.wave++
	g.bannerTimer = domain.WaveBannerDuration

	want := MobCount(g.wave)
	placed := islandgen.SpawnMobs(g.island, g.rng, want, g.player.ID)
	if placed < want {
		g.log.WithFields(logrus.Fields{"want": want, "placed": placed}).Warn("Not enough free cells for mobs")
	}

	if err := systems.Grant(g.player, enums.ResourceAmmo, AmmoBonus(g.wave)); err != nil {
		g.log.WithError(err).Warn("Ammo bonus not granted")
	}
	g.island.SyncOccupancy()

	g.log.WithFields(logrus.Fields{"wave": g.wave, "mobs": placed}).Info("Wave started")
	g.setPhase(enums.PhaseWave)
}

func (g *GameLogic) setPhase(p enums.Phase) {
	g.phase = p
	g.events.Publish(domain.Event{
		Type:  domain.EventPhaseChanged,
		Pos:   g.player.Pos(),
		Phase: p.String(),
		Wave:  g.wave,
	})
}

// DrainEvents отдаёт накопленные PHASE_CHANGED.
func (g *GameLogic) DrainEvents() []domain.Event {
	return g.events.Drain()
}

func (g *GameLogic) Phase() enums.Phase { return g.phase }
func (g *GameLogic) Wave() int          { return g.wave }

func (g *GameLogic) IsGameOver() bool {
	return g.phase == enums.PhaseGameOver
}

func (g *GameLogic) PreparationLeft() time.Duration {
	if g.phase != enums.PhasePreparing || g.prepTimer < 0 {
		return 0
	}
	return g.prepTimer
}

// BannerLeft - остаток показа баннера «Волна N». На логику не влияет.
func (g *GameLogic) BannerLeft() time.Duration {
	return g.bannerTimer
}
