package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/internal/engine/handlers"
	"github.com/thoxyHub/JavIsland/internal/engine/handlers/actions"
	"github.com/thoxyHub/JavIsland/internal/engine/handlers/admin"
	"github.com/thoxyHub/JavIsland/internal/systems"
	"github.com/thoxyHub/JavIsland/pkg/api"
	"github.com/thoxyHub/JavIsland/pkg/islandgen"
	"github.com/thoxyHub/JavIsland/pkg/logger"
	"github.com/thoxyHub/JavIsland/pkg/utils"
)

// Session владеет тремя агрегатами одной игры: островом (сетка + сущности),
// игроком и логикой волн. Все методы вызываются из одной горутины (Loop).
type Session struct {
	ID  string
	cfg Config

	epoch  uint8
	tick   int
	island *domain.Island
	player *domain.Entity
	logic  *GameLogic

	behaviours *systems.Behaviours
	placer     systems.BulletPlacer

	Logs []api.LogEntry

	handlers map[domain.ActionType]handlers.HandlerFunc
	log      *logrus.Entry
}

// NewSession собирает первую игру. Ошибка - только при битой карте.
func NewSession(cfg Config) (*Session, error) {
	s := &Session{
		ID:       utils.NewSessionID(),
		cfg:      cfg,
		placer:   systems.DefaultPlacer,
		Logs:     []api.LogEntry{},
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	s.log = logger.Log.WithFields(logrus.Fields{"component": "session", "session_id": s.ID})

	s.registerHandlers()
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionRestart] = handlers.WithEmptyPayload(actions.HandleRestart)

	s.handlers[domain.ActionMove] = handlers.RequireActor(handlers.WithPayload(actions.HandleMove))
	s.handlers[domain.ActionMelee] = handlers.RequireActor(handlers.WithEmptyPayload(actions.HandleMelee))
	s.handlers[domain.ActionShoot] = handlers.RequireActor(handlers.WithEmptyPayload(actions.HandleShoot))
	s.handlers[domain.ActionBuildWood] = handlers.RequireActor(handlers.WithEmptyPayload(actions.HandleBuildWood))
	s.handlers[domain.ActionBuildStone] = handlers.RequireActor(handlers.WithEmptyPayload(actions.HandleBuildStone))
	s.handlers[domain.ActionToggleInventory] = handlers.RequireActor(handlers.WithEmptyPayload(actions.HandleToggleInventory))

	if !s.cfg.Debug {
		return
	}
	s.handlers[domain.ActionAdminHeal] = handlers.RequireActor(handlers.WithEmptyPayload(admin.HandleHeal))
	s.handlers[domain.ActionAdminGive] = handlers.RequireActor(handlers.WithPayload(admin.HandleGive))
	s.handlers[domain.ActionAdminSkipPrep] = handlers.WithEmptyPayload(admin.HandleSkipPreparation)
	s.handlers[domain.ActionAdminSpawn] = handlers.RequireActor(handlers.WithPayload(admin.HandleSpawn))
}

// Reset полностью заменяет остров, игрока и логику волн. Сиды выводятся
// из мастер-сида и номера эпохи, поэтому одинаковый конфиг даёт одинаковую игру.
func (s *Session) Reset() error {
	epoch := s.epoch + 1
	if epoch == 0 {
		epoch = 1
	}

	b := islandgen.New(utils.NewRand(s.cfg.Seed, "island", int(epoch))).
		WithBorder(s.cfg.Border).
		WithEpoch(epoch).
		WithPlayerStart(s.cfg.PlayerStartX, s.cfg.PlayerStartY)
	if s.cfg.MapPath != "" {
		b.WithMapFile(s.cfg.MapPath)
	} else {
		b.WithProcedural(s.cfg.Width, s.cfg.Height)
	}

	island, start, err := b.Build()
	if err != nil {
		return fmt.Errorf("reset session: %w", err)
	}

	player := islandgen.CreatePlayer(start)
	island.Add(player)
	island.Place(player)

	s.epoch = epoch
	s.tick = 0
	s.island = island
	s.player = player
	s.behaviours = systems.NewBehaviours(utils.NewRand(s.cfg.Seed, "ai", int(epoch)))
	s.logic = NewGameLogic(island, player, utils.NewRand(s.cfg.Seed, "spawn", int(epoch)))
	s.logic.Start()

	x, y := start.Cell()
	s.log.WithFields(logrus.Fields{
		"epoch": epoch,
		"size":  fmt.Sprintf("%dx%d", island.Width(), island.Height()),
		"start": fmt.Sprintf("(%d, %d)", x, y),
	}).Info("Session reset")
	return nil
}

// SkipPreparation - админ-команда: волна начнётся на следующем тике.
func (s *Session) SkipPreparation() bool {
	return s.logic.SkipPreparation()
}

// Execute применяет одно намерение игрока между тиками.
func (s *Session) Execute(cmd domain.InternalCommand) (handlers.Result, error) {
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return handlers.Result{}, fmt.Errorf("action %s is not available", cmd.Action)
	}

	// После конца игры принимаются только INIT и RESTART
	if s.logic.IsGameOver() && cmd.Action != domain.ActionInit && cmd.Action != domain.ActionRestart {
		return handlers.Refused("Игра окончена. RESTART начнёт новую игру."), nil
	}

	ctx := handlers.Context{
		Control: s,
		Island:  s.island,
		Actor:   s.player,
		Placer:  s.placer,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		return result, fmt.Errorf("%s: %w", cmd.Action, err)
	}

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		s.AddLog(result.Msg, msgType)
	}
	return result, nil
}

// Tick продвигает симуляцию на dt.
func (s *Session) Tick(dt time.Duration) {
	wasOver := s.logic.IsGameOver()
	s.logic.Update(dt, s.behaviours)
	s.tick++

	if !wasOver && s.logic.IsGameOver() {
		s.AddLog(fmt.Sprintf("Игра окончена на волне %d.", s.logic.Wave()), "COMBAT")
	}
}

// DrainEvents забирает уведомления острова и логики волн за тик.
func (s *Session) DrainEvents() []domain.Event {
	events := s.island.DrainEvents()
	return append(events, s.logic.DrainEvents()...)
}

func (s *Session) AddLog(text, msgType string) {
	s.Logs = append(s.Logs, api.LogEntry{
		ID:        uuid.NewString(),
		Text:      text,
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
	})
}

// TakeLogs отдаёт накопленные записи лога и очищает буфер.
func (s *Session) TakeLogs() []api.LogEntry {
	out := s.Logs
	s.Logs = []api.LogEntry{}
	return out
}

func (s *Session) Island() *domain.Island { return s.island }
func (s *Session) Player() *domain.Entity { return s.player }
func (s *Session) Logic() *GameLogic      { return s.logic }
func (s *Session) Epoch() uint8           { return s.epoch }
func (s *Session) CurrentTick() int       { return s.tick }
