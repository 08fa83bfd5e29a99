package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/internal/network"
	"github.com/thoxyHub/JavIsland/pkg/api"
	"github.com/thoxyHub/JavIsland/pkg/logger"
)

const (
	// CommandBuffer - глубина очереди намерений между тиками
	CommandBuffer = 100
	// maxFrame ограничивает dt после долгой паузы (GC, отладчик)
	maxFrame = 250 * time.Millisecond
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrQueueFull     = errors.New("command queue is full")
)

// DebugView - последний полный снимок и текстовая карта для /debug.
type DebugView struct {
	Snapshot *api.ServerResponse
	ASCII    string
}

// Loop - единственная горутина, владеющая сессией. Намерения приходят через
// Submit и применяются между тиками; после каждого тика события рассылаются через Hub.
type Loop struct {
	session  *Session
	Hub      *network.Broadcaster
	commands chan domain.InternalCommand

	interval time.Duration
	// heartbeat - раз в сколько тиков слать снимок без изменений (таймеры волн)
	heartbeat int
	resync    bool

	debug atomic.Pointer[DebugView]
	log   *logrus.Entry
}

func NewLoop(s *Session, hub *network.Broadcaster, cfg Config) *Loop {
	heartbeat := cfg.TicksPerSec / 4
	if heartbeat < 1 {
		heartbeat = 1
	}

	l := &Loop{
		session:   s,
		Hub:       hub,
		commands:  make(chan domain.InternalCommand, CommandBuffer),
		interval:  cfg.TickInterval(),
		heartbeat: heartbeat,
		resync:    true,
		log:       logger.Log.WithFields(logrus.Fields{"component": "game_loop", "session_id": s.ID}),
	}
	// События сборки острова уйдут с первым полным снимком
	l.storeDebug(BuildSnapshot(s, true, nil, nil))
	return l
}

// Submit принимает команду от транспорта (WebSocket). Никогда не блокирует.
func (l *Loop) Submit(externalCmd api.ClientCommand) error {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		l.log.WithField("action", externalCmd.Action).Warn("Unknown action")
		return ErrUnknownAction
	}

	select {
	case l.commands <- domain.InternalCommand{
		Action:  actionType,
		Token:   externalCmd.Token,
		Payload: externalCmd.Payload,
	}:
		return nil
	default:
		l.log.WithField("action", actionType).Warn("Command queue full, intent dropped")
		return ErrQueueFull
	}
}

// Run крутит симуляцию до отмены ctx.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.log.WithField("interval", l.interval).Info("Game loop started")
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			l.log.Info("Game loop stopped")
			return nil

		case cmd := <-l.commands:
			l.Apply(cmd)

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > maxFrame {
				dt = maxFrame
			}
			l.Step(dt)
		}
	}
}

// Apply выполняет намерение сразу. Вызывается только из горутины цикла (или теста).
func (l *Loop) Apply(cmd domain.InternalCommand) {
	result, err := l.session.Execute(cmd)
	if err != nil {
		l.log.WithError(err).WithField("action", cmd.Action).Warn("Command failed")
		return
	}
	if result.Resync {
		l.resync = true
	}
}

// Step - один тик симуляции и рассылка.
func (l *Loop) Step(dt time.Duration) {
	l.session.Tick(dt)
	l.publish()
}

func (l *Loop) publish() {
	s := l.session
	events := s.DrainEvents()
	logs := s.TakeLogs()

	snap := BuildSnapshot(s, true, events, logs)
	l.storeDebug(snap)

	full := l.resync
	l.resync = false

	changed := len(events) > 0 || len(logs) > 0
	if !full && !changed && s.CurrentTick()%l.heartbeat != 0 {
		return
	}
	if l.Hub == nil {
		return
	}

	msg := *snap
	if !full {
		msg.Type = MsgTypeUpdate
		msg.Map = nil
	}
	l.Hub.Broadcast(msg)
}

func (l *Loop) storeDebug(snap *api.ServerResponse) {
	l.debug.Store(&DebugView{Snapshot: snap, ASCII: RenderASCII(l.session.Island())})
}

// Debug - последний снимок для debug-эндпоинтов. Безопасно из любой горутины.
func (l *Loop) Debug() *DebugView {
	return l.debug.Load()
}
