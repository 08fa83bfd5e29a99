package agent

import (
	"context"
	"encoding/json"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/internal/engine"
	"github.com/thoxyHub/JavIsland/internal/systems"
	"github.com/thoxyHub/JavIsland/pkg/api"
	"github.com/thoxyHub/JavIsland/pkg/logger"
)

// ShootRange - дальше бот не стреляет, а подходит
const ShootRange = 6

// Bot - автопилот игрока (Headless Agent). Подписывается на Hub как обычный
// клиент, по снимкам восстанавливает локальную карту и отправляет намерения
// через Loop.Submit. Путь ищет той же системой, что и мобы.
//
// Жизненный цикл:
//  1. NewBot -> регистрация в хабе, личный канал (Inbox).
//  2. Run -> слушает Inbox до отмены ctx.
//  3. На каждый снимок во время волны Decide выбирает одно намерение.
type Bot struct {
	ID    string
	Loop  *engine.Loop
	Inbox chan api.ServerResponse

	// поверхность острова из последнего полного снимка
	tiles [][]enums.TileType
	log   *logrus.Entry
}

func NewBot(loop *engine.Loop) *Bot {
	id := "bot-" + uuid.NewString()
	return &Bot{
		ID:    id,
		Loop:  loop,
		Inbox: loop.Hub.Register(id),
		log:   logger.Log.WithFields(logrus.Fields{"component": "bot", "bot_id": id}),
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run(ctx context.Context) error {
	defer b.Loop.Hub.Unregister(b.ID)
	b.log.Info("Autopilot engaged")

	// Карту бот узнаёт только из полного снимка
	if err := b.Loop.Submit(api.ClientCommand{Action: domain.ActionInit.String(), Token: b.ID}); err != nil {
		b.log.WithError(err).Warn("INIT rejected")
	}

	for {
		select {
		case <-ctx.Done():
			b.log.Info("Autopilot shut down")
			return nil
		case state, ok := <-b.Inbox:
			if !ok {
				return nil
			}
			b.Observe(state)
			cmd, ok := b.Decide(state)
			if !ok {
				continue
			}
			cmd.Token = b.ID
			if err := b.Loop.Submit(cmd); err != nil {
				b.log.WithError(err).Debug("Intent dropped")
			}
		}
	}
}

// Observe запоминает карту из полного снимка.
func (b *Bot) Observe(state api.ServerResponse) {
	if state.Type != engine.MsgTypeFull || state.Grid == nil || len(state.Map) == 0 {
		return
	}

	width, height := state.Grid.Width, state.Grid.Height
	tiles := make([][]enums.TileType, height)
	for y := range tiles {
		tiles[y] = make([]enums.TileType, width) // TileWater == 0
	}
	for _, tv := range state.Map {
		if tv.Y < 0 || tv.Y >= height || tv.X < 0 || tv.X >= width {
			continue
		}
		if t, ok := enums.ParseTileType(tv.Type); ok {
			tiles[tv.Y][tv.X] = t
		}
	}
	b.tiles = tiles
}

// Decide - мозг бота. Атакует ближайшего моба: вплотную мечом,
// на одной линии из пистолета, иначе идёт к нему кратчайшим путём.
func (b *Bot) Decide(state api.ServerResponse) (api.ClientCommand, bool) {
	if b.tiles == nil || state.Game.Phase != enums.PhaseWave.String() {
		return api.ClientCommand{}, false
	}

	me, target := findActors(state)
	if me == nil || target == nil {
		return api.ClientCommand{}, false
	}
	if me.Stats != nil && me.Stats.IsDead {
		return api.ClientCommand{}, false
	}

	sx, sy := cellOf(me)
	tx, ty := cellOf(target)
	dx, dy := tx-sx, ty-sy

	// Вплотную: довернуться и ударить
	if abs(dx)+abs(dy) == 1 {
		if facing(me, dx, dy) {
			return api.ClientCommand{Action: domain.ActionMelee.String()}, true
		}
		return moveCommand(dx, dy), true
	}

	// На одной линии: довернуться и выстрелить
	if (dx == 0 || dy == 0) && abs(dx)+abs(dy) <= ShootRange && ammo(me) > 0 {
		ux, uy := sign(dx), sign(dy)
		if facing(me, ux, uy) {
			return api.ClientCommand{Action: domain.ActionShoot.String()}, true
		}
		return moveCommand(ux, uy), true
	}

	local, err := b.buildLocalIsland(state, me.ID)
	if err != nil {
		b.log.WithError(err).Warn("Error building local island")
		return api.ClientCommand{}, false
	}
	step, ok := systems.PathStep(local, sx, sy, tx, ty)
	if !ok {
		return api.ClientCommand{}, false
	}
	ox, oy := step.Delta()
	return moveCommand(ox, oy), true
}

// buildLocalIsland создает локальную копию острова: поверхность из последнего
// полного снимка, занятость клеток - из текущего.
func (b *Bot) buildLocalIsland(state api.ServerResponse, self string) (*domain.Island, error) {
	border := 0
	if state.Grid != nil {
		border = state.Grid.Border
	}

	local, err := domain.NewIsland(b.tiles, border, 1)
	if err != nil {
		return nil, err
	}

	for _, ev := range state.Entities {
		if ev.ID == self {
			continue
		}
		kind := enums.ParseEntityKind(ev.Type)
		if kind == enums.EntityKindUnknown || kind.IsProjectile() {
			continue
		}
		e := domain.NewEntity(kind, ev.Name, domain.Vec(ev.Pos.X, ev.Pos.Y), 1)
		local.Add(e)
		local.Place(e)
	}
	return local, nil
}

// findActors ищет в снимке себя и ближайшего живого моба
func findActors(state api.ServerResponse) (me, target *api.EntityView) {
	for i := range state.Entities {
		if state.Entities[i].ID == state.MyEntityID {
			me = &state.Entities[i]
			break
		}
	}
	if me == nil {
		return nil, nil
	}

	sx, sy := cellOf(me)
	best := math.MaxInt
	for i := range state.Entities {
		ev := &state.Entities[i]
		if ev.Type != enums.EntityKindMob.String() || (ev.Stats != nil && ev.Stats.IsDead) {
			continue
		}
		x, y := cellOf(ev)
		if d := abs(x-sx) + abs(y-sy); d < best {
			best = d
			target = ev
		}
	}
	return me, target
}

// --- Хелперы ---

func cellOf(ev *api.EntityView) (int, int) {
	return domain.Vec(ev.Pos.X, ev.Pos.Y).Cell()
}

func facing(me *api.EntityView, dx, dy int) bool {
	o, ok := domain.OrientationFromVector(domain.Vec(float64(dx), float64(dy)))
	return ok && me.Facing == o.String()
}

func ammo(me *api.EntityView) int {
	if me.Inventory == nil {
		return 0
	}
	for _, it := range me.Inventory.Items {
		if it.Resource == enums.ResourceAmmo.String() {
			return it.Quantity
		}
	}
	return 0
}

func moveCommand(dx, dy int) api.ClientCommand {
	payload, _ := json.Marshal(api.DirectionPayload{Dx: dx, Dy: dy})
	return api.ClientCommand{Action: domain.ActionMove.String(), Payload: payload}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
