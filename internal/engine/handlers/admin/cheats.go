package admin

import (
	"fmt"

	"github.com/thoxyHub/JavIsland/internal/core/types"
	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/engine/handlers"
	"github.com/thoxyHub/JavIsland/internal/systems"
	"github.com/thoxyHub/JavIsland/pkg/api"
	"github.com/thoxyHub/JavIsland/pkg/islandgen"
)

// HandleHeal восстанавливает здоровье живого игрока до максимума.
func HandleHeal(ctx handlers.Context) (handlers.Result, error) {
	ctx.Island.SetHealth(ctx.Actor, ctx.Actor.MaxHealth)
	return handlers.Result{Msg: "Fully Healed", MsgType: "INFO"}, nil
}

// HandleGive: { "resource": "ammo", "count": 20 }
func HandleGive(ctx handlers.Context, p api.ResourcePayload) (handlers.Result, error) {
	rt := enums.ParseResourceType(p.Resource)
	if err := systems.Grant(ctx.Actor, rt, p.Count); err != nil {
		return handlers.Result{}, fmt.Errorf("give %q: %w", p.Resource, err)
	}
	return handlers.Result{Msg: fmt.Sprintf("+%d %s", p.Count, rt), MsgType: "INFO"}, nil
}

func HandleSkipPreparation(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Control.SkipPreparation() {
		return handlers.Refused("Волна уже идёт"), nil
	}
	return handlers.Result{Msg: "Подготовка пропущена", MsgType: "INFO"}, nil
}

// HandleSpawn: { "template": "mob", "x": 12, "y": 9 }. Без координат -
// на клетку перед игроком.
func HandleSpawn(ctx handlers.Context, p api.SpawnPayload) (handlers.Result, error) {
	tmpl, ok := islandgen.LookupTemplate(p.Template)
	if !ok {
		return handlers.Refused("Unknown template"), nil
	}

	x, y := p.X, p.Y
	if x == 0 && y == 0 {
		x, y = ctx.Actor.Ahead().Cell()
	}

	target := types.NilEntityID
	if tmpl.Kind == enums.EntityKindMob {
		target = ctx.Actor.ID
	}

	e, ok := islandgen.SpawnAt(ctx.Island, tmpl, x, y, target)
	if !ok {
		return handlers.Refused(fmt.Sprintf("Клетка (%d, %d) занята или непроходима", x, y)), nil
	}
	return handlers.Result{Msg: fmt.Sprintf("Spawned %s at (%d, %d)", e.Name, x, y), MsgType: "INFO"}, nil
}
