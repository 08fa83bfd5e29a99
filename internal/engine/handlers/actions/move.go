package actions

import (
	"fmt"

	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/internal/engine/handlers"
	"github.com/thoxyHub/JavIsland/internal/systems"
	"github.com/thoxyHub/JavIsland/pkg/api"
)

func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	o, ok := domain.OrientationFromVector(domain.CellVector(p.Dx, p.Dy))
	if !ok {
		return handlers.Result{}, fmt.Errorf("no orientation for (%d, %d)", p.Dx, p.Dy)
	}

	// Кулдаун шага или блокировка - не ошибка, просто ничего не происходит
	systems.PlayerMove(ctx.Island, ctx.Actor, o)
	return handlers.EmptyResult(), nil
}
