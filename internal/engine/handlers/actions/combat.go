package actions

import (
	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/engine/handlers"
	"github.com/thoxyHub/JavIsland/internal/systems"
)

func HandleMelee(ctx handlers.Context) (handlers.Result, error) {
	systems.PlayerMelee(ctx.Island, ctx.Actor)
	return handlers.EmptyResult(), nil
}

func HandleShoot(ctx handlers.Context) (handlers.Result, error) {
	if systems.PlayerShoot(ctx.Island, ctx.Actor, ctx.Placer) {
		return handlers.EmptyResult(), nil
	}
	if inv := ctx.Actor.Inventory; inv != nil && inv.Count(enums.ResourceAmmo) == 0 {
		return handlers.Refused("Нет патронов."), nil
	}
	return handlers.EmptyResult(), nil
}
