package actions

import (
	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
	"github.com/thoxyHub/JavIsland/internal/engine/handlers"
	"github.com/thoxyHub/JavIsland/internal/systems"
)

var shortageMsg = map[enums.ResourceType]string{
	enums.ResourceWood:  "Не хватает дерева.",
	enums.ResourceStone: "Не хватает камня.",
}

func HandleBuildWood(ctx handlers.Context) (handlers.Result, error) {
	return build(ctx, enums.ResourceWood)
}

func HandleBuildStone(ctx handlers.Context) (handlers.Result, error) {
	return build(ctx, enums.ResourceStone)
}

func build(ctx handlers.Context, rt enums.ResourceType) (handlers.Result, error) {
	if inv := ctx.Actor.Inventory; inv != nil && inv.Count(rt) == 0 {
		return handlers.Refused(shortageMsg[rt]), nil
	}

	// Вода или занятая клетка - тихий отказ
	systems.PlayerBuild(ctx.Island, ctx.Actor, rt)
	return handlers.EmptyResult(), nil
}
