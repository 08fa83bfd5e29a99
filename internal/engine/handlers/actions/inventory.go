package actions

import (
	"github.com/thoxyHub/JavIsland/internal/engine/handlers"
	"github.com/thoxyHub/JavIsland/internal/systems"
)

func HandleToggleInventory(ctx handlers.Context) (handlers.Result, error) {
	if err := systems.ToggleInventory(ctx.Actor); err != nil {
		return handlers.Result{}, err
	}
	return handlers.EmptyResult(), nil
}
