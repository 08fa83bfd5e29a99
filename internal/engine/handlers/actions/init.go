package actions

import "github.com/thoxyHub/JavIsland/internal/engine/handlers"

func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Добро пожаловать на остров. Готовьтесь к первой волне.",
		MsgType: "INFO",
		Resync:  true,
	}, nil
}

// HandleRestart заменяет остров, игрока и логику волн новыми.
func HandleRestart(ctx handlers.Context) (handlers.Result, error) {
	if err := ctx.Control.Reset(); err != nil {
		return handlers.Result{}, err
	}
	return handlers.Result{Msg: "Новая игра.", MsgType: "INFO", Resync: true}, nil
}
