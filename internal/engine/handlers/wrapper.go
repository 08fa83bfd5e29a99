package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/thoxyHub/JavIsland/pkg/api"
)

// ErrMissingPayload - команда требует данных, а пришёл пустой payload.
var ErrMissingPayload = errors.New("payload is required")

// TypedHandlerFunc - это "чистый" хендлер, который работает с готовой структурой T
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужны данные (MELEE, SHOOT, RESTART)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Она берет на себя Unmarshal и Validate.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		var payload T

		if len(raw) == 0 || string(raw) == "null" {
			return Result{}, ErrMissingPayload
		}

		// 1. Распаковка JSON
		if err := json.Unmarshal(raw, &payload); err != nil {
			return Result{}, fmt.Errorf("invalid payload format: %w", err)
		}

		// 2. Автоматическая валидация
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("validation failed: %w", err)
			}
		}

		// 3. Вызов чистой логики
		return handler(ctx, payload)
	}
}

// WithEmptyPayload - обертка для команд без данных
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		return handler(ctx)
	}
}

// RequireActor отсекает команды, пока у сессии нет живого игрока.
func RequireActor(next HandlerFunc) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		if ctx.Actor == nil || ctx.Island == nil {
			return Result{}, errors.New("no active player")
		}
		if ctx.Actor.IsDead() {
			return Refused("Вы мертвы. RESTART начнёт новую игру."), nil
		}
		return next(ctx, raw)
	}
}
