package handlers

import (
	"encoding/json"

	"github.com/thoxyHub/JavIsland/internal/domain"
	"github.com/thoxyHub/JavIsland/internal/systems"
)

// Controller описывает управление сессией поверх острова.
// Session неявно реализует этот интерфейс.
type Controller interface {
	Reset() error
	SkipPreparation() bool
}

// Context передает хендлеру состояние сессии.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Control Controller
	Island  *domain.Island
	Actor   *domain.Entity // Игрок, от имени которого выполняется команда
	Placer  systems.BulletPlacer
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, ERROR)
	// Resync - клиенту нужен полный снимок с картой
	Resync bool
}

// HandlerFunc - это контракт для любой команды (MOVE, SHOOT, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

// Refused - отказ, который игрок должен увидеть.
func Refused(msg string) Result {
	return Result{Msg: msg, MsgType: "ERROR"}
}
