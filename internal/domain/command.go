package domain

import "encoding/json"

// InternalCommand - то, что путешествует внутри движка от транспорта до цикла сессии
type InternalCommand struct {
	Action  ActionType      // Число! Быстро и безопасно.
	Token   string          // ID подписчика, приславшего команду
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
