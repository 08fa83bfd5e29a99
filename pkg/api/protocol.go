package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Полный снимок (с картой) уходит на INIT и после перезапуска, дальше - только
// сущности и события, накопленные за тик.
type ServerResponse struct {
	// Type тип сообщения: "FULL" или "UPDATE".
	Type string `json:"type"`

	// Tick номер тика симуляции.
	Tick int `json:"tick"`

	SessionID  string `json:"sessionId"`
	MyEntityID string `json:"myEntityId,omitempty"`

	// Game стадия игры и таймеры
	Game GameView `json:"game"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map все тайлы острова. Только в полном снимке.
	Map []TileView `json:"map,omitempty"`

	// Entities все живые сущности.
	Entities []EntityView `json:"entities,omitempty"`

	// Events уведомления об изменениях за тик.
	Events []EventView `json:"events,omitempty"`

	// Logs срез новых сообщений с прошлой рассылки.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GameView - состояние волн.
type GameView struct {
	Phase         string `json:"phase"`
	Wave          int    `json:"wave"`
	PreparationMs int64  `json:"preparationMs"`
	// BannerMs - сколько ещё показывать баннер "Волна N"
	BannerMs int64 `json:"bannerMs,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
	Border int `json:"border"`
}

// TileView это DTO для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	Type string `json:"type"` // WATER, GRASS, SAND, HILL

	// Symbol и Color - визуальное представление тайла (e.g. "~" для воды).
	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	IsWalkable bool   `json:"isWalkable"`
	Occupant   string `json:"occupant,omitempty"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // PLAYER, MOB, TREE, ROCK, WOOD_BLOCK, STONE_BLOCK, BULLET
	Name string `json:"name"`

	Pos struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	Facing string `json:"facing,omitempty"`
	State  string `json:"state,omitempty"`

	Stats *StatsView `json:"stats,omitempty"`

	// Inventory инвентарь сущности (только игрок)
	Inventory *InventoryView `json:"inventory,omitempty"`
}

// StatsView это DTO для характеристик сущности.
type StatsView struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	IsDead bool `json:"isDead"`
}

// ItemView представляет предмет для клиента
type ItemView struct {
	Kind     string `json:"kind"`               // RESOURCE, SWORD, GUN
	Resource string `json:"resource,omitempty"` // STONE, WOOD, GOLD, AMMO
	Quantity int    `json:"quantity"`
	Damage   int    `json:"damage,omitempty"`
}

// InventoryView представляет инвентарь для клиента
type InventoryView struct {
	Items   []ItemView  `json:"items"`
	IsOpen  bool        `json:"isOpen"`
	Pockets []*ItemView `json:"pockets"`
}

// EventView - одно уведомление об изменении.
type EventView struct {
	Type   string  `json:"type"`
	Entity string  `json:"entity,omitempty"`
	Kind   string  `json:"kind,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Facing string  `json:"facing,omitempty"`
	Health int     `json:"health,omitempty"`
	Phase  string  `json:"phase,omitempty"`
	Wave   int     `json:"wave,omitempty"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID подписчика. Заполняется сервером, клиентское значение игнорируется.
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для MOVE.
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// ResourcePayload используется для ADMIN_GIVE.
type ResourcePayload struct {
	Resource string `json:"resource"`
	Count    int    `json:"count"`
}

// SpawnPayload используется для ADMIN_SPAWN: { "template": "mob", "x": 12, "y": 9 }
type SpawnPayload struct {
	Template string `json:"template"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}
