package domain

import (
	"strings"

	"github.com/thoxyHub/JavIsland/internal/core/types"
	"github.com/thoxyHub/JavIsland/internal/core/types/enums"
)

// EventType - вид уведомления для слоя представления
type EventType uint8

const (
	EventUnknown EventType = iota
	EventEntityAdded
	EventEntityRemoved
	EventPositionChanged
	EventHealthChanged
	EventInventoryChanged
	EventPhaseChanged
)

// Маппинг для конвертации JSON -> Domain
var eventStringToType = map[string]EventType{
	"ENTITY_ADDED":      EventEntityAdded,
	"ENTITY_REMOVED":    EventEntityRemoved,
	"POSITION_CHANGED":  EventPositionChanged,
	"HEALTH_CHANGED":    EventHealthChanged,
	"INVENTORY_CHANGED": EventInventoryChanged,
	"PHASE_CHANGED":     EventPhaseChanged,
}

// Маппинг для логов Domain -> String
var eventTypeToString = map[EventType]string{
	EventEntityAdded:      "ENTITY_ADDED",
	EventEntityRemoved:    "ENTITY_REMOVED",
	EventPositionChanged:  "POSITION_CHANGED",
	EventHealthChanged:    "HEALTH_CHANGED",
	EventInventoryChanged: "INVENTORY_CHANGED",
	EventPhaseChanged:     "PHASE_CHANGED",
}

// ParseEvent конвертирует строку из JSON в EventType
func ParseEvent(s string) EventType {
	if val, ok := eventStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return EventUnknown
}

func (t EventType) String() string {
	if val, ok := eventTypeToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// Event - уведомление об изменении. Несёт хэндл изменённого субъекта;
// остальные поля - снимок значений на момент изменения.
type Event struct {
	Type   EventType        `json:"type"`
	Entity types.EntityID   `json:"entity,omitempty"`
	Kind   enums.EntityKind `json:"kind,omitempty"`
	Pos    Vector           `json:"pos"`
	Facing Orientation      `json:"facing,omitempty"`
	Health int              `json:"health,omitempty"`
	// Phase заполняется для PHASE_CHANGED
	Phase string `json:"phase,omitempty"`
	Wave  int    `json:"wave,omitempty"`
}

// EventQueue - исходящий канал событий одного агрегата. Заполняется внутри тика
// владельцем, забирается циклом сессии после тика через Drain.
type EventQueue struct {
	events []Event
}

func (q *EventQueue) Publish(e Event) {
	q.events = append(q.events, e)
}

// Drain отдаёт накопленные события и очищает очередь.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

func (q *EventQueue) Len() int {
	return len(q.events)
}
