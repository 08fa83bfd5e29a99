package server

import (
	"encoding/json"
	"net/http"

	"github.com/thoxyHub/JavIsland/internal/engine"
	"github.com/thoxyHub/JavIsland/pkg/api"
	"github.com/thoxyHub/JavIsland/pkg/logger"
)

// DebugHandler отдает последний снимок цикла. Сессию напрямую не трогает:
// она принадлежит горутине цикла.
type DebugHandler struct {
	Loop *engine.Loop
}

func NewDebugHandler(l *engine.Loop) *DebugHandler {
	return &DebugHandler{Loop: l}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleState)
	mux.HandleFunc("/debug/map", h.handleMap)
	mux.HandleFunc("/debug/entities", h.handleEntities)
}

// /debug/state - полный снимок, как его видит клиент
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	view := h.Loop.Debug()
	if view == nil {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, view.Snapshot)
}

// /debug/map - остров символами глифов
func (h *DebugHandler) handleMap(w http.ResponseWriter, r *http.Request) {
	view := h.Loop.Debug()
	if view == nil {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(view.ASCII)); err != nil {
		logger.Log.WithError(err).Debug("debug map write failed")
	}
}

// /debug/entities?kind=MOB - сущности снимка, опционально по типу
func (h *DebugHandler) handleEntities(w http.ResponseWriter, r *http.Request) {
	view := h.Loop.Debug()
	if view == nil {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}

	kind := r.URL.Query().Get("kind")
	if kind == "" {
		writeJSON(w, view.Snapshot.Entities)
		return
	}

	filtered := []api.EntityView{}
	for _, e := range view.Snapshot.Entities {
		if e.Type == kind {
			filtered = append(filtered, e)
		}
	}
	writeJSON(w, filtered)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (локальный debug-клиент)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Debug("debug json write failed")
	}
}
