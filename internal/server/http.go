package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/pprof"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/thoxyHub/JavIsland/internal/engine"
	"github.com/thoxyHub/JavIsland/internal/version"
	"github.com/thoxyHub/JavIsland/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

// Server обслуживает одну локальную игровую сессию: к ней подключается
// не более одного WebSocket-клиента.
type Server struct {
	Loop  *engine.Loop
	Addr  string
	Debug bool

	mu     sync.Mutex
	active string

	log *logrus.Entry
}

func New(loop *engine.Loop, addr string, debug bool) *Server {
	return &Server{
		Loop:  loop,
		Addr:  addr,
		Debug: debug,
		log:   logger.Log.WithField("component", "http"),
	}
}

// Handler собирает роуты. Вынесено отдельно для httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	if s.Debug {
		NewDebugHandler(s.Loop).RegisterRoutes(mux)

		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
	return mux
}

// Run слушает Addr до отмены ctx, затем аккуратно гасит соединения.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithFields(logrus.Fields{"addr": s.Addr, "debug": s.Debug}).Info("JavIsland server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("Shutting down HTTP server")
	return srv.Shutdown(shutdownCtx)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// claim занимает единственный слот игрока
func (s *Server) claim(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != "" {
		return false
	}
	s.active = id
	return true
}

func (s *Server) release(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == id {
		s.active = ""
	}
}

// reserved - временная метка слота до апгрейда соединения
const reserved = "pending"

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	if !s.claim(reserved) {
		http.Error(w, "session already has a player", http.StatusConflict)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.release(reserved)
		s.log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.Loop, conn, s.release)

	s.mu.Lock()
	s.active = client.ID
	s.mu.Unlock()

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		s.log.WithError(err).Debug("health write failed")
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Info()); err != nil {
		s.log.WithError(err).Debug("version write failed")
	}
}
