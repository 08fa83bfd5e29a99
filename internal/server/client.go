package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/thoxyHub/JavIsland/internal/engine"
	"github.com/thoxyHub/JavIsland/pkg/api"
	"github.com/thoxyHub/JavIsland/pkg/logger"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket и циклом симуляции
type Client struct {
	Loop *engine.Loop
	Conn *websocket.Conn
	ID   string

	updates chan api.ServerResponse
	release func(id string)
	log     *logrus.Entry
}

func NewClient(loop *engine.Loop, conn *websocket.Conn, release func(id string)) *Client {
	id := uuid.NewString()
	return &Client{
		Loop:    loop,
		Conn:    conn,
		ID:      id,
		updates: loop.Hub.Register(id),
		release: release,
		log:     logger.Log.WithFields(logrus.Fields{"component": "ws_client", "client_id": id}),
	}
}

// readPump читает намерения клиента и передает их в цикл
func (c *Client) readPump() {
	defer func() {
		c.Loop.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		if c.release != nil {
			c.release(c.ID)
		}
		c.log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	c.log.Info("Client connected")

	// Первый снимок клиент получает полным
	if err := c.Loop.Submit(api.ClientCommand{Action: "INIT", Token: c.ID}); err != nil {
		c.log.WithError(err).Warn("INIT rejected")
	}

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS read error")
			}
			return
		}
		cmd.Token = c.ID
		if err := c.Loop.Submit(cmd); err != nil {
			c.Loop.Hub.SendTo(c.ID, api.ServerResponse{
				Type: "ERROR",
				Logs: []api.LogEntry{{Text: err.Error(), Type: "ERROR", Timestamp: time.Now().UnixMilli()}},
			})
		}
	}
}

// writePump отправляет снимки клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.updates:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
