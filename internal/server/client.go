package server

import (
	"ethereplodor-server/internal/engine"
	"ethereplodor-server/pkg/api"
	"ethereplodor-server/pkg/logger"
	"ethereplodor-server/pkg/utils"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client bridges one websocket and the simulation: commands in, snapshots out.
type Client struct {
	Sim  *engine.Simulation
	Conn *websocket.Conn
	ID   string

	updates <-chan api.Snapshot
	log     *logrus.Entry
}

// NewClient subscribes right away so writePump can start before readPump.
func NewClient(sim *engine.Simulation, conn *websocket.Conn) *Client {
	id := "session_" + utils.GenerateID()
	return &Client{
		Sim:     sim,
		Conn:    conn,
		ID:      id,
		updates: sim.Hub.Register(id),
		log:     logger.Component("ws").WithField("session", id),
	}
}

// readPump forwards commands until the socket dies.
func (c *Client) readPump() {
	defer func() {
		c.Sim.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	c.log.Info("Client connected")
	if err := c.Sim.Submit(api.ClientCommand{Action: "INIT"}); err != nil {
		c.log.WithError(err).Warn("INIT rejected")
	}

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS error")
			}
			return
		}
		if err := c.Sim.Submit(cmd); err != nil {
			c.log.WithError(err).WithField("action", cmd.Action).Debug("Command refused")
		}
	}
}

// writePump streams snapshots and pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case snap, ok := <-c.updates:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(snap); err != nil {
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
