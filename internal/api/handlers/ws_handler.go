package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/itsd-lab/vendorgate/internal/events"
	"github.com/itsd-lab/vendorgate/pkg/response"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StatusStreamHandler pushes workflow status transitions to dashboard clients.
// Pass ?project_id=N to receive events for a single project only.
func StatusStreamHandler(hub *events.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filterProject uint64
		if raw := c.Query("project_id"); raw != "" {
			var err error
			if filterProject, err = strconv.ParseUint(raw, 10, 64); err != nil {
				c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project_id"})
				return
			}
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
			return
		}

		sub := hub.Subscribe()
		defer hub.Unsubscribe(sub)

		done := make(chan struct{})

		// Reader loop: we never expect payloads, only pongs and close frames.
		go func() {
			defer close(done)
			conn.SetReadLimit(512)
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			conn.SetPongHandler(func(string) error {
				_ = conn.SetReadDeadline(time.Now().Add(pongWait))
				return nil
			})
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
						log.Printf("WebSocket error: %v", err)
					}
					return
				}
			}
		}()

		pingTicker := time.NewTicker(pingPeriod)
		defer pingTicker.Stop()
		defer func() { _ = conn.Close() }()

		for {
			select {
			case ev, ok := <-sub:
				if !ok {
					_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
					return
				}
				if filterProject != 0 && uint64(ev.ProjectID) != filterProject {
					continue
				}
				data, err := json.Marshal(ev)
				if err != nil {
					continue
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
					return
				}

			case <-pingTicker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}

			case <-done:
				return
			}
		}
	}
}
