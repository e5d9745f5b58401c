package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production!
	},
}

type liveClient struct {
	conn *websocket.Conn
	send chan []byte
}

// LiveHandler streams result snapshots to connected admin dashboards.
// Every accepted vote and every admin mutation triggers a fresh broadcast,
// so dashboards never have to poll.
type LiveHandler struct {
	svc          ResultsService
	clients      map[*liveClient]struct{}
	clientsMutex sync.RWMutex
	broadcast    chan []byte
	register     chan *liveClient
	unregister   chan *liveClient
}

func NewLiveHandler(svc ResultsService) *LiveHandler {
	return &LiveHandler{
		svc:        svc,
		clients:    make(map[*liveClient]struct{}),
		broadcast:  make(chan []byte),
		register:   make(chan *liveClient),
		unregister: make(chan *liveClient),
	}
}

func (h *LiveHandler) Run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMutex.Lock()
			h.clients[client] = struct{}{}
			h.clientsMutex.Unlock()
		case client := <-h.unregister:
			h.clientsMutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.clientsMutex.Unlock()
		case message := <-h.broadcast:
			h.clientsMutex.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.clientsMutex.Unlock()
		}
	}
}

// PushUpdate recomputes the full admin-view snapshot and fans it out.
// Failures are logged and swallowed: a broken broadcast must never fail
// the vote that triggered it.
func (h *LiveHandler) PushUpdate(ctx context.Context) {
	resp, err := buildResultsResponse(ctx, h.svc, true)
	if err != nil {
		zap.L().Error("failed to build live results snapshot", zap.Error(err))
		return
	}

	message, err := json.Marshal(resp)
	if err != nil {
		zap.L().Error("failed to marshal live results snapshot", zap.Error(err))
		return
	}

	h.broadcast <- message
}

// HandleLiveResults godoc
// @Summary      Establish WebSocket connection for live results
// @Description  Streams a full results snapshot on connect and after every accepted vote. Admin only.
// @Tags         results,admin
// @Produce      json
// @Success      101  {string}  string "Switching Protocols to WebSocket"
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Router       /results/live [get]
// @Security BearerAuth
func (h *LiveHandler) HandleLiveResults(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Error("failed to upgrade websocket connection", zap.Error(err))
		return
	}

	client := &liveClient{
		conn: conn,
		send: make(chan []byte, 256),
	}
	h.register <- client

	go client.writePump()
	go client.readPump(h)

	// Seed the new subscriber with the current standings.
	h.PushUpdate(ctx.Request.Context())
}

func (c *liveClient) writePump() {
	defer func() {
		c.conn.Close()
	}()
	for message := range c.send {
		w, err := c.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)
		if err := w.Close(); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump discards inbound frames; the feed is one-way. It exists to
// notice the close handshake and unregister the client.
func (c *liveClient) readPump(h *LiveHandler) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Warn("live results client closed unexpectedly", zap.Error(err))
			}
			break
		}
	}
}
