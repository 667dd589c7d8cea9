package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Emmabm/web-lasrocas-sub000/internal/api/handler/v1/response"
	"github.com/Emmabm/web-lasrocas-sub000/internal/service"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

type FloorPlanService interface {
	Snapshot(ctx context.Context, eventID string) (service.Snapshot, error)
	Subscribe(ctx context.Context, eventID string, fn func(service.Snapshot)) (func(), error)
}

type Client struct {
	conn    *websocket.Conn
	send    chan []byte
	eventID string
}

// FloorPlanHandler pushes a fresh snapshot of an event to every connected
// renderer whenever its planning session changes. One service subscription is
// shared by all clients of the same event.
type FloorPlanHandler struct {
	svc      FloorPlanService
	upgrader websocket.Upgrader

	mu           sync.Mutex
	clients      map[string]map[*Client]struct{}
	unsubscribes map[string]func()
}

func NewFloorPlanHandler(svc FloorPlanService, allowedOrigins []string) *FloorPlanHandler {
	return &FloorPlanHandler{
		svc: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
			},
		},
		clients:      make(map[string]map[*Client]struct{}),
		unsubscribes: make(map[string]func()),
	}
}

// HandleWebSocket godoc
// @Summary      Stream floor plan snapshots
// @Description  Upgrades to a websocket. The current snapshot is sent right away, then one per change.
// @Tags         seating
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      101      {string}  string  "Switching Protocols to WebSocket"
// @Failure      404      {object}  response.Err
// @Router       /events/{eventID}/floorplan/ws [get]
func (h *FloorPlanHandler) HandleWebSocket(ctx *gin.Context) {
	eventID, _, ok := pathParams(ctx)
	if !ok {
		return
	}

	if _, err := h.svc.Snapshot(ctx.Request.Context(), eventID); err != nil {
		response.RenderErr(ctx, response.FromDomainErr(err))
		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.String("event_id", eventID), zap.Error(err))
		return
	}

	client := &Client{
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		eventID: eventID,
	}
	if err = h.register(ctx.Request.Context(), client); err != nil {
		zap.L().Error("floor plan subscription failed", zap.String("event_id", eventID), zap.Error(err))
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump(h)
}

func (h *FloorPlanHandler) register(ctx context.Context, c *Client) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.unsubscribes[c.eventID]; !ok {
		eventID := c.eventID
		unsubscribe, err := h.svc.Subscribe(ctx, eventID, func(snap service.Snapshot) {
			h.broadcast(eventID, snap)
		})
		if err != nil {
			return err
		}
		h.unsubscribes[eventID] = unsubscribe
		h.clients[eventID] = make(map[*Client]struct{})
	}

	// Queued under the lock so no broadcast can overtake it.
	snap, err := h.svc.Snapshot(ctx, c.eventID)
	if err != nil {
		h.dropIfIdle(c.eventID)
		return err
	}
	msg, err := json.Marshal(snap)
	if err != nil {
		h.dropIfIdle(c.eventID)
		return err
	}
	c.send <- msg

	h.clients[c.eventID][c] = struct{}{}
	return nil
}

func (h *FloorPlanHandler) dropIfIdle(eventID string) {
	if len(h.clients[eventID]) > 0 {
		return
	}
	if unsubscribe, ok := h.unsubscribes[eventID]; ok {
		unsubscribe()
	}
	delete(h.unsubscribes, eventID)
	delete(h.clients, eventID)
}

func (h *FloorPlanHandler) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *FloorPlanHandler) removeLocked(c *Client) {
	clients, ok := h.clients[c.eventID]
	if !ok {
		return
	}
	if _, ok = clients[c]; !ok {
		return
	}

	delete(clients, c)
	close(c.send)
	h.dropIfIdle(c.eventID)
}

func (h *FloorPlanHandler) broadcast(eventID string, snap service.Snapshot) {
	msg, err := json.Marshal(snap)
	if err != nil {
		zap.L().Error("failed to encode snapshot", zap.String("event_id", eventID), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients[eventID] {
		select {
		case client.send <- msg:
		default:
			// Too slow to keep up; the renderer reconnects and starts from a fresh snapshot.
			h.removeLocked(client)
		}
	}
}

// ConnectedClients reports how many renderers follow eventID.
func (h *FloorPlanHandler) ConnectedClients(eventID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[eventID])
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only drains control frames; the feed is one-way.
func (c *Client) readPump(h *FloorPlanHandler) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Warn("floor plan connection closed", zap.String("event_id", c.eventID), zap.Error(err))
			}
			return
		}
	}
}
