package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"linkboard-api/internal/dto"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Event is the envelope pushed to timeline feed subscribers
type Event struct {
	Type      string                     `json:"type"`
	BoardID   string                     `json:"boardId"`
	Entry     *dto.TimelineEntryResponse `json:"entry,omitempty"`
	Timestamp time.Time                  `json:"timestamp"`
}

// client is one subscribed websocket connection
type client struct {
	conn    *websocket.Conn
	send    chan []byte
	boardID uuid.UUID
	userID  uuid.UUID
}

// Hub fans new timeline entries out to the connections subscribed to
// each board. The feed is one-way: clients only receive.
type Hub struct {
	clients    map[uuid.UUID]map[*client]bool
	clientsMu  sync.RWMutex
	register   chan *client
	unregister chan *client
	logger     *zap.Logger
}

// NewHub creates a hub and starts its run loop
func NewHub(logger *zap.Logger) *Hub {
	h := &Hub{
		clients:    make(map[uuid.UUID]map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		logger:     logger,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.clientsMu.Lock()
			if h.clients[c.boardID] == nil {
				h.clients[c.boardID] = make(map[*client]bool)
			}
			h.clients[c.boardID][c] = true
			h.clientsMu.Unlock()

			h.logger.Info("Timeline feed subscribed",
				zap.String("board_id", c.boardID.String()),
				zap.String("user_id", c.userID.String()))

		case c := <-h.unregister:
			h.clientsMu.Lock()
			if clients, ok := h.clients[c.boardID]; ok {
				if _, exists := clients[c]; exists {
					delete(clients, c)
					close(c.send)
					if len(clients) == 0 {
						delete(h.clients, c.boardID)
					}
				}
			}
			h.clientsMu.Unlock()

			h.logger.Info("Timeline feed unsubscribed",
				zap.String("board_id", c.boardID.String()),
				zap.String("user_id", c.userID.String()))
		}
	}
}

// BroadcastTimelineEntry pushes a new entry to every connection
// subscribed to the board. A subscriber with a full send buffer is
// dropped rather than blocking the broadcast.
func (h *Hub) BroadcastTimelineEntry(boardID uuid.UUID, entry *dto.TimelineEntryResponse) {
	payload, err := json.Marshal(Event{
		Type:      "TIMELINE_ENTRY",
		BoardID:   boardID.String(),
		Entry:     entry,
		Timestamp: time.Now(),
	})
	if err != nil {
		h.logger.Warn("Failed to marshal timeline event", zap.Error(err))
		return
	}

	h.clientsMu.RLock()
	clients := make([]*client, 0, len(h.clients[boardID]))
	for c := range h.clients[boardID] {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- payload:
		default:
			h.unregister <- c
		}
	}
}

// SubscriberCount reports how many connections a board feed has
func (h *Hub) SubscriberCount(boardID uuid.UUID) int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients[boardID])
}

// Subscribe upgrades the request and attaches the connection to the
// board's feed. The caller must have verified board access already.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, boardID, userID uuid.UUID) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{
		conn:    conn,
		send:    make(chan []byte, 256),
		boardID: boardID,
		userID:  userID,
	}

	h.register <- c

	go h.writePump(c)
	go h.readPump(c)

	return nil
}

// readPump drains the connection so pings are answered and closes are
// seen; inbound payloads are discarded.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("Timeline feed read error", zap.Error(err))
			}
			break
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
