package preview

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// Recorder receives hub events. *metrics.Observer satisfies it.
type Recorder interface {
	ClientConnected()
	ClientDisconnected()
	WebSocketError(typ string)
}

type nopRecorder struct{}

func (nopRecorder) ClientConnected()      {}
func (nopRecorder) ClientDisconnected()   {}
func (nopRecorder) WebSocketError(string) {}

// Hub fans encoded patch batches out to connected preview clients.
type Hub struct {
	clients  map[*client]struct{}
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	recorder Recorder
	logger   *slog.Logger
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(websocket.BinaryMessage, data)
}

// NewHub creates a hub. A nil recorder disables event reporting.
func NewHub(recorder Recorder, logger *slog.Logger) *Hub {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true // local preview only
			},
		},
		recorder: recorder,
		logger:   logger,
	}
}

// Upgrade switches the request to a WebSocket connection.
func (h *Hub) Upgrade(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.recorder.WebSocketError("upgrade")
		return nil, err
	}
	return conn, nil
}

// join registers conn for broadcasts and sends it hello. The caller must
// hold the lock that orders broadcasts, so hello is always the first frame.
func (h *Hub) join(conn *websocket.Conn, hello []byte) (*client, error) {
	c := &client{conn: conn}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	if err := c.write(hello); err != nil {
		h.recorder.WebSocketError("write")
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		conn.Close()
		return nil, err
	}

	h.recorder.ClientConnected()
	h.logger.Debug("preview client connected", "remote", conn.RemoteAddr().String())
	return c, nil
}

// serve blocks until the client goes away, then unregisters it.
func (h *Hub) serve(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
	h.drop(c)
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()

	c.conn.Close()
	if ok {
		h.recorder.ClientDisconnected()
		h.logger.Debug("preview client disconnected")
	}
}

// Broadcast writes data to every client and returns how many received it.
// Clients that fail are dropped.
func (h *Hub) Broadcast(data []byte) int {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	sent := 0
	for _, c := range clients {
		if err := c.write(data); err != nil {
			h.recorder.WebSocketError("write")
			h.drop(c)
			continue
		}
		sent++
	}
	return sent
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for c := range clients {
		c.conn.Close()
		h.recorder.ClientDisconnected()
	}
}
