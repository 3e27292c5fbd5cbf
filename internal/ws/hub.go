package ws

import (
	"log"
	"sync"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
)

// Conn is the minimal connection surface the hub needs. *websocket.Conn
// satisfies it through the wrapper in handler.go; tests register in-memory
// fakes.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Event is the server->client message envelope.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

const (
	EventConnected       = "connected"
	EventAuthenticated   = "authenticated"
	EventNewNotification = "new-notification"
)

type session struct {
	userID uint
	conn   Conn
}

// Hub maps user IDs to their live connections. Delivery is best-effort: the
// notification row in PostgreSQL is the source of truth and the list fetch is
// the fallback path, so pushing to a user with no registered connections is a
// silent no-op.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*session      // connection ID -> session
	users    map[uint]map[string]Conn // user ID -> connection ID -> conn
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]*session),
		users:    make(map[uint]map[string]Conn),
	}
}

// Authenticate registers a connection under a user ID. Re-authenticating an
// already registered connection moves it to the new user rather than
// duplicating it.
func (h *Hub) Authenticate(connID string, userID uint, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if existing, ok := h.sessions[connID]; ok {
		h.removeLocked(connID, existing.userID)
	}

	h.sessions[connID] = &session{userID: userID, conn: conn}
	if h.users[userID] == nil {
		h.users[userID] = make(map[string]Conn)
	}
	h.users[userID][connID] = conn
}

// Disconnect removes a connection from the registry. Unknown connection IDs
// are ignored.
func (h *Hub) Disconnect(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sess, ok := h.sessions[connID]
	if !ok {
		return
	}
	h.removeLocked(connID, sess.userID)
}

func (h *Hub) removeLocked(connID string, userID uint) {
	delete(h.sessions, connID)
	if conns, ok := h.users[userID]; ok {
		delete(conns, connID)
		if len(conns) == 0 {
			delete(h.users, userID)
		}
	}
}

// Push delivers a notification to every connection registered for the user
// and returns how many received it. There is no acknowledgment, retry or
// queueing; a connection whose write fails is evicted and closed.
func (h *Hub) Push(userID uint, notification *models.Notification) int {
	h.mu.RLock()
	conns, ok := h.users[userID]
	if !ok || len(conns) == 0 {
		h.mu.RUnlock()
		return 0
	}

	// Copy so the write loop runs without holding the lock.
	type target struct {
		connID string
		conn   Conn
	}
	targets := make([]target, 0, len(conns))
	for connID, conn := range conns {
		targets = append(targets, target{connID: connID, conn: conn})
	}
	h.mu.RUnlock()

	delivered := 0
	for _, t := range targets {
		err := t.conn.WriteJSON(Event{Type: EventNewNotification, Payload: notification})
		if err != nil {
			log.Printf("Failed to push notification to connection %s: %v", t.connID, err)
			h.mu.Lock()
			h.removeLocked(t.connID, userID)
			h.mu.Unlock()
			t.conn.Close()
			continue
		}
		delivered++
	}
	return delivered
}

// ConnectionCount reports the number of live connections for a user.
func (h *Hub) ConnectionCount(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID])
}
