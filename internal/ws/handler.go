package ws

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var connSeq uint64

// authMessage is the one client->server message the channel understands:
// an authenticate handshake carrying the app JWT.
type authMessage struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

// wsConn wraps *websocket.Conn so the hub's push path and the ping loop can
// write concurrently.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(v)
}

func (c *wsConn) writePing() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

// Handler serves the notification websocket endpoint.
type Handler struct {
	hub       *Hub
	jwtSecret string
	upgrader  websocket.Upgrader
}

// NewHandler creates a websocket Handler bound to the given hub.
func NewHandler(hub *Hub) *Handler {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "supersecretjwtkey"
	}
	return &Handler{
		hub:       hub,
		jwtSecret: jwtSecret,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RegisterRoutes registers the websocket route on an unauthenticated group;
// the connection authenticates itself via the handshake message.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/notifications", h.Serve)
}

// Serve upgrades the connection, waits for the authenticate handshake,
// registers the connection with the hub and then holds the read loop open
// for keepalive until the client goes away.
func (h *Handler) Serve(c echo.Context) error {
	raw, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return nil
	}

	connID := fmt.Sprintf("conn-%d", atomic.AddUint64(&connSeq, 1))
	conn := &wsConn{conn: raw}
	authenticated := false

	defer func() {
		if authenticated {
			h.hub.Disconnect(connID)
		}
		raw.Close()
		log.Printf("WebSocket connection %s closed", connID)
	}()

	raw.SetReadLimit(maxMessageSize)
	if err := raw.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return nil
	}
	raw.SetPongHandler(func(string) error {
		return raw.SetReadDeadline(time.Now().Add(pongWait))
	})

	if err := conn.WriteJSON(Event{Type: EventConnected}); err != nil {
		log.Printf("Failed to send welcome message: %v", err)
		return nil
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.writePing(); err != nil {
					log.Printf("Ping failed for connection %s: %v", connID, err)
					return
				}
			}
		}
	}()

	for {
		if err := raw.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			break
		}

		_, message, err := raw.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for connection %s: %v", connID, err)
			}
			break
		}

		var msg authMessage
		if err := json.Unmarshal(message, &msg); err != nil || msg.Type != "authenticate" {
			continue
		}

		userID, err := h.parseToken(msg.Token)
		if err != nil {
			log.Printf("WebSocket authentication failed for connection %s: %v", connID, err)
			continue
		}

		// Re-authentication updates the registration rather than adding
		// a second one.
		h.hub.Authenticate(connID, userID, conn)
		authenticated = true

		if err := conn.WriteJSON(Event{Type: EventAuthenticated}); err != nil {
			break
		}
	}

	return nil
}

func (h *Handler) parseToken(tokenString string) (uint, error) {
	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(h.jwtSecret), nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}
	return claims.UserID, nil
}
