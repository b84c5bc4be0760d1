package notifier

import (
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 512
	sendBufferSize = 16
)

type Client struct {
	Conn   *websocket.Conn
	Send   chan []byte
	Hub    *Hub
	UserID string
	Role   string
	mu     sync.Mutex
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, userID, role string) *Client {
	return &Client{
		Conn:   conn,
		Send:   make(chan []byte, sendBufferSize),
		Hub:    hub,
		UserID: userID,
		Role:   role,
	}
}

func (c *Client) isAddressedBy(notification *requests.Notification) bool {
	for _, id := range notification.RecipientIDs {
		if id == c.UserID {
			return true
		}
	}
	for _, role := range notification.RecipientRoles {
		if role == c.Role {
			return true
		}
	}
	return false
}

// close is only called by the hub while holding its lock, so no send on
// Send can race with it.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
	if c.Conn != nil {
		c.Conn.Close()
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.Hub.Log.Warn("notifier.Client.WritePump error writing message",
					zap.String(constvars.LoggingUserIDKey, c.UserID),
					zap.Error(err),
				)
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ReadPump only keeps the connection alive; clients never push messages.
func (c *Client) ReadPump() {
	defer c.Hub.Unregister(c)

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.Log.Warn("notifier.Client.ReadPump unexpected close",
					zap.String(constvars.LoggingUserIDKey, c.UserID),
					zap.Error(err),
				)
			}
			return
		}
	}
}
