package notifier

import (
	"mommycare-service/internal/app/contracts"
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"sync"

	"go.uber.org/zap"
)

// Hub keeps the set of live websocket clients and routes notifications to
// them by user id or role.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	quit       chan struct{}
	stopOnce   sync.Once
	mu         sync.RWMutex
	Log        *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		quit:       make(chan struct{}),
		Log:        logger,
	}
}

var _ contracts.NotificationHub = (*Hub)(nil)

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.Log.Info("notifier.Hub client connected",
				zap.String(constvars.LoggingUserIDKey, client.UserID),
				zap.String(constvars.LoggingRoleKey, client.Role),
				zap.Int(constvars.LoggingClientCountKey, total),
			)
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.close()
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.Log.Info("notifier.Hub client disconnected",
				zap.String(constvars.LoggingUserIDKey, client.UserID),
				zap.Int(constvars.LoggingClientCountKey, total),
			)
		case <-h.quit:
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				client.close()
			}
			h.mu.Unlock()
			h.Log.Info("notifier.Hub stopped")
			return
		}
	}
}

// Stop closes every client and ends Run. Safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.quit)
	})
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.quit:
		client.close()
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.quit:
	}
}

// Deliver queues payload on every client addressed by the notification and
// returns how many clients received it. Clients whose send buffer is full
// are dropped.
func (h *Hub) Deliver(notification *requests.Notification, payload []byte) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for client := range h.clients {
		if !client.isAddressedBy(notification) {
			continue
		}
		select {
		case client.Send <- payload:
			delivered++
		default:
			h.Log.Warn("notifier.Hub dropping slow client",
				zap.String(constvars.LoggingUserIDKey, client.UserID),
			)
			delete(h.clients, client)
			client.close()
		}
	}
	return delivered
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
