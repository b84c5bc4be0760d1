package notifier

import (
	"mommycare-service/internal/pkg/constvars"
	"mommycare-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func startHub(t *testing.T) *Hub {
	hub := NewHub(zap.NewNop())
	go hub.Run()
	t.Cleanup(hub.Stop)
	return hub
}

func waitForClients(t *testing.T, hub *Hub, expected int) {
	assert.Eventually(t, func() bool { return hub.ClientCount() == expected }, time.Second, 5*time.Millisecond)
}

func TestHub_DeliverByUserAndRole(t *testing.T) {
	hub := startHub(t)
	mom := NewClient(hub, nil, "mom-1", constvars.RoleMom)
	otherMom := NewClient(hub, nil, "mom-2", constvars.RoleMom)
	doctor := NewClient(hub, nil, "doc-1", constvars.RoleDoctor)
	hub.Register(mom)
	hub.Register(otherMom)
	hub.Register(doctor)
	waitForClients(t, hub, 3)

	notification := &requests.Notification{
		RecipientIDs:   []string{"mom-1"},
		RecipientRoles: []string{constvars.RoleDoctor},
	}
	delivered := hub.Deliver(notification, []byte("hello"))

	assert.Equal(t, 2, delivered)
	assert.Equal(t, []byte("hello"), <-mom.Send)
	assert.Equal(t, []byte("hello"), <-doctor.Send)
	assert.Len(t, otherMom.Send, 0)
}

func TestHub_DropsSlowClient(t *testing.T) {
	hub := startHub(t)
	client := NewClient(hub, nil, "mom-1", constvars.RoleMom)
	hub.Register(client)
	waitForClients(t, hub, 1)

	notification := &requests.Notification{RecipientIDs: []string{"mom-1"}}
	for i := 0; i < sendBufferSize; i++ {
		hub.Deliver(notification, []byte("x"))
	}
	delivered := hub.Deliver(notification, []byte("overflow"))

	assert.Equal(t, 0, delivered)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_UnregisterAndStop(t *testing.T) {
	hub := startHub(t)
	first := NewClient(hub, nil, "a", constvars.RoleMom)
	second := NewClient(hub, nil, "b", constvars.RoleMidwife)
	hub.Register(first)
	hub.Register(second)
	waitForClients(t, hub, 2)

	hub.Unregister(first)
	waitForClients(t, hub, 1)
	_, open := <-first.Send
	assert.False(t, open)

	hub.Stop()
	assert.Eventually(t, func() bool {
		second.mu.Lock()
		defer second.mu.Unlock()
		return second.closed
	}, time.Second, 5*time.Millisecond)

	// registering after stop closes the client instead of blocking
	late := NewClient(hub, nil, "c", constvars.RoleMom)
	hub.Register(late)
	_, open = <-late.Send
	assert.False(t, open)
}
