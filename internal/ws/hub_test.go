package ws

import (
	"errors"
	"sync"
	"testing"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
)

// fakeConn records everything written to it; optionally fails writes.
type fakeConn struct {
	mu        sync.Mutex
	events    []Event
	failWrite bool
	closed    bool
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failWrite {
		return errors.New("write failed")
	}
	c.events = append(c.events, v.(Event))
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) received() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func TestPushDeliversToAllUserConnections(t *testing.T) {
	hub := NewHub()
	first := &fakeConn{}
	second := &fakeConn{}
	other := &fakeConn{}

	hub.Authenticate("conn-1", 1, first)
	hub.Authenticate("conn-2", 1, second)
	hub.Authenticate("conn-3", 2, other)

	n := &models.Notification{ID: 5, UserID: 1, Title: "Workout Reminder"}
	if delivered := hub.Push(1, n); delivered != 2 {
		t.Errorf("Push() delivered to %d connections, want 2", delivered)
	}

	if first.received() != 1 || second.received() != 1 {
		t.Error("both of the user's connections should receive the push")
	}
	if other.received() != 0 {
		t.Error("another user's connection must not receive the push")
	}

	if got := first.events[0].Type; got != EventNewNotification {
		t.Errorf("event type = %q, want %q", got, EventNewNotification)
	}
}

func TestPushAfterDisconnectDeliversToZero(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}

	hub.Authenticate("conn-1", 1, conn)
	hub.Disconnect("conn-1")

	if delivered := hub.Push(1, &models.Notification{ID: 1, UserID: 1}); delivered != 0 {
		t.Errorf("Push() after disconnect delivered to %d connections, want 0", delivered)
	}
	if conn.received() != 0 {
		t.Error("disconnected connection must not receive pushes")
	}
}

func TestPushToUnknownUserIsSilentNoOp(t *testing.T) {
	hub := NewHub()
	if delivered := hub.Push(42, &models.Notification{ID: 1, UserID: 42}); delivered != 0 {
		t.Errorf("Push() to unconnected user delivered to %d, want 0", delivered)
	}
}

func TestReauthenticateUpdatesInsteadOfDuplicating(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}

	hub.Authenticate("conn-1", 1, conn)
	hub.Authenticate("conn-1", 1, conn)

	if got := hub.ConnectionCount(1); got != 1 {
		t.Errorf("ConnectionCount(1) = %d after re-auth, want 1", got)
	}

	// Re-authenticating as a different user moves the registration.
	hub.Authenticate("conn-1", 2, conn)
	if got := hub.ConnectionCount(1); got != 0 {
		t.Errorf("ConnectionCount(1) = %d after re-auth to user 2, want 0", got)
	}
	if got := hub.ConnectionCount(2); got != 1 {
		t.Errorf("ConnectionCount(2) = %d, want 1", got)
	}
}

func TestDisconnectUnknownConnectionIsIgnored(t *testing.T) {
	hub := NewHub()
	hub.Disconnect("never-registered") // must not panic
}

func TestFailedWriteEvictsConnection(t *testing.T) {
	hub := NewHub()
	broken := &fakeConn{failWrite: true}
	healthy := &fakeConn{}

	hub.Authenticate("conn-1", 1, broken)
	hub.Authenticate("conn-2", 1, healthy)

	if delivered := hub.Push(1, &models.Notification{ID: 1, UserID: 1}); delivered != 1 {
		t.Errorf("Push() delivered to %d connections, want 1", delivered)
	}

	broken.mu.Lock()
	closed := broken.closed
	broken.mu.Unlock()
	if !closed {
		t.Error("failed connection should be closed")
	}
	if got := hub.ConnectionCount(1); got != 1 {
		t.Errorf("ConnectionCount(1) = %d after eviction, want 1", got)
	}
}

func TestConcurrentRegistrationAndPush(t *testing.T) {
	hub := NewHub()
	n := &models.Notification{ID: 1, UserID: 1}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		connID := "conn-" + string(rune('a'+i%26))
		go func(id string) {
			defer wg.Done()
			hub.Authenticate(id, 1, &fakeConn{})
			hub.Disconnect(id)
		}(connID)
		go func() {
			defer wg.Done()
			hub.Push(1, n)
		}()
	}
	wg.Wait()
}
