package notifications

import (
	"errors"
	"sync"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
)

// ReadState is the per-notification display state. The only legal transition
// is StateUnread -> StateRead; a read notification never reverts.
type ReadState int

const (
	StateUnread ReadState = iota
	StateRead
)

// ErrIllegalTransition is returned when a transition would revert a read
// notification to unread.
var ErrIllegalTransition = errors.New("notification read state cannot revert to unread")

// Transition moves the state toward target. Unread -> read succeeds with
// changed=true, same-state transitions are accepted no-ops, and read ->
// unread is rejected.
func (s ReadState) Transition(target ReadState) (ReadState, bool, error) {
	if s == target {
		return s, false, nil
	}
	if s == StateRead && target == StateUnread {
		return s, false, ErrIllegalTransition
	}
	return target, true, nil
}

// Tab selects which notifications are visible.
type Tab int

const (
	TabAll Tab = iota
	TabUnread
	TabRead
)

// Entry is a notification held in the inbox with its guarded read state.
type Entry struct {
	Notification models.Notification
	State        ReadState
}

// Inbox is the client-side notification view: a newest-first collection fed
// by pull fetches and push deliveries, with tab and type filtering. Every
// mutation calls the service first and updates local state only on success;
// on failure the collection is left untouched for the caller to retry.
type Inbox struct {
	mu sync.Mutex

	svc    Service
	userID uint

	entries    []*Entry
	tab        Tab
	typeFilter map[string]bool // nil means all types visible
}

// NewInbox creates an empty inbox for a user backed by the given service.
func NewInbox(svc Service, userID uint) *Inbox {
	return &Inbox{svc: svc, userID: userID}
}

// Load fetches the user's notifications and replaces the collection.
// A Load that completes after a newer one simply overwrites it
// (last-writer-wins); pending fetches are not cancelled.
func (in *Inbox) Load(page, limit int) error {
	list, _, err := in.svc.List(in.userID, page, limit)
	if err != nil {
		return err
	}

	entries := make([]*Entry, 0, len(list))
	for _, n := range list {
		state := StateUnread
		if n.IsRead {
			state = StateRead
		}
		entries = append(entries, &Entry{Notification: n, State: state})
	}

	in.mu.Lock()
	in.entries = entries
	in.mu.Unlock()
	return nil
}

// ReceivePush merges a pushed notification into the collection. Duplicate
// IDs are dropped; new notifications are prepended, assumed newer than every
// existing entry and not re-sorted by timestamp.
func (in *Inbox) ReceivePush(n models.Notification) {
	in.mu.Lock()
	defer in.mu.Unlock()

	for _, e := range in.entries {
		if e.Notification.ID == n.ID {
			return
		}
	}

	state := StateUnread
	if n.IsRead {
		state = StateRead
	}
	in.entries = append([]*Entry{{Notification: n, State: state}}, in.entries...)
}

// MarkAsRead flips one notification to read, server first. Marking an
// already-read or unknown ID is a no-op success.
func (in *Inbox) MarkAsRead(id uint) error {
	if err := in.svc.MarkRead(id); err != nil {
		return err
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	for _, e := range in.entries {
		if e.Notification.ID != id {
			continue
		}
		next, changed, err := e.State.Transition(StateRead)
		if err != nil {
			return err
		}
		if changed {
			e.State = next
			e.Notification.IsRead = true
		}
		return nil
	}
	return nil
}

// MarkAllAsRead flips every notification to read, server first.
func (in *Inbox) MarkAllAsRead() error {
	if err := in.svc.MarkAllRead(in.userID); err != nil {
		return err
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	for _, e := range in.entries {
		if next, changed, err := e.State.Transition(StateRead); err == nil && changed {
			e.State = next
			e.Notification.IsRead = true
		}
	}
	return nil
}

// Clear deletes all of the user's notifications. The caller must pass an
// explicit confirmation; without it nothing happens.
func (in *Inbox) Clear(confirmed bool) error {
	if !confirmed {
		return nil
	}
	if err := in.svc.DeleteAll(in.userID); err != nil {
		return err
	}

	in.mu.Lock()
	in.entries = nil
	in.mu.Unlock()
	return nil
}

// SetTab switches the visible tab.
func (in *Inbox) SetTab(tab Tab) {
	in.mu.Lock()
	in.tab = tab
	in.mu.Unlock()
}

// SetTypeFilter restricts visibility to notification types mapped to true.
// A nil map shows every type.
func (in *Inbox) SetTypeFilter(filter map[string]bool) {
	in.mu.Lock()
	in.typeFilter = filter
	in.mu.Unlock()
}

// Visible returns the notifications matching the current tab and type
// filter, in collection order.
func (in *Inbox) Visible() []models.Notification {
	in.mu.Lock()
	defer in.mu.Unlock()

	var out []models.Notification
	for _, e := range in.entries {
		switch in.tab {
		case TabUnread:
			if e.State != StateUnread {
				continue
			}
		case TabRead:
			if e.State != StateRead {
				continue
			}
		}
		if in.typeFilter != nil && !in.typeFilter[e.Notification.Type] {
			continue
		}
		out = append(out, e.Notification)
	}
	return out
}

// UnreadCount returns the number of unread notifications in the collection.
func (in *Inbox) UnreadCount() int {
	in.mu.Lock()
	defer in.mu.Unlock()

	count := 0
	for _, e := range in.entries {
		if e.State == StateUnread {
			count++
		}
	}
	return count
}

// Len returns the collection size regardless of filters.
func (in *Inbox) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.entries)
}
