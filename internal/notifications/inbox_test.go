package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
)

// fakeService records calls and serves a scripted notification list.
type fakeService struct {
	list       []models.Notification
	failMutate bool
	markedRead []uint
	markedAll  int
	deletedAll int
}

var errFake = errors.New("service unavailable")

func (f *fakeService) List(userID uint, page, limit int) ([]models.Notification, int64, error) {
	return f.list, int64(len(f.list)), nil
}

func (f *fakeService) UnreadCount(userID uint) (int64, error) {
	count := int64(0)
	for _, n := range f.list {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeService) MarkRead(notificationID uint) error {
	if f.failMutate {
		return errFake
	}
	f.markedRead = append(f.markedRead, notificationID)
	return nil
}

func (f *fakeService) MarkAllRead(userID uint) error {
	if f.failMutate {
		return errFake
	}
	f.markedAll++
	return nil
}

func (f *fakeService) DeleteAll(userID uint) error {
	if f.failMutate {
		return errFake
	}
	f.deletedAll++
	return nil
}

func (f *fakeService) Notify(ctx context.Context, userID uint, eventType string, data EventData, related *RelatedRef) (*models.Notification, error) {
	return nil, nil
}

func notif(id uint, typ string, read bool) models.Notification {
	return models.Notification{ID: id, UserID: 1, Type: typ, IsRead: read, CreatedAt: time.Now()}
}

func newTestInbox(t *testing.T, svc *fakeService) *Inbox {
	t.Helper()

	inbox := NewInbox(svc, 1)
	if err := inbox.Load(1, 20); err != nil {
		t.Fatalf("loading inbox: %v", err)
	}
	return inbox
}

func TestReadStateTransition(t *testing.T) {
	next, changed, err := StateUnread.Transition(StateRead)
	if err != nil || !changed || next != StateRead {
		t.Fatalf("unread->read = (%v, %v, %v), want (StateRead, true, nil)", next, changed, err)
	}

	next, changed, err = StateRead.Transition(StateRead)
	if err != nil || changed || next != StateRead {
		t.Fatalf("read->read = (%v, %v, %v), want accepted no-op", next, changed, err)
	}

	if _, _, err := StateRead.Transition(StateUnread); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("read->unread err = %v, want ErrIllegalTransition", err)
	}
}

func TestReceivePushDeduplicatesByID(t *testing.T) {
	inbox := newTestInbox(t, &fakeService{})

	n := notif(10, models.NotificationTypeAchievement, false)
	inbox.ReceivePush(n)
	inbox.ReceivePush(n)

	if got := inbox.Len(); got != 1 {
		t.Errorf("Len() = %d after duplicate push, want 1", got)
	}
}

func TestReceivePushPrependsNewestFirst(t *testing.T) {
	svc := &fakeService{list: []models.Notification{notif(1, models.NotificationTypeSystem, false)}}
	inbox := newTestInbox(t, svc)

	inbox.ReceivePush(notif(2, models.NotificationTypeAchievement, false))

	visible := inbox.Visible()
	if len(visible) != 2 {
		t.Fatalf("Visible() has %d entries, want 2", len(visible))
	}
	if visible[0].ID != 2 {
		t.Errorf("pushed notification is at position %d, want first", 1)
	}
}

func TestMarkAsReadFlipsOnlyTarget(t *testing.T) {
	svc := &fakeService{list: []models.Notification{
		notif(1, models.NotificationTypeSystem, false),
		notif(2, models.NotificationTypeSystem, false),
	}}
	inbox := newTestInbox(t, svc)

	if err := inbox.MarkAsRead(1); err != nil {
		t.Fatalf("MarkAsRead: %v", err)
	}

	if got := inbox.UnreadCount(); got != 1 {
		t.Errorf("UnreadCount() = %d, want 1", got)
	}
	if len(svc.markedRead) != 1 || svc.markedRead[0] != 1 {
		t.Errorf("service calls = %v, want [1]", svc.markedRead)
	}
}

func TestMarkAsReadUnknownIDIsNoOpSuccess(t *testing.T) {
	inbox := newTestInbox(t, &fakeService{})

	if err := inbox.MarkAsRead(999); err != nil {
		t.Errorf("MarkAsRead(unknown) = %v, want nil", err)
	}
}

func TestMarkAsReadAlreadyReadIsNoOpSuccess(t *testing.T) {
	svc := &fakeService{list: []models.Notification{notif(1, models.NotificationTypeSystem, true)}}
	inbox := newTestInbox(t, svc)

	if err := inbox.MarkAsRead(1); err != nil {
		t.Errorf("MarkAsRead(already read) = %v, want nil", err)
	}
	if got := inbox.UnreadCount(); got != 0 {
		t.Errorf("UnreadCount() = %d, want 0", got)
	}
}

func TestMutationFailureLeavesStateUnchanged(t *testing.T) {
	svc := &fakeService{
		list:       []models.Notification{notif(1, models.NotificationTypeSystem, false)},
		failMutate: true,
	}
	inbox := newTestInbox(t, svc)

	if err := inbox.MarkAsRead(1); !errors.Is(err, errFake) {
		t.Fatalf("MarkAsRead err = %v, want fake failure", err)
	}
	if got := inbox.UnreadCount(); got != 1 {
		t.Errorf("UnreadCount() = %d after failed mutation, want 1", got)
	}

	if err := inbox.Clear(true); !errors.Is(err, errFake) {
		t.Fatalf("Clear err = %v, want fake failure", err)
	}
	if got := inbox.Len(); got != 1 {
		t.Errorf("Len() = %d after failed clear, want 1", got)
	}
}

func TestMarkAllAsRead(t *testing.T) {
	svc := &fakeService{list: []models.Notification{
		notif(1, models.NotificationTypeSystem, false),
		notif(2, models.NotificationTypeSystem, true),
		notif(3, models.NotificationTypeSystem, false),
	}}
	inbox := newTestInbox(t, svc)

	if err := inbox.MarkAllAsRead(); err != nil {
		t.Fatalf("MarkAllAsRead: %v", err)
	}

	if got := inbox.UnreadCount(); got != 0 {
		t.Errorf("UnreadCount() = %d, want 0", got)
	}
	if svc.markedAll != 1 {
		t.Errorf("service MarkAllRead called %d times, want 1", svc.markedAll)
	}
}

func TestClearRequiresConfirmation(t *testing.T) {
	svc := &fakeService{list: []models.Notification{notif(1, models.NotificationTypeSystem, false)}}
	inbox := newTestInbox(t, svc)

	if err := inbox.Clear(false); err != nil {
		t.Fatalf("Clear(false): %v", err)
	}
	if got := inbox.Len(); got != 1 {
		t.Errorf("Len() = %d after unconfirmed clear, want 1", got)
	}
	if svc.deletedAll != 0 {
		t.Errorf("service DeleteAll called %d times without confirmation, want 0", svc.deletedAll)
	}

	if err := inbox.Clear(true); err != nil {
		t.Fatalf("Clear(true): %v", err)
	}
	if got := inbox.Len(); got != 0 {
		t.Errorf("Len() = %d after clear, want 0", got)
	}
}

func TestClearThenLoadDoesNotResurrectClearedIDs(t *testing.T) {
	svc := &fakeService{list: []models.Notification{
		notif(1, models.NotificationTypeSystem, false),
		notif(2, models.NotificationTypeSystem, false),
	}}
	inbox := newTestInbox(t, svc)

	if err := inbox.Clear(true); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	// Server-side the rows are gone; reload serves only genuinely new rows.
	svc.list = []models.Notification{notif(3, models.NotificationTypeAchievement, false)}
	if err := inbox.Load(1, 20); err != nil {
		t.Fatalf("reload: %v", err)
	}

	for _, n := range inbox.Visible() {
		if n.ID == 1 || n.ID == 2 {
			t.Errorf("cleared notification %d resurrected", n.ID)
		}
	}
	if got := inbox.Len(); got != 1 {
		t.Errorf("Len() = %d after reload, want 1", got)
	}
}

func TestUnreadCountInvariantAcrossTransitions(t *testing.T) {
	svc := &fakeService{}
	inbox := newTestInbox(t, svc)

	check := func(step string) {
		t.Helper()
		want := 0
		for _, n := range inbox.Visible() {
			if !n.IsRead {
				want++
			}
		}
		if got := inbox.UnreadCount(); got != want {
			t.Errorf("%s: UnreadCount() = %d, want %d", step, got, want)
		}
	}

	inbox.ReceivePush(notif(1, models.NotificationTypeSystem, false))
	check("after first push")
	inbox.ReceivePush(notif(2, models.NotificationTypeAchievement, false))
	check("after second push")
	inbox.MarkAsRead(1)
	check("after mark read")
	inbox.MarkAllAsRead()
	check("after mark all")
	inbox.Clear(true)
	check("after clear")
}

func TestTabAndTypeFilters(t *testing.T) {
	svc := &fakeService{list: []models.Notification{
		notif(1, models.NotificationTypeAchievement, false),
		notif(2, models.NotificationTypeWorkoutReminder, true),
		notif(3, models.NotificationTypeAchievement, true),
	}}
	inbox := newTestInbox(t, svc)

	inbox.SetTab(TabUnread)
	if got := len(inbox.Visible()); got != 1 {
		t.Errorf("unread tab shows %d entries, want 1", got)
	}

	inbox.SetTab(TabRead)
	if got := len(inbox.Visible()); got != 2 {
		t.Errorf("read tab shows %d entries, want 2", got)
	}

	inbox.SetTab(TabAll)
	inbox.SetTypeFilter(map[string]bool{models.NotificationTypeAchievement: true})
	if got := len(inbox.Visible()); got != 2 {
		t.Errorf("achievement filter shows %d entries, want 2", got)
	}

	inbox.SetTypeFilter(nil)
	if got := len(inbox.Visible()); got != 3 {
		t.Errorf("no filter shows %d entries, want 3", got)
	}
}
