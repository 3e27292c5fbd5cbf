package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
	"github.com/AnjalSotang/FYP-sub002/internal/notifications"
)

// fakeScheduleRepo serves scripted schedules and records reminder marks.
type fakeScheduleRepo struct {
	due            []models.WorkoutSchedule
	remindersSent  []uint
	completedCount int64
	userCount      int64
}

func (r *fakeScheduleRepo) CreateSchedule(*models.WorkoutSchedule) error { return nil }
func (r *fakeScheduleRepo) GetScheduleByID(uint) (*models.WorkoutSchedule, error) {
	return nil, nil
}
func (r *fakeScheduleRepo) GetByUserID(uint, time.Time, time.Time) ([]models.WorkoutSchedule, error) {
	return nil, nil
}
func (r *fakeScheduleRepo) MarkCompleted(uint, time.Time) error { return nil }

func (r *fakeScheduleRepo) GetDueReminders(time.Time) ([]models.WorkoutSchedule, error) {
	return r.due, nil
}

func (r *fakeScheduleRepo) MarkReminderSent(id uint) error {
	r.remindersSent = append(r.remindersSent, id)
	return nil
}

func (r *fakeScheduleRepo) CountCompletedSince(uint, time.Time) (int64, error) { return 0, nil }

func (r *fakeScheduleRepo) CountCompletedBetween(time.Time, time.Time) (int64, error) {
	return r.completedCount, nil
}

func (r *fakeScheduleRepo) CountUsersCompletedBetween(time.Time, time.Time) (int64, error) {
	return r.userCount, nil
}

// fakeUserRepo serves a scripted admin list.
type fakeUserRepo struct {
	admins []models.User
}

func (r *fakeUserRepo) CreateUser(*models.User) error                     { return nil }
func (r *fakeUserRepo) GetUserByID(uint) (*models.User, error)            { return nil, nil }
func (r *fakeUserRepo) GetUserByEmail(string) (*models.User, error)       { return nil, nil }
func (r *fakeUserRepo) GetUserByFirebaseUID(string) (*models.User, error) { return nil, nil }
func (r *fakeUserRepo) GetAdmins() ([]models.User, error)                 { return r.admins, nil }
func (r *fakeUserRepo) CountUsers() (int64, error)                        { return 0, nil }
func (r *fakeUserRepo) UpdateUser(*models.User) error                     { return nil }
func (r *fakeUserRepo) DeleteUser(uint) error                             { return nil }

// fakeNotifier records Notify calls.
type fakeNotifier struct {
	calls []notifyCall
}

type notifyCall struct {
	userID    uint
	eventType string
	data      notifications.EventData
}

func (f *fakeNotifier) List(uint, int, int) ([]models.Notification, int64, error) {
	return nil, 0, nil
}
func (f *fakeNotifier) UnreadCount(uint) (int64, error) { return 0, nil }
func (f *fakeNotifier) MarkRead(uint) error             { return nil }
func (f *fakeNotifier) MarkAllRead(uint) error          { return nil }
func (f *fakeNotifier) DeleteAll(uint) error            { return nil }

func (f *fakeNotifier) Notify(ctx context.Context, userID uint, eventType string, data notifications.EventData, related *notifications.RelatedRef) (*models.Notification, error) {
	f.calls = append(f.calls, notifyCall{userID: userID, eventType: eventType, data: data})
	return &models.Notification{ID: uint(len(f.calls))}, nil
}

func TestSweepRemindersNotifiesAndMarks(t *testing.T) {
	repo := &fakeScheduleRepo{due: []models.WorkoutSchedule{
		{
			ID:            11,
			UserID:        1,
			ScheduledDate: time.Now(),
			ScheduledTime: "18:30",
			Workout:       models.Workout{Name: "Leg Day"},
		},
		{
			ID:            12,
			UserID:        2,
			ScheduledDate: time.Now(),
			ScheduledTime: "07:00",
			Workout:       models.Workout{Name: "Push Day"},
		},
	}}
	notifier := &fakeNotifier{}
	s := NewScheduler(repo, &fakeUserRepo{}, notifier)
	defer s.Stop()

	s.sweepReminders(time.Now())

	if len(notifier.calls) != 2 {
		t.Fatalf("notifier called %d times, want 2", len(notifier.calls))
	}
	if notifier.calls[0].eventType != models.NotificationTypeWorkoutReminder {
		t.Errorf("event type = %q, want workout_reminder", notifier.calls[0].eventType)
	}
	if notifier.calls[0].data.WorkoutName != "Leg Day" {
		t.Errorf("workout name = %q, want %q", notifier.calls[0].data.WorkoutName, "Leg Day")
	}
	if len(repo.remindersSent) != 2 {
		t.Errorf("%d schedules marked reminded, want 2", len(repo.remindersSent))
	}
}

func TestSweepDailyStatsOncePerDay(t *testing.T) {
	repo := &fakeScheduleRepo{completedCount: 17, userCount: 9}
	users := &fakeUserRepo{admins: []models.User{{ID: 1, Role: models.RoleAdmin}, {ID: 2, Role: models.RoleAdmin}}}
	notifier := &fakeNotifier{}
	s := NewScheduler(repo, users, notifier)
	defer s.Stop()

	digestTime := time.Date(2025, time.March, 15, statsDigestHour, 5, 0, 0, time.UTC)

	s.sweepDailyStats(digestTime)
	if len(notifier.calls) != 2 {
		t.Fatalf("notifier called %d times, want one digest per admin", len(notifier.calls))
	}
	if notifier.calls[0].data.CompletedCount != 17 || notifier.calls[0].data.UserCount != 9 {
		t.Errorf("digest data = %+v, want counts 17/9", notifier.calls[0].data)
	}

	// The same day's later sweep must not send a second digest.
	s.sweepDailyStats(digestTime.Add(30 * time.Minute))
	if len(notifier.calls) != 2 {
		t.Errorf("second sweep on the same day sent %d extra digests", len(notifier.calls)-2)
	}

	// Next day fires again.
	s.sweepDailyStats(digestTime.AddDate(0, 0, 1))
	if len(notifier.calls) != 4 {
		t.Errorf("next-day sweep: notifier called %d times total, want 4", len(notifier.calls))
	}
}

func TestSweepDailyStatsOutsideDigestHourIsNoOp(t *testing.T) {
	repo := &fakeScheduleRepo{completedCount: 3, userCount: 2}
	users := &fakeUserRepo{admins: []models.User{{ID: 1, Role: models.RoleAdmin}}}
	notifier := &fakeNotifier{}
	s := NewScheduler(repo, users, notifier)
	defer s.Stop()

	s.sweepDailyStats(time.Date(2025, time.March, 15, statsDigestHour-1, 0, 0, 0, time.UTC))
	if len(notifier.calls) != 0 {
		t.Errorf("sweep outside digest hour sent %d digests, want 0", len(notifier.calls))
	}
}
