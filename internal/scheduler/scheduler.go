package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
	"github.com/AnjalSotang/FYP-sub002/internal/notifications"
	"github.com/AnjalSotang/FYP-sub002/internal/repositories"
)

const (
	reminderSweepInterval = time.Minute
	statsSweepInterval    = time.Hour
	statsDigestHour       = 20 // daily stats go out during the 8pm sweep
)

// Scheduler runs the background jobs that produce notifications: the
// workout reminder sweep and the daily stats digest.
type Scheduler struct {
	schedules repositories.ScheduleRepository
	users     repositories.UserRepository
	notifier  notifications.Service

	ctx           context.Context
	cancel        context.CancelFunc
	lastStatsDate string // "2006-01-02" of the last digest sent
}

// NewScheduler initializes a new Scheduler instance
func NewScheduler(
	scheduleRepo repositories.ScheduleRepository,
	userRepo repositories.UserRepository,
	notifier notifications.Service,
) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		schedules: scheduleRepo,
		users:     userRepo,
		notifier:  notifier,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start launches the background sweeps.
func (s *Scheduler) Start() {
	log.Println("Starting notification scheduler...")
	go s.run(reminderSweepInterval, s.sweepReminders)
	go s.run(statsSweepInterval, s.sweepDailyStats)
}

// Stop gracefully shuts down the sweeps.
func (s *Scheduler) Stop() {
	log.Println("Stopping notification scheduler...")
	s.cancel()
}

func (s *Scheduler) run(interval time.Duration, sweep func(now time.Time)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			sweep(time.Now())
		}
	}
}

// sweepReminders creates a workout_reminder notification for every schedule
// planned for today that has not been reminded yet, marking each so the
// reminder fires at most once.
func (s *Scheduler) sweepReminders(now time.Time) {
	due, err := s.schedules.GetDueReminders(now)
	if err != nil {
		log.Printf("Reminder sweep failed: %v", err)
		return
	}

	for _, schedule := range due {
		data := notifications.EventData{
			ScheduledDate: schedule.ScheduledDate.Format("2006-01-02"),
			ScheduledTime: schedule.ScheduledTime,
			WorkoutName:   schedule.Workout.Name,
		}
		related := &notifications.RelatedRef{ID: schedule.ID, Type: "schedule"}

		if _, err := s.notifier.Notify(s.ctx, schedule.UserID, models.NotificationTypeWorkoutReminder, data, related); err != nil {
			log.Printf("Failed to create reminder for schedule %d: %v", schedule.ID, err)
			continue
		}
		if err := s.schedules.MarkReminderSent(schedule.ID); err != nil {
			log.Printf("Failed to mark reminder sent for schedule %d: %v", schedule.ID, err)
		}
	}

	if len(due) > 0 {
		log.Printf("Reminder sweep created %d notification(s)", len(due))
	}
}

// sweepDailyStats sends the daily workout digest to admin users once per
// day, during the sweep that falls in the digest hour.
func (s *Scheduler) sweepDailyStats(now time.Time) {
	if now.Hour() != statsDigestHour {
		return
	}
	today := now.Format("2006-01-02")
	if s.lastStatsDate == today {
		return
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	completed, err := s.schedules.CountCompletedBetween(dayStart, now)
	if err != nil {
		log.Printf("Stats sweep failed counting workouts: %v", err)
		return
	}
	userCount, err := s.schedules.CountUsersCompletedBetween(dayStart, now)
	if err != nil {
		log.Printf("Stats sweep failed counting users: %v", err)
		return
	}

	admins, err := s.users.GetAdmins()
	if err != nil {
		log.Printf("Stats sweep failed loading admins: %v", err)
		return
	}

	data := notifications.EventData{CompletedCount: completed, UserCount: userCount}
	for _, admin := range admins {
		if _, err := s.notifier.Notify(s.ctx, admin.ID, models.NotificationTypeSystemStats, data, nil); err != nil {
			log.Printf("Failed to send daily stats to admin %d: %v", admin.ID, err)
		}
	}

	s.lastStatsDate = today
	log.Printf("Daily stats digest sent to %d admin(s)", len(admins))
}
