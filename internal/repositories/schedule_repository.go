package repositories

import (
	"time"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
	"gorm.io/gorm"
)

// ScheduleRepository defines the interface for workout schedule operations
type ScheduleRepository interface {
	CreateSchedule(schedule *models.WorkoutSchedule) error
	GetScheduleByID(id uint) (*models.WorkoutSchedule, error)
	GetByUserID(userID uint, from, to time.Time) ([]models.WorkoutSchedule, error)
	MarkCompleted(id uint, completedAt time.Time) error
	GetDueReminders(day time.Time) ([]models.WorkoutSchedule, error)
	MarkReminderSent(id uint) error
	CountCompletedSince(userID uint, since time.Time) (int64, error)
	CountCompletedBetween(from, to time.Time) (int64, error)
	CountUsersCompletedBetween(from, to time.Time) (int64, error)
}

type postgresScheduleRepository struct {
	db *gorm.DB
}

func NewPostgresScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &postgresScheduleRepository{db: db}
}

func (r *postgresScheduleRepository) CreateSchedule(schedule *models.WorkoutSchedule) error {
	return r.db.Create(schedule).Error
}

func (r *postgresScheduleRepository) GetScheduleByID(id uint) (*models.WorkoutSchedule, error) {
	var schedule models.WorkoutSchedule
	if err := r.db.Preload("Workout").First(&schedule, id).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *postgresScheduleRepository) GetByUserID(userID uint, from, to time.Time) ([]models.WorkoutSchedule, error) {
	var schedules []models.WorkoutSchedule
	err := r.db.Preload("Workout").
		Where("user_id = ? AND scheduled_date >= ? AND scheduled_date < ?", userID, from, to).
		Order("scheduled_date ASC, scheduled_time ASC").
		Find(&schedules).Error
	return schedules, err
}

func (r *postgresScheduleRepository) MarkCompleted(id uint, completedAt time.Time) error {
	return r.db.Model(&models.WorkoutSchedule{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       models.ScheduleStatusCompleted,
			"completed_at": completedAt,
		}).Error
}

// GetDueReminders returns schedules planned for the given day that have not
// had a reminder sent yet. The sweep marks each one via MarkReminderSent so
// a reminder fires at most once per schedule.
func (r *postgresScheduleRepository) GetDueReminders(day time.Time) ([]models.WorkoutSchedule, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var schedules []models.WorkoutSchedule
	err := r.db.Preload("Workout").
		Where("scheduled_date >= ? AND scheduled_date < ? AND status = ? AND reminder_sent = false",
			dayStart, dayEnd, models.ScheduleStatusScheduled).
		Find(&schedules).Error
	return schedules, err
}

func (r *postgresScheduleRepository) MarkReminderSent(id uint) error {
	return r.db.Model(&models.WorkoutSchedule{}).Where("id = ?", id).Update("reminder_sent", true).Error
}

func (r *postgresScheduleRepository) CountCompletedSince(userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.WorkoutSchedule{}).
		Where("user_id = ? AND status = ? AND completed_at >= ?", userID, models.ScheduleStatusCompleted, since).
		Count(&count).Error
	return count, err
}

func (r *postgresScheduleRepository) CountCompletedBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.WorkoutSchedule{}).
		Where("status = ? AND completed_at >= ? AND completed_at < ?", models.ScheduleStatusCompleted, from, to).
		Count(&count).Error
	return count, err
}

func (r *postgresScheduleRepository) CountUsersCompletedBetween(from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.WorkoutSchedule{}).
		Where("status = ? AND completed_at >= ? AND completed_at < ?", models.ScheduleStatusCompleted, from, to).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}
