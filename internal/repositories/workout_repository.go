package repositories

import (
	"github.com/AnjalSotang/FYP-sub002/internal/models"
	"gorm.io/gorm"
)

// WorkoutRepository defines the interface for workout plan operations
type WorkoutRepository interface {
	CreateWorkout(workout *models.Workout) error
	GetWorkoutByID(id uint) (*models.Workout, error)
	GetWorkouts(page, limit int) ([]models.Workout, int64, error)
	UpdateWorkout(workout *models.Workout) error
	DeleteWorkout(id uint) error
}

type postgresWorkoutRepository struct {
	db *gorm.DB
}

func NewPostgresWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &postgresWorkoutRepository{db: db}
}

func (r *postgresWorkoutRepository) CreateWorkout(workout *models.Workout) error {
	return r.db.Create(workout).Error
}

func (r *postgresWorkoutRepository) GetWorkoutByID(id uint) (*models.Workout, error) {
	var workout models.Workout
	if err := r.db.Preload("Exercises").First(&workout, id).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *postgresWorkoutRepository) GetWorkouts(page, limit int) ([]models.Workout, int64, error) {
	var workouts []models.Workout
	var total int64

	r.db.Model(&models.Workout{}).Count(&total)

	offset := (page - 1) * limit
	err := r.db.Preload("Exercises").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&workouts).Error

	return workouts, total, err
}

func (r *postgresWorkoutRepository) UpdateWorkout(workout *models.Workout) error {
	return r.db.Save(workout).Error
}

func (r *postgresWorkoutRepository) DeleteWorkout(id uint) error {
	return r.db.Select("Exercises").Delete(&models.Workout{ID: id}).Error
}
