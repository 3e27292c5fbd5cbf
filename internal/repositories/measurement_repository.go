package repositories

import (
	"github.com/AnjalSotang/FYP-sub002/internal/models"
	"gorm.io/gorm"
)

// MeasurementRepository defines the interface for body measurement operations
type MeasurementRepository interface {
	CreateMeasurement(measurement *models.Measurement) error
	GetByUserID(userID uint, limit int) ([]models.Measurement, error)
	DeleteMeasurement(id, userID uint) error
}

type postgresMeasurementRepository struct {
	db *gorm.DB
}

func NewPostgresMeasurementRepository(db *gorm.DB) MeasurementRepository {
	return &postgresMeasurementRepository{db: db}
}

func (r *postgresMeasurementRepository) CreateMeasurement(measurement *models.Measurement) error {
	return r.db.Create(measurement).Error
}

func (r *postgresMeasurementRepository) GetByUserID(userID uint, limit int) ([]models.Measurement, error) {
	var measurements []models.Measurement
	err := r.db.Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&measurements).Error
	return measurements, err
}

func (r *postgresMeasurementRepository) DeleteMeasurement(id, userID uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Measurement{}).Error
}
