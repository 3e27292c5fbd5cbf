package repositories

import (
	"github.com/AnjalSotang/FYP-sub002/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeviceTokenRepository defines the interface for FCM device token operations
type DeviceTokenRepository interface {
	SaveToken(token *models.DeviceToken) error
	GetTokensByUserID(userID uint) ([]string, error)
	DeleteToken(token string) error
}

type postgresDeviceTokenRepository struct {
	db *gorm.DB
}

func NewPostgresDeviceTokenRepository(db *gorm.DB) DeviceTokenRepository {
	return &postgresDeviceTokenRepository{db: db}
}

// SaveToken upserts on the token value; re-registering a token moves it to
// the current user.
func (r *postgresDeviceTokenRepository) SaveToken(token *models.DeviceToken) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "platform"}),
	}).Create(token).Error
}

func (r *postgresDeviceTokenRepository) GetTokensByUserID(userID uint) ([]string, error) {
	var tokens []string
	err := r.db.Model(&models.DeviceToken{}).
		Where("user_id = ?", userID).
		Pluck("token", &tokens).Error
	return tokens, err
}

func (r *postgresDeviceTokenRepository) DeleteToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&models.DeviceToken{}).Error
}
