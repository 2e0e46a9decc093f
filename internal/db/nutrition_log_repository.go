package db

import (
	"time"

	"github.com/vitalog/vitalog/internal/models"
	"gorm.io/gorm"
)

type NutritionLogRepository struct {
	database *gorm.DB
}

func NewNutritionLogRepository(database *gorm.DB) *NutritionLogRepository {
	return &NutritionLogRepository{database: database}
}

func (repo *NutritionLogRepository) Create(entry *models.NutritionLog) error {
	return repo.database.Create(entry).Error
}

func (repo *NutritionLogRepository) ListByUser(userID string) ([]models.NutritionLog, error) {
	entries := make([]models.NutritionLog, 0)
	if err := repo.database.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByUserDateRange returns nutrition logs dated in [fromStart, toEnd).
func (repo *NutritionLogRepository) ListByUserDateRange(userID string, fromStart time.Time, toEnd time.Time) ([]models.NutritionLog, error) {
	entries := make([]models.NutritionLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *NutritionLogRepository) FindByIDForUser(entryID string, userID string) (models.NutritionLog, error) {
	var entry models.NutritionLog
	if err := repo.database.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		return models.NutritionLog{}, err
	}
	return entry, nil
}

func (repo *NutritionLogRepository) UpdateByIDForUser(entryID string, userID string, updates map[string]any) error {
	result := repo.database.Model(&models.NutritionLog{}).
		Where("id = ? AND user_id = ?", entryID, userID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *NutritionLogRepository) DeleteByIDForUser(entryID string, userID string) error {
	result := repo.database.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.NutritionLog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
