package db

import (
	"time"

	"github.com/vitalog/vitalog/internal/models"
	"gorm.io/gorm"
)

type MoodLogRepository struct {
	database *gorm.DB
}

func NewMoodLogRepository(database *gorm.DB) *MoodLogRepository {
	return &MoodLogRepository{database: database}
}

func (repo *MoodLogRepository) Create(entry *models.MoodLog) error {
	return repo.database.Create(entry).Error
}

func (repo *MoodLogRepository) ListByUser(userID string) ([]models.MoodLog, error) {
	entries := make([]models.MoodLog, 0)
	if err := repo.database.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByUserSince returns mood logs dated at or after the cutoff.
func (repo *MoodLogRepository) ListByUserSince(userID string, since time.Time) ([]models.MoodLog, error) {
	entries := make([]models.MoodLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *MoodLogRepository) FindByIDForUser(entryID string, userID string) (models.MoodLog, error) {
	var entry models.MoodLog
	if err := repo.database.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		return models.MoodLog{}, err
	}
	return entry, nil
}

func (repo *MoodLogRepository) UpdateByIDForUser(entryID string, userID string, updates map[string]any) error {
	result := repo.database.Model(&models.MoodLog{}).
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

func (repo *MoodLogRepository) DeleteByIDForUser(entryID string, userID string) error {
	result := repo.database.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.MoodLog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
