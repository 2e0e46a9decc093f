package db

import (
	"time"

	"github.com/vitalog/vitalog/internal/models"
	"gorm.io/gorm"
)

type SleepRecordRepository struct {
	database *gorm.DB
}

func NewSleepRecordRepository(database *gorm.DB) *SleepRecordRepository {
	return &SleepRecordRepository{database: database}
}

func (repo *SleepRecordRepository) Create(record *models.SleepRecord) error {
	return repo.database.Create(record).Error
}

func (repo *SleepRecordRepository) ListByUser(userID string) ([]models.SleepRecord, error) {
	records := make([]models.SleepRecord, 0)
	if err := repo.database.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListByUserStartedSince returns records whose sleep started at or after the cutoff.
func (repo *SleepRecordRepository) ListByUserStartedSince(userID string, since time.Time) ([]models.SleepRecord, error) {
	records := make([]models.SleepRecord, 0)
	if err := repo.database.
		Where("user_id = ? AND start_time >= ?", userID, since).
		Order("start_time ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *SleepRecordRepository) FindByIDForUser(recordID string, userID string) (models.SleepRecord, error) {
	var record models.SleepRecord
	if err := repo.database.Where("id = ? AND user_id = ?", recordID, userID).First(&record).Error; err != nil {
		return models.SleepRecord{}, err
	}
	return record, nil
}

func (repo *SleepRecordRepository) UpdateByIDForUser(recordID string, userID string, updates map[string]any) error {
	result := repo.database.Model(&models.SleepRecord{}).
		Where("id = ? AND user_id = ?", recordID, userID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *SleepRecordRepository) DeleteByIDForUser(recordID string, userID string) error {
	result := repo.database.Where("id = ? AND user_id = ?", recordID, userID).Delete(&models.SleepRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
