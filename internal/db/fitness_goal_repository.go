package db

import (
	"github.com/vitalog/vitalog/internal/models"
	"gorm.io/gorm"
)

type FitnessGoalRepository struct {
	database *gorm.DB
}

func NewFitnessGoalRepository(database *gorm.DB) *FitnessGoalRepository {
	return &FitnessGoalRepository{database: database}
}

func (repo *FitnessGoalRepository) Create(goal *models.FitnessGoal) error {
	return repo.database.Create(goal).Error
}

func (repo *FitnessGoalRepository) ListByUser(userID string) ([]models.FitnessGoal, error) {
	goals := make([]models.FitnessGoal, 0)
	if err := repo.database.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *FitnessGoalRepository) FindByIDForUser(goalID string, userID string) (models.FitnessGoal, error) {
	var goal models.FitnessGoal
	if err := repo.database.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		return models.FitnessGoal{}, err
	}
	return goal, nil
}

func (repo *FitnessGoalRepository) UpdateByIDForUser(goalID string, userID string, updates map[string]any) error {
	result := repo.database.Model(&models.FitnessGoal{}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *FitnessGoalRepository) DeleteByIDForUser(goalID string, userID string) error {
	result := repo.database.Where("id = ? AND user_id = ?", goalID, userID).Delete(&models.FitnessGoal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
