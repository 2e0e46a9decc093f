package db

import (
	"time"

	"github.com/vitalog/vitalog/internal/models"
	"gorm.io/gorm"
)

type WorkoutRepository struct {
	database *gorm.DB
}

func NewWorkoutRepository(database *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{database: database}
}

func (repo *WorkoutRepository) Create(workout *models.Workout) error {
	return repo.database.Create(workout).Error
}

func (repo *WorkoutRepository) ListByUser(userID string) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.Where("user_id = ?", userID).Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

// ListByUserDateRange returns workouts dated in [fromStart, toEnd).
func (repo *WorkoutRepository) ListByUserDateRange(userID string, fromStart time.Time, toEnd time.Time) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutRepository) FindByIDForUser(workoutID string, userID string) (models.Workout, error) {
	var workout models.Workout
	if err := repo.database.Where("id = ? AND user_id = ?", workoutID, userID).First(&workout).Error; err != nil {
		return models.Workout{}, err
	}
	return workout, nil
}

func (repo *WorkoutRepository) UpdateByIDForUser(workoutID string, userID string, updates map[string]any) error {
	result := repo.database.Model(&models.Workout{}).
		Where("id = ? AND user_id = ?", workoutID, userID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *WorkoutRepository) DeleteByIDForUser(workoutID string, userID string) error {
	result := repo.database.Where("id = ? AND user_id = ?", workoutID, userID).Delete(&models.Workout{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
