package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vitalog/vitalog/internal/models"
	"gorm.io/gorm"
)

const (
	KindUser         = "user"
	KindFitnessGoal  = "fitness goal"
	KindWorkout      = "workout"
	KindNutritionLog = "nutrition log"
	KindSleepRecord  = "sleep record"
	KindMoodLog      = "mood log"
)

type RecordUserRepository interface {
	Create(user *models.User) error
	FindByID(userID string) (models.User, error)
	ExistsByID(userID string) (bool, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	List() ([]models.User, error)
	DeleteWithOwnedData(userID string) error
}

type FitnessGoalStore interface {
	Create(goal *models.FitnessGoal) error
	FindByIDForUser(goalID string, userID string) (models.FitnessGoal, error)
	ListByUser(userID string) ([]models.FitnessGoal, error)
	UpdateByIDForUser(goalID string, userID string, updates map[string]any) error
	DeleteByIDForUser(goalID string, userID string) error
}

type WorkoutStore interface {
	Create(workout *models.Workout) error
	FindByIDForUser(workoutID string, userID string) (models.Workout, error)
	ListByUser(userID string) ([]models.Workout, error)
	UpdateByIDForUser(workoutID string, userID string, updates map[string]any) error
	DeleteByIDForUser(workoutID string, userID string) error
}

type NutritionLogStore interface {
	Create(entry *models.NutritionLog) error
	FindByIDForUser(entryID string, userID string) (models.NutritionLog, error)
	ListByUser(userID string) ([]models.NutritionLog, error)
	UpdateByIDForUser(entryID string, userID string, updates map[string]any) error
	DeleteByIDForUser(entryID string, userID string) error
}

type SleepRecordStore interface {
	Create(record *models.SleepRecord) error
	FindByIDForUser(recordID string, userID string) (models.SleepRecord, error)
	ListByUser(userID string) ([]models.SleepRecord, error)
	UpdateByIDForUser(recordID string, userID string, updates map[string]any) error
	DeleteByIDForUser(recordID string, userID string) error
}

type MoodLogStore interface {
	Create(entry *models.MoodLog) error
	FindByIDForUser(entryID string, userID string) (models.MoodLog, error)
	ListByUser(userID string) ([]models.MoodLog, error)
	UpdateByIDForUser(entryID string, userID string, updates map[string]any) error
	DeleteByIDForUser(entryID string, userID string) error
}

// RecordService owns every write against the data model: it validates
// input, resolves owners before children are attached, and reports the
// documented error taxonomy instead of raw store errors.
type RecordService struct {
	users         RecordUserRepository
	goals         FitnessGoalStore
	workouts      WorkoutStore
	nutritionLogs NutritionLogStore
	sleepRecords  SleepRecordStore
	moodLogs      MoodLogStore
}

func NewRecordService(
	users RecordUserRepository,
	goals FitnessGoalStore,
	workouts WorkoutStore,
	nutritionLogs NutritionLogStore,
	sleepRecords SleepRecordStore,
	moodLogs MoodLogStore,
) *RecordService {
	return &RecordService{
		users:         users,
		goals:         goals,
		workouts:      workouts,
		nutritionLogs: nutritionLogs,
		sleepRecords:  sleepRecords,
		moodLogs:      moodLogs,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser persists the root aggregate. The returned record carries the
// generated ID, so callers can attach children immediately afterwards.
func (service *RecordService) CreateUser(input UserInput) (models.User, error) {
	if err := validateInput(input); err != nil {
		return models.User{}, err
	}

	normalized := NormalizeEmail(input.Email)
	taken, err := service.users.ExistsByNormalizedEmail(normalized)
	if err != nil {
		return models.User{}, fmt.Errorf("check email uniqueness: %w", err)
	}
	if taken {
		return models.User{}, &ConflictError{Field: "email", Value: normalized}
	}

	user := models.User{
		Name:      strings.TrimSpace(input.Name),
		Age:       input.Age,
		Gender:    input.Gender,
		WeightKg:  input.WeightKg,
		HeightCm:  input.HeightCm,
		Email:     normalized,
		Bio:       input.Bio,
		CreatedAt: time.Now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (service *RecordService) GetUser(userID string) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, &NotFoundError{Kind: KindUser, ID: userID}
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (service *RecordService) ListUsers() ([]models.User, error) {
	return service.users.List()
}

// DeleteUser cascades to every owned record; the repository runs the whole
// removal in one transaction so no child can outlive its owner.
func (service *RecordService) DeleteUser(userID string) error {
	if err := service.requireUser(userID); err != nil {
		return err
	}
	if err := service.users.DeleteWithOwnedData(userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (service *RecordService) requireUser(userID string) error {
	exists, err := service.users.ExistsByID(userID)
	if err != nil {
		return fmt.Errorf("resolve user: %w", err)
	}
	if !exists {
		return &NotFoundError{Kind: KindUser, ID: userID}
	}
	return nil
}

func mapChildStoreError(err error, kind string, childID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Kind: kind, ID: childID}
	}
	return err
}
