package services

import (
	"path/filepath"
	"testing"

	"github.com/vitalog/vitalog/internal/db"
	"github.com/vitalog/vitalog/internal/models"
)

type testEnv struct {
	repos     *db.Repositories
	records   *RecordService
	analytics *AnalyticsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "vitalog-services-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repos := db.NewRepositories(database)
	return &testEnv{
		repos: repos,
		records: NewRecordService(
			repos.Users,
			repos.FitnessGoals,
			repos.Workouts,
			repos.NutritionLogs,
			repos.SleepRecords,
			repos.MoodLogs,
		),
		analytics: NewAnalyticsService(
			repos.Users,
			repos.FitnessGoals,
			repos.Workouts,
			repos.NutritionLogs,
			repos.SleepRecords,
			repos.MoodLogs,
		),
	}
}

func (env *testEnv) createUser(t *testing.T, email string) models.User {
	t.Helper()
	user, err := env.records.CreateUser(UserInput{Name: "Test User", Email: email})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}
