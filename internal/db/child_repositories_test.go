package db

import (
	"errors"
	"testing"
	"time"

	"github.com/vitalog/vitalog/internal/models"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, repos *Repositories, email string) models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, CreatedAt: time.Now().UTC()}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestUpdateByIDForUserRejectsWrongOwner(t *testing.T) {
	database := openTestDB(t)
	repos := NewRepositories(database)

	owner := createTestUser(t, repos, "goal-owner@vitalog.local")
	other := createTestUser(t, repos, "goal-other@vitalog.local")

	goal := models.FitnessGoal{UserID: owner.ID, Goal: "Swim twice a week"}
	if err := repos.FitnessGoals.Create(&goal); err != nil {
		t.Fatalf("create goal: %v", err)
	}

	err := repos.FitnessGoals.UpdateByIDForUser(goal.ID, other.ID, map[string]any{"completed": true})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found for cross-user update, got %v", err)
	}

	kept, err := repos.FitnessGoals.FindByIDForUser(goal.ID, owner.ID)
	if err != nil {
		t.Fatalf("find goal: %v", err)
	}
	if kept.Completed {
		t.Fatalf("expected cross-user update to leave the goal untouched")
	}
}

func TestSleepListByUserStartedSinceFiltersOldRecords(t *testing.T) {
	database := openTestDB(t)
	repos := NewRepositories(database)
	user := createTestUser(t, repos, "sleeper@vitalog.local")

	now := time.Now().UTC()
	recent := models.SleepRecord{UserID: user.ID, StartTime: now.AddDate(0, 0, -2), EndTime: now.AddDate(0, 0, -2).Add(8 * time.Hour)}
	stale := models.SleepRecord{UserID: user.ID, StartTime: now.AddDate(0, 0, -40), EndTime: now.AddDate(0, 0, -40).Add(8 * time.Hour)}
	for _, record := range []*models.SleepRecord{&recent, &stale} {
		if err := repos.SleepRecords.Create(record); err != nil {
			t.Fatalf("create sleep record: %v", err)
		}
	}

	records, err := repos.SleepRecords.ListByUserStartedSince(user.ID, now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record inside the window, got %d", len(records))
	}
	if records[0].ID != recent.ID {
		t.Fatalf("expected the recent record, got %s", records[0].ID)
	}
}

func TestWorkoutListByUserDateRangeIsHalfOpen(t *testing.T) {
	database := openTestDB(t)
	repos := NewRepositories(database)
	user := createTestUser(t, repos, "athlete@vitalog.local")

	march1 := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	march31 := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	april1 := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	for _, date := range []time.Time{march1, march31, april1} {
		if err := repos.Workouts.Create(&models.Workout{UserID: user.ID, Date: date}); err != nil {
			t.Fatalf("create workout: %v", err)
		}
	}

	workouts, err := repos.Workouts.ListByUserDateRange(user.ID, march1, april1)
	if err != nil {
		t.Fatalf("list by range: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("expected 2 workouts in [march1, april1), got %d", len(workouts))
	}
}

func TestDeleteByIDForUserReportsMissingChild(t *testing.T) {
	database := openTestDB(t)
	repos := NewRepositories(database)
	user := createTestUser(t, repos, "deleter@vitalog.local")

	err := repos.MoodLogs.DeleteByIDForUser("missing-id", user.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found for missing mood log, got %v", err)
	}
}
