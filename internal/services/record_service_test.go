package services

import (
	"testing"
	"time"
)

func TestCreateUserRequiresNameAndEmail(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name  string
		input UserInput
	}{
		{name: "missing name", input: UserInput{Email: "valid@vitalog.local"}},
		{name: "missing email", input: UserInput{Name: "No Email"}},
		{name: "malformed email", input: UserInput{Name: "Bad Email", Email: "not-an-email"}},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			_, err := env.records.CreateUser(testCase.input)
			if !IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateUserDuplicateEmailConflicts(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.records.CreateUser(UserInput{Name: "First", Email: "dup@vitalog.local"}); err != nil {
		t.Fatalf("create first user: %v", err)
	}

	_, err := env.records.CreateUser(UserInput{Name: "Second", Email: "dup@vitalog.local"})
	if !IsConflict(err) {
		t.Fatalf("expected conflict for identical email, got %v", err)
	}

	_, err = env.records.CreateUser(UserInput{Name: "Second", Email: "  DUP@vitalog.local "})
	if !IsConflict(err) {
		t.Fatalf("expected conflict for normalized-equal email, got %v", err)
	}

	if _, err := env.records.CreateUser(UserInput{Name: "Third", Email: "distinct@vitalog.local"}); err != nil {
		t.Fatalf("expected distinct email to succeed, got %v", err)
	}
}

func TestCreateChildWithUnknownOwnerFails(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now().UTC()

	if _, err := env.records.CreateFitnessGoal("ghost-user", FitnessGoalInput{Goal: "Run"}); !IsNotFound(err) {
		t.Fatalf("expected not-found for goal without owner, got %v", err)
	}
	if _, err := env.records.CreateWorkout("ghost-user", WorkoutInput{Date: now}); !IsNotFound(err) {
		t.Fatalf("expected not-found for workout without owner, got %v", err)
	}
	if _, err := env.records.CreateNutritionLog("ghost-user", NutritionLogInput{Date: now}); !IsNotFound(err) {
		t.Fatalf("expected not-found for nutrition log without owner, got %v", err)
	}
	if _, err := env.records.CreateSleepRecord("ghost-user", SleepRecordInput{StartTime: now.Add(-8 * time.Hour), EndTime: now}); !IsNotFound(err) {
		t.Fatalf("expected not-found for sleep record without owner, got %v", err)
	}
	if _, err := env.records.CreateMoodLog("ghost-user", MoodLogInput{Date: now}); !IsNotFound(err) {
		t.Fatalf("expected not-found for mood log without owner, got %v", err)
	}

	goals, err := env.repos.FitnessGoals.ListByUser("ghost-user")
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if len(goals) != 0 {
		t.Fatalf("expected no goal persisted for unknown owner, got %d", len(goals))
	}
}

func TestCreateSleepRecordRejectsInvertedInterval(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "sleeper@vitalog.local")

	end := time.Now().UTC()
	_, err := env.records.CreateSleepRecord(user.ID, SleepRecordInput{
		StartTime: end.Add(time.Hour),
		EndTime:   end,
	})
	if !IsValidation(err) {
		t.Fatalf("expected validation error for end before start, got %v", err)
	}
}

func TestCreateSleepRecordAllowsZeroDuration(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "napper@vitalog.local")

	instant := time.Now().UTC()
	if _, err := env.records.CreateSleepRecord(user.ID, SleepRecordInput{
		StartTime: instant,
		EndTime:   instant,
	}); err != nil {
		t.Fatalf("expected equal start and end to be accepted, got %v", err)
	}
}

func TestMoodLogStressLevelRange(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "moody@vitalog.local")
	date := time.Now().UTC()

	for _, level := range []int{0, 11} {
		level := level
		if _, err := env.records.CreateMoodLog(user.ID, MoodLogInput{Date: date, StressLevel: &level}); !IsValidation(err) {
			t.Fatalf("expected validation error for stress level %d, got %v", level, err)
		}
	}

	valid := 5
	if _, err := env.records.CreateMoodLog(user.ID, MoodLogInput{Date: date, Mood: "Calm", StressLevel: &valid}); err != nil {
		t.Fatalf("expected stress level 5 to be accepted, got %v", err)
	}
}

func TestUpdateFitnessGoalFlipsCompleted(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "goal-owner@vitalog.local")

	goal, err := env.records.CreateFitnessGoal(user.ID, FitnessGoalInput{Goal: "Marathon"})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}
	if goal.Completed {
		t.Fatalf("expected new goal to default to not completed")
	}

	completed := true
	if err := env.records.UpdateFitnessGoal(goal.ID, user.ID, FitnessGoalPatch{Completed: &completed}); err != nil {
		t.Fatalf("update goal: %v", err)
	}

	goals, err := env.records.ListFitnessGoals(user.ID)
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if len(goals) != 1 || !goals[0].Completed {
		t.Fatalf("expected the goal to be marked completed")
	}
}

func TestUpdateChildUnderWrongOwnerNotFound(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "real-owner@vitalog.local")
	intruder := env.createUser(t, "intruder@vitalog.local")

	goal, err := env.records.CreateFitnessGoal(owner.ID, FitnessGoalInput{Goal: "Row 5k"})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}

	completed := true
	err = env.records.UpdateFitnessGoal(goal.ID, intruder.ID, FitnessGoalPatch{Completed: &completed})
	if !IsNotFound(err) {
		t.Fatalf("expected not-found for cross-user mutation, got %v", err)
	}
}

func TestUpdateChildEmptyPatchStillResolvesRecord(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "empty-patch-owner@vitalog.local")
	intruder := env.createUser(t, "empty-patch-intruder@vitalog.local")

	goal, err := env.records.CreateFitnessGoal(owner.ID, FitnessGoalInput{Goal: "Swim weekly"})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}

	if err := env.records.UpdateFitnessGoal(goal.ID, owner.ID, FitnessGoalPatch{}); err != nil {
		t.Fatalf("expected empty patch on an owned goal to succeed, got %v", err)
	}

	err = env.records.UpdateFitnessGoal("no-such-goal", owner.ID, FitnessGoalPatch{})
	if !IsNotFound(err) {
		t.Fatalf("expected not-found for empty patch on missing goal, got %v", err)
	}

	err = env.records.UpdateFitnessGoal(goal.ID, intruder.ID, FitnessGoalPatch{})
	if !IsNotFound(err) {
		t.Fatalf("expected not-found for empty patch under the wrong owner, got %v", err)
	}
}

func TestUpdateChildEmptyPatchMissingIDAcrossKinds(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "empty-patch-kinds@vitalog.local")

	checks := []struct {
		name   string
		update func() error
	}{
		{name: "workout", update: func() error {
			return env.records.UpdateWorkout("missing", user.ID, WorkoutPatch{})
		}},
		{name: "nutrition log", update: func() error {
			return env.records.UpdateNutritionLog("missing", user.ID, NutritionLogPatch{})
		}},
		{name: "sleep record", update: func() error {
			return env.records.UpdateSleepRecord("missing", user.ID, SleepRecordPatch{})
		}},
		{name: "mood log", update: func() error {
			return env.records.UpdateMoodLog("missing", user.ID, MoodLogPatch{})
		}},
	}

	for _, check := range checks {
		check := check
		t.Run(check.name, func(t *testing.T) {
			if err := check.update(); !IsNotFound(err) {
				t.Fatalf("expected not-found for empty patch on missing %s, got %v", check.name, err)
			}
		})
	}
}

func TestUpdateSleepRecordChecksIntervalAgainstStoredEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "dreamer@vitalog.local")

	start := time.Date(2024, time.March, 10, 22, 0, 0, 0, time.UTC)
	record, err := env.records.CreateSleepRecord(user.ID, SleepRecordInput{
		StartTime: start,
		EndTime:   start.Add(8 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create sleep record: %v", err)
	}

	badEnd := start.Add(-time.Hour)
	err = env.records.UpdateSleepRecord(record.ID, user.ID, SleepRecordPatch{EndTime: &badEnd})
	if !IsValidation(err) {
		t.Fatalf("expected validation error for end moved before stored start, got %v", err)
	}

	goodEnd := start.Add(9 * time.Hour)
	if err := env.records.UpdateSleepRecord(record.ID, user.ID, SleepRecordPatch{EndTime: &goodEnd}); err != nil {
		t.Fatalf("expected valid end move to succeed, got %v", err)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "cascade@vitalog.local")
	now := time.Now().UTC()

	if _, err := env.records.CreateFitnessGoal(user.ID, FitnessGoalInput{Goal: "Climb"}); err != nil {
		t.Fatalf("create goal: %v", err)
	}
	if _, err := env.records.CreateWorkout(user.ID, WorkoutInput{Date: now}); err != nil {
		t.Fatalf("create workout: %v", err)
	}
	if _, err := env.records.CreateNutritionLog(user.ID, NutritionLogInput{Date: now}); err != nil {
		t.Fatalf("create nutrition log: %v", err)
	}
	if _, err := env.records.CreateSleepRecord(user.ID, SleepRecordInput{StartTime: now.Add(-7 * time.Hour), EndTime: now}); err != nil {
		t.Fatalf("create sleep record: %v", err)
	}
	if _, err := env.records.CreateMoodLog(user.ID, MoodLogInput{Date: now, Mood: "Hopeful"}); err != nil {
		t.Fatalf("create mood log: %v", err)
	}

	if err := env.records.DeleteUser(user.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if _, err := env.records.GetUser(user.ID); !IsNotFound(err) {
		t.Fatalf("expected deleted user to be gone, got %v", err)
	}

	for kind, count := range map[string]func() (int, error){
		"fitness goal": func() (int, error) {
			rows, err := env.repos.FitnessGoals.ListByUser(user.ID)
			return len(rows), err
		},
		"workout": func() (int, error) {
			rows, err := env.repos.Workouts.ListByUser(user.ID)
			return len(rows), err
		},
		"nutrition log": func() (int, error) {
			rows, err := env.repos.NutritionLogs.ListByUser(user.ID)
			return len(rows), err
		},
		"sleep record": func() (int, error) {
			rows, err := env.repos.SleepRecords.ListByUser(user.ID)
			return len(rows), err
		},
		"mood log": func() (int, error) {
			rows, err := env.repos.MoodLogs.ListByUser(user.ID)
			return len(rows), err
		},
	} {
		remaining, err := count()
		if err != nil {
			t.Fatalf("count %s rows: %v", kind, err)
		}
		if remaining != 0 {
			t.Fatalf("expected no %s rows after cascade, got %d", kind, remaining)
		}
	}
}

func TestDeleteUnknownUserNotFound(t *testing.T) {
	env := newTestEnv(t)

	if err := env.records.DeleteUser("never-existed"); !IsNotFound(err) {
		t.Fatalf("expected not-found for unknown user, got %v", err)
	}
}

func TestWorkoutIntensityDomainValidated(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "intense@vitalog.local")

	_, err := env.records.CreateWorkout(user.ID, WorkoutInput{Date: time.Now().UTC(), Intensity: "Extreme"})
	if !IsValidation(err) {
		t.Fatalf("expected validation error for unknown intensity, got %v", err)
	}
}
