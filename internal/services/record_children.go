package services

import (
	"fmt"

	"github.com/vitalog/vitalog/internal/models"
)

func (service *RecordService) CreateFitnessGoal(userID string, input FitnessGoalInput) (models.FitnessGoal, error) {
	if err := service.requireUser(userID); err != nil {
		return models.FitnessGoal{}, err
	}
	if err := validateInput(input); err != nil {
		return models.FitnessGoal{}, err
	}

	goal := models.FitnessGoal{
		UserID:      userID,
		Goal:        input.Goal,
		Description: input.Description,
		TargetDate:  input.TargetDate,
		Completed:   input.Completed,
	}
	if err := service.goals.Create(&goal); err != nil {
		return models.FitnessGoal{}, fmt.Errorf("create fitness goal: %w", err)
	}
	return goal, nil
}

func (service *RecordService) ListFitnessGoals(userID string) ([]models.FitnessGoal, error) {
	if err := service.requireUser(userID); err != nil {
		return nil, err
	}
	return service.goals.ListByUser(userID)
}

func (service *RecordService) UpdateFitnessGoal(goalID string, userID string, patch FitnessGoalPatch) error {
	if err := validateInput(patch); err != nil {
		return err
	}

	updates := map[string]any{}
	if patch.Goal != nil {
		updates["goal"] = *patch.Goal
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.TargetDate != nil {
		updates["target_date"] = *patch.TargetDate
	}
	if patch.Completed != nil {
		updates["completed"] = *patch.Completed
	}
	if len(updates) == 0 {
		// A no-op patch still has to resolve the record under its owner.
		_, err := service.goals.FindByIDForUser(goalID, userID)
		return mapChildStoreError(err, KindFitnessGoal, goalID)
	}
	return mapChildStoreError(service.goals.UpdateByIDForUser(goalID, userID, updates), KindFitnessGoal, goalID)
}

func (service *RecordService) DeleteFitnessGoal(goalID string, userID string) error {
	return mapChildStoreError(service.goals.DeleteByIDForUser(goalID, userID), KindFitnessGoal, goalID)
}

func (service *RecordService) CreateWorkout(userID string, input WorkoutInput) (models.Workout, error) {
	if err := service.requireUser(userID); err != nil {
		return models.Workout{}, err
	}
	if err := validateInput(input); err != nil {
		return models.Workout{}, err
	}

	workout := models.Workout{
		UserID:          userID,
		Date:            dateOnly(input.Date),
		DurationMinutes: input.DurationMinutes,
		Type:            input.Type,
		Intensity:       input.Intensity,
		CaloriesBurned:  input.CaloriesBurned,
		Notes:           input.Notes,
	}
	if err := service.workouts.Create(&workout); err != nil {
		return models.Workout{}, fmt.Errorf("create workout: %w", err)
	}
	return workout, nil
}

func (service *RecordService) ListWorkouts(userID string) ([]models.Workout, error) {
	if err := service.requireUser(userID); err != nil {
		return nil, err
	}
	return service.workouts.ListByUser(userID)
}

func (service *RecordService) UpdateWorkout(workoutID string, userID string, patch WorkoutPatch) error {
	if err := validateInput(patch); err != nil {
		return err
	}

	updates := map[string]any{}
	if patch.Date != nil {
		updates["date"] = dateOnly(*patch.Date)
	}
	if patch.DurationMinutes != nil {
		updates["duration_minutes"] = *patch.DurationMinutes
	}
	if patch.Type != nil {
		updates["type"] = *patch.Type
	}
	if patch.Intensity != nil {
		updates["intensity"] = *patch.Intensity
	}
	if patch.CaloriesBurned != nil {
		updates["calories_burned"] = *patch.CaloriesBurned
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	if len(updates) == 0 {
		_, err := service.workouts.FindByIDForUser(workoutID, userID)
		return mapChildStoreError(err, KindWorkout, workoutID)
	}
	return mapChildStoreError(service.workouts.UpdateByIDForUser(workoutID, userID, updates), KindWorkout, workoutID)
}

func (service *RecordService) DeleteWorkout(workoutID string, userID string) error {
	return mapChildStoreError(service.workouts.DeleteByIDForUser(workoutID, userID), KindWorkout, workoutID)
}

func (service *RecordService) CreateNutritionLog(userID string, input NutritionLogInput) (models.NutritionLog, error) {
	if err := service.requireUser(userID); err != nil {
		return models.NutritionLog{}, err
	}
	if err := validateInput(input); err != nil {
		return models.NutritionLog{}, err
	}

	entry := models.NutritionLog{
		UserID:        userID,
		Date:          dateOnly(input.Date),
		MealType:      input.MealType,
		Calories:      input.Calories,
		ProteinsGrams: input.ProteinsGrams,
		CarbsGrams:    input.CarbsGrams,
		FatsGrams:     input.FatsGrams,
		Notes:         input.Notes,
	}
	if err := service.nutritionLogs.Create(&entry); err != nil {
		return models.NutritionLog{}, fmt.Errorf("create nutrition log: %w", err)
	}
	return entry, nil
}

func (service *RecordService) ListNutritionLogs(userID string) ([]models.NutritionLog, error) {
	if err := service.requireUser(userID); err != nil {
		return nil, err
	}
	return service.nutritionLogs.ListByUser(userID)
}

func (service *RecordService) UpdateNutritionLog(entryID string, userID string, patch NutritionLogPatch) error {
	if err := validateInput(patch); err != nil {
		return err
	}

	updates := map[string]any{}
	if patch.Date != nil {
		updates["date"] = dateOnly(*patch.Date)
	}
	if patch.MealType != nil {
		updates["meal_type"] = *patch.MealType
	}
	if patch.Calories != nil {
		updates["calories"] = *patch.Calories
	}
	if patch.ProteinsGrams != nil {
		updates["proteins_grams"] = *patch.ProteinsGrams
	}
	if patch.CarbsGrams != nil {
		updates["carbs_grams"] = *patch.CarbsGrams
	}
	if patch.FatsGrams != nil {
		updates["fats_grams"] = *patch.FatsGrams
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	if len(updates) == 0 {
		_, err := service.nutritionLogs.FindByIDForUser(entryID, userID)
		return mapChildStoreError(err, KindNutritionLog, entryID)
	}
	return mapChildStoreError(service.nutritionLogs.UpdateByIDForUser(entryID, userID, updates), KindNutritionLog, entryID)
}

func (service *RecordService) DeleteNutritionLog(entryID string, userID string) error {
	return mapChildStoreError(service.nutritionLogs.DeleteByIDForUser(entryID, userID), KindNutritionLog, entryID)
}

func (service *RecordService) CreateSleepRecord(userID string, input SleepRecordInput) (models.SleepRecord, error) {
	if err := service.requireUser(userID); err != nil {
		return models.SleepRecord{}, err
	}
	if err := validateInput(input); err != nil {
		return models.SleepRecord{}, err
	}
	if input.EndTime.Before(input.StartTime) {
		return models.SleepRecord{}, &ValidationError{Field: "end_time", Reason: "must not be earlier than start_time"}
	}

	record := models.SleepRecord{
		UserID:         userID,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		Quality:        input.Quality,
		DeepSleepHours: input.DeepSleepHours,
		Notes:          input.Notes,
	}
	if err := service.sleepRecords.Create(&record); err != nil {
		return models.SleepRecord{}, fmt.Errorf("create sleep record: %w", err)
	}
	return record, nil
}

func (service *RecordService) ListSleepRecords(userID string) ([]models.SleepRecord, error) {
	if err := service.requireUser(userID); err != nil {
		return nil, err
	}
	return service.sleepRecords.ListByUser(userID)
}

// UpdateSleepRecord re-checks interval ordering against the stored record
// when only one endpoint changes.
func (service *RecordService) UpdateSleepRecord(recordID string, userID string, patch SleepRecordPatch) error {
	if err := validateInput(patch); err != nil {
		return err
	}

	if patch.StartTime != nil || patch.EndTime != nil {
		current, err := service.sleepRecords.FindByIDForUser(recordID, userID)
		if err != nil {
			return mapChildStoreError(err, KindSleepRecord, recordID)
		}
		start := current.StartTime
		end := current.EndTime
		if patch.StartTime != nil {
			start = *patch.StartTime
		}
		if patch.EndTime != nil {
			end = *patch.EndTime
		}
		if end.Before(start) {
			return &ValidationError{Field: "end_time", Reason: "must not be earlier than start_time"}
		}
	}

	updates := map[string]any{}
	if patch.StartTime != nil {
		updates["start_time"] = *patch.StartTime
	}
	if patch.EndTime != nil {
		updates["end_time"] = *patch.EndTime
	}
	if patch.Quality != nil {
		updates["quality"] = *patch.Quality
	}
	if patch.DeepSleepHours != nil {
		updates["deep_sleep_hours"] = *patch.DeepSleepHours
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	if len(updates) == 0 {
		_, err := service.sleepRecords.FindByIDForUser(recordID, userID)
		return mapChildStoreError(err, KindSleepRecord, recordID)
	}
	return mapChildStoreError(service.sleepRecords.UpdateByIDForUser(recordID, userID, updates), KindSleepRecord, recordID)
}

func (service *RecordService) DeleteSleepRecord(recordID string, userID string) error {
	return mapChildStoreError(service.sleepRecords.DeleteByIDForUser(recordID, userID), KindSleepRecord, recordID)
}

func (service *RecordService) CreateMoodLog(userID string, input MoodLogInput) (models.MoodLog, error) {
	if err := service.requireUser(userID); err != nil {
		return models.MoodLog{}, err
	}
	if err := validateInput(input); err != nil {
		return models.MoodLog{}, err
	}

	entry := models.MoodLog{
		UserID:      userID,
		Date:        dateOnly(input.Date),
		Mood:        input.Mood,
		StressLevel: input.StressLevel,
		Notes:       input.Notes,
	}
	if err := service.moodLogs.Create(&entry); err != nil {
		return models.MoodLog{}, fmt.Errorf("create mood log: %w", err)
	}
	return entry, nil
}

func (service *RecordService) ListMoodLogs(userID string) ([]models.MoodLog, error) {
	if err := service.requireUser(userID); err != nil {
		return nil, err
	}
	return service.moodLogs.ListByUser(userID)
}

func (service *RecordService) UpdateMoodLog(entryID string, userID string, patch MoodLogPatch) error {
	if err := validateInput(patch); err != nil {
		return err
	}

	updates := map[string]any{}
	if patch.Date != nil {
		updates["date"] = dateOnly(*patch.Date)
	}
	if patch.Mood != nil {
		updates["mood"] = *patch.Mood
	}
	if patch.StressLevel != nil {
		updates["stress_level"] = *patch.StressLevel
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	if len(updates) == 0 {
		_, err := service.moodLogs.FindByIDForUser(entryID, userID)
		return mapChildStoreError(err, KindMoodLog, entryID)
	}
	return mapChildStoreError(service.moodLogs.UpdateByIDForUser(entryID, userID, updates), KindMoodLog, entryID)
}

func (service *RecordService) DeleteMoodLog(entryID string, userID string) error {
	return mapChildStoreError(service.moodLogs.DeleteByIDForUser(entryID, userID), KindMoodLog, entryID)
}
