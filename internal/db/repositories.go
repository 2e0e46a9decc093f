package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	FitnessGoals  *FitnessGoalRepository
	Workouts      *WorkoutRepository
	NutritionLogs *NutritionLogRepository
	SleepRecords  *SleepRecordRepository
	MoodLogs      *MoodLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		FitnessGoals:  NewFitnessGoalRepository(database),
		Workouts:      NewWorkoutRepository(database),
		NutritionLogs: NewNutritionLogRepository(database),
		SleepRecords:  NewSleepRecordRepository(database),
		MoodLogs:      NewMoodLogRepository(database),
	}
}
