// Package seed fills an empty store with randomized but invariant-respecting
// sample data. Everything goes through the record service so owner checks
// and validation apply the same way they do for real writes.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vitalog/vitalog/internal/services"
)

var (
	firstNames = []string{"Alice", "Bob", "Cathy", "Danny", "Eva", "Frank", "Grace", "Henry", "Irene", "Jack"}
	lastNames  = []string{"Doe", "Builder", "Vegan", "Dreamer", "Emotion", "Runner", "Lifter", "Walker", "Swimmer", "Rider"}
	genders    = []string{"Male", "Female"}
	goalTexts  = []string{"Lose weight", "Gain muscle", "Improve stamina", "Increase flexibility"}
	workouts   = []string{"Running", "Cycling", "Swimming", "Yoga", "Gym", "Hiking"}
	moods      = []string{"Happy", "Calm", "Tired", "Stressed", "Energetic"}
	qualities  = []string{"Poor", "Fair", "Good", "Excellent"}
	mealTypes  = []string{"Breakfast", "Lunch", "Dinner", "Snack"}
	durations  = []float64{30, 45, 60, 75, 90}
)

type Options struct {
	Users           int
	WorkoutsPerUser int
	DaysOfLogs      int
	Rand            *rand.Rand
}

func (options Options) withDefaults() Options {
	if options.Users <= 0 {
		options.Users = 10
	}
	if options.WorkoutsPerUser <= 0 {
		options.WorkoutsPerUser = 5
	}
	if options.DaysOfLogs <= 0 {
		options.DaysOfLogs = 7
	}
	if options.Rand == nil {
		options.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return options
}

func Generate(records *services.RecordService, options Options) error {
	options = options.withDefaults()
	random := options.Rand
	now := time.Now().UTC()

	for userIndex := 0; userIndex < options.Users; userIndex++ {
		age := 18 + random.Intn(48)
		weight := 50.0 + random.Float64()*50.0
		height := 150.0 + random.Float64()*50.0

		user, err := records.CreateUser(services.UserInput{
			Name:     fmt.Sprintf("%s %s", pick(random, firstNames), pick(random, lastNames)),
			Email:    fmt.Sprintf("sample-user-%d-%d@vitalog.local", now.UnixNano(), userIndex),
			Age:      &age,
			Gender:   pick(random, genders),
			WeightKg: &weight,
			HeightCm: &height,
		})
		if err != nil {
			return fmt.Errorf("seed user %d: %w", userIndex, err)
		}

		targetDate := now.AddDate(0, 0, 30+random.Intn(336))
		if _, err := records.CreateFitnessGoal(user.ID, services.FitnessGoalInput{
			Goal:       pick(random, goalTexts),
			TargetDate: &targetDate,
		}); err != nil {
			return fmt.Errorf("seed goal for user %d: %w", userIndex, err)
		}

		for workoutIndex := 0; workoutIndex < options.WorkoutsPerUser; workoutIndex++ {
			duration := pick(random, durations)
			calories := 100.0 + random.Float64()*500.0
			if _, err := records.CreateWorkout(user.ID, services.WorkoutInput{
				Date:            dayOnly(now.AddDate(0, 0, -random.Intn(365))),
				DurationMinutes: &duration,
				Type:            pick(random, workouts),
				Intensity:       pick(random, []string{"Low", "Medium", "High"}),
				CaloriesBurned:  &calories,
			}); err != nil {
				return fmt.Errorf("seed workout for user %d: %w", userIndex, err)
			}
		}

		for dayIndex := 0; dayIndex < options.DaysOfLogs; dayIndex++ {
			date := dayOnly(now.AddDate(0, 0, -dayIndex))

			calories := 200 + random.Intn(600)
			proteins := 10.0 + random.Float64()*40.0
			carbs := 20.0 + random.Float64()*80.0
			fats := 5.0 + random.Float64()*30.0
			if _, err := records.CreateNutritionLog(user.ID, services.NutritionLogInput{
				Date:          date,
				MealType:      pick(random, mealTypes),
				Calories:      &calories,
				ProteinsGrams: &proteins,
				CarbsGrams:    &carbs,
				FatsGrams:     &fats,
			}); err != nil {
				return fmt.Errorf("seed nutrition log for user %d: %w", userIndex, err)
			}

			sleepStart := now.AddDate(0, 0, -(dayIndex + 1)).Add(-time.Duration(random.Intn(3)) * time.Hour)
			sleepEnd := sleepStart.Add(time.Duration(6+random.Intn(4)) * time.Hour)
			deepSleep := 1.0 + random.Float64()*3.0
			if _, err := records.CreateSleepRecord(user.ID, services.SleepRecordInput{
				StartTime:      sleepStart,
				EndTime:        sleepEnd,
				Quality:        pick(random, qualities),
				DeepSleepHours: &deepSleep,
			}); err != nil {
				return fmt.Errorf("seed sleep record for user %d: %w", userIndex, err)
			}

			stress := 1 + random.Intn(10)
			if _, err := records.CreateMoodLog(user.ID, services.MoodLogInput{
				Date:        date,
				Mood:        pick(random, moods),
				StressLevel: &stress,
			}); err != nil {
				return fmt.Errorf("seed mood log for user %d: %w", userIndex, err)
			}
		}
	}
	return nil
}

func pick[T any](random *rand.Rand, values []T) T {
	return values[random.Intn(len(values))]
}

func dayOnly(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}
