package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/vitalog/vitalog/internal/models"
)

// LookbackDays is the trailing window analytics use for "recent" data.
const LookbackDays = 30

type AnalyticsUserReader interface {
	ExistsByID(userID string) (bool, error)
}

type AnalyticsGoalReader interface {
	ListByUser(userID string) ([]models.FitnessGoal, error)
}

type AnalyticsWorkoutReader interface {
	ListByUser(userID string) ([]models.Workout, error)
	ListByUserDateRange(userID string, fromStart time.Time, toEnd time.Time) ([]models.Workout, error)
}

type AnalyticsNutritionReader interface {
	ListByUserDateRange(userID string, fromStart time.Time, toEnd time.Time) ([]models.NutritionLog, error)
}

type AnalyticsSleepReader interface {
	ListByUserStartedSince(userID string, since time.Time) ([]models.SleepRecord, error)
}

type AnalyticsMoodReader interface {
	ListByUserSince(userID string, since time.Time) ([]models.MoodLog, error)
}

// AnalyticsService derives summaries from one user's records. Every
// operation is a pure read: nothing is written, and zero-row results
// degrade to empty summaries except where documented.
type AnalyticsService struct {
	users         AnalyticsUserReader
	goals         AnalyticsGoalReader
	workouts      AnalyticsWorkoutReader
	nutritionLogs AnalyticsNutritionReader
	sleepRecords  AnalyticsSleepReader
	moodLogs      AnalyticsMoodReader

	now func() time.Time
}

func NewAnalyticsService(
	users AnalyticsUserReader,
	goals AnalyticsGoalReader,
	workouts AnalyticsWorkoutReader,
	nutritionLogs AnalyticsNutritionReader,
	sleepRecords AnalyticsSleepReader,
	moodLogs AnalyticsMoodReader,
) *AnalyticsService {
	return &AnalyticsService{
		users:         users,
		goals:         goals,
		workouts:      workouts,
		nutritionLogs: nutritionLogs,
		sleepRecords:  sleepRecords,
		moodLogs:      moodLogs,
		now:           time.Now,
	}
}

type MealEntry struct {
	MealType string `json:"meal_type"`
	Calories int    `json:"calories"`
}

type DayNutritionSummary struct {
	Date          time.Time   `json:"date"`
	TotalCalories int         `json:"total_calories"`
	Meals         []MealEntry `json:"meals"`
}

type NutritionTotals struct {
	Calories      int     `json:"calories"`
	ProteinsGrams float64 `json:"proteins_grams"`
	CarbsGrams    float64 `json:"carbs_grams"`
	FatsGrams     float64 `json:"fats_grams"`
}

type MonthlyWorkoutSummary struct {
	TotalDurationMinutes float64  `json:"total_duration_minutes"`
	Intensities          []string `json:"intensities"`
	WorkoutCount         int      `json:"workout_count"`
}

type GoalProgress struct {
	Goal       string     `json:"goal"`
	TargetDate *time.Time `json:"target_date,omitempty"`
	Status     string     `json:"status"`
}

func (service *AnalyticsService) requireUser(userID string) error {
	exists, err := service.users.ExistsByID(userID)
	if err != nil {
		return fmt.Errorf("resolve user: %w", err)
	}
	if !exists {
		return &NotFoundError{Kind: KindUser, ID: userID}
	}
	return nil
}

func (service *AnalyticsService) lookbackStart() time.Time {
	return service.now().AddDate(0, 0, -LookbackDays)
}

// AverageSleepDuration is the arithmetic mean, in hours, of the slept
// intervals started within the lookback window. An empty window returns
// ErrNoSleepData rather than a zero mean.
func (service *AnalyticsService) AverageSleepDuration(userID string) (float64, error) {
	if err := service.requireUser(userID); err != nil {
		return 0, err
	}

	records, err := service.sleepRecords.ListByUserStartedSince(userID, service.lookbackStart())
	if err != nil {
		return 0, fmt.Errorf("list sleep records: %w", err)
	}
	if len(records) == 0 {
		return 0, ErrNoSleepData
	}

	var totalHours float64
	for _, record := range records {
		totalHours += record.DurationHours()
	}
	return totalHours / float64(len(records)), nil
}

// DailyNutritionSummary totals calories for one calendar day and lists the
// per-meal breakdown. Only calories are summed here; the range variant
// covers the full macro totals.
func (service *AnalyticsService) DailyNutritionSummary(userID string, date time.Time) (DayNutritionSummary, error) {
	if err := service.requireUser(userID); err != nil {
		return DayNutritionSummary{}, err
	}

	dayStart, dayEnd := dayBounds(date)
	entries, err := service.nutritionLogs.ListByUserDateRange(userID, dayStart, dayEnd)
	if err != nil {
		return DayNutritionSummary{}, fmt.Errorf("list nutrition logs: %w", err)
	}

	summary := DayNutritionSummary{Date: dayStart, Meals: make([]MealEntry, 0, len(entries))}
	for _, entry := range entries {
		calories := 0
		if entry.Calories != nil {
			calories = *entry.Calories
		}
		summary.TotalCalories += calories
		summary.Meals = append(summary.Meals, MealEntry{MealType: entry.MealType, Calories: calories})
	}
	return summary, nil
}

// NutritionSummaryRange sums calories, proteins, carbs and fats over the
// inclusive [from, to] date range. Missing values count as zero.
func (service *AnalyticsService) NutritionSummaryRange(userID string, from time.Time, to time.Time) (NutritionTotals, error) {
	if err := service.requireUser(userID); err != nil {
		return NutritionTotals{}, err
	}
	if to.Before(from) {
		return NutritionTotals{}, &ValidationError{Field: "to", Reason: "must not be earlier than from"}
	}

	fromStart, _ := dayBounds(from)
	_, toEnd := dayBounds(to)
	entries, err := service.nutritionLogs.ListByUserDateRange(userID, fromStart, toEnd)
	if err != nil {
		return NutritionTotals{}, fmt.Errorf("list nutrition logs: %w", err)
	}

	var totals NutritionTotals
	for _, entry := range entries {
		if entry.Calories != nil {
			totals.Calories += *entry.Calories
		}
		if entry.ProteinsGrams != nil {
			totals.ProteinsGrams += *entry.ProteinsGrams
		}
		if entry.CarbsGrams != nil {
			totals.CarbsGrams += *entry.CarbsGrams
		}
		if entry.FatsGrams != nil {
			totals.FatsGrams += *entry.FatsGrams
		}
	}
	return totals, nil
}

// MonthlyWorkoutSummary totals workout minutes for one calendar month and
// reports the distinct intensity labels seen. The intensity report is a
// deduplicated set, not an average.
func (service *AnalyticsService) MonthlyWorkoutSummary(userID string, month time.Month, year int) (MonthlyWorkoutSummary, error) {
	if err := service.requireUser(userID); err != nil {
		return MonthlyWorkoutSummary{}, err
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	workouts, err := service.workouts.ListByUserDateRange(userID, monthStart, monthEnd)
	if err != nil {
		return MonthlyWorkoutSummary{}, fmt.Errorf("list workouts: %w", err)
	}

	seen := make(map[string]struct{})
	summary := MonthlyWorkoutSummary{Intensities: make([]string, 0), WorkoutCount: len(workouts)}
	for _, workout := range workouts {
		if workout.DurationMinutes != nil {
			summary.TotalDurationMinutes += *workout.DurationMinutes
		}
		if workout.Intensity == "" {
			continue
		}
		if _, duplicate := seen[workout.Intensity]; duplicate {
			continue
		}
		seen[workout.Intensity] = struct{}{}
		summary.Intensities = append(summary.Intensities, workout.Intensity)
	}
	sort.Strings(summary.Intensities)
	return summary, nil
}

// SleepQualityOverview counts records per quality bucket over the lookback
// window. The bucket domain is fixed: absent qualities report zero, and a
// stored value outside the domain is surfaced as InvalidStateError.
func (service *AnalyticsService) SleepQualityOverview(userID string) (map[string]int, error) {
	if err := service.requireUser(userID); err != nil {
		return nil, err
	}

	records, err := service.sleepRecords.ListByUserStartedSince(userID, service.lookbackStart())
	if err != nil {
		return nil, fmt.Errorf("list sleep records: %w", err)
	}

	counts := make(map[string]int, 4)
	for _, quality := range models.SleepQualities() {
		counts[quality] = 0
	}
	for _, record := range records {
		if record.Quality == "" {
			continue
		}
		if !models.IsValidSleepQuality(record.Quality) {
			return nil, &InvalidStateError{Kind: KindSleepRecord, Field: "quality", Value: record.Quality}
		}
		counts[record.Quality]++
	}
	return counts, nil
}

// MoodTrend counts occurrences per observed mood over the lookback window.
// The domain is open: buckets exist only for moods actually logged.
func (service *AnalyticsService) MoodTrend(userID string) (map[string]int, error) {
	if err := service.requireUser(userID); err != nil {
		return nil, err
	}

	entries, err := service.moodLogs.ListByUserSince(userID, service.lookbackStart())
	if err != nil {
		return nil, fmt.Errorf("list mood logs: %w", err)
	}

	counts := make(map[string]int)
	for _, entry := range entries {
		if entry.Mood == "" {
			continue
		}
		counts[entry.Mood]++
	}
	return counts, nil
}

// GoalProgressReport lists every goal with its derived status label.
func (service *AnalyticsService) GoalProgressReport(userID string) ([]GoalProgress, error) {
	if err := service.requireUser(userID); err != nil {
		return nil, err
	}

	goals, err := service.goals.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list fitness goals: %w", err)
	}

	report := make([]GoalProgress, 0, len(goals))
	for _, goal := range goals {
		report = append(report, GoalProgress{
			Goal:       goal.Goal,
			TargetDate: goal.TargetDate,
			Status:     goal.Status(),
		})
	}
	return report, nil
}

// WorkoutHistory lists every workout for the user, unfiltered.
func (service *AnalyticsService) WorkoutHistory(userID string) ([]models.Workout, error) {
	if err := service.requireUser(userID); err != nil {
		return nil, err
	}
	return service.workouts.ListByUser(userID)
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	dayStart := dateOnly(date)
	return dayStart, dayStart.AddDate(0, 0, 1)
}

// dateOnly pins a date-only field to UTC midnight of its calendar day so
// stored dates and the UTC window bounds used by analytics always agree.
func dateOnly(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
