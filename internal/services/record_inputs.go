package services

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type UserInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Age      *int   `validate:"omitempty,gte=0,lte=150"`
	Gender   string
	WeightKg *float64 `validate:"omitempty,gt=0"`
	HeightCm *float64 `validate:"omitempty,gt=0"`
	Bio      string
}

type FitnessGoalInput struct {
	Goal        string `validate:"required"`
	Description string
	TargetDate  *time.Time
	Completed   bool
}

type WorkoutInput struct {
	Date            time.Time `validate:"required"`
	DurationMinutes *float64  `validate:"omitempty,gte=0"`
	Type            string
	Intensity       string   `validate:"omitempty,oneof=Low Medium High"`
	CaloriesBurned  *float64 `validate:"omitempty,gte=0"`
	Notes           string
}

type NutritionLogInput struct {
	Date          time.Time `validate:"required"`
	MealType      string    `validate:"omitempty,oneof=Breakfast Lunch Dinner Snack"`
	Calories      *int      `validate:"omitempty,gte=0"`
	ProteinsGrams *float64  `validate:"omitempty,gte=0"`
	CarbsGrams    *float64  `validate:"omitempty,gte=0"`
	FatsGrams     *float64  `validate:"omitempty,gte=0"`
	Notes         string
}

type SleepRecordInput struct {
	StartTime      time.Time `validate:"required"`
	EndTime        time.Time `validate:"required"`
	Quality        string    `validate:"omitempty,oneof=Poor Fair Good Excellent"`
	DeepSleepHours *float64  `validate:"omitempty,gte=0"`
	Notes          string
}

type MoodLogInput struct {
	Date        time.Time `validate:"required"`
	Mood        string
	StressLevel *int `validate:"omitempty,min=1,max=10"`
	Notes       string
}

// Patch types carry nil for fields the caller leaves unchanged.

type FitnessGoalPatch struct {
	Goal        *string `validate:"omitempty,min=1"`
	Description *string
	TargetDate  *time.Time
	Completed   *bool
}

type WorkoutPatch struct {
	Date            *time.Time
	DurationMinutes *float64 `validate:"omitempty,gte=0"`
	Type            *string
	Intensity       *string  `validate:"omitempty,oneof=Low Medium High"`
	CaloriesBurned  *float64 `validate:"omitempty,gte=0"`
	Notes           *string
}

type NutritionLogPatch struct {
	Date          *time.Time
	MealType      *string  `validate:"omitempty,oneof=Breakfast Lunch Dinner Snack"`
	Calories      *int     `validate:"omitempty,gte=0"`
	ProteinsGrams *float64 `validate:"omitempty,gte=0"`
	CarbsGrams    *float64 `validate:"omitempty,gte=0"`
	FatsGrams     *float64 `validate:"omitempty,gte=0"`
	Notes         *string
}

type SleepRecordPatch struct {
	StartTime      *time.Time
	EndTime        *time.Time
	Quality        *string  `validate:"omitempty,oneof=Poor Fair Good Excellent"`
	DeepSleepHours *float64 `validate:"omitempty,gte=0"`
	Notes          *string
}

type MoodLogPatch struct {
	Date        *time.Time
	Mood        *string
	StressLevel *int `validate:"omitempty,min=1,max=10"`
	Notes       *string
}

func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		return &ValidationError{Field: snakeCase(first.Field()), Reason: constraintReason(first)}
	}
	return err
}

func constraintReason(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fieldError.Param(), " ", ", ")
	case "min", "gte":
		return "must be at least " + fieldError.Param()
	case "max", "lte":
		return "must be at most " + fieldError.Param()
	case "gt":
		return "must be greater than " + fieldError.Param()
	default:
		return "violates the " + fieldError.Tag() + " constraint"
	}
}

func snakeCase(name string) string {
	var builder strings.Builder
	for index, char := range name {
		if char >= 'A' && char <= 'Z' {
			if index > 0 && name[index-1] >= 'a' && name[index-1] <= 'z' {
				builder.WriteByte('_')
			}
			builder.WriteRune(char - 'A' + 'a')
			continue
		}
		builder.WriteRune(char)
	}
	return builder.String()
}
