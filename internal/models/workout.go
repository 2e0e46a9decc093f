package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	IntensityLow    = "Low"
	IntensityMedium = "Medium"
	IntensityHigh   = "High"
)

// Workout type is free text (Running, Yoga, ...) and is never enumerated.
type Workout struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"not null;index:idx_workouts_user_date" json:"user_id"`
	Date            time.Time `gorm:"type:date;not null;index:idx_workouts_user_date" json:"date"`
	DurationMinutes *float64  `json:"duration_minutes,omitempty"`
	Type            string    `json:"type,omitempty"`
	Intensity       string    `json:"intensity,omitempty"`
	CaloriesBurned  *float64  `json:"calories_burned,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (workout *Workout) BeforeCreate(*gorm.DB) error {
	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}
	return nil
}

func KnownIntensities() []string {
	return []string{IntensityLow, IntensityMedium, IntensityHigh}
}
