package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
)

type NutritionLog struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"not null;index:idx_nutrition_logs_user_date" json:"user_id"`
	Date          time.Time `gorm:"type:date;not null;index:idx_nutrition_logs_user_date" json:"date"`
	MealType      string    `json:"meal_type,omitempty"`
	Calories      *int      `json:"calories,omitempty"`
	ProteinsGrams *float64  `json:"proteins_grams,omitempty"`
	CarbsGrams    *float64  `json:"carbs_grams,omitempty"`
	FatsGrams     *float64  `json:"fats_grams,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (entry *NutritionLog) BeforeCreate(*gorm.DB) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return nil
}

func KnownMealTypes() []string {
	return []string{MealBreakfast, MealLunch, MealDinner, MealSnack}
}
