package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GoalStatusCompleted  = "Completed"
	GoalStatusInProgress = "In Progress"
)

type FitnessGoal struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"not null;index" json:"user_id"`
	Goal        string     `gorm:"not null" json:"goal"`
	Description string     `json:"description,omitempty"`
	TargetDate  *time.Time `gorm:"type:date" json:"target_date,omitempty"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (goal *FitnessGoal) BeforeCreate(*gorm.DB) error {
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	return nil
}

// Status derives the progress label reported by goal listings.
func (goal *FitnessGoal) Status() string {
	if goal.Completed {
		return GoalStatusCompleted
	}
	return GoalStatusInProgress
}
