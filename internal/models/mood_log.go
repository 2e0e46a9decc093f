package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinStressLevel = 1
	MaxStressLevel = 10
)

// Mood is free text observed dynamically; unlike sleep quality it is
// never validated against a fixed set.
type MoodLog struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"not null;index:idx_mood_logs_user_date" json:"user_id"`
	Date        time.Time `gorm:"type:date;not null;index:idx_mood_logs_user_date" json:"date"`
	Mood        string    `json:"mood,omitempty"`
	StressLevel *int      `json:"stress_level,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (entry *MoodLog) BeforeCreate(*gorm.DB) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return nil
}
