package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sleep quality is a closed domain: a stored value outside these four
// labels indicates corrupted data, not a new category.
const (
	SleepQualityPoor      = "Poor"
	SleepQualityFair      = "Fair"
	SleepQualityGood      = "Good"
	SleepQualityExcellent = "Excellent"
)

type SleepRecord struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	UserID         string    `gorm:"not null;index:idx_sleep_records_user_start" json:"user_id"`
	StartTime      time.Time `gorm:"not null;index:idx_sleep_records_user_start" json:"start_time"`
	EndTime        time.Time `gorm:"not null" json:"end_time"`
	Quality        string    `json:"quality,omitempty"`
	DeepSleepHours *float64  `json:"deep_sleep_hours,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (record *SleepRecord) BeforeCreate(*gorm.DB) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	return nil
}

// DurationHours is the slept interval length at day-fraction precision.
func (record *SleepRecord) DurationHours() float64 {
	return record.EndTime.Sub(record.StartTime).Hours()
}

// SleepQualities returns the closed quality domain in reporting order.
func SleepQualities() []string {
	return []string{SleepQualityPoor, SleepQualityFair, SleepQualityGood, SleepQualityExcellent}
}

func IsValidSleepQuality(quality string) bool {
	switch quality {
	case SleepQualityPoor, SleepQualityFair, SleepQualityGood, SleepQualityExcellent:
		return true
	}
	return false
}
