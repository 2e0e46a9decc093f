package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Age       *int      `json:"age,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	WeightKg  *float64  `json:"weight_kg,omitempty"`
	HeightCm  *float64  `json:"height_cm,omitempty"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (user *User) BeforeCreate(*gorm.DB) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return nil
}
