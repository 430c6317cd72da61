package models

import (
	"time"
)

// User represents a coach or a player. The role is fixed at registration;
// there is no promotion/demotion flow.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	IsCoach      bool      `gorm:"default:false" json:"is_coach"`
}
