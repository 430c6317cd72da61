package models

import (
	"time"
)

// Content represents a training content link shared by a coach: a URL to
// externally hosted media plus metadata. Views is a monotonic event counter,
// incremented once per qualifying view and never deduplicated per user.
type Content struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CoachID      uint      `gorm:"not null;index" json:"coach_id"`
	Title        string    `gorm:"not null" json:"title"`
	URL          string    `gorm:"not null" json:"url"`
	Category     string    `json:"category"`
	Platform     string    `json:"platform"` // detected from the URL host
	ThumbnailURL string    `json:"thumbnail_url"`
	Description  string    `json:"description"`
	Views        uint      `gorm:"default:0" json:"views"`

	// Relationships
	Coach User `gorm:"foreignKey:CoachID" json:"coach,omitempty"`
}
