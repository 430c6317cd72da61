package models

import (
	"time"
)

// Comment is a free-text remark on a content item. Comments are created once
// and never edited; they only disappear when their content is deleted.
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ContentID uint      `gorm:"not null;index" json:"content_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`

	// Relationships
	Content Content `gorm:"foreignKey:ContentID" json:"content,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
