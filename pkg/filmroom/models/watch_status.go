package models

import (
	"time"
)

// WatchStatus is the per-user, per-content watched flag. Unlike comments and
// likes, this is a state, not an event log: exactly one row per
// (user, content) pair, written through an upsert keyed on the composite
// unique index. Rows are created lazily on first view/toggle and never
// deleted outside a content cascade.
type WatchStatus struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_watch_user_content" json:"user_id"`
	ContentID uint      `gorm:"not null;uniqueIndex:idx_watch_user_content" json:"content_id"`
	Watched   bool      `gorm:"not null;default:false" json:"watched"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content Content `gorm:"foreignKey:ContentID" json:"content,omitempty"`
}
