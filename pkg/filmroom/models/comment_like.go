package models

import (
	"time"
)

// CommentLike is a join fact between a user and a comment. The combination of
// UserID and CommentID must be unique; like/unlike are idempotent against this
// constraint. Rows are hard-deleted on unlike so the index stays enforceable
// across unlike/re-like cycles.
type CommentLike struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_like_user_comment" json:"user_id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_like_user_comment" json:"comment_id"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Comment Comment `gorm:"foreignKey:CommentID" json:"comment,omitempty"`
}
