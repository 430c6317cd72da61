package engagement

import (
	"errors"
	"time"

	"github.com/filmroom/filmroom/pkg/filmroom/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store mediates every read and write of engagement state: watch statuses,
// view counters and comment likes. Handlers never touch these tables
// directly, so the uniqueness and atomicity rules live in one place.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new engagement store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// SetWatched inserts or updates the watch status for a (user, content) pair
// as a single conflict-resolving statement. Two concurrent toggles for the
// same pair can never produce two rows: the composite unique index is the
// backstop and the upsert resolves against it.
func (s *Store) SetWatched(userID, contentID uint, watched bool) (models.WatchStatus, error) {
	status := models.WatchStatus{
		UserID:    userID,
		ContentID: contentID,
		Watched:   watched,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "content_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"watched":    watched,
			"updated_at": time.Now(),
		}),
	}).Create(&status).Error
	if err != nil {
		return models.WatchStatus{}, err
	}

	// Re-read so the caller sees the surviving row regardless of which
	// side of the conflict this write landed on.
	err = s.db.Where("user_id = ? AND content_id = ?", userID, contentID).First(&status).Error
	return status, err
}

// GetWatched returns the watch status for a (user, content) pair. A missing
// row means "not watched".
func (s *Store) GetWatched(userID, contentID uint) (models.WatchStatus, bool, error) {
	var status models.WatchStatus
	err := s.db.Where("user_id = ? AND content_id = ?", userID, contentID).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.WatchStatus{}, false, nil
	}
	if err != nil {
		return models.WatchStatus{}, false, err
	}
	return status, true, nil
}

// IncrementViews bumps the view counter for a content item in-store. The
// increment happens inside the UPDATE itself, so concurrent viewers never
// lose each other's counts.
func (s *Store) IncrementViews(contentID uint) error {
	return s.db.Model(&models.Content{}).
		Where("id = ?", contentID).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// Like records a like of a comment by a user. Liking an already-liked
// comment is a no-op, resolved by the unique index on (user_id, comment_id).
func (s *Store) Like(userID, commentID uint) error {
	like := models.CommentLike{
		UserID:    userID,
		CommentID: commentID,
	}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error
}

// Unlike removes a like. Unliking a comment that was never liked is a no-op.
func (s *Store) Unlike(userID, commentID uint) error {
	return s.db.Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&models.CommentLike{}).Error
}

// HasLiked reports whether the user has liked the comment
func (s *Store) HasLiked(userID, commentID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.CommentLike{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&count).Error
	return count > 0, err
}

// LikeCount returns the global like tally for a comment
func (s *Store) LikeCount(commentID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}

// LikedCommentIDs returns the set of comment IDs on a content item that the
// user has liked, for annotating a full listing in one query.
func (s *Store) LikedCommentIDs(userID, contentID uint) (map[uint]bool, error) {
	var ids []uint
	err := s.db.Model(&models.CommentLike{}).
		Joins("JOIN comments ON comments.id = comment_likes.comment_id").
		Where("comment_likes.user_id = ? AND comments.content_id = ?", userID, contentID).
		Pluck("comment_likes.comment_id", &ids).Error
	if err != nil {
		return nil, err
	}

	liked := make(map[uint]bool, len(ids))
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// CommentSort selects the ordering of a comment listing
type CommentSort string

const (
	SortNewest  CommentSort = "newest"
	SortOldest  CommentSort = "oldest"
	SortByLikes CommentSort = "likes"
)

// ParseCommentSort maps a sortBy query value to a CommentSort. An empty
// value defaults to newest.
func ParseCommentSort(value string) (CommentSort, bool) {
	switch value {
	case "", string(SortNewest):
		return SortNewest, true
	case string(SortOldest):
		return SortOldest, true
	case string(SortByLikes):
		return SortByLikes, true
	}
	return "", false
}

// CommentRow is a comment joined with its author name and global like count
type CommentRow struct {
	ID         uint      `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	ContentID  uint      `json:"content_id"`
	UserID     uint      `json:"user_id"`
	Body       string    `json:"body"`
	AuthorName string    `json:"author_name"`
	LikeCount  int64     `json:"like_count"`
}

// ListComments returns all comments for a content item with author names and
// like counts. The likes sort breaks ties newest-first; the aggregation has
// no inherent secondary order, so the tie-break must be explicit. The id
// column is a final tie-break for comments created within the same instant.
func (s *Store) ListComments(contentID uint, sort CommentSort) ([]CommentRow, error) {
	query := s.db.Table("comments").
		Select("comments.id, comments.created_at, comments.content_id, comments.user_id, comments.body, users.name AS author_name, COUNT(comment_likes.id) AS like_count").
		Joins("JOIN users ON users.id = comments.user_id").
		Joins("LEFT JOIN comment_likes ON comment_likes.comment_id = comments.id").
		Where("comments.content_id = ?", contentID).
		Group("comments.id, comments.created_at, comments.content_id, comments.user_id, comments.body, users.name")

	switch sort {
	case SortOldest:
		query = query.Order("comments.created_at ASC, comments.id ASC")
	case SortByLikes:
		query = query.Order("like_count DESC, comments.created_at DESC, comments.id DESC")
	default:
		query = query.Order("comments.created_at DESC, comments.id DESC")
	}

	var rows []CommentRow
	err := query.Scan(&rows).Error
	return rows, err
}

// ContentStat is the per-content analytics rollup for a coach. Views is the
// raw event counter (repeat views by one user count every time);
// UniqueViewers counts distinct users with watched = true. The two answer
// different questions and are kept separate.
type ContentStat struct {
	ContentID     uint   `json:"content_id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Platform      string `json:"platform"`
	Views         uint   `json:"views"`
	UniqueViewers int64  `json:"unique_viewers"`
	CommentCount  int64  `json:"comment_count"`
}

// ContentStats returns per-content rollups for all content owned by a coach
func (s *Store) ContentStats(coachID uint) ([]ContentStat, error) {
	var stats []ContentStat
	err := s.db.Raw(`
		SELECT contents.id AS content_id,
		       contents.title,
		       contents.category,
		       contents.platform,
		       contents.views,
		       (SELECT COUNT(*) FROM watch_statuses
		         WHERE watch_statuses.content_id = contents.id
		           AND watch_statuses.watched = ?) AS unique_viewers,
		       (SELECT COUNT(*) FROM comments
		         WHERE comments.content_id = contents.id) AS comment_count
		FROM contents
		WHERE contents.coach_id = ?
		ORDER BY contents.created_at DESC, contents.id DESC`,
		true, coachID).Scan(&stats).Error
	return stats, err
}

// CategoryViews is summed view counts for one content category
type CategoryViews struct {
	Category string `json:"category"`
	Views    int64  `json:"views"`
}

// CategoryViewsByCoach sums the view counters of a coach's content grouped
// by category. This reuses the event counter, not a watch recount, so a user
// replaying the same video moves the category total each time.
func (s *Store) CategoryViewsByCoach(coachID uint) ([]CategoryViews, error) {
	var rows []CategoryViews
	err := s.db.Model(&models.Content{}).
		Select("category, COALESCE(SUM(views), 0) AS views").
		Where("coach_id = ?", coachID).
		Group("category").
		Order("views DESC, category ASC").
		Scan(&rows).Error
	return rows, err
}

// Watcher is a user who has marked a content item watched
type Watcher struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

// Watchers lists the users whose watch status is true for a content item
func (s *Store) Watchers(contentID uint) ([]Watcher, error) {
	var watchers []Watcher
	err := s.db.Table("watch_statuses").
		Select("users.id AS user_id, users.name").
		Joins("JOIN users ON users.id = watch_statuses.user_id").
		Where("watch_statuses.content_id = ? AND watch_statuses.watched = ?", contentID, true).
		Order("users.name ASC").
		Scan(&watchers).Error
	return watchers, err
}

// UniqueViewerCount counts distinct users with watched = true for a content
// item. One row per user is guaranteed by the unique index, so a plain count
// over watched rows is already deduplicated.
func (s *Store) UniqueViewerCount(contentID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.WatchStatus{}).
		Where("content_id = ? AND watched = ?", contentID, true).
		Count(&count).Error
	return count, err
}

// DeleteContentCascade removes a content item and its dependent comments,
// comment likes and watch statuses in one transaction, so a failure partway
// leaves nothing orphaned.
func (s *Store) DeleteContentCascade(contentID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id IN (?)",
			tx.Model(&models.Comment{}).Select("id").Where("content_id = ?", contentID),
		).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("content_id = ?", contentID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("content_id = ?", contentID).Delete(&models.WatchStatus{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Content{}, contentID).Error
	})
}
