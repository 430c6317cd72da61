package engagement

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/filmroom/filmroom/pkg/filmroom/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Pin the pool to one connection: each sqlite :memory: connection is a
	// separate database, and the concurrency tests need writes serialized
	// the way a server-grade store would serialize them.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, isCoach bool) models.User {
	user := models.User{
		Email:        email,
		PasswordHash: "x",
		Name:         email,
		IsCoach:      isCoach,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func createTestContent(t *testing.T, db *gorm.DB, coachID uint, title, category string) models.Content {
	item := models.Content{
		CoachID:  coachID,
		Title:    title,
		URL:      "https://youtube.com/watch?v=" + title,
		Category: category,
		Platform: "youtube",
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("Failed to create test content: %v", err)
	}
	return item
}

func createTestComment(t *testing.T, db *gorm.DB, contentID, userID uint, body string, createdAt time.Time) models.Comment {
	comment := models.Comment{
		ContentID: contentID,
		UserID:    userID,
		Body:      body,
		CreatedAt: createdAt,
	}
	if err := db.Create(&comment).Error; err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}
	return comment
}

func TestSetWatchedUpsert(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	coach := createTestUser(t, db, "coach@example.com", true)
	player := createTestUser(t, db, "player@example.com", false)
	item := createTestContent(t, db, coach.ID, "drills", "passing")

	status, err := store.SetWatched(player.ID, item.ID, true)
	if err != nil {
		t.Fatalf("SetWatched failed: %v", err)
	}
	if !status.Watched {
		t.Error("Expected watched true after first set")
	}

	status, err = store.SetWatched(player.ID, item.ID, false)
	if err != nil {
		t.Fatalf("SetWatched failed: %v", err)
	}
	if status.Watched {
		t.Error("Expected watched false after second set")
	}

	var count int64
	db.Model(&models.WatchStatus{}).
		Where("user_id = ? AND content_id = ?", player.ID, item.ID).
		Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly 1 watch status row, got %d", count)
	}
}

func TestSetWatchedConcurrent(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	coach := createTestUser(t, db, "coach@example.com", true)
	player := createTestUser(t, db, "player@example.com", false)
	item := createTestContent(t, db, coach.ID, "drills", "passing")

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := store.SetWatched(player.ID, item.ID, i%2 == 0); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("Concurrent SetWatched failed: %v", err)
	}

	var count int64
	db.Model(&models.WatchStatus{}).
		Where("user_id = ? AND content_id = ?", player.ID, item.ID).
		Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly 1 watch status row after concurrent sets, got %d", count)
	}
}

func TestGetWatchedAbsent(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	_, found, err := store.GetWatched(1, 1)
	if err != nil {
		t.Fatalf("GetWatched failed: %v", err)
	}
	if found {
		t.Error("Expected no watch status for an untouched pair")
	}
}

func TestLikeIdempotent(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	coach := createTestUser(t, db, "coach@example.com", true)
	author := createTestUser(t, db, "author@example.com", false)
	liker := createTestUser(t, db, "liker@example.com", false)
	item := createTestContent(t, db, coach.ID, "drills", "passing")
	comment := createTestComment(t, db, item.ID, author.ID, "nice drill", time.Now())

	if err := store.Like(liker.ID, comment.ID); err != nil {
		t.Fatalf("Like failed: %v", err)
	}
	if err := store.Like(liker.ID, comment.ID); err != nil {
		t.Fatalf("Second like should be a no-op, got error: %v", err)
	}

	count, err := store.LikeCount(comment.ID)
	if err != nil {
		t.Fatalf("LikeCount failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected like count 1 after double like, got %d", count)
	}
}

func TestUnlikeIdempotent(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	coach := createTestUser(t, db, "coach@example.com", true)
	author := createTestUser(t, db, "author@example.com", false)
	liker := createTestUser(t, db, "liker@example.com", false)
	item := createTestContent(t, db, coach.ID, "drills", "passing")
	comment := createTestComment(t, db, item.ID, author.ID, "nice drill", time.Now())

	// Unliking a never-liked comment is a no-op
	if err := store.Unlike(liker.ID, comment.ID); err != nil {
		t.Fatalf("Unlike of never-liked comment should be a no-op, got error: %v", err)
	}

	// Full like/unlike/re-like cycle must keep working against the index
	if err := store.Like(liker.ID, comment.ID); err != nil {
		t.Fatalf("Like failed: %v", err)
	}
	if err := store.Unlike(liker.ID, comment.ID); err != nil {
		t.Fatalf("Unlike failed: %v", err)
	}
	count, _ := store.LikeCount(comment.ID)
	if count != 0 {
		t.Errorf("Expected like count 0 after unlike, got %d", count)
	}

	if err := store.Like(liker.ID, comment.ID); err != nil {
		t.Fatalf("Re-like after unlike failed: %v", err)
	}
	count, _ = store.LikeCount(comment.ID)
	if count != 1 {
		t.Errorf("Expected like count 1 after re-like, got %d", count)
	}
}

func TestHasLiked(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	coach := createTestUser(t, db, "coach@example.com", true)
	author := createTestUser(t, db, "author@example.com", false)
	liker := createTestUser(t, db, "liker@example.com", false)
	item := createTestContent(t, db, coach.ID, "drills", "passing")
	comment := createTestComment(t, db, item.ID, author.ID, "nice drill", time.Now())

	store.Like(liker.ID, comment.ID)

	hasLiked, err := store.HasLiked(liker.ID, comment.ID)
	if err != nil {
		t.Fatalf("HasLiked failed: %v", err)
	}
	if !hasLiked {
		t.Error("Expected hasLiked true for the liker")
	}

	hasLiked, err = store.HasLiked(author.ID, comment.ID)
	if err != nil {
		t.Fatalf("HasLiked failed: %v", err)
	}
	if hasLiked {
		t.Error("Expected hasLiked false for the author")
	}
}

func TestIncrementViewsConcurrent(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	coach := createTestUser(t, db, "coach@example.com", true)
	item := createTestContent(t, db, coach.ID, "drills", "passing")

	const n = 25
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.IncrementViews(item.ID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("Concurrent IncrementViews failed: %v", err)
	}

	var reloaded models.Content
	if err := db.First(&reloaded, item.ID).Error; err != nil {
		t.Fatalf("Failed to reload content: %v", err)
	}
	if reloaded.Views != n {
		t.Errorf("Expected views %d after %d concurrent increments, got %d", n, n, reloaded.Views)
	}
}

func TestListCommentsSorts(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	coach := createTestUser(t, db, "coach@example.com", true)
	author := createTestUser(t, db, "author@example.com", false)
	item := createTestContent(t, db, coach.ID, "drills", "passing")

	base := time.Now().Add(-time.Hour)
	oldest := createTestComment(t, db, item.ID, author.ID, "first", base)
	middle := createTestComment(t, db, item.ID, author.ID, "second", base.Add(time.Minute))
	newest := createTestComment(t, db, item.ID, author.ID, "third", base.Add(2*time.Minute))

	// Two likes on the oldest and the middle comment, one on the newest
	likers := []models.User{
		createTestUser(t, db, "l1@example.com", false),
		createTestUser(t, db, "l2@example.com", false),
	}
	for _, liker := range likers {
		store.Like(liker.ID, oldest.ID)
		store.Like(liker.ID, middle.ID)
	}
	store.Like(likers[0].ID, newest.ID)

	rows, err := store.ListComments(item.ID, SortNewest)
	if err != nil {
		t.Fatalf("ListComments(newest) failed: %v", err)
	}
	if len(rows) != 3 || rows[0].ID != newest.ID || rows[2].ID != oldest.ID {
		t.Errorf("Unexpected newest order: %v", commentIDs(rows))
	}

	rows, err = store.ListComments(item.ID, SortOldest)
	if err != nil {
		t.Fatalf("ListComments(oldest) failed: %v", err)
	}
	if len(rows) != 3 || rows[0].ID != oldest.ID || rows[2].ID != newest.ID {
		t.Errorf("Unexpected oldest order: %v", commentIDs(rows))
	}

	// likes sort: non-increasing like counts; equal counts break newest-first
	rows, err = store.ListComments(item.ID, SortByLikes)
	if err != nil {
		t.Fatalf("ListComments(likes) failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 comments, got %d", len(rows))
	}
	if rows[0].ID != middle.ID || rows[1].ID != oldest.ID || rows[2].ID != newest.ID {
		t.Errorf("Unexpected likes order: %v", commentIDs(rows))
	}
	if rows[0].LikeCount != 2 || rows[1].LikeCount != 2 || rows[2].LikeCount != 1 {
		t.Errorf("Unexpected like counts: %d, %d, %d", rows[0].LikeCount, rows[1].LikeCount, rows[2].LikeCount)
	}
	if rows[0].AuthorName != author.Name {
		t.Errorf("Expected author name %q, got %q", author.Name, rows[0].AuthorName)
	}
}

func commentIDs(rows []CommentRow) []uint {
	ids := make([]uint, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return ids
}

func TestUniqueViewerCount(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	coach := createTestUser(t, db, "coach@example.com", true)
	item := createTestContent(t, db, coach.ID, "drills", "passing")

	a := createTestUser(t, db, "a@example.com", false)
	b := createTestUser(t, db, "b@example.com", false)
	c := createTestUser(t, db, "c@example.com", false)

	// a watches repeatedly; b watches once; c explicitly not watched
	store.SetWatched(a.ID, item.ID, true)
	store.SetWatched(a.ID, item.ID, true)
	store.SetWatched(b.ID, item.ID, true)
	store.SetWatched(c.ID, item.ID, false)

	count, err := store.UniqueViewerCount(item.ID)
	if err != nil {
		t.Fatalf("UniqueViewerCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 unique viewers, got %d", count)
	}
}

func TestContentStatsAsymmetry(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	coach := createTestUser(t, db, "coach@example.com", true)
	player := createTestUser(t, db, "player@example.com", false)
	item := createTestContent(t, db, coach.ID, "drills", "passing")

	// One player viewing three times: views counts events, unique viewers
	// deduplicates per user.
	for i := 0; i < 3; i++ {
		if err := store.IncrementViews(item.ID); err != nil {
			t.Fatalf("IncrementViews failed: %v", err)
		}
	}
	store.SetWatched(player.ID, item.ID, true)

	stats, err := store.ContentStats(coach.ID)
	if err != nil {
		t.Fatalf("ContentStats failed: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("Expected 1 content stat, got %d", len(stats))
	}
	if stats[0].Views != 3 {
		t.Errorf("Expected 3 views, got %d", stats[0].Views)
	}
	if stats[0].UniqueViewers != 1 {
		t.Errorf("Expected 1 unique viewer, got %d", stats[0].UniqueViewers)
	}
}

func TestCategoryViewsByCoach(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	coach := createTestUser(t, db, "coach@example.com", true)
	other := createTestUser(t, db, "other@example.com", true)

	passing1 := createTestContent(t, db, coach.ID, "passing-1", "passing")
	passing2 := createTestContent(t, db, coach.ID, "passing-2", "passing")
	defense := createTestContent(t, db, coach.ID, "defense-1", "defense")
	foreign := createTestContent(t, db, other.ID, "foreign", "passing")

	for i := 0; i < 2; i++ {
		store.IncrementViews(passing1.ID)
	}
	store.IncrementViews(passing2.ID)
	store.IncrementViews(defense.ID)
	for i := 0; i < 5; i++ {
		store.IncrementViews(foreign.ID)
	}

	rows, err := store.CategoryViewsByCoach(coach.ID)
	if err != nil {
		t.Fatalf("CategoryViewsByCoach failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(rows))
	}
	if rows[0].Category != "passing" || rows[0].Views != 3 {
		t.Errorf("Expected passing=3 first, got %s=%d", rows[0].Category, rows[0].Views)
	}
	if rows[1].Category != "defense" || rows[1].Views != 1 {
		t.Errorf("Expected defense=1 second, got %s=%d", rows[1].Category, rows[1].Views)
	}
}

func TestWatchers(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	coach := createTestUser(t, db, "coach@example.com", true)
	item := createTestContent(t, db, coach.ID, "drills", "passing")

	for i := 0; i < 3; i++ {
		player := createTestUser(t, db, fmt.Sprintf("p%d@example.com", i), false)
		store.SetWatched(player.ID, item.ID, i != 2) // last player toggles off
	}

	watchers, err := store.Watchers(item.ID)
	if err != nil {
		t.Fatalf("Watchers failed: %v", err)
	}
	if len(watchers) != 2 {
		t.Errorf("Expected 2 watchers, got %d", len(watchers))
	}
}

func TestDeleteContentCascade(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	coach := createTestUser(t, db, "coach@example.com", true)
	player := createTestUser(t, db, "player@example.com", false)
	liker := createTestUser(t, db, "liker@example.com", false)

	item := createTestContent(t, db, coach.ID, "drills", "passing")
	keep := createTestContent(t, db, coach.ID, "kept", "passing")

	comment := createTestComment(t, db, item.ID, player.ID, "nice", time.Now())
	keptComment := createTestComment(t, db, keep.ID, player.ID, "also nice", time.Now())
	store.Like(liker.ID, comment.ID)
	store.Like(liker.ID, keptComment.ID)
	store.SetWatched(player.ID, item.ID, true)
	store.SetWatched(player.ID, keep.ID, true)

	if err := store.DeleteContentCascade(item.ID); err != nil {
		t.Fatalf("DeleteContentCascade failed: %v", err)
	}

	var count int64
	db.Model(&models.Content{}).Where("id = ?", item.ID).Count(&count)
	if count != 0 {
		t.Error("Expected content row to be gone")
	}
	db.Model(&models.Comment{}).Where("content_id = ?", item.ID).Count(&count)
	if count != 0 {
		t.Error("Expected comments to cascade")
	}
	db.Model(&models.CommentLike{}).Where("comment_id = ?", comment.ID).Count(&count)
	if count != 0 {
		t.Error("Expected comment likes to cascade")
	}
	db.Model(&models.WatchStatus{}).Where("content_id = ?", item.ID).Count(&count)
	if count != 0 {
		t.Error("Expected watch statuses to cascade")
	}

	// Unrelated content must be untouched
	db.Model(&models.Comment{}).Where("content_id = ?", keep.ID).Count(&count)
	if count != 1 {
		t.Error("Expected kept content's comment to survive")
	}
	db.Model(&models.CommentLike{}).Where("comment_id = ?", keptComment.ID).Count(&count)
	if count != 1 {
		t.Error("Expected kept content's like to survive")
	}
}

func TestParseCommentSort(t *testing.T) {
	cases := []struct {
		value string
		want  CommentSort
		ok    bool
	}{
		{"", SortNewest, true},
		{"newest", SortNewest, true},
		{"oldest", SortOldest, true},
		{"likes", SortByLikes, true},
		{"popular", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseCommentSort(tc.value)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseCommentSort(%q) = (%q, %v), want (%q, %v)", tc.value, got, ok, tc.want, tc.ok)
		}
	}
}
