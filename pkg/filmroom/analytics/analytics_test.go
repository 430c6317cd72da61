package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/filmroom/filmroom/pkg/filmroom/auth"
	"github.com/filmroom/filmroom/pkg/filmroom/engagement"
	"github.com/filmroom/filmroom/pkg/filmroom/models"
	"github.com/gin-gonic/gin"
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
	return db
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(db)
	api := r.Group("/api", auth.SessionRequired())
	handler.RegisterRoutes(api)
	return r
}

func createTestUser(t *testing.T, db *gorm.DB, email string, isCoach bool) (models.User, string) {
	user := models.User{Email: email, PasswordHash: "x", Name: email, IsCoach: isCoach}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	token, err := auth.GenerateToken(user.ID, user.Email, user.IsCoach)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return user, token
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

func getAnalytics(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/api/analytics", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyticsCoachOnly(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	_, playerToken := createTestUser(t, db, "player@example.com", false)

	w := getAnalytics(r, playerToken)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for player, got %d", w.Code)
	}
}

func TestAnalyticsRollup(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	store := engagement.NewStore(db)

	coach, coachToken := createTestUser(t, db, "coach@example.com", true)
	other, _ := createTestUser(t, db, "other@example.com", true)
	playerA, _ := createTestUser(t, db, "a@example.com", false)
	playerB, _ := createTestUser(t, db, "b@example.com", false)

	passing := createTestContent(t, db, coach.ID, "passing-drills", "passing")
	defense := createTestContent(t, db, coach.ID, "zone-defense", "defense")
	foreign := createTestContent(t, db, other.ID, "foreign", "passing")

	// playerA watches passing three times, playerB once; defense gets one
	// view. Views count events; unique viewers deduplicate per user.
	for i := 0; i < 3; i++ {
		store.IncrementViews(passing.ID)
	}
	store.SetWatched(playerA.ID, passing.ID, true)
	store.IncrementViews(passing.ID)
	store.SetWatched(playerB.ID, passing.ID, true)
	store.IncrementViews(defense.ID)
	store.SetWatched(playerA.ID, defense.ID, true)

	// Another coach's numbers must never bleed in
	store.IncrementViews(foreign.ID)
	store.SetWatched(playerA.ID, foreign.ID, true)

	w := getAnalytics(r, coachToken)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if resp.TotalViews != 5 {
		t.Errorf("Expected total views 5, got %d", resp.TotalViews)
	}
	if len(resp.ContentStat) != 2 {
		t.Fatalf("Expected 2 content stats, got %d", len(resp.ContentStat))
	}

	byTitle := make(map[string]engagement.ContentStat)
	for _, stat := range resp.ContentStat {
		byTitle[stat.Title] = stat
	}
	if stat := byTitle["passing-drills"]; stat.Views != 4 || stat.UniqueViewers != 2 {
		t.Errorf("Expected passing-drills views=4 unique=2, got views=%d unique=%d", stat.Views, stat.UniqueViewers)
	}
	if stat := byTitle["zone-defense"]; stat.Views != 1 || stat.UniqueViewers != 1 {
		t.Errorf("Expected zone-defense views=1 unique=1, got views=%d unique=%d", stat.Views, stat.UniqueViewers)
	}

	if len(resp.Categories) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(resp.Categories))
	}
	if resp.Categories[0].Category != "passing" || resp.Categories[0].Views != 4 {
		t.Errorf("Expected passing=4 first, got %s=%d", resp.Categories[0].Category, resp.Categories[0].Views)
	}
	if resp.Categories[1].Category != "defense" || resp.Categories[1].Views != 1 {
		t.Errorf("Expected defense=1 second, got %s=%d", resp.Categories[1].Category, resp.Categories[1].Views)
	}
}

func TestAnalyticsEmpty(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	_, coachToken := createTestUser(t, db, "coach@example.com", true)

	w := getAnalytics(r, coachToken)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for a coach with no content, got %d", w.Code)
	}
	var resp Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.TotalViews != 0 || len(resp.ContentStat) != 0 || len(resp.Categories) != 0 {
		t.Errorf("Expected an empty rollup, got %+v", resp)
	}
}

func TestAnalyticsCachedSnapshot(t *testing.T) {
	db := setupTestDB(t)
	r := setupTestRouter(db)
	store := engagement.NewStore(db)

	coach, coachToken := createTestUser(t, db, "coach@example.com", true)
	item := createTestContent(t, db, coach.ID, "drills", "passing")
	store.IncrementViews(item.ID)

	w := getAnalytics(r, coachToken)
	var first Response
	json.Unmarshal(w.Body.Bytes(), &first)
	if first.TotalViews != 1 {
		t.Fatalf("Expected total views 1, got %d", first.TotalViews)
	}

	// A write inside the TTL window is allowed to be invisible
	store.IncrementViews(item.ID)
	w = getAnalytics(r, coachToken)
	var second Response
	json.Unmarshal(w.Body.Bytes(), &second)
	if second.TotalViews != 1 {
		t.Errorf("Expected the cached snapshot (total views 1), got %d", second.TotalViews)
	}
}
