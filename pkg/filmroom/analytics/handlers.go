package analytics

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/filmroom/filmroom/pkg/filmroom/auth"
	"github.com/filmroom/filmroom/pkg/filmroom/cache"
	"github.com/filmroom/filmroom/pkg/filmroom/engagement"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// snapshotTTL bounds how stale a cached analytics response may be. Analytics
// reads tolerate slightly stale aggregates.
const snapshotTTL = 30 * time.Second

// Handler handles coach analytics requests
type Handler struct {
	db         *gorm.DB
	engagement *engagement.Store
	cache      *cache.TTLCache
}

// NewHandler creates a new analytics handler
func NewHandler(db *gorm.DB) *Handler {
	c, err := cache.New(256)
	if err != nil {
		// lru.New only fails on a non-positive size
		log.Fatalf("analytics cache init failed: %v", err)
	}
	return &Handler{db: db, engagement: engagement.NewStore(db), cache: c}
}

// Response is the per-coach analytics rollup
type Response struct {
	TotalViews  int64                      `json:"total_views"`
	ContentStat []engagement.ContentStat   `json:"content"`
	Categories  []engagement.CategoryViews `json:"categories"`
}

// Get returns aggregated metrics for the requesting coach's own content
// @Summary Coach analytics
// @Description Per-content views, unique-viewer counts and per-category view totals for the requesting coach. Views are an event count and count repeat views; unique viewers are deduplicated per user.
// @Tags analytics
// @Produce json
// @Success 200 {object} Response
// @Failure 403 {object} map[string]string "Coach access required"
// @Router /analytics [get]
func (h *Handler) Get(c *gin.Context) {
	coachID, _ := auth.GetUserID(c)

	cacheKey := fmt.Sprintf("analytics:coach:%d", coachID)
	if cached := h.cache.Get(cacheKey); cached != nil {
		c.JSON(http.StatusOK, cached.(Response))
		return
	}

	stats, err := h.engagement.ContentStats(coachID)
	if err != nil {
		log.Printf("content stats failed for coach %d: %v", coachID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	categories, err := h.engagement.CategoryViewsByCoach(coachID)
	if err != nil {
		log.Printf("category views failed for coach %d: %v", coachID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	var totalViews int64
	for _, stat := range stats {
		totalViews += int64(stat.Views)
	}

	resp := Response{
		TotalViews:  totalViews,
		ContentStat: stats,
		Categories:  categories,
	}
	h.cache.Set(cacheKey, resp, snapshotTTL)

	c.JSON(http.StatusOK, resp)
}

// RegisterRoutes registers analytics routes on the given router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics", auth.RequireCoach(), h.Get)
}
