package content

import (
	"log"
	"net/http"
	"strconv"

	"github.com/filmroom/filmroom/pkg/filmroom/auth"
	"github.com/filmroom/filmroom/pkg/filmroom/engagement"
	"github.com/filmroom/filmroom/pkg/filmroom/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler handles content-related requests
type Handler struct {
	db         *gorm.DB
	engagement *engagement.Store
}

// NewHandler creates a new content handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db, engagement: engagement.NewStore(db)}
}

// CreateContentRequest represents the request to create a content link
type CreateContentRequest struct {
	Title        string `json:"title" binding:"required"`
	URL          string `json:"url" binding:"required,url"`
	Category     string `json:"category"`
	ThumbnailURL string `json:"thumbnail_url" binding:"omitempty,url"`
	Description  string `json:"description"`
}

// ContentResponse represents a content link in API responses
type ContentResponse struct {
	ID           uint                 `json:"id"`
	CoachID      uint                 `json:"coach_id"`
	CoachName    string               `json:"coach_name,omitempty"`
	Title        string               `json:"title"`
	URL          string               `json:"url"`
	Category     string               `json:"category"`
	Platform     string               `json:"platform"`
	ThumbnailURL string               `json:"thumbnail_url"`
	Description  string               `json:"description"`
	Views        uint                 `json:"views"`
	CreatedAt    string               `json:"created_at"`
	Watched      *bool                `json:"watched,omitempty"`
	Watchers     []engagement.Watcher `json:"watchers,omitempty"`
}

func contentToResponse(item models.Content) ContentResponse {
	return ContentResponse{
		ID:           item.ID,
		CoachID:      item.CoachID,
		CoachName:    item.Coach.Name,
		Title:        item.Title,
		URL:          item.URL,
		Category:     item.Category,
		Platform:     item.Platform,
		ThumbnailURL: item.ThumbnailURL,
		Description:  item.Description,
		Views:        item.Views,
		CreatedAt:    item.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// contentIDParam parses the numeric :id path parameter
func contentIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
		return 0, false
	}
	return uint(id), true
}

// Create creates a new content link
// @Summary Create a content link
// @Description Share a new training content link (coach only). The platform tag is detected from the URL host.
// @Tags content
// @Accept json
// @Produce json
// @Param request body CreateContentRequest true "Content details"
// @Success 201 {object} ContentResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Coach access required"
// @Router /content [post]
func (h *Handler) Create(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var req CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.Content{
		CoachID:      userID,
		Title:        req.Title,
		URL:          req.URL,
		Category:     req.Category,
		Platform:     DetectPlatform(req.URL),
		ThumbnailURL: req.ThumbnailURL,
		Description:  req.Description,
	}

	if err := h.db.Create(&item).Error; err != nil {
		log.Printf("content create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create content"})
		return
	}

	c.JSON(http.StatusCreated, contentToResponse(item))
}

// List returns all content links
// @Summary List content
// @Description List all shared content. Coaches see the watcher list on their own items; players see their own watched flag.
// @Tags content
// @Produce json
// @Success 200 {array} ContentResponse
// @Router /content [get]
func (h *Handler) List(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	isCoach := auth.IsCoach(c)

	var items []models.Content
	query := h.db.Preload("Coach").Order("created_at DESC, id DESC")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&items).Error; err != nil {
		log.Printf("content list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
		return
	}

	responses := make([]ContentResponse, len(items))
	for i, item := range items {
		resp := contentToResponse(item)

		if isCoach && item.CoachID == userID {
			watchers, err := h.engagement.Watchers(item.ID)
			if err != nil {
				log.Printf("watcher list failed for content %d: %v", item.ID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
				return
			}
			resp.Watchers = watchers
		} else if !isCoach {
			status, found, err := h.engagement.GetWatched(userID, item.ID)
			if err != nil {
				log.Printf("watch status failed for content %d: %v", item.ID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
				return
			}
			watched := found && status.Watched
			resp.Watched = &watched
		}

		responses[i] = resp
	}

	c.JSON(http.StatusOK, responses)
}

// Get returns a single content item
// @Summary Get a content item
// @Description Fetch one content link, with the requester's watched flag
// @Tags content
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} ContentResponse
// @Failure 400 {object} map[string]string "Invalid content ID"
// @Failure 404 {object} map[string]string "Content not found"
// @Router /content/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	contentID, ok := contentIDParam(c)
	if !ok {
		return
	}

	var item models.Content
	if err := h.db.Preload("Coach").First(&item, contentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}

	resp := contentToResponse(item)

	userID, _ := auth.GetUserID(c)
	status, found, err := h.engagement.GetWatched(userID, item.ID)
	if err != nil {
		log.Printf("watch status failed for content %d: %v", item.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
		return
	}
	watched := found && status.Watched
	resp.Watched = &watched

	c.JSON(http.StatusOK, resp)
}

// Delete deletes a content item owned by the requesting coach
// @Summary Delete a content item
// @Description Delete a content link and its comments, likes and watch statuses (owning coach only)
// @Tags content
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} map[string]string "Content deleted"
// @Failure 403 {object} map[string]string "Not the owning coach"
// @Failure 404 {object} map[string]string "Content not found"
// @Router /content/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	contentID, ok := contentIDParam(c)
	if !ok {
		return
	}

	var item models.Content
	if err := h.db.First(&item, contentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}

	if item.CoachID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owning coach can delete content"})
		return
	}

	if err := h.engagement.DeleteContentCascade(item.ID); err != nil {
		log.Printf("content delete failed for %d: %v", item.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted"})
}

// View records a view of a content item. Views by coaches are ignored; a
// player view bumps the event counter and marks the item watched.
// @Summary Record a view
// @Description Record a view event. Player views increment the counter and set watched = true; coach views are not counted.
// @Tags content
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Content not found"
// @Router /content/{id}/view [post]
func (h *Handler) View(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	contentID, ok := contentIDParam(c)
	if !ok {
		return
	}

	var item models.Content
	if err := h.db.First(&item, contentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}

	if auth.IsCoach(c) {
		// Coaches previewing their material do not move the counter
		c.JSON(http.StatusOK, gin.H{"views": item.Views, "counted": false})
		return
	}

	if err := h.engagement.IncrementViews(item.ID); err != nil {
		log.Printf("view increment failed for content %d: %v", item.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record view"})
		return
	}
	if _, err := h.engagement.SetWatched(userID, item.ID, true); err != nil {
		log.Printf("watch upsert failed for content %d: %v", item.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record view"})
		return
	}

	// Reload to report the post-increment count
	if err := h.db.First(&item, contentID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record view"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"views": item.Views, "counted": true, "watched": true})
}

// GetWatch returns the requester's own watch status for a content item
// @Summary Get own watch status
// @Tags watch
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Content not found"
// @Router /content/{id}/watch [get]
func (h *Handler) GetWatch(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	contentID, ok := contentIDParam(c)
	if !ok {
		return
	}

	var item models.Content
	if err := h.db.First(&item, contentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}

	status, found, err := h.engagement.GetWatched(userID, contentID)
	if err != nil {
		log.Printf("watch status failed for content %d: %v", contentID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watch status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content_id": contentID,
		"watched":    found && status.Watched,
	})
}

// SetWatchRequest represents the request to set a watch status
type SetWatchRequest struct {
	Watched *bool `json:"watched" binding:"required"`
}

// SetWatch sets the requester's own watch status for a content item
// @Summary Set own watch status
// @Tags watch
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Param request body SetWatchRequest true "Watch flag"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Content not found"
// @Router /content/{id}/watch [post]
func (h *Handler) SetWatch(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	contentID, ok := contentIDParam(c)
	if !ok {
		return
	}

	var item models.Content
	if err := h.db.First(&item, contentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}

	var req SetWatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.engagement.SetWatched(userID, contentID, *req.Watched)
	if err != nil {
		log.Printf("watch upsert failed for content %d: %v", contentID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set watch status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content_id": status.ContentID,
		"watched":    status.Watched,
	})
}

// RegisterRoutes registers content routes on the given router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/content", auth.RequireCoach(), h.Create)
	rg.GET("/content", h.List)
	rg.GET("/content/:id", h.Get)
	rg.DELETE("/content/:id", auth.RequireCoach(), h.Delete)
	rg.POST("/content/:id/view", h.View)
	rg.GET("/content/:id/watch", h.GetWatch)
	rg.POST("/content/:id/watch", h.SetWatch)
}
