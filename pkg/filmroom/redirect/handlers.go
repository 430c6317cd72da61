package redirect

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

// Handler handles click-through redirects to the externally hosted media
type Handler struct {
	db         *gorm.DB
	engagement *engagement.Store
}

// NewHandler creates a new redirect handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db, engagement: engagement.NewStore(db)}
}

// Go redirects to the content's external URL. When the request carries a
// valid session for a player, the click-through counts as a view and marks
// the item watched, same rules as the view endpoint. Anonymous clicks and
// coach clicks just redirect.
// @Summary Click through to content
// @Description Redirect to the externally hosted media for a content item
// @Tags content
// @Param id path int true "Content ID"
// @Success 302
// @Failure 404 {object} map[string]string "Content not found"
// @Router /go/{id} [get]
func (h *Handler) Go(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
		return
	}

	var item models.Content
	if err := h.db.First(&item, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}

	if userID, ok := auth.GetUserID(c); ok && !auth.IsCoach(c) {
		if err := h.engagement.IncrementViews(item.ID); err != nil {
			log.Printf("view increment failed for content %d: %v", item.ID, err)
		}
		if _, err := h.engagement.SetWatched(userID, item.ID, true); err != nil {
			log.Printf("watch upsert failed for content %d: %v", item.ID, err)
		}
	}

	c.Redirect(http.StatusFound, item.URL)
}

// RegisterRoutes registers redirect routes on the root router.
// This should be called after the API routes to avoid conflicts.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/go/:id", auth.OptionalSession(), h.Go)
}
