package comments

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

// Handler handles comment-related requests
type Handler struct {
	db         *gorm.DB
	engagement *engagement.Store
}

// NewHandler creates a new comments handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db, engagement: engagement.NewStore(db)}
}

// CreateCommentRequest represents the request to create a comment
type CreateCommentRequest struct {
	Body string `json:"body" binding:"required,min=1,max=1000"`
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	ID         uint   `json:"id"`
	ContentID  uint   `json:"content_id"`
	UserID     uint   `json:"user_id"`
	AuthorName string `json:"author_name"`
	Body       string `json:"body"`
	LikeCount  int64  `json:"like_count"`
	HasLiked   bool   `json:"has_liked"`
	CreatedAt  string `json:"created_at"`
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " ID"})
		return 0, false
	}
	return uint(id), true
}

// Create creates a comment on a content item
// @Summary Create a comment
// @Description Comment on a content item. The body is 1-1000 characters; comments are never edited afterwards.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Param request body CreateCommentRequest true "Comment body"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Content not found"
// @Router /content/{id}/comments [post]
func (h *Handler) Create(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	contentID, ok := idParam(c, "content")
	if !ok {
		return
	}

	var item models.Content
	if err := h.db.First(&item, contentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := models.Comment{
		ContentID: contentID,
		UserID:    userID,
		Body:      req.Body,
	}
	if err := h.db.Create(&comment).Error; err != nil {
		log.Printf("comment create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	var user models.User
	h.db.First(&user, userID)

	c.JSON(http.StatusCreated, CommentResponse{
		ID:         comment.ID,
		ContentID:  comment.ContentID,
		UserID:     comment.UserID,
		AuthorName: user.Name,
		Body:       comment.Body,
		LikeCount:  0,
		HasLiked:   false,
		CreatedAt:  comment.CreatedAt.Format("2006-01-02T15:04:05Z"),
	})
}

// List returns all comments for a content item, sorted
// @Summary List comments
// @Description List comments for a content item. sortBy is one of newest, oldest, likes (default newest). The likes sort breaks ties newest-first.
// @Tags comments
// @Produce json
// @Param id path int true "Content ID"
// @Param sortBy query string false "Sort order" Enums(newest, oldest, likes)
// @Success 200 {array} CommentResponse
// @Failure 400 {object} map[string]string "Invalid sort"
// @Failure 404 {object} map[string]string "Content not found"
// @Router /content/{id}/comments [get]
func (h *Handler) List(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	contentID, ok := idParam(c, "content")
	if !ok {
		return
	}

	sort, ok := engagement.ParseCommentSort(c.Query("sortBy"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sortBy must be one of newest, oldest, likes"})
		return
	}

	var item models.Content
	if err := h.db.First(&item, contentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}

	rows, err := h.engagement.ListComments(contentID, sort)
	if err != nil {
		log.Printf("comment list failed for content %d: %v", contentID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	liked, err := h.engagement.LikedCommentIDs(userID, contentID)
	if err != nil {
		log.Printf("liked set failed for content %d: %v", contentID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	responses := make([]CommentResponse, len(rows))
	for i, row := range rows {
		responses[i] = CommentResponse{
			ID:         row.ID,
			ContentID:  row.ContentID,
			UserID:     row.UserID,
			AuthorName: row.AuthorName,
			Body:       row.Body,
			LikeCount:  row.LikeCount,
			HasLiked:   liked[row.ID],
			CreatedAt:  row.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	c.JSON(http.StatusOK, responses)
}

// Like likes a comment. Liking an already-liked comment is a no-op.
// @Summary Like a comment
// @Description Like a comment (idempotent). Users may not like their own comments.
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string "Cannot like own comment"
// @Failure 404 {object} map[string]string "Comment not found"
// @Router /comments/{id}/like [post]
func (h *Handler) Like(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	commentID, ok := idParam(c, "comment")
	if !ok {
		return
	}

	var comment models.Comment
	if err := h.db.First(&comment, commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	// Policy check before anything is written
	if comment.UserID == userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot like your own comment"})
		return
	}

	if err := h.engagement.Like(userID, commentID); err != nil {
		log.Printf("like failed for comment %d: %v", commentID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like comment"})
		return
	}

	count, err := h.engagement.LikeCount(commentID)
	if err != nil {
		log.Printf("like count failed for comment %d: %v", commentID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment_id": commentID, "like_count": count, "has_liked": true})
}

// Unlike removes a like. Unliking a never-liked comment is a no-op.
// @Summary Unlike a comment
// @Description Remove a like from a comment (idempotent)
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Comment not found"
// @Router /comments/{id}/unlike [post]
func (h *Handler) Unlike(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	commentID, ok := idParam(c, "comment")
	if !ok {
		return
	}

	var comment models.Comment
	if err := h.db.First(&comment, commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if err := h.engagement.Unlike(userID, commentID); err != nil {
		log.Printf("unlike failed for comment %d: %v", commentID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike comment"})
		return
	}

	count, err := h.engagement.LikeCount(commentID)
	if err != nil {
		log.Printf("like count failed for comment %d: %v", commentID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment_id": commentID, "like_count": count, "has_liked": false})
}

// RegisterRoutes registers comment routes on the given router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/content/:id/comments", h.Create)
	rg.GET("/content/:id/comments", h.List)
	rg.POST("/comments/:id/like", h.Like)
	rg.POST("/comments/:id/unlike", h.Unlike)
}
