package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Saanwar2002/Ideahero/internal/models"
)

type IdeaHandler struct {
	db *gorm.DB
}

func NewIdeaHandler(db *gorm.DB) *IdeaHandler {
	return &IdeaHandler{db: db}
}

// sortColumns whitelists the sortable aggregate fields.
var sortColumns = map[string]string{
	"validation_score": "validation_score desc",
	"created_at":       "created_at desc",
	"total_votes":      "total_votes desc",
}

// listQuery parses the shared category/sort_by/skip/limit query parameters.
func listQuery(c *gin.Context) (category, order string, skip, limit int, ok bool) {
	category = c.Query("category")

	sortBy := c.DefaultQuery("sort_by", "validation_score")
	order, valid := sortColumns[sortBy]
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort field: " + sortBy})
		return "", "", 0, 0, false
	}

	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skip value"})
		return "", "", 0, 0, false
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit value"})
		return "", "", 0, 0, false
	}
	if limit > 100 {
		limit = 100
	}

	return category, order, skip, limit, true
}

// GetIdeas lists curated ideas with optional category filter and sorting.
func (h *IdeaHandler) GetIdeas(c *gin.Context) {
	category, order, skip, limit, ok := listQuery(c)
	if !ok {
		return
	}

	query := h.db.Preload("Votes").Preload("Comments")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var ideas []models.Idea
	if err := query.Order(order).Offset(skip).Limit(limit).Find(&ideas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ideas"})
		return
	}

	// If no ideas, return empty array not null
	if ideas == nil {
		ideas = []models.Idea{}
	}

	c.JSON(http.StatusOK, ideas)
}

// GetIdea returns a single curated idea with its votes and comments.
func (h *IdeaHandler) GetIdea(c *gin.Context) {
	var idea models.Idea
	if err := h.db.Preload("Votes").Preload("Comments").First(&idea, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	c.JSON(http.StatusOK, idea)
}

// VoteIdea records or replaces the caller's vote on a curated idea and
// returns the recomputed aggregates.
func (h *IdeaHandler) VoteIdea(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.VoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ideaID := c.Param("id")
	var idea models.Idea
	if err := h.db.First(&idea, "id = ?", ideaID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	scores, err := admitVote(h.db, ideaTable, ideaID, userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Vote recorded successfully",
		"scores":  scores,
	})
}

// CommentIdea appends a comment to a curated idea.
func (h *IdeaHandler) CommentIdea(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.CommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content := strings.TrimSpace(input.Content)
	if len(content) < models.MinCommentLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment must be at least 10 characters long"})
		return
	}

	ideaID := c.Param("id")
	var idea models.Idea
	if err := h.db.First(&idea, "id = ?", ideaID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	comment, err := admitComment(h.db, ideaID, userID, content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment added successfully",
		"comment": comment,
	})
}
