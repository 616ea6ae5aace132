package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler combines all handler types
type Handler struct {
	Auth       *AuthHandler
	Idea       *IdeaHandler
	Submission *SubmissionHandler
	Dashboard  *DashboardHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB, jwtSecret []byte) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(db, jwtSecret),
		Idea:       NewIdeaHandler(db),
		Submission: NewSubmissionHandler(db),
		Dashboard:  NewDashboardHandler(db),
	}
}

// currentUserID returns the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := raw.(string)
	return id, ok && id != ""
}
