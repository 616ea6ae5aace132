package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Saanwar2002/Ideahero/internal/models"
)

type SubmissionHandler struct {
	db *gorm.DB
}

func NewSubmissionHandler(db *gorm.DB) *SubmissionHandler {
	return &SubmissionHandler{db: db}
}

// SubmitIdea creates a new submission in pending status and credits the
// submitter five reputation points, once per successful call.
func (h *SubmissionHandler) SubmitIdea(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.SubmitIdeaRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	idea := models.SubmittedIdea{
		ID:                   uuid.NewString(),
		Title:                input.Title,
		Description:          input.Description,
		Category:             input.Category,
		Tags:                 models.TagList(input.Tags),
		SubmitterID:          userID,
		Status:               models.StatusPending,
		TargetMarket:         input.TargetMarket,
		ProblemStatement:     input.ProblemStatement,
		SolutionApproach:     input.SolutionApproach,
		BusinessModel:        input.BusinessModel,
		CompetitiveAdvantage: input.CompetitiveAdvantage,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&idea).Error; err != nil {
			return err
		}
		return addReputation(tx, userID, 5)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit idea"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Idea submitted successfully",
		"idea":    idea,
	})
}

// GetMySubmissions lists the caller's own submissions, newest first.
func (h *SubmissionHandler) GetMySubmissions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var ideas []models.SubmittedIdea
	if err := h.db.Where("submitter_id = ?", userID).Order("created_at desc").Find(&ideas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	if ideas == nil {
		ideas = []models.SubmittedIdea{}
	}

	c.JSON(http.StatusOK, ideas)
}

// GetSubmission returns one submission. Approved submissions are visible to
// any caller; anything else only to its submitter.
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	var idea models.SubmittedIdea
	if err := h.db.Preload("Votes").Preload("Comments").First(&idea, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	if idea.Status != models.StatusApproved {
		userID, ok := currentUserID(c)
		if !ok || idea.SubmitterID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own submissions"})
			return
		}
	}

	c.JSON(http.StatusOK, idea)
}

// UpdateSubmission edits a submission. Only the submitter may edit, and
// only while the submission is pending or draft.
func (h *SubmissionHandler) UpdateSubmission(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var idea models.SubmittedIdea
	if err := h.db.First(&idea, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	if idea.SubmitterID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own submissions"})
		return
	}

	if !editable(idea.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending or draft submissions can be edited"})
		return
	}

	if input.Title != nil {
		idea.Title = *input.Title
	}
	if input.Description != nil {
		idea.Description = *input.Description
	}
	if input.Category != nil {
		idea.Category = *input.Category
	}
	if input.Tags != nil {
		idea.Tags = models.TagList(*input.Tags)
	}
	if input.TargetMarket != nil {
		idea.TargetMarket = *input.TargetMarket
	}
	if input.ProblemStatement != nil {
		idea.ProblemStatement = *input.ProblemStatement
	}
	if input.SolutionApproach != nil {
		idea.SolutionApproach = *input.SolutionApproach
	}
	if input.BusinessModel != nil {
		idea.BusinessModel = *input.BusinessModel
	}
	if input.CompetitiveAdvantage != nil {
		idea.CompetitiveAdvantage = *input.CompetitiveAdvantage
	}
	idea.UpdatedAt = time.Now().UTC()

	if err := h.db.Save(&idea).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission"})
		return
	}

	c.JSON(http.StatusOK, idea)
}

// DeleteSubmission removes a submission under the same gates as editing.
func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var idea models.SubmittedIdea
	if err := h.db.First(&idea, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	if idea.SubmitterID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own submissions"})
		return
	}

	if !editable(idea.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending or draft submissions can be deleted"})
		return
	}

	if err := h.db.Delete(&idea).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission deleted successfully"})
}

// GetCommunityIdeas lists approved submissions with the same filter and
// sort semantics as the curated listing.
func (h *SubmissionHandler) GetCommunityIdeas(c *gin.Context) {
	category, order, skip, limit, ok := listQuery(c)
	if !ok {
		return
	}

	query := h.db.Preload("Votes").Preload("Comments").Where("status = ?", models.StatusApproved)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var ideas []models.SubmittedIdea
	if err := query.Order(order).Offset(skip).Limit(limit).Find(&ideas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch community ideas"})
		return
	}

	if ideas == nil {
		ideas = []models.SubmittedIdea{}
	}

	c.JSON(http.StatusOK, ideas)
}

// VoteSubmission votes on a submission; only approved submissions accept votes.
func (h *SubmissionHandler) VoteSubmission(c *gin.Context) {
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
	var idea models.SubmittedIdea
	if err := h.db.First(&idea, "id = ?", ideaID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	if idea.Status != models.StatusApproved {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Voting is only allowed on approved ideas"})
		return
	}

	scores, err := admitVote(h.db, submissionTable, ideaID, userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Vote recorded successfully",
		"scores":  scores,
	})
}

// CommentSubmission comments on a submission; gated identically to voting.
func (h *SubmissionHandler) CommentSubmission(c *gin.Context) {
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
	var idea models.SubmittedIdea
	if err := h.db.First(&idea, "id = ?", ideaID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	if idea.Status != models.StatusApproved {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Commenting is only allowed on approved ideas"})
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

func editable(status string) bool {
	return status == models.StatusPending || status == models.StatusDraft
}
