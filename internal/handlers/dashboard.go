package handlers

import (
	"math"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Saanwar2002/Ideahero/internal/models"
)

// DashboardHandler serves the per-user engagement reports. Both views are
// recomputed from scratch on every call; there are no incremental counters.
type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// ideaInfo is the idea metadata joined onto a user's votes and comments.
type ideaInfo struct {
	Title    string
	Category string
}

// collectActivity loads the user's full vote and comment history in
// chronological order, plus the title/category of every touched idea
// (curated or submitted).
func (h *DashboardHandler) collectActivity(userID string) ([]models.Vote, []models.Comment, map[string]ideaInfo, error) {
	var votes []models.Vote
	if err := h.db.Where("user_id = ?", userID).Order("created_at asc").Find(&votes).Error; err != nil {
		return nil, nil, nil, err
	}

	var comments []models.Comment
	if err := h.db.Where("user_id = ?", userID).Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, nil, nil, err
	}

	idSet := make(map[string]struct{})
	for _, v := range votes {
		idSet[v.IdeaID] = struct{}{}
	}
	for _, cm := range comments {
		idSet[cm.IdeaID] = struct{}{}
	}

	info := make(map[string]ideaInfo, len(idSet))
	if len(idSet) > 0 {
		ids := make([]string, 0, len(idSet))
		for id := range idSet {
			ids = append(ids, id)
		}

		var ideas []models.Idea
		if err := h.db.Select("id", "title", "category").Where("id IN ?", ids).Find(&ideas).Error; err != nil {
			return nil, nil, nil, err
		}
		for _, idea := range ideas {
			info[idea.ID] = ideaInfo{Title: idea.Title, Category: idea.Category}
		}

		var submissions []models.SubmittedIdea
		if err := h.db.Select("id", "title", "category").Where("id IN ?", ids).Find(&submissions).Error; err != nil {
			return nil, nil, nil, err
		}
		for _, idea := range submissions {
			info[idea.ID] = ideaInfo{Title: idea.Title, Category: idea.Category}
		}
	}

	return votes, comments, info, nil
}

// GetDashboard returns the caller's engagement summary.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	votes, comments, info, err := h.collectActivity(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}

	var totalSubmissions int64
	if err := h.db.Model(&models.SubmittedIdea{}).Where("submitter_id = ?", userID).Count(&totalSubmissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}

	upvotes := 0
	for _, v := range votes {
		if v.VoteType == models.VoteTypeUpvote {
			upvotes++
		}
	}

	totalInteractions := len(votes) + len(comments)

	c.JSON(http.StatusOK, gin.H{
		"user_stats": gin.H{
			"total_votes":         len(votes),
			"total_comments":      len(comments),
			"total_submissions":   totalSubmissions,
			"reputation_score":    user.ReputationScore,
			"upvotes_given":       upvotes,
			"downvotes_given":     len(votes) - upvotes,
			"favorite_categories": favoriteCategories(votes, info),
		},
		"recent_activity": gin.H{
			"voted_ideas":     recentVotes(votes, info),
			"commented_ideas": recentComments(comments, info),
		},
		"engagement_summary": gin.H{
			"total_interactions": totalInteractions,
			"vote_ratio":         ratioPercent(len(votes), totalInteractions),
		},
	})
}

// GetAnalytics buckets the same underlying events by month, category and
// rounded mean score. Its total_interactions must equal the dashboard's for
// the same user at the same instant.
func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	votes, comments, info, err := h.collectActivity(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activity_timeline":     activityTimeline(votes, comments),
		"category_distribution": categoryDistribution(votes, comments, info),
		"score_distribution":    scoreDistribution(votes),
		"total_interactions":    len(votes) + len(comments),
	})
}

// favoriteCategories ranks the top three categories by vote count. Votes
// arrive in chronological order, so ties resolve to the category seen first.
func favoriteCategories(votes []models.Vote, info map[string]ideaInfo) []string {
	counts := make(map[string]int)
	var order []string
	for _, v := range votes {
		category := info[v.IdeaID].Category
		if category == "" {
			continue
		}
		if _, seen := counts[category]; !seen {
			order = append(order, category)
		}
		counts[category]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > 3 {
		order = order[:3]
	}
	if order == nil {
		order = []string{}
	}
	return order
}

// recentVotes returns the five most recent votes, newest first.
func recentVotes(votes []models.Vote, info map[string]ideaInfo) []gin.H {
	recent := []gin.H{}
	for i := len(votes) - 1; i >= 0 && len(recent) < 5; i-- {
		v := votes[i]
		recent = append(recent, gin.H{
			"idea_id":   v.IdeaID,
			"title":     info[v.IdeaID].Title,
			"category":  info[v.IdeaID].Category,
			"vote_type": v.VoteType,
			"voted_at":  v.CreatedAt,
		})
	}
	return recent
}

// recentComments returns the five most recent comments, newest first.
func recentComments(comments []models.Comment, info map[string]ideaInfo) []gin.H {
	recent := []gin.H{}
	for i := len(comments) - 1; i >= 0 && len(recent) < 5; i-- {
		cm := comments[i]
		recent = append(recent, gin.H{
			"idea_id":      cm.IdeaID,
			"title":        info[cm.IdeaID].Title,
			"category":     info[cm.IdeaID].Category,
			"commented_at": cm.CreatedAt,
		})
	}
	return recent
}

// activityTimeline merges votes and comments into per-month buckets keyed
// "YYYY-MM", ascending.
func activityTimeline(votes []models.Vote, comments []models.Comment) []gin.H {
	type bucket struct {
		votes    int
		comments int
	}
	buckets := make(map[string]*bucket)
	get := func(key string) *bucket {
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		return b
	}

	for _, v := range votes {
		get(v.CreatedAt.UTC().Format("2006-01")).votes++
	}
	for _, cm := range comments {
		get(cm.CreatedAt.UTC().Format("2006-01")).comments++
	}

	months := make([]string, 0, len(buckets))
	for key := range buckets {
		months = append(months, key)
	}
	sort.Strings(months)

	timeline := []gin.H{}
	for _, month := range months {
		b := buckets[month]
		timeline = append(timeline, gin.H{
			"month":    month,
			"votes":    b.votes,
			"comments": b.comments,
			"total":    b.votes + b.comments,
		})
	}
	return timeline
}

// categoryDistribution counts votes and comments per idea category,
// ordered by total descending, then category name for determinism.
func categoryDistribution(votes []models.Vote, comments []models.Comment, info map[string]ideaInfo) []gin.H {
	type bucket struct {
		votes    int
		comments int
	}
	buckets := make(map[string]*bucket)
	get := func(ideaID string) *bucket {
		category := info[ideaID].Category
		if category == "" {
			category = "Unknown"
		}
		b, ok := buckets[category]
		if !ok {
			b = &bucket{}
			buckets[category] = b
		}
		return b
	}

	for _, v := range votes {
		get(v.IdeaID).votes++
	}
	for _, cm := range comments {
		get(cm.IdeaID).comments++
	}

	categories := make([]string, 0, len(buckets))
	for category := range buckets {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		bi, bj := buckets[categories[i]], buckets[categories[j]]
		ti, tj := bi.votes+bi.comments, bj.votes+bj.comments
		if ti != tj {
			return ti > tj
		}
		return categories[i] < categories[j]
	})

	distribution := []gin.H{}
	for _, category := range categories {
		b := buckets[category]
		distribution = append(distribution, gin.H{
			"category": category,
			"votes":    b.votes,
			"comments": b.comments,
			"total":    b.votes + b.comments,
		})
	}
	return distribution
}

// scoreDistribution buckets each vote by the rounded mean of its three
// sub-scores; keys "1".."5" are always present.
func scoreDistribution(votes []models.Vote) map[string]int {
	distribution := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	for _, v := range votes {
		mean := float64(v.FeasibilityScore+v.MarketPotentialScore+v.InterestScore) / 3
		bucket := int(math.Round(mean))
		if bucket < 1 {
			bucket = 1
		}
		if bucket > 5 {
			bucket = 5
		}
		distribution[strconv.Itoa(bucket)]++
	}
	return distribution
}

// ratioPercent is part/total as a percentage, one decimal place.
func ratioPercent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
