package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saanwar2002/Ideahero/internal/models"
)

type voteResponse struct {
	Message string `json:"message"`
	Scores  struct {
		ValidationScore    float64 `json:"validation_score"`
		TotalVotes         int     `json:"total_votes"`
		AvgFeasibility     float64 `json:"avg_feasibility"`
		AvgMarketPotential float64 `json:"avg_market_potential"`
		AvgInterest        float64 `json:"avg_interest"`
	} `json:"scores"`
}

func TestVoteRecomputesScores(t *testing.T) {
	token, userID := registerUser(t, "Voter One")
	ideaID := createIdea(t, "AI/ML")

	w := doRequest(t, http.MethodPost, "/api/ideas/"+ideaID+"/vote", token, gin.H{
		"vote_type":              "upvote",
		"feasibility_score":      4,
		"market_potential_score": 5,
		"interest_score":         4,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp voteResponse
	decode(t, w, &resp)
	assert.Equal(t, 92.0, resp.Scores.ValidationScore)
	assert.Equal(t, 1, resp.Scores.TotalVotes)
	assert.Equal(t, 4.0, resp.Scores.AvgFeasibility)
	assert.Equal(t, 5.0, resp.Scores.AvgMarketPotential)
	assert.Equal(t, 4.0, resp.Scores.AvgInterest)

	// Upvote credits two reputation points.
	assert.Equal(t, 2, reputationOf(t, userID))

	// Aggregates are persisted on the idea row itself.
	var idea models.Idea
	require.NoError(t, testDB.GetDB().First(&idea, "id = ?", ideaID).Error)
	assert.Equal(t, 92.0, idea.ValidationScore)
	assert.Equal(t, 1, idea.TotalVotes)
}

func TestRevoteReplacesPreviousVote(t *testing.T) {
	token, userID := registerUser(t, "Voter Two")
	ideaID := createIdea(t, "SaaS")

	w := doRequest(t, http.MethodPost, "/api/ideas/"+ideaID+"/vote", token, gin.H{
		"vote_type":              "upvote",
		"feasibility_score":      4,
		"market_potential_score": 5,
		"interest_score":         4,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(t, http.MethodPost, "/api/ideas/"+ideaID+"/vote", token, gin.H{
		"vote_type":              "upvote",
		"feasibility_score":      5,
		"market_potential_score": 5,
		"interest_score":         5,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp voteResponse
	decode(t, w, &resp)
	assert.Equal(t, 100.0, resp.Scores.ValidationScore)
	assert.Equal(t, 1, resp.Scores.TotalVotes)

	// One row per (idea, user); the second vote's values win.
	var votes []models.Vote
	require.NoError(t, testDB.GetDB().Where("idea_id = ? AND user_id = ?", ideaID, userID).Find(&votes).Error)
	require.Len(t, votes, 1)
	assert.Equal(t, 5, votes[0].FeasibilityScore)
	assert.Equal(t, 5, votes[0].MarketPotentialScore)
	assert.Equal(t, 5, votes[0].InterestScore)

	// Re-voting earns reputation again.
	assert.Equal(t, 4, reputationOf(t, userID))
}

func TestVotesFromTwoUsersAggregate(t *testing.T) {
	tokenA, _ := registerUser(t, "Voter A")
	tokenB, _ := registerUser(t, "Voter B")
	ideaID := createIdea(t, "Fintech")

	w := doRequest(t, http.MethodPost, "/api/ideas/"+ideaID+"/vote", tokenA, gin.H{
		"vote_type":              "upvote",
		"feasibility_score":      4,
		"market_potential_score": 4,
		"interest_score":         4,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, http.MethodPost, "/api/ideas/"+ideaID+"/vote", tokenB, gin.H{
		"vote_type":              "downvote",
		"feasibility_score":      2,
		"market_potential_score": 2,
		"interest_score":         2,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp voteResponse
	decode(t, w, &resp)
	assert.Equal(t, 2, resp.Scores.TotalVotes)
	assert.Equal(t, 3.0, resp.Scores.AvgFeasibility)
	// upvote_ratio 0.5, mean score 3.0: (0.5*0.4 + 0.6*0.6) * 100
	assert.Equal(t, 56.0, resp.Scores.ValidationScore)
}

func TestVoteValidation(t *testing.T) {
	token, _ := registerUser(t, "Voter Three")
	ideaID := createIdea(t, "Healthcare")

	tests := []struct {
		name string
		body gin.H
		want int
	}{
		{"missing vote_type", gin.H{"feasibility_score": 3, "market_potential_score": 3, "interest_score": 3}, http.StatusBadRequest},
		{"bad vote_type", gin.H{"vote_type": "sideways", "feasibility_score": 3, "market_potential_score": 3, "interest_score": 3}, http.StatusBadRequest},
		{"score too high", gin.H{"vote_type": "upvote", "feasibility_score": 6, "market_potential_score": 3, "interest_score": 3}, http.StatusBadRequest},
		{"score too low", gin.H{"vote_type": "upvote", "feasibility_score": 3, "market_potential_score": 0, "interest_score": 3}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, http.MethodPost, "/api/ideas/"+ideaID+"/vote", token, tt.body)
			assert.Equal(t, tt.want, w.Code)
		})
	}

	// Nothing was written by the rejected requests.
	var count int64
	require.NoError(t, testDB.GetDB().Model(&models.Vote{}).Where("idea_id = ?", ideaID).Count(&count).Error)
	assert.Zero(t, count)

	w := doRequest(t, http.MethodPost, "/api/ideas/"+uuid.NewString()+"/vote", token, gin.H{
		"vote_type":              "upvote",
		"feasibility_score":      3,
		"market_potential_score": 3,
		"interest_score":         3,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentLengthGate(t *testing.T) {
	token, userID := registerUser(t, "Commenter")
	ideaID := createIdea(t, "EdTech")

	// Nine characters after trimming.
	for _, content := range []string{"Too short", "   Too short   "} {
		w := doRequest(t, http.MethodPost, "/api/ideas/"+ideaID+"/comment", token, gin.H{"content": content})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "at least 10 characters")
	}
	assert.Equal(t, 0, reputationOf(t, userID))

	w := doRequest(t, http.MethodPost, "/api/ideas/"+ideaID+"/comment", token, gin.H{
		"content": "This idea solves a real problem.",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Message string `json:"message"`
		Comment struct {
			ID       string `json:"id"`
			UserName string `json:"user_name"`
			Content  string `json:"content"`
		} `json:"comment"`
	}
	decode(t, w, &resp)
	assert.NotEmpty(t, resp.Comment.ID)
	assert.Equal(t, "Commenter", resp.Comment.UserName)
	assert.Equal(t, "This idea solves a real problem.", resp.Comment.Content)

	assert.Equal(t, 1, reputationOf(t, userID))
}

func TestListIdeasFilterAndSort(t *testing.T) {
	token, _ := registerUser(t, "Lister")
	category := "Cat-" + uuid.NewString()

	low := createIdea(t, category)
	high := createIdea(t, category)

	vote := func(ideaID string, score int) {
		w := doRequest(t, http.MethodPost, "/api/ideas/"+ideaID+"/vote", token, gin.H{
			"vote_type":              "upvote",
			"feasibility_score":      score,
			"market_potential_score": score,
			"interest_score":         score,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	vote(low, 2)
	vote(high, 5)

	w := doRequest(t, http.MethodGet, fmt.Sprintf("/api/ideas?category=%s&sort_by=validation_score", category), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ideas []struct {
		ID              string  `json:"id"`
		ValidationScore float64 `json:"validation_score"`
	}
	decode(t, w, &ideas)
	require.Len(t, ideas, 2)
	assert.Equal(t, high, ideas[0].ID)
	assert.Equal(t, low, ideas[1].ID)

	// Pagination bounds are validated.
	w = doRequest(t, http.MethodGet, "/api/ideas?skip=-1", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doRequest(t, http.MethodGet, "/api/ideas?sort_by=drop_table", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetIdeaNotFound(t *testing.T) {
	w := doRequest(t, http.MethodGet, "/api/ideas/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Idea not found")
}
