package models

import "time"

// Vote directions.
const (
	VoteTypeUpvote   = "upvote"
	VoteTypeDownvote = "downvote"
)

// Vote records one user's validation vote on one idea. The composite unique
// index enforces at most one vote per (idea, user) pair; re-voting replaces
// the existing row.
type Vote struct {
	ID                   uint      `gorm:"primaryKey" json:"-"`
	IdeaID               string    `gorm:"type:uuid;not null;uniqueIndex:idx_votes_idea_user" json:"-"`
	UserID               string    `gorm:"type:uuid;not null;uniqueIndex:idx_votes_idea_user" json:"user_id"`
	VoteType             string    `gorm:"not null" json:"vote_type"`
	FeasibilityScore     int       `gorm:"not null" json:"feasibility_score"`
	MarketPotentialScore int       `gorm:"not null" json:"market_potential_score"`
	InterestScore        int       `gorm:"not null" json:"interest_score"`
	CreatedAt            time.Time `json:"created_at"`
}

type VoteRequest struct {
	VoteType             string `json:"vote_type" binding:"required,oneof=upvote downvote"`
	FeasibilityScore     int    `json:"feasibility_score" binding:"required,min=1,max=5"`
	MarketPotentialScore int    `json:"market_potential_score" binding:"required,min=1,max=5"`
	InterestScore        int    `json:"interest_score" binding:"required,min=1,max=5"`
}
