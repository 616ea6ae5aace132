package models

import "time"

// Submission lifecycle statuses. New submissions start as pending; approval
// and rejection happen through an administrative path outside this API.
const (
	StatusDraft    = "draft"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// SubmittedIdea is a user-authored idea. Voting and commenting are only
// permitted once it is approved; until then it is visible to its submitter
// only.
type SubmittedIdea struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description"`
	Category    string  `gorm:"index" json:"category"`
	Tags        TagList `gorm:"type:jsonb" json:"tags"`
	SubmitterID string  `gorm:"type:uuid;index;not null" json:"submitter_id"`
	Status      string  `gorm:"default:pending;index" json:"status"`

	TargetMarket         string `json:"target_market,omitempty"`
	ProblemStatement     string `json:"problem_statement,omitempty"`
	SolutionApproach     string `json:"solution_approach,omitempty"`
	BusinessModel        string `json:"business_model,omitempty"`
	CompetitiveAdvantage string `json:"competitive_advantage,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Votes    []Vote    `gorm:"foreignKey:IdeaID;references:ID" json:"votes"`
	Comments []Comment `gorm:"foreignKey:IdeaID;references:ID" json:"comments"`

	ValidationScore    float64 `gorm:"default:0" json:"validation_score"`
	TotalVotes         int     `gorm:"default:0" json:"total_votes"`
	AvgFeasibility     float64 `gorm:"default:0" json:"avg_feasibility"`
	AvgMarketPotential float64 `gorm:"default:0" json:"avg_market_potential"`
	AvgInterest        float64 `gorm:"default:0" json:"avg_interest"`
}

type SubmitIdeaRequest struct {
	Title                string `json:"title" binding:"required"`
	Description          string `json:"description" binding:"required"`
	Category             string `json:"category" binding:"required"`
	Tags                 []Tag  `json:"tags"`
	TargetMarket         string `json:"target_market"`
	ProblemStatement     string `json:"problem_statement"`
	SolutionApproach     string `json:"solution_approach"`
	BusinessModel        string `json:"business_model"`
	CompetitiveAdvantage string `json:"competitive_advantage"`
}

// UpdateSubmissionRequest is a partial edit; only pending or draft
// submissions may be edited, and only by their submitter.
type UpdateSubmissionRequest struct {
	Title                *string `json:"title"`
	Description          *string `json:"description"`
	Category             *string `json:"category"`
	Tags                 *[]Tag  `json:"tags"`
	TargetMarket         *string `json:"target_market"`
	ProblemStatement     *string `json:"problem_statement"`
	SolutionApproach     *string `json:"solution_approach"`
	BusinessModel        *string `json:"business_model"`
	CompetitiveAdvantage *string `json:"competitive_advantage"`
}
