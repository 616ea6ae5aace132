package handlers

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Saanwar2002/Ideahero/internal/models"
	"github.com/Saanwar2002/Ideahero/internal/scoring"
)

// Tables that carry aggregate columns. Only these two values ever reach the
// raw lock statement below.
const (
	ideaTable       = "ideas"
	submissionTable = "submitted_ideas"
)

// admitVote upserts the caller's vote inside a transaction, recomputes the
// idea's aggregates from the full vote list, and credits reputation. The
// idea row is locked for the duration so two concurrent voters cannot
// clobber each other's aggregate writes.
func admitVote(db *gorm.DB, table, ideaID, userID string, req models.VoteRequest) (scoring.Aggregates, error) {
	var aggs scoring.Aggregates
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT id FROM "+table+" WHERE id = ? FOR UPDATE", ideaID).Error; err != nil {
			return err
		}

		vote := models.Vote{
			IdeaID:               ideaID,
			UserID:               userID,
			VoteType:             req.VoteType,
			FeasibilityScore:     req.FeasibilityScore,
			MarketPotentialScore: req.MarketPotentialScore,
			InterestScore:        req.InterestScore,
			CreatedAt:            time.Now().UTC(),
		}

		// One vote per (idea, user): a re-vote replaces the existing row.
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "idea_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"vote_type", "feasibility_score", "market_potential_score", "interest_score", "created_at",
			}),
		}).Create(&vote).Error; err != nil {
			return err
		}

		var votes []models.Vote
		if err := tx.Where("idea_id = ?", ideaID).Find(&votes).Error; err != nil {
			return err
		}
		aggs = scoring.Compute(votes)

		if err := tx.Table(table).Where("id = ?", ideaID).Updates(map[string]interface{}{
			"validation_score":     aggs.ValidationScore,
			"total_votes":          aggs.TotalVotes,
			"avg_feasibility":      aggs.AvgFeasibility,
			"avg_market_potential": aggs.AvgMarketPotential,
			"avg_interest":         aggs.AvgInterest,
		}).Error; err != nil {
			return err
		}

		// Reputation is credited on every admission, including replacement
		// of an existing vote.
		points := 1
		if req.VoteType == models.VoteTypeUpvote {
			points = 2
		}
		return addReputation(tx, userID, points)
	})
	return aggs, err
}

// admitComment appends an immutable comment with the author's display name
// denormalized at comment time, and credits one reputation point.
func admitComment(db *gorm.DB, ideaID, userID, content string) (models.Comment, error) {
	var comment models.Comment
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		comment = models.Comment{
			ID:        uuid.NewString(),
			IdeaID:    ideaID,
			UserID:    userID,
			UserName:  user.FullName,
			Content:   content,
			CreatedAt: time.Now().UTC(),
		}
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}

		return addReputation(tx, userID, 1)
	})
	return comment, err
}

func addReputation(tx *gorm.DB, userID string, points int) error {
	return tx.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("reputation_score", gorm.Expr("reputation_score + ?", points)).Error
}
