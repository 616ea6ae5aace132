// Package scoring reduces an idea's vote list into its derived validation
// metrics. Compute is a pure function: it reads no external state and the
// same vote list always yields the same aggregates.
package scoring

import (
	"math"

	"github.com/Saanwar2002/Ideahero/internal/models"
)

// Aggregates holds the five derived fields stored back onto an idea after
// every vote mutation.
type Aggregates struct {
	ValidationScore    float64 `json:"validation_score"`
	TotalVotes         int     `json:"total_votes"`
	AvgFeasibility     float64 `json:"avg_feasibility"`
	AvgMarketPotential float64 `json:"avg_market_potential"`
	AvgInterest        float64 `json:"avg_interest"`
}

// Compute derives aggregates from the full current vote list of one idea.
// Insertion order is irrelevant. An empty list yields all-zero aggregates;
// the zero case is short-circuited so no division by zero ever happens.
//
// validation_score blends vote polarity with the averaged sub-scores:
//
//	(upvote_ratio*0.4 + (mean_of_three_averages/5)*0.6) * 100
//
// and is therefore bounded to [0, 100] for valid sub-scores (1..5).
func Compute(votes []models.Vote) Aggregates {
	if len(votes) == 0 {
		return Aggregates{}
	}

	var upvotes, feasibility, market, interest int
	for _, v := range votes {
		if v.VoteType == models.VoteTypeUpvote {
			upvotes++
		}
		feasibility += v.FeasibilityScore
		market += v.MarketPotentialScore
		interest += v.InterestScore
	}

	n := float64(len(votes))
	avgFeasibility := float64(feasibility) / n
	avgMarket := float64(market) / n
	avgInterest := float64(interest) / n

	upvoteRatio := float64(upvotes) / n
	meanScore := (avgFeasibility + avgMarket + avgInterest) / 3
	validation := (upvoteRatio*0.4 + meanScore/5*0.6) * 100

	return Aggregates{
		ValidationScore:    round1(validation),
		TotalVotes:         len(votes),
		AvgFeasibility:     round1(avgFeasibility),
		AvgMarketPotential: round1(avgMarket),
		AvgInterest:        round1(avgInterest),
	}
}

// round1 rounds to one decimal place, halves away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
