package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Saanwar2002/Ideahero/internal/models"
)

func vote(voteType string, feasibility, market, interest int) models.Vote {
	return models.Vote{
		VoteType:             voteType,
		FeasibilityScore:     feasibility,
		MarketPotentialScore: market,
		InterestScore:        interest,
	}
}

func TestComputeEmpty(t *testing.T) {
	got := Compute(nil)
	assert.Equal(t, Aggregates{}, got)

	got = Compute([]models.Vote{})
	assert.Equal(t, Aggregates{}, got)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name  string
		votes []models.Vote
		want  Aggregates
	}{
		{
			name:  "single upvote",
			votes: []models.Vote{vote(models.VoteTypeUpvote, 4, 5, 4)},
			want: Aggregates{
				ValidationScore:    92.0,
				TotalVotes:         1,
				AvgFeasibility:     4.0,
				AvgMarketPotential: 5.0,
				AvgInterest:        4.0,
			},
		},
		{
			name:  "single perfect upvote",
			votes: []models.Vote{vote(models.VoteTypeUpvote, 5, 5, 5)},
			want: Aggregates{
				ValidationScore:    100.0,
				TotalVotes:         1,
				AvgFeasibility:     5.0,
				AvgMarketPotential: 5.0,
				AvgInterest:        5.0,
			},
		},
		{
			name:  "single worst downvote",
			votes: []models.Vote{vote(models.VoteTypeDownvote, 1, 1, 1)},
			want: Aggregates{
				ValidationScore:    12.0,
				TotalVotes:         1,
				AvgFeasibility:     1.0,
				AvgMarketPotential: 1.0,
				AvgInterest:        1.0,
			},
		},
		{
			name: "feasibility mean of 4 and 5 rounds to 4.5",
			votes: []models.Vote{
				vote(models.VoteTypeUpvote, 4, 3, 3),
				vote(models.VoteTypeUpvote, 5, 3, 3),
			},
			want: Aggregates{
				ValidationScore:    82.0,
				TotalVotes:         2,
				AvgFeasibility:     4.5,
				AvgMarketPotential: 3.0,
				AvgInterest:        3.0,
			},
		},
		{
			name: "split polarity",
			votes: []models.Vote{
				vote(models.VoteTypeUpvote, 5, 5, 5),
				vote(models.VoteTypeDownvote, 1, 1, 1),
			},
			want: Aggregates{
				ValidationScore:    56.0,
				TotalVotes:         2,
				AvgFeasibility:     3.0,
				AvgMarketPotential: 3.0,
				AvgInterest:        3.0,
			},
		},
		{
			name: "repeating decimal rounds to one place",
			votes: []models.Vote{
				vote(models.VoteTypeUpvote, 4, 2, 2),
				vote(models.VoteTypeUpvote, 4, 2, 3),
				vote(models.VoteTypeDownvote, 5, 2, 3),
			},
			// feasibility 13/3 = 4.333..., interest 8/3 = 2.666...
			want: Aggregates{
				ValidationScore:    62.7,
				TotalVotes:         3,
				AvgFeasibility:     4.3,
				AvgMarketPotential: 2.0,
				AvgInterest:        2.7,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.votes))
		})
	}
}

func TestComputeOrderIrrelevant(t *testing.T) {
	votes := []models.Vote{
		vote(models.VoteTypeUpvote, 5, 4, 3),
		vote(models.VoteTypeDownvote, 1, 2, 3),
		vote(models.VoteTypeUpvote, 2, 2, 2),
	}
	reversed := []models.Vote{votes[2], votes[1], votes[0]}

	assert.Equal(t, Compute(votes), Compute(reversed))
}

func TestComputeTotalMatchesLen(t *testing.T) {
	votes := []models.Vote{}
	for i := 0; i < 7; i++ {
		votes = append(votes, vote(models.VoteTypeUpvote, 1+i%5, 1+(i+1)%5, 1+(i+2)%5))
		assert.Equal(t, len(votes), Compute(votes).TotalVotes)
	}
}

func TestComputeBounded(t *testing.T) {
	// Exhaust polarity extremes against sub-score extremes; the score must
	// stay within [0, 100] for any valid input.
	for _, vt := range []string{models.VoteTypeUpvote, models.VoteTypeDownvote} {
		for s := 1; s <= 5; s++ {
			got := Compute([]models.Vote{vote(vt, s, s, s)})
			assert.GreaterOrEqual(t, got.ValidationScore, 0.0)
			assert.LessOrEqual(t, got.ValidationScore, 100.0)
		}
	}
}
