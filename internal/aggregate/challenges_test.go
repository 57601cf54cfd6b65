package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"awc_tracker/internal/domain"
)

func challengeIDs(cs []domain.Challenge) []int64 {
	out := make([]int64, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func challengeFixture() []domain.Challenge {
	return []domain.Challenge{
		{ID: 1, Title: "beta", Entries: []domain.Entry{
			entry(1, "", complete, complete),
			entry(2, "", incomplete, complete),
		}},
		{ID: 2, Title: "Alpha", Entries: []domain.Entry{
			entry(3, "", incomplete, incomplete),
			{RequirementTitle: "unfilled"},
		}},
		{ID: 3, Title: "gamma", Entries: nil},
		{ID: 4, Title: "delta", Entries: []domain.Entry{{RequirementTitle: "unfilled"}}},
	}
}

func TestFilterChallenges(t *testing.T) {
	cs := challengeFixture()
	assert.Equal(t, []int64{1, 2, 3, 4}, challengeIDs(FilterChallenges(cs, ChallengesAll)))
	assert.Equal(t, []int64{2, 4}, challengeIDs(FilterChallenges(cs, ChallengesOngoing)))
	assert.Equal(t, []int64{1}, challengeIDs(FilterChallenges(cs, ChallengesCompleted)))
	assert.Equal(t, []int64{1}, challengeIDs(FilterChallenges(cs, ChallengesDiscrepancies)))
}

func TestSortChallenges(t *testing.T) {
	tests := []struct {
		sort ChallengeSort
		want []int64
	}{
		{ChallengesDateDesc, []int64{4, 3, 2, 1}},
		{ChallengesDateAsc, []int64{1, 2, 3, 4}},
		{ChallengesTitleAsc, []int64{2, 1, 4, 3}},
		{ChallengesTitleDesc, []int64{3, 4, 1, 2}},
		{ChallengesProgressDesc, []int64{1, 2, 3, 4}},
		{ChallengesProgressAsc, []int64{2, 1, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			cs := challengeFixture()
			SortChallenges(cs, tt.sort)
			assert.Equal(t, tt.want, challengeIDs(cs))
		})
	}
}

func TestProgress(t *testing.T) {
	cs := challengeFixture()
	p, ok := Progress(cs[0])
	assert.True(t, ok)
	assert.Equal(t, 1.0, p)

	_, ok = Progress(cs[3])
	assert.False(t, ok)
}
