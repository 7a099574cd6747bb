package service_test

import (
	"testing"

	"hackathon_judging_backend/internal/model"
	"hackathon_judging_backend/internal/service"
	"hackathon_judging_backend/internal/service/servicetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAggregationFixture() (*servicetest.Store, *service.AggregationService) {
	store := servicetest.NewStore()
	store.Hackathons[1] = model.Hackathon{BaseModel: model.BaseModel{ID: 1}, EvaluationOpen: true}
	store.Teams[10] = model.Team{BaseModel: model.BaseModel{ID: 10}, HackathonID: 1, Name: "Alpha", TeamNumber: 1}
	store.Teams[11] = model.Team{BaseModel: model.BaseModel{ID: 11}, HackathonID: 1, Name: "Beta", TeamNumber: 2}
	return store, service.NewAggregationService(store.TeamStore(), store)
}

func seedScores(store *servicetest.Store, judgeID, teamID uint, scored ...[3]int) {
	var entries []model.ScoreEntry
	for _, s := range scored {
		entries = append(entries, model.ScoreEntry{
			JudgeID:     judgeID,
			TeamID:      teamID,
			CriterionID: uint(s[0]),
			HackathonID: 1,
			Stars:       0,
			Points:      s[1],
			MaxScore:    s[2],
		})
	}
	if err := store.Replace(judgeID, teamID, 1, entries); err != nil {
		panic(err)
	}
}

func TestComputeTeamResultsSingleJudge(t *testing.T) {
	store, svc := newAggregationFixture()
	// Three criteria with maxScore 10, 10, 5 scored 5, 5, 1 stars.
	seedScores(store, 50, 10, [3]int{100, 10, 10}, [3]int{101, 10, 10}, [3]int{102, 1, 5})

	results, err := svc.ComputeTeamResults(1)
	require.NoError(t, err)
	require.Len(t, results, 2)

	alpha := results[0]
	assert.Equal(t, uint(10), alpha.TeamID)
	assert.Equal(t, 21, alpha.TotalScore)
	assert.InDelta(t, 3.67, alpha.AverageStars, 0.001)
	assert.Equal(t, 3, alpha.EvaluationsCount)
}

func TestComputeTeamResultsIncludesUnjudgedTeams(t *testing.T) {
	store, svc := newAggregationFixture()
	seedScores(store, 50, 10, [3]int{100, 8, 10})

	results, err := svc.ComputeTeamResults(1)
	require.NoError(t, err)
	require.Len(t, results, 2)

	beta := results[1]
	assert.Equal(t, uint(11), beta.TeamID)
	assert.Equal(t, 0, beta.TotalScore)
	assert.Equal(t, 0.0, beta.AverageStars)
	assert.Equal(t, 0, beta.EvaluationsCount)
}

func TestComputeTeamResultsSumsAcrossJudges(t *testing.T) {
	store, svc := newAggregationFixture()
	seedScores(store, 50, 10, [3]int{100, 10, 10})
	seedScores(store, 51, 10, [3]int{100, 5, 10})

	results, err := svc.ComputeTeamResults(1)
	require.NoError(t, err)

	alpha := results[0]
	assert.Equal(t, 15, alpha.TotalScore)
	assert.Equal(t, 2, alpha.EvaluationsCount)
	// (5.0 + 2.5) / 2 stars
	assert.InDelta(t, 3.75, alpha.AverageStars, 0.001)
}

func TestComputeTeamResultsNormalizesMixedCeilings(t *testing.T) {
	store, svc := newAggregationFixture()
	// Full marks on a small criterion and half marks on a large one should
	// average the same as the reverse.
	seedScores(store, 50, 10, [3]int{100, 100, 100}, [3]int{101, 1, 2})
	seedScores(store, 50, 11, [3]int{100, 50, 100}, [3]int{101, 2, 2})

	results, err := svc.ComputeTeamResults(1)
	require.NoError(t, err)

	assert.InDelta(t, results[0].AverageStars, results[1].AverageStars, 0.001)
}

func TestComputeTeamResultsEmptyHackathon(t *testing.T) {
	store := servicetest.NewStore()
	svc := service.NewAggregationService(store.TeamStore(), store)

	results, err := svc.ComputeTeamResults(42)
	require.NoError(t, err)
	assert.Empty(t, results)
}
