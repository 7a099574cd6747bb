package service_test

import (
	"testing"
	"time"

	"hackathon_judging_backend/internal/model"
	"hackathon_judging_backend/internal/service"
	"hackathon_judging_backend/internal/service/servicetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActivityFixture() (*servicetest.Store, *service.JudgeActivityService) {
	store := servicetest.NewStore()
	store.Hackathons[1] = model.Hackathon{BaseModel: model.BaseModel{ID: 1}, EvaluationOpen: true}
	for i := 1; i <= 5; i++ {
		id := uint(9 + i)
		store.Teams[id] = model.Team{BaseModel: model.BaseModel{ID: id}, HackathonID: 1, TeamNumber: i}
	}
	store.Judges[50] = model.Judge{
		BaseModel:   model.BaseModel{ID: 50},
		HackathonID: 1,
		UserID:      500,
		IsActive:    true,
		User:        &model.User{BaseModel: model.BaseModel{ID: 500}, Name: "Grace"},
	}
	store.Judges[51] = model.Judge{
		BaseModel:   model.BaseModel{ID: 51},
		HackathonID: 1,
		UserID:      501,
		IsActive:    true,
		User:        &model.User{BaseModel: model.BaseModel{ID: 501}, Name: "Ken"},
	}
	return store, service.NewJudgeActivityService(store.JudgeStore(), store.TeamStore(), store)
}

func TestComputeActivityProgressPercent(t *testing.T) {
	store, svc := newActivityFixture()
	// Judge 50 has evaluated 2 of 5 teams, judge 51 none.
	seedScores(store, 50, 10, [3]int{100, 5, 10})
	seedScores(store, 50, 11, [3]int{100, 8, 10})

	activities, summary, err := svc.ComputeActivity(1)
	require.NoError(t, err)
	require.Len(t, activities, 2)

	grace := activities[0]
	assert.Equal(t, uint(50), grace.JudgeID)
	assert.Equal(t, "Grace", grace.JudgeName)
	assert.Equal(t, 2, grace.EvaluatedTeams)
	assert.Equal(t, 5, grace.TotalTeams)
	assert.Equal(t, 40, grace.ProgressPercent)
	assert.NotNil(t, grace.LastActivity)

	ken := activities[1]
	assert.Equal(t, 0, ken.EvaluatedTeams)
	assert.Equal(t, 0, ken.ProgressPercent)
	assert.Nil(t, ken.LastActivity)

	assert.Equal(t, 2, summary.TotalJudges)
	assert.Equal(t, 2, summary.ActiveJudges)
	assert.Equal(t, 2, summary.CompletedEvaluations)
	assert.Equal(t, 20, summary.AverageProgress)
}

func TestComputeActivityCountsTeamsNotEntries(t *testing.T) {
	store, svc := newActivityFixture()
	// Multiple criteria for a single team still count as one evaluated team.
	seedScores(store, 50, 10, [3]int{100, 5, 10}, [3]int{101, 8, 10}, [3]int{102, 3, 5})

	activities, summary, err := svc.ComputeActivity(1)
	require.NoError(t, err)
	assert.Equal(t, 1, activities[0].EvaluatedTeams)
	assert.Equal(t, 1, summary.CompletedEvaluations)
}

func TestComputeActivityLastActivityIsNewestEntry(t *testing.T) {
	store, svc := newActivityFixture()
	older := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	require.NoError(t, store.Replace(50, 10, 1, []model.ScoreEntry{
		{BaseModel: model.BaseModel{CreatedAt: older}, JudgeID: 50, TeamID: 10, CriterionID: 100, HackathonID: 1, Points: 5, MaxScore: 10},
	}))
	require.NoError(t, store.Replace(50, 11, 1, []model.ScoreEntry{
		{BaseModel: model.BaseModel{CreatedAt: newer}, JudgeID: 50, TeamID: 11, CriterionID: 100, HackathonID: 1, Points: 8, MaxScore: 10},
	}))

	activities, _, err := svc.ComputeActivity(1)
	require.NoError(t, err)
	require.NotNil(t, activities[0].LastActivity)
	assert.True(t, activities[0].LastActivity.Equal(newer))
}

func TestComputeActivityNoTeams(t *testing.T) {
	store := servicetest.NewStore()
	store.Hackathons[1] = model.Hackathon{BaseModel: model.BaseModel{ID: 1}}
	store.Judges[50] = model.Judge{BaseModel: model.BaseModel{ID: 50}, HackathonID: 1, UserID: 500, IsActive: true}
	svc := service.NewJudgeActivityService(store.JudgeStore(), store.TeamStore(), store)

	activities, summary, err := svc.ComputeActivity(1)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, 0, activities[0].ProgressPercent)
	assert.Equal(t, 0, activities[0].TotalTeams)
	assert.Equal(t, 0, summary.AverageProgress)
}

func TestComputeActivityInactiveJudgeExcludedFromAverages(t *testing.T) {
	store, svc := newActivityFixture()
	store.Judges[52] = model.Judge{BaseModel: model.BaseModel{ID: 52}, HackathonID: 1, UserID: 502, IsActive: false}
	// All five teams done by judge 50.
	for teamID := uint(10); teamID <= 14; teamID++ {
		seedScores(store, 50, teamID, [3]int{100, 5, 10})
	}

	activities, summary, err := svc.ComputeActivity(1)
	require.NoError(t, err)
	require.Len(t, activities, 3)

	assert.Equal(t, 3, summary.TotalJudges)
	assert.Equal(t, 2, summary.ActiveJudges)
	// Judge 50 at 100%, judge 51 at 0%; the inactive judge does not dilute it.
	assert.Equal(t, 50, summary.AverageProgress)
}
