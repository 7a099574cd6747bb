package service

import (
	"math"
	"time"
)

// JudgeActivity reports one judge's evaluation progress for the admin
// dashboard.
type JudgeActivity struct {
	JudgeID         uint       `json:"judgeId"`
	JudgeName       string     `json:"judgeName,omitempty"`
	IsActive        bool       `json:"isActive"`
	EvaluatedTeams  int        `json:"evaluatedTeams"`
	TotalTeams      int        `json:"totalTeams"`
	LastActivity    *time.Time `json:"lastActivity,omitempty"`
	ProgressPercent int        `json:"progressPercent"`
}

type ActivitySummary struct {
	TotalJudges          int `json:"totalJudges"`
	ActiveJudges         int `json:"activeJudges"`
	CompletedEvaluations int `json:"completedEvaluations"`
	AverageProgress      int `json:"averageProgress"`
}

type JudgeActivityService struct {
	Judges JudgeStore
	Teams  TeamStore
	Scores ScoreStore
}

func NewJudgeActivityService(judges JudgeStore, teams TeamStore, scores ScoreStore) *JudgeActivityService {
	return &JudgeActivityService{Judges: judges, Teams: teams, Scores: scores}
}

// ComputeActivity returns per-judge progress plus an aggregate summary.
// A team counts as evaluated once any entry from the judge exists for it;
// ingestion guarantees the per-team set is complete, so distinct team IDs are
// enough. CompletedEvaluations is the number of judge/team evaluations
// finished across all judges.
func (s *JudgeActivityService) ComputeActivity(hackathonID uint) ([]JudgeActivity, ActivitySummary, error) {
	judges, err := s.Judges.ListByHackathon(hackathonID)
	if err != nil {
		return nil, ActivitySummary{}, err
	}
	totalTeams, err := s.Teams.CountByHackathon(hackathonID)
	if err != nil {
		return nil, ActivitySummary{}, err
	}

	activities := make([]JudgeActivity, 0, len(judges))
	summary := ActivitySummary{TotalJudges: len(judges)}
	progressSum := 0

	for _, judge := range judges {
		entries, err := s.Scores.ListByJudge(judge.ID, hackathonID)
		if err != nil {
			return nil, ActivitySummary{}, err
		}

		seen := make(map[uint]bool)
		var last *time.Time
		for _, entry := range entries {
			seen[entry.TeamID] = true
			if last == nil || entry.CreatedAt.After(*last) {
				createdAt := entry.CreatedAt
				last = &createdAt
			}
		}

		activity := JudgeActivity{
			JudgeID:        judge.ID,
			IsActive:       judge.IsActive,
			EvaluatedTeams: len(seen),
			TotalTeams:     int(totalTeams),
			LastActivity:   last,
		}
		if judge.User != nil {
			activity.JudgeName = judge.User.Name
		}
		if totalTeams > 0 {
			activity.ProgressPercent = int(math.Round(float64(len(seen)) / float64(totalTeams) * 100))
		}

		activities = append(activities, activity)
		summary.CompletedEvaluations += len(seen)
		if judge.IsActive {
			summary.ActiveJudges++
			progressSum += activity.ProgressPercent
		}
	}

	if summary.ActiveJudges > 0 {
		summary.AverageProgress = int(math.Round(float64(progressSum) / float64(summary.ActiveJudges)))
	}
	return activities, summary, nil
}
