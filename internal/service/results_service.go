package service

import (
	"errors"
	"time"

	"hackathon_judging_backend/internal/model"
	"hackathon_judging_backend/internal/util"

	"gorm.io/gorm"
)

// ScoreBreakdownEntry is one raw score in the audit breakdown: which judge
// gave which team how many stars on which criterion.
type ScoreBreakdownEntry struct {
	TeamID        uint      `json:"teamId"`
	JudgeID       uint      `json:"judgeId"`
	JudgeName     string    `json:"judgeName,omitempty"`
	CriterionID   uint      `json:"criterionId"`
	CriterionName string    `json:"criterionName,omitempty"`
	Stars         int       `json:"stars"`
	Points        int       `json:"points"`
	MaxScore      int       `json:"maxScore"`
	ScoredAt      time.Time `json:"scoredAt"`
}

type ResultsSummary struct {
	TotalTeams  int           `json:"totalTeams"`
	TotalJudges int           `json:"totalJudges"`
	Winner      *RankedResult `json:"winner,omitempty"`
}

// HackathonResults is the full leaderboard view served to admins and frozen
// into snapshots.
type HackathonResults struct {
	HackathonID uint                  `json:"hackathonId"`
	Results     []RankedResult        `json:"results"`
	Summary     ResultsSummary        `json:"summary"`
	Breakdown   []ScoreBreakdownEntry `json:"breakdown,omitempty"`
}

// ResultsService composes aggregation and ranking into the admin results
// view. Everything is recomputed from committed rows on each call.
type ResultsService struct {
	Hackathons  HackathonStore
	Judges      JudgeStore
	Criteria    CriterionStore
	Scores      ScoreStore
	Aggregation *AggregationService
	Ranking     *RankingService
}

func NewResultsService(hackathons HackathonStore, judges JudgeStore, criteria CriterionStore, scores ScoreStore, aggregation *AggregationService, ranking *RankingService) *ResultsService {
	return &ResultsService{
		Hackathons:  hackathons,
		Judges:      judges,
		Criteria:    criteria,
		Scores:      scores,
		Aggregation: aggregation,
		Ranking:     ranking,
	}
}

func (s *ResultsService) Compute(hackathonID uint, includeBreakdown bool) (*HackathonResults, error) {
	if _, err := s.Hackathons.FindByID(hackathonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrHackathonNotFound
		}
		return nil, err
	}

	teamResults, err := s.Aggregation.ComputeTeamResults(hackathonID)
	if err != nil {
		return nil, err
	}
	ranked := s.Ranking.Rank(teamResults)

	judges, err := s.Judges.ListByHackathon(hackathonID)
	if err != nil {
		return nil, err
	}

	results := &HackathonResults{
		HackathonID: hackathonID,
		Results:     ranked,
		Summary: ResultsSummary{
			TotalTeams:  len(ranked),
			TotalJudges: len(judges),
		},
	}
	if len(ranked) > 0 {
		winner := ranked[0]
		results.Summary.Winner = &winner
	}

	if includeBreakdown {
		breakdown, err := s.computeBreakdown(hackathonID, judges)
		if err != nil {
			return nil, err
		}
		results.Breakdown = breakdown
	}
	return results, nil
}

func (s *ResultsService) computeBreakdown(hackathonID uint, judges []model.Judge) ([]ScoreBreakdownEntry, error) {
	entries, err := s.Scores.ListByHackathon(hackathonID)
	if err != nil {
		return nil, err
	}
	criteria, err := s.Criteria.ListActiveByHackathon(hackathonID)
	if err != nil {
		return nil, err
	}

	judgeNames := make(map[uint]string, len(judges))
	for _, judge := range judges {
		if judge.User != nil {
			judgeNames[judge.ID] = judge.User.Name
		}
	}
	criterionNames := make(map[uint]string, len(criteria))
	for _, criterion := range criteria {
		criterionNames[criterion.ID] = criterion.Name
	}

	breakdown := make([]ScoreBreakdownEntry, 0, len(entries))
	for _, entry := range entries {
		breakdown = append(breakdown, ScoreBreakdownEntry{
			TeamID:        entry.TeamID,
			JudgeID:       entry.JudgeID,
			JudgeName:     judgeNames[entry.JudgeID],
			CriterionID:   entry.CriterionID,
			CriterionName: criterionNames[entry.CriterionID],
			Stars:         entry.Stars,
			Points:        entry.Points,
			MaxScore:      entry.MaxScore,
			ScoredAt:      entry.CreatedAt,
		})
	}
	return breakdown, nil
}
